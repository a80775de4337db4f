package domainfx

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/yurykabanov/logarchiver/pkg/archive"
	"github.com/yurykabanov/logarchiver/pkg/domain"
	"github.com/yurykabanov/logarchiver/pkg/history"
	"github.com/yurykabanov/logarchiver/pkg/paths"
	"github.com/yurykabanov/logarchiver/pkg/retention"
)

func PathResolver(logger *logrus.Logger) *paths.Resolver {
	return paths.New(logger)
}

func HistoryLog(job domain.Job) *history.Log {
	return history.New(filepath.Join(job.OutputDir, history.DefaultFileName))
}

func Archiver(logger *logrus.Logger) *archive.Archiver {
	return archive.New(logger)
}

func RetentionSweeper(logger *logrus.Logger, log *history.Log) *retention.Sweeper {
	return retention.New(logger, log)
}

func ArchiveService(
	logger *logrus.Logger,
	archiver *archive.Archiver,
	log *history.Log,
	sweeper *retention.Sweeper,
) *domain.ArchiveService {
	return domain.NewArchiveService(logger, archiver, log, sweeper)
}
