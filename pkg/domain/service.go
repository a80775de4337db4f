package domain

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yurykabanov/logarchiver/pkg/appcontext"
)

type archiver interface {
	Create(sourceDir, outputDir, timestamp string) (Bundle, error)
}

type historyLog interface {
	Path() string
	AppendCreation(timestamp, sourceDir, archivePath string, sizeBytes int64, sizeHuman string) error
}

type sweeper interface {
	Sweep(ctx context.Context, outputDir string, retainDays int, timestamp string) (int, error)
}

// ArchiveService drives one invocation through its linear state machine:
// bundle creation, history record, optional retention sweep. There is no
// rollback: a history failure after a successful creation leaves a valid
// orphaned bundle behind, which is surfaced but never undone.
type ArchiveService struct {
	logger logrus.FieldLogger

	archiver archiver
	history  historyLog
	sweeper  sweeper
}

func NewArchiveService(
	logger logrus.FieldLogger,
	archiver archiver,
	history historyLog,
	sweeper sweeper,
) *ArchiveService {
	return &ArchiveService{
		logger: logger,

		archiver: archiver,
		history:  history,
		sweeper:  sweeper,
	}
}

func (s *ArchiveService) Run(ctx context.Context, job Job) (Result, error) {
	ctx = appcontext.WithSourceDir(ctx, job.SourceDir)
	ctx = appcontext.WithOutputDir(ctx, job.OutputDir)
	ctx = appcontext.WithTimestamp(ctx, job.Timestamp)

	logger := appcontext.LoggerFromContext(s.logger, ctx)

	result := Result{HistoryPath: s.history.Path()}

	logger.Info("Creating bundle")

	bundle, err := s.archiver.Create(job.SourceDir, job.OutputDir, job.Timestamp)
	if err != nil {
		return result, err
	}

	result.Bundle = bundle

	ctx = appcontext.WithBundle(ctx, bundle.Path)
	logger = appcontext.LoggerFromContext(s.logger, ctx)

	logger.WithField("size_bytes", bundle.SizeBytes).Info("Bundle created")

	err = s.history.AppendCreation(job.Timestamp, job.SourceDir, bundle.Path, bundle.SizeBytes, bundle.SizeHuman)
	if err != nil {
		logger.WithError(err).Error("Bundle created, but its history record could not be written")
		return result, err
	}

	if !job.Retention() {
		return result, nil
	}

	logger.WithField("retain_days", job.RetainDays).Info("Sweeping old bundles")

	deleted, err := s.sweeper.Sweep(ctx, job.OutputDir, job.RetainDays, job.Timestamp)
	result.SweptCount = deleted
	if err != nil {
		return result, errors.Wrap(err, "retention")
	}

	return result, nil
}
