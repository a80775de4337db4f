package retention

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yurykabanov/logarchiver/pkg/appcontext"
	"github.com/yurykabanov/logarchiver/pkg/archive"
)

type historyLog interface {
	AppendDeletion(timestamp, filePath string, retainDays int) error
}

// Sweeper deletes bundles whose modification time is older than the
// retention window and records every deletion in the history log.
type Sweeper struct {
	logger  logrus.FieldLogger
	history historyLog

	now func() time.Time
}

func New(logger logrus.FieldLogger, history historyLog) *Sweeper {
	return &Sweeper{
		logger:  logger,
		history: history,
		now:     time.Now,
	}
}

// Sweep scans the direct children of outputDir for bundle files older than
// retainDays whole days and removes them. A bundle exactly retainDays old is
// kept; the threshold is strictly-greater in day granularity, matching
// `find -mtime +N`. Failures are per-file: the sweep always visits every
// candidate and reports how many could not be deleted or recorded.
func (s *Sweeper) Sweep(ctx context.Context, outputDir string, retainDays int, timestamp string) (int, error) {
	logger := appcontext.LoggerFromContext(s.logger, ctx)

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to scan %q", outputDir)
	}

	now := s.now()

	var deleted, failed int

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if ok, _ := filepath.Match(archive.BundlePattern, entry.Name()); !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Already gone, likely a concurrent sweep.
			continue
		}

		if ageInDays(now, info.ModTime()) <= retainDays {
			continue
		}

		full := filepath.Join(outputDir, entry.Name())

		err = os.Remove(full)
		if err != nil {
			logger.WithError(err).WithField("file", full).Error("Unable to delete old bundle")
			failed++
			continue
		}

		deleted++
		logger.WithField("file", full).Info("Deleted old bundle")

		err = s.history.AppendDeletion(timestamp, full, retainDays)
		if err != nil {
			logger.WithError(err).WithField("file", full).Error("Unable to record bundle deletion")
			failed++
		}
	}

	if failed > 0 {
		return deleted, errors.Errorf("retention sweep finished with %d failure(s)", failed)
	}

	return deleted, nil
}

func ageInDays(now, mtime time.Time) int {
	return int(now.Sub(mtime).Hours() / 24)
}
