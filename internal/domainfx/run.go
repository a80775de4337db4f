package domainfx

import (
	"context"
	"fmt"
	"os"

	"github.com/yurykabanov/logarchiver/pkg/domain"
)

// RunArchiveJob executes the whole invocation synchronously. The tool is
// one-shot: there is nothing to keep alive after the service returns, so the
// job runs during application construction and the error, if any, surfaces
// through the fx application's Err.
func RunArchiveJob(service *domain.ArchiveService, job domain.Job) error {
	result, err := service.Run(context.Background(), job)

	// The bundle may exist even when the run failed afterwards (history
	// write, retention), so report it whenever it was created.
	if result.Bundle.Path != "" {
		fmt.Fprintf(os.Stdout, "Created archive: %s (%s)\n", result.Bundle.Path, result.Bundle.SizeHuman)
		fmt.Fprintf(os.Stdout, "History file: %s\n", result.HistoryPath)
	}

	if err == nil && job.Retention() {
		fmt.Fprintf(os.Stdout, "Old archives deleted: %d\n", result.SweptCount)
	}

	return err
}
