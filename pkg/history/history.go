package history

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/yurykabanov/logarchiver/pkg/domain"
)

// DefaultFileName is the history file kept next to the bundles.
const DefaultFileName = "archive_history.log"

// RecordDelimiter terminates every record block.
const RecordDelimiter = "----"

// Log is an append-only record store for archive creations and deletions.
// Records are fixed key=value lines terminated by a delimiter line, so the
// file stays greppable without a structured parser. The log is never
// rewritten or compacted: deletion of a bundle does not remove the records
// describing it.
type Log struct {
	path string
}

func New(path string) *Log {
	return &Log{
		path: path,
	}
}

func (l *Log) Path() string {
	return l.path
}

// AppendCreation records one successful bundle creation.
func (l *Log) AppendCreation(timestamp, sourceDir, archivePath string, sizeBytes int64, sizeHuman string) error {
	return l.append(
		"timestamp="+timestamp,
		"source="+sourceDir,
		"archive="+archivePath,
		fmt.Sprintf("size_bytes=%d", sizeBytes),
		"size_human="+sizeHuman,
	)
}

// AppendDeletion records one bundle removed by the retention sweep. The
// timestamp is the invocation's, not the deleted file's.
func (l *Log) AppendDeletion(timestamp, filePath string, retainDays int) error {
	return l.append(
		"timestamp="+timestamp,
		"action=delete_old_archive",
		"file="+filePath,
		fmt.Sprintf("retain_days=%d", retainDays),
	)
}

// append writes one record block with a single Write call, which keeps the
// block contiguous even if another invocation appends concurrently.
func (l *Log) append(lines ...string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(domain.ErrHistoryWrite, "%q: %v", l.path, err)
	}

	block := strings.Join(append(lines, RecordDelimiter), "\n") + "\n"

	_, err = f.WriteString(block)
	if err != nil {
		f.Close()
		return errors.Wrapf(domain.ErrHistoryWrite, "%q: %v", l.path, err)
	}

	err = f.Close()
	if err != nil {
		return errors.Wrapf(domain.ErrHistoryWrite, "%q: %v", l.path, err)
	}

	return nil
}
