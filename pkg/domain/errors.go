package domain

import "github.com/pkg/errors"

var (
	// ErrUsage covers malformed command lines: missing source directory,
	// negative retention etc. The caller is expected to print usage.
	ErrUsage = errors.New("invalid usage")

	ErrInvalidSourcePath   = errors.New("source path does not exist or is not a directory")
	ErrOutputDirUnwritable = errors.New("unable to create output directory")
	ErrArchiveCreation     = errors.New("unable to create archive")

	// ErrHistoryWrite is reported after the bundle has already been written:
	// the run is partially successful and the bundle is kept.
	ErrHistoryWrite = errors.New("unable to append history record")
)
