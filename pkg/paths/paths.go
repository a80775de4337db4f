package paths

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yurykabanov/logarchiver/pkg/domain"
)

// DefaultOutputDirName is appended to the source directory when no explicit
// output directory is given.
const DefaultOutputDirName = "archives"

type Resolver struct {
	logger logrus.FieldLogger
}

func New(logger logrus.FieldLogger) *Resolver {
	return &Resolver{
		logger: logger,
	}
}

type Paths struct {
	SourceDir string
	OutputDir string
}

// Resolve validates the source directory, canonicalizes both directories to
// absolute symlink-free paths and creates the output directory if missing.
// Canonical paths are required so that the archiver's exclusion filter and
// relative entry naming behave the same regardless of the caller's working
// directory.
func (r *Resolver) Resolve(source, output string) (Paths, error) {
	fi, err := os.Stat(source)
	if err != nil || !fi.IsDir() {
		return Paths{}, errors.Wrapf(domain.ErrInvalidSourcePath, "%q", source)
	}

	source, err = canonicalize(source)
	if err != nil {
		return Paths{}, errors.Wrapf(domain.ErrInvalidSourcePath, "%q: %v", source, err)
	}

	if output == "" {
		output = filepath.Join(source, DefaultOutputDirName)
	}

	err = os.MkdirAll(output, os.ModeDir|os.ModePerm)
	if err != nil {
		return Paths{}, errors.Wrapf(domain.ErrOutputDirUnwritable, "%q: %v", output, err)
	}

	output, err = canonicalize(output)
	if err != nil {
		return Paths{}, errors.Wrapf(domain.ErrOutputDirUnwritable, "%q: %v", output, err)
	}

	r.logger.WithFields(logrus.Fields{
		"source_dir": source,
		"output_dir": output,
	}).Debug("Resolved working directories")

	return Paths{SourceDir: source, OutputDir: output}, nil
}

func canonicalize(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}
