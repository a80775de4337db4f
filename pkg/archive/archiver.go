package archive

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yurykabanov/logarchiver/pkg/domain"
)

const (
	BundlePrefix = "logs_archive_"
	BundleSuffix = ".tar.gz"

	// BundlePattern matches bundle filenames, for filepath.Match.
	BundlePattern = BundlePrefix + "*" + BundleSuffix
)

// BundleName returns the bundle filename for an invocation timestamp.
func BundleName(timestamp string) string {
	return BundlePrefix + timestamp + BundleSuffix
}

type Archiver struct {
	logger logrus.FieldLogger
}

func New(logger logrus.FieldLogger) *Archiver {
	return &Archiver{
		logger: logger,
	}
}

// Create writes one compressed bundle of sourceDir into outputDir and
// returns its size metadata. Entries are named relative to sourceDir so the
// bundle is relocatable. The output directory subtree and any pre-existing
// `.tar.gz` under the source are excluded; a partial file left by a failed
// run is removed before returning.
func (a *Archiver) Create(sourceDir, outputDir, timestamp string) (domain.Bundle, error) {
	outfile := filepath.Join(outputDir, BundleName(timestamp))

	a.logger.WithFields(logrus.Fields{
		"source_dir": sourceDir,
		"bundle":     outfile,
	}).Debug("Writing bundle")

	err := writeTarGz(outfile, sourceDir, excludeBundles(outputDir))
	if err != nil {
		_ = os.Remove(outfile)

		return domain.Bundle{}, errors.Wrapf(domain.ErrArchiveCreation, "%q: %v", outfile, err)
	}

	fi, err := os.Stat(outfile)
	if err != nil {
		return domain.Bundle{}, errors.Wrapf(domain.ErrArchiveCreation, "%q: %v", outfile, err)
	}

	return domain.Bundle{
		Path:      outfile,
		SizeBytes: fi.Size(),
		SizeHuman: HumanSize(fi.Size()),
	}, nil
}

// excludeBundles is the path filter applied while archiving: it skips the
// output directory itself (when nested under the source, this prevents
// recursive self-archiving) and any prior bundle.
func excludeBundles(outputDir string) Filter {
	return func(path string, info os.FileInfo) bool {
		if info.IsDir() {
			return path != outputDir
		}

		return !strings.HasSuffix(path, BundleSuffix)
	}
}
