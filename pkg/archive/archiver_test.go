package archive

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard

	return logger
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// readBundle extracts entry names (and contents for regular files) from a
// bundle on disk.
func readBundle(t *testing.T, path string) map[string]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	gzr, err := gzip.NewReader(f)
	require.NoError(t, err)

	tr := tar.NewReader(gzr)

	entries := map[string]string{}

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		var content []byte
		if hdr.Typeflag == tar.TypeReg {
			content, err = io.ReadAll(tr)
			require.NoError(t, err)
		}

		entries[hdr.Name] = string(content)
	}

	return entries
}

func TestArchiver_Create(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(src, "archives")
	require.NoError(t, os.MkdirAll(out, 0755))

	writeFile(t, filepath.Join(src, "a.log"), "aaaaaaaaaa")
	writeFile(t, filepath.Join(src, "b.log"), "bbbbbbbbbbbbbbbbbbbb")
	writeFile(t, filepath.Join(src, "sub", "c.log"), "c")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0755))

	// Must never be re-archived: a prior bundle in the source root and
	// whatever already lives in the output directory.
	writeFile(t, filepath.Join(src, "old.tar.gz"), "old")
	writeFile(t, filepath.Join(out, "logs_archive_20240101_000000.tar.gz"), "older")

	bundle, err := New(discardLogger()).Create(src, out, "20240102_030405")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "logs_archive_20240102_030405.tar.gz"), bundle.Path)
	assert.FileExists(t, bundle.Path)
	assert.Greater(t, bundle.SizeBytes, int64(0))
	assert.Equal(t, HumanSize(bundle.SizeBytes), bundle.SizeHuman)

	entries := readBundle(t, bundle.Path)

	// Entry names are relative to the source directory, never absolute.
	for name := range entries {
		assert.False(t, filepath.IsAbs(name), "entry %q must be relative", name)
	}

	assert.Equal(t, "aaaaaaaaaa", entries["a.log"])
	assert.Equal(t, "bbbbbbbbbbbbbbbbbbbb", entries["b.log"])
	assert.Equal(t, "c", entries["sub/c.log"])
	assert.Contains(t, entries, "sub/")
	assert.Contains(t, entries, "empty/")

	assert.NotContains(t, entries, "old.tar.gz")
	assert.NotContains(t, entries, "archives/")
	for name := range entries {
		assert.NotContains(t, name, "archives", "output directory must not be archived")
	}
}

func TestArchiver_Create_OutputOutsideSource(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	writeFile(t, filepath.Join(src, "a.log"), "a")

	bundle, err := New(discardLogger()).Create(src, out, "20240102_030405")

	require.NoError(t, err)

	entries := readBundle(t, bundle.Path)
	assert.Equal(t, "a", entries["a.log"])
	assert.Len(t, entries, 1)
}

func TestArchiver_Create_SourceUnreadable(t *testing.T) {
	out := t.TempDir()

	bundle, err := New(discardLogger()).Create(filepath.Join(out, "does_not_exist"), out, "20240102_030405")

	assert.Error(t, err)
	assert.Equal(t, "", bundle.Path)

	// No partial bundle file may be left behind.
	assert.NoFileExists(t, filepath.Join(out, "logs_archive_20240102_030405.tar.gz"))
}

func TestBundleName(t *testing.T) {
	name := BundleName("20240102_030405")

	assert.Equal(t, "logs_archive_20240102_030405.tar.gz", name)

	ok, err := filepath.Match(BundlePattern, name)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		in       int64
		expected string
	}{
		{0, "0"},
		{10, "10"},
		{1023, "1023"},
		{1024, "1.0K"},
		{1536, "1.5K"},
		{4096, "4.0K"},
		{10 * 1024, "10K"},
		{15 * 1024, "15K"},
		{1024 * 1024, "1.0M"},
		{1228800, "1.2M"},
		{10 * 1024 * 1024, "10M"},
		{3 * 1024 * 1024 * 1024 / 2, "1.5G"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HumanSize(tt.in), "HumanSize(%d)", tt.in)
	}
}
