package archive

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
)

// Filter reports whether an entry should be included in the bundle.
// Excluding a directory prunes its whole subtree.
type Filter func(path string, info os.FileInfo) bool

func writeTarGz(outfile, dir string, include Filter) error {
	f, err := os.Create(outfile)
	if err != nil {
		return err
	}

	gzw := gzip.NewWriter(f)
	tw := tar.NewWriter(gzw)

	err = addEntries(tw, dir, dir, include)
	if err != nil {
		f.Close()
		return err
	}

	err = tw.Close()
	if err != nil {
		f.Close()
		return err
	}

	err = gzw.Close()
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// addEntries walks basePath recursively, writing every included entry with
// a name relative to root.
func addEntries(tw *tar.Writer, root, basePath string, include Filter) error {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		full := filepath.Join(basePath, entry.Name())

		info, err := entry.Info()
		if err != nil {
			return err
		}

		if !include(full, info) {
			continue
		}

		rel, err := filepath.Rel(root, full)
		if err != nil {
			return err
		}

		if info.IsDir() {
			hdr, err := tar.FileInfoHeader(info, "")
			if err != nil {
				return err
			}
			hdr.Name = filepath.ToSlash(rel) + "/"

			err = tw.WriteHeader(hdr)
			if err != nil {
				return err
			}

			err = addEntries(tw, root, full, include)
			if err != nil {
				return err
			}

			continue
		}

		// Symlinks, sockets etc. have no useful representation in a
		// relocatable log bundle.
		if !info.Mode().IsRegular() {
			continue
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)

		err = tw.WriteHeader(hdr)
		if err != nil {
			return err
		}

		src, err := os.Open(full)
		if err != nil {
			return err
		}

		_, err = io.Copy(tw, src)
		if err != nil {
			src.Close()
			return err
		}

		err = src.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
