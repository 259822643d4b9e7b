// Package fileutil writes files so readers never observe a partial write.
package fileutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/vssetup/internal/errors"
)

// WriteAtomic streams the output of write into a temporary file next to
// path and renames it over path once write, fsync and close succeed. On
// any failure path is left untouched and the temporary file is removed.
// The directory of path must exist.
func WriteAtomic(path string, perm os.FileMode, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	renamed := false
	defer func() {
		if !renamed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err := write(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	renamed = true
	return nil
}

// AtomicWriteFile writes data to path with WriteAtomic.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	return WriteAtomic(path, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return errors.Wrap(err, "writing temp file")
	})
}

// AtomicWriteYAML encodes v as two-space indented YAML into path with 0644
// permissions.
func AtomicWriteYAML(path string, v any) error {
	return WriteAtomic(path, 0o644, func(w io.Writer) (err error) {
		// The encoder panics on values it cannot represent, such as funcs.
		defer func() {
			if r := recover(); r != nil {
				err = errors.Newf("marshaling YAML: %v", r)
			}
		}()
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "marshaling YAML")
		}
		return errors.Wrap(enc.Close(), "marshaling YAML")
	})
}
