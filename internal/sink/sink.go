// Package sink writes output artifacts. A file is replaced in one rename, so
// readers see either the previous content or the complete new content.
package sink

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/geoknoesis/smt3-rdf/rdf"
)

const (
	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// EnsureDir creates dir and its parents when missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return &rdf.IOError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// WriteFile creates or truncates path with the bytes fn writes. fn writes to
// a buffered temp file in the same directory, which is flushed, synced,
// closed and renamed over path. On any failure the temp file is removed and
// path is left untouched.
func WriteFile(path string, fn func(io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return &rdf.IOError{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return &rdf.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Chmod(fileMode); err != nil {
		return &rdf.IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &rdf.IOError{Op: "sync", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &rdf.IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &rdf.IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// WriteString writes s to path.
func WriteString(path, s string) error {
	return WriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

// WriteQuads serializes quads to path in format.
func WriteQuads(ctx context.Context, path string, format rdf.Format, quads []rdf.Quad, opts ...rdf.Option) error {
	return WriteFile(path, func(w io.Writer) error {
		return rdf.Serialize(ctx, w, format, quads, opts...)
	})
}
