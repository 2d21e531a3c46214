package stage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrUnsupportedEntry is returned for anything inside a mirrored tree that
// is neither a directory nor a regular file (symlinks, devices, sockets,
// pipes).
var ErrUnsupportedEntry = errors.New("unsupported directory entry")

// CopyDir mirrors the tree at src into dst. Missing destination directories
// are created, existing ones are reused, existing files are overwritten.
// The first failure aborts the walk; whatever was written before it stays
// on disk.
func CopyDir(src, dst string) error {
	stat, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !stat.IsDir() {
		return fmt.Errorf("path '%s' points to a file instead of a directory", src)
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, e := range entries {
		srcFN := filepath.Join(src, e.Name())
		dstFN := filepath.Join(dst, e.Name())

		switch t := e.Type(); {
		case t.IsDir():
			err = CopyDir(srcFN, dstFN)
		case t.IsRegular():
			err = CopyFile(srcFN, dstFN)
		default:
			err = fmt.Errorf("%s (%s): %w", srcFN, t.Type(), ErrUnsupportedEntry)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// CopyFile copies src to dst byte-for-byte, truncating dst if it exists.
// The permission bits of src are carried over. A read-only dst left by an
// earlier copy is replaced.
func CopyFile(src, dst string) (err error) {
	stat, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !stat.Mode().IsRegular() {
		return fmt.Errorf("path '%s' is not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := openDst(dst, stat.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return os.Chmod(dst, stat.Mode().Perm())
}

func openDst(dst string, perm os.FileMode) (*os.File, error) {
	const flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	out, err := os.OpenFile(dst, flags, perm)
	if err == nil || !os.IsPermission(err) {
		return out, err
	}
	if stat, serr := os.Lstat(dst); serr != nil || !stat.Mode().IsRegular() {
		return nil, err
	}
	if rerr := os.Remove(dst); rerr != nil {
		return nil, err
	}
	return os.OpenFile(dst, flags, perm)
}
