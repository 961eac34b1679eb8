// Package archive walks files stored in zip containers, EPUB books included.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// MatchFunc selects archive entries by name, nil selects everything.
type MatchFunc func(name string) bool

// HasExt selects entries with any of the given extensions, case insensitive.
func HasExt(exts ...string) MatchFunc {
	return func(name string) bool {
		ext := path.Ext(name)
		for _, e := range exts {
			if strings.EqualFold(ext, e) {
				return true
			}
		}
		return false
	}
}

// Walk walks all files in the archive which satisfy match condition in order
// they are stored, calling walkFn for each item. Archives with entries having
// path traversal components ("..") or absolute paths are rejected.
func Walk(archive string, match MatchFunc, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || (match != nil && !match(name)) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadAll calls fn with content of every matching file.
func ReadAll(archive string, match MatchFunc, fn func(name string, data []byte) error) error {
	return Walk(archive, match, func(_ string, f *zip.File) error {
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open %q: %w", f.Name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return fmt.Errorf("unable to read %q: %w", f.Name, err)
		}
		return fn(f.Name, data)
	})
}

// IsArchive reports if file name looks like zip container.
func IsArchive(fname string) bool {
	switch strings.ToLower(path.Ext(fname)) {
	case ".zip", ".epub", ".kepub":
		return true
	}
	return false
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
