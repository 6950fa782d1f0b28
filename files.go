package m2h

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ReadSource reads the whole Markdown file at path.
//
// A missing path yields an error matching ErrInputNotFound; any other
// failure matches ErrInputUnreadable.
func ReadSource(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrInputNotFound, "%s", path)
		}
		return nil, errors.Wrapf(ErrInputUnreadable, "%s: %v", path, err)
	}
	if info.IsDir() {
		return nil, errors.Wrapf(ErrInputUnreadable, "%s: is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrInputUnreadable, "%s: %v", path, err)
	}
	return data, nil
}

// Written describes one artifact persisted by WriteArtifacts.
type Written struct {
	Type ContentType
	Path string
	Size int
}

// WriteArtifacts writes the page to outputPath and every other artifact
// next to it under its own file name, creating the page's parent
// directories when needed.
//
// Artifacts are written in order and earlier files are left in place when a
// later write fails. The returned error is an *OutputError naming the path.
func WriteArtifacts(outputPath string, contents []Content) ([]Written, error) {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &OutputError{Path: dir, Err: err}
	}

	written := make([]Written, 0, len(contents))
	for _, c := range contents {
		path := outputPath
		if name := c.GetFileName(); name != "" {
			path = filepath.Join(dir, name)
		}
		data := c.GetData()
		if err := os.WriteFile(path, data, 0o644); err != nil {
			Logger.Printf("write %s failed: %v", path, err)
			return written, &OutputError{Path: path, Err: err}
		}
		written = append(written, Written{
			Type: c.GetContentType(),
			Path: path,
			Size: len(data),
		})
	}
	return written, nil
}
