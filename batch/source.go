package batch

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Source is one input to classify. Its content is loaded by the worker
// that processes it.
type Source struct {
	Name string
	load func() ([]byte, error)
}

func NewSource(name string, load func() ([]byte, error)) Source {
	return Source{Name: name, load: load}
}

func FileSource(path string) Source {
	return NewSource(path, func() ([]byte, error) {
		return os.ReadFile(path)
	})
}

func BytesSource(name string, data []byte) Source {
	return NewSource(name, func() ([]byte, error) {
		return data, nil
	})
}

func (s Source) Load() ([]byte, error) {
	return s.load()
}

// Collect lists the sources under path: every matching file of a
// directory tree, every matching entry of a zip archive, or path itself.
// An empty extension list matches every file.
func Collect(path string, extensions []string) ([]Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.IsDir() {
		return collectDirectory(path, extensions)
	}
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return collectZip(path, extensions)
	}
	return []Source{FileSource(path)}, nil
}

func matches(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(name)))
}

func collectDirectory(root string, extensions []string) ([]Source, error) {
	var sources []Source
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", p, err)
		}
		if !d.IsDir() && matches(p, extensions) {
			sources = append(sources, FileSource(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sources, nil
}

func collectZip(path string, extensions []string) ([]Source, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	var sources []Source
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !matches(f.Name, extensions) {
			continue
		}
		name := f.Name
		sources = append(sources, NewSource(path+"!"+name, func() ([]byte, error) {
			return readZipEntry(path, name)
		}))
	}
	return sources, nil
}

func readZipEntry(path, name string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	rc, err := r.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
