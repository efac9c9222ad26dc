package astgen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	udiff "github.com/aymanbagabas/go-udiff"
)

// ErrWrite marks failures to place generated files in the output directory.
var ErrWrite = errors.New("astgen: write failed")

// WriteFiles replaces the files in dir all-or-nothing: every file is staged
// in a temporary file first and nothing is renamed unless all staging writes
// succeeded.
func WriteFiles(dir string, files map[string][]byte) error {
	if dir == "" {
		return fmt.Errorf("%w: empty output dir", ErrWrite)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create output dir: %w", ErrWrite, err)
	}
	names := SortedNames(files)
	staged := make(map[string]string, len(names))
	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}
	for _, name := range names {
		tmp, err := stage(dir, name, files[name])
		if err != nil {
			cleanup()
			return fmt.Errorf("%w: %s: %w", ErrWrite, name, err)
		}
		staged[name] = tmp
	}
	for _, name := range names {
		if err := os.Rename(staged[name], filepath.Join(dir, name)); err != nil {
			cleanup()
			return fmt.Errorf("%w: %s: %w", ErrWrite, name, err)
		}
		delete(staged, name)
	}
	return nil
}

func stage(dir, name string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return "", err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}

// Check compares files with the contents of dir and returns a unified diff
// for every file that is missing or stale. An empty result means dir is up
// to date.
func Check(dir string, files map[string][]byte) ([]string, error) {
	var diffs []string
	for _, name := range SortedNames(files) {
		path := filepath.Join(dir, name)
		current, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("astgen: read %s: %w", path, err)
		}
		if bytes.Equal(current, files[name]) {
			continue
		}
		diffs = append(diffs, udiff.Unified(path, path+" (generated)", string(current), string(files[name])))
	}
	return diffs, nil
}
