package module_test

import (
	"path/filepath"

	"github.com/koto-lang/koto/value"
)

// memFS is a minimal in-memory FileLoader used across this package's
// tests, mirroring the spirit of the teacher's Directory/File pair
// without touching a real filesystem.
type memFS struct {
	files map[string]string
}

func newMemFS(files map[string]string) *memFS {
	return &memFS{files: files}
}

func (f *memFS) Exists(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	_, ok := f.files[abs]
	return ok
}

func (f *memFS) Read(path string) ([]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	src, ok := f.files[abs]
	if !ok {
		return nil, value.NewError(value.ImportError, "no such file %q", path)
	}
	return []byte(src), nil
}

// evalCountingExports is an Evaluator that returns a fresh exports map
// containing "loaded" -> true and "source" -> the raw source text, and
// counts how many times it has been called so tests can assert
// once-only evaluation.
func evalCountingExports(calls *int) func(source []byte, path string) (*value.Map, error) {
	return func(source []byte, path string) (*value.Map, error) {
		*calls++
		m := value.NewMap()
		if err := m.Set(value.String("loaded"), value.Bool(true)); err != nil {
			return nil, err
		}
		if err := m.Set(value.String("source"), value.String(string(source))); err != nil {
			return nil, err
		}
		return m, nil
	}
}
