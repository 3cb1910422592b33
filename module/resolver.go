package module

import (
	"path/filepath"
	"sync"

	"github.com/koto-lang/koto/value"
)

// FileLoader abstracts the filesystem import resolution needs, so a
// Resolver can be exercised against a virtual filesystem in tests and so
// an embedding host can supply its own storage. Grounded on the
// teacher's Directory/File split (directory.go, file.go), narrowed to
// the two operations resolution actually performs.
type FileLoader interface {
	// Exists reports whether path names a regular, readable file.
	Exists(path string) bool
	// Read returns the contents of the file at path.
	Read(path string) ([]byte, error)
}

// Evaluator runs a module's source text and returns the exports map it
// produced. The compiler/VM that implements this is out of this
// module's scope; Evaluator is the function-call interface it exposes.
type Evaluator func(source []byte, path string) (*value.Map, error)

// TestHook, if set on a Resolver, is invoked after a module is evaluated
// and before it is cached, running the module's @tests block. It is
// skipped unless RunImportTests is enabled.
type TestHook func(exports *value.Map) error

// Resolver resolves import names to module export maps, caching each
// module by its absolute path so that it is evaluated at most once per
// process, per the spec's "imported modules are evaluated once and
// cached by absolute path."
type Resolver struct {
	Loader         FileLoader
	Eval           Evaluator
	Prelude        *value.Map
	RunImportTests bool
	Tests          TestHook

	mu    sync.Mutex
	cache map[string]*value.Map
}

// NewResolver creates a Resolver with an empty module cache.
func NewResolver(loader FileLoader, eval Evaluator, prelude *value.Map) *Resolver {
	return &Resolver{
		Loader:  loader,
		Eval:    eval,
		Prelude: prelude,
		cache:   map[string]*value.Map{},
	}
}

// Resolve looks up name against, in order: currentExports, the prelude,
// the module cache (consulted per candidate path below), a sibling file
// "<dir>/<name>.koto", and a sibling directory "<dir>/<name>/main.koto".
// dir is the directory containing the importing module.
func (r *Resolver) Resolve(name string, currentExports *value.Map, dir string) (*value.Map, error) {
	if currentExports != nil {
		if v, err := currentExports.Get(value.String(name)); err == nil {
			if m, ok := v.(*value.Map); ok {
				return m, nil
			}
		}
	}
	if r.Prelude != nil {
		if v, err := r.Prelude.Get(value.String(name)); err == nil {
			if m, ok := v.(*value.Map); ok {
				return m, nil
			}
		}
	}
	if path := filepath.Join(dir, name+".koto"); r.Loader.Exists(path) {
		return r.loadCached(path)
	}
	if path := filepath.Join(dir, name, "main.koto"); r.Loader.Exists(path) {
		return r.loadCached(path)
	}
	return nil, value.NewError(value.ImportError, "could not resolve module %q", name)
}

// ImportPath resolves a literal import path directly, relative to dir if
// it is not already absolute. Unlike Resolve, it does not consult
// currentExports or the prelude: a literal-path import always names a
// file.
func (r *Resolver) ImportPath(path, dir string) (*value.Map, error) {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(dir, path)
	}
	if !r.Loader.Exists(full) {
		return nil, value.NewError(value.ImportError, "no such module file %q", full)
	}
	return r.loadCached(full)
}

func (r *Resolver) loadCached(path string) (*value.Map, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, value.NewError(value.ImportError, "%s: %v", path, err)
	}

	r.mu.Lock()
	if m, ok := r.cache[abs]; ok {
		r.mu.Unlock()
		return m, nil
	}
	r.mu.Unlock()

	src, err := r.Loader.Read(path)
	if err != nil {
		return nil, value.NewError(value.ImportError, "%s: %v", path, err)
	}
	exports, err := r.Eval(src, path)
	if err != nil {
		return nil, value.NewError(value.ImportError, "%s: %v", path, err)
	}
	if r.RunImportTests && r.Tests != nil {
		if err := r.Tests(exports); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.cache[abs] = exports
	r.mu.Unlock()
	return exports, nil
}

// FromImport binds the selected names from exports into target, per
// "from M import a, b".
func FromImport(exports, target *value.Map, names []string) error {
	for _, name := range names {
		v, err := exports.Get(value.String(name))
		if err != nil {
			return err
		}
		if err := target.Set(value.String(name), v); err != nil {
			return err
		}
	}
	return nil
}
