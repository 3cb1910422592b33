package module_test

import (
	"path/filepath"
	"testing"

	"github.com/koto-lang/koto/module"
	"github.com/koto-lang/koto/value"
)

// TestResolveFromCurrentExports tests that a name already bound in the
// importing module's own exports wins before anything touches disk.
func TestResolveFromCurrentExports(t *testing.T) {
	r := module.NewResolver(newMemFS(nil), evalCountingExports(new(int)), nil)
	nested := value.NewMap()
	current := value.NewMap()
	if err := current.Set(value.String("geometry"), nested); err != nil {
		t.Fatal(err)
	}
	got, err := r.Resolve("geometry", current, "/proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nested {
		t.Error("did not return the map bound in currentExports")
	}
}

// TestResolveFromPrelude tests that a name falls through to the runtime
// prelude when it isn't already present in currentExports.
func TestResolveFromPrelude(t *testing.T) {
	prelude := value.NewMap()
	iterMod := value.NewMap()
	if err := prelude.Set(value.String("iterator"), iterMod); err != nil {
		t.Fatal(err)
	}
	r := module.NewResolver(newMemFS(nil), evalCountingExports(new(int)), prelude)
	got, err := r.Resolve("iterator", value.NewMap(), "/proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != iterMod {
		t.Error("did not return the prelude's map")
	}
}

// TestResolveSiblingFile tests resolution against a sibling "<name>.koto"
// file when neither currentExports nor the prelude has the name.
func TestResolveSiblingFile(t *testing.T) {
	calls := 0
	abs, err := filepath.Abs("/proj/helpers.koto")
	if err != nil {
		t.Fatal(err)
	}
	fs := newMemFS(map[string]string{abs: "export foo = 1"})
	r := module.NewResolver(fs, evalCountingExports(&calls), nil)

	got, err := r.Resolve("helpers", value.NewMap(), "/proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := got.Get(value.String("loaded"))
	if err != nil || loaded != value.Bool(true) {
		t.Errorf("resolved module missing expected export: %v, %v", loaded, err)
	}
	if calls != 1 {
		t.Errorf("evaluator called %d times, want 1", calls)
	}
}

// TestResolveSiblingDirectory tests resolution against a sibling
// "<name>/main.koto" when no "<name>.koto" file exists.
func TestResolveSiblingDirectory(t *testing.T) {
	abs, err := filepath.Abs("/proj/pkg/main.koto")
	if err != nil {
		t.Fatal(err)
	}
	fs := newMemFS(map[string]string{abs: "export bar = 2"})
	r := module.NewResolver(fs, evalCountingExports(new(int)), nil)

	got, err := r.Resolve("pkg", value.NewMap(), "/proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := got.Get(value.String("loaded")); err != nil {
		t.Errorf("resolved module missing expected export: %v", err)
	}
}

// TestResolveNotFound tests that Resolve reports ImportError when no
// candidate resolves.
func TestResolveNotFound(t *testing.T) {
	r := module.NewResolver(newMemFS(nil), evalCountingExports(new(int)), nil)
	_, err := r.Resolve("nowhere", value.NewMap(), "/proj")
	if _, ok := value.AsError(err, value.ImportError); !ok {
		t.Errorf("got %v, want an ImportError", err)
	}
}

// TestResolveCachesByAbsolutePath tests that importing the same module
// several times, twice by name through Resolve and once by literal path
// through ImportPath, evaluates it only once.
func TestResolveCachesByAbsolutePath(t *testing.T) {
	calls := 0
	abs, err := filepath.Abs("/proj/helpers.koto")
	if err != nil {
		t.Fatal(err)
	}
	fs := newMemFS(map[string]string{abs: "export foo = 1"})
	r := module.NewResolver(fs, evalCountingExports(&calls), nil)

	if _, err := r.Resolve("helpers", value.NewMap(), "/proj"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Resolve("helpers", value.NewMap(), "/proj"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.ImportPath("/proj/helpers.koto", "/proj"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("evaluator called %d times, want 1", calls)
	}
}

// TestImportPathRelative tests that ImportPath resolves a literal
// relative path against dir without consulting currentExports or the
// prelude.
func TestImportPathRelative(t *testing.T) {
	abs, err := filepath.Abs("/proj/lib/util.koto")
	if err != nil {
		t.Fatal(err)
	}
	fs := newMemFS(map[string]string{abs: "export baz = 3"})
	r := module.NewResolver(fs, evalCountingExports(new(int)), nil)

	got, err := r.ImportPath("lib/util.koto", "/proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := got.Get(value.String("loaded")); err != nil {
		t.Errorf("resolved module missing expected export: %v", err)
	}
}

// TestImportTestsHookRuns tests that RunImportTests causes the Tests
// hook to run against the freshly evaluated exports before caching, and
// that a failing hook prevents the module from being usable.
func TestImportTestsHookRuns(t *testing.T) {
	abs, err := filepath.Abs("/proj/broken.koto")
	if err != nil {
		t.Fatal(err)
	}
	fs := newMemFS(map[string]string{abs: "export x = 1"})
	boom := value.NewError(value.AssertionError, "import-time test failed")
	r := module.NewResolver(fs, evalCountingExports(new(int)), nil)
	r.RunImportTests = true
	r.Tests = func(exports *value.Map) error {
		return boom
	}

	_, err = r.Resolve("broken", value.NewMap(), "/proj")
	if err != boom {
		t.Errorf("got %v, want %v", err, boom)
	}
}

// TestFromImport tests that FromImport copies only the named bindings
// into the target map.
func TestFromImport(t *testing.T) {
	exports := value.NewMap()
	if err := exports.Set(value.String("a"), value.Number(1)); err != nil {
		t.Fatal(err)
	}
	if err := exports.Set(value.String("b"), value.Number(2)); err != nil {
		t.Fatal(err)
	}
	if err := exports.Set(value.String("c"), value.Number(3)); err != nil {
		t.Fatal(err)
	}
	target := value.NewMap()
	if err := module.FromImport(exports, target, []string{"a", "c"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := target.Get(value.String("b")); err == nil {
		t.Error("FromImport copied a name that was not requested")
	}
	v, err := target.Get(value.String("a"))
	if err != nil || v != value.Number(1) {
		t.Errorf("target.a = %v, %v, want 1, nil", v, err)
	}
}

// TestFromImportMissingName tests that FromImport reports the
// underlying KeyError when a requested name isn't present in exports.
func TestFromImportMissingName(t *testing.T) {
	exports := value.NewMap()
	target := value.NewMap()
	err := module.FromImport(exports, target, []string{"nope"})
	if _, ok := value.AsError(err, value.KeyError); !ok {
		t.Errorf("got %v, want a KeyError", err)
	}
}
