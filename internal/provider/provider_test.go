package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()

	require.Equal(t, []string{
		"python",
		"python-module",
		"flask",
		"fastapi",
		"javascript",
		"node",
		"typescript",
		"rust",
		"rust-lib",
		"rust-test",
		"rust-all",
		"cpp-gdb",
		"cpp-lldb",
	}, reg.Names())
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()

	p, ok := reg.Lookup("flask")
	require.True(t, ok)
	require.Equal(t, "flask", p.Name())

	_, ok = reg.Lookup("cobol")
	require.False(t, ok)
}

type fakeProvider struct {
	noContentMatch
	name string
}

func (f *fakeProvider) Name() string                 { return f.name }
func (f *fakeProvider) Config(string) map[string]any { return map[string]any{"name": f.name} }
func (f *fakeProvider) MatchesFile(string) bool      { return false }

func TestRegistryDuplicateNamePanics(t *testing.T) {
	require.Panics(t, func() {
		newRegistry([]Provider{&fakeProvider{name: "dup"}, &fakeProvider{name: "dup"}})
	})
}

func TestConfigShape(t *testing.T) {
	for _, p := range NewRegistry().All() {
		t.Run(p.Name(), func(t *testing.T) {
			cfg := p.Config("")

			// rust-all is the one synthesized document: it nests the three
			// rust entries instead of being a single configuration.
			if p.Name() == "rust-all" {
				nested, ok := cfg["configurations"].([]any)
				require.True(t, ok)
				require.Len(t, nested, 3)
				for _, entry := range nested {
					m, ok := entry.(map[string]any)
					require.True(t, ok)
					require.Contains(t, m, "name")
					require.Equal(t, "launch", m["request"])
				}
				return
			}

			require.Contains(t, cfg, "name")
			require.Contains(t, cfg, "type")
			require.Equal(t, "launch", cfg["request"])
		})
	}
}

func TestPythonModuleConfig(t *testing.T) {
	p := &pythonModuleProvider{}

	cfg := p.Config("")
	require.Equal(t, "app", cfg["module"])
	require.Equal(t, "Python: Module app", cfg["name"])

	cfg = p.Config("mypkg")
	require.Equal(t, "mypkg", cfg["module"])
	require.Equal(t, "Python: Module mypkg", cfg["name"])
}

func TestMatchesFile(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"main.py", []string{"python"}},
		{"src/index.js", []string{"javascript"}},
		{"src/index.ts", []string{"typescript"}},
		{"tsconfig.json", []string{"typescript"}},
		{"package.json", []string{"node"}},
		{"main.cpp", []string{"cpp-gdb", "cpp-lldb"}},
		{"include/util.hpp", []string{"cpp-gdb", "cpp-lldb"}},
		{"CMakeLists.txt", []string{"cpp-gdb", "cpp-lldb"}},
		{"Makefile", []string{"cpp-gdb", "cpp-lldb"}},
		{"src/lib.rs", []string{"rust", "rust-lib", "rust-all"}},
		{"README.md", nil},
	}

	reg := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var got []string
			for _, p := range reg.All() {
				if p.MatchesFile(tt.path) {
					got = append(got, p.Name())
				}
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRustLibMatchesFile(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "Cargo.toml")
	p := &rustLibProvider{}

	require.NoError(t, os.WriteFile(manifest,
		[]byte("[package]\nname = \"demo\"\n\n[[bin]]\nname = \"demo\"\n"), 0o644))
	require.False(t, p.MatchesFile(manifest))

	require.NoError(t, os.WriteFile(manifest,
		[]byte("[package]\nname = \"demo\"\n\n[lib]\n"), 0o644))
	require.True(t, p.MatchesFile(manifest))

	// No binary section at all also reads as a library.
	require.NoError(t, os.WriteFile(manifest,
		[]byte("[package]\nname = \"demo\"\n"), 0o644))
	require.True(t, p.MatchesFile(manifest))

	// An unreadable manifest is no evidence.
	require.False(t, p.MatchesFile(filepath.Join(dir, "missing", "Cargo.toml")))
}

func TestRustTestMatchesFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "lib.rs")
	p := &rustTestProvider{}

	require.NoError(t, os.WriteFile(source,
		[]byte("pub fn add(a: i32, b: i32) -> i32 { a + b }\n\n#[test]\nfn adds() {}\n"), 0o644))
	require.True(t, p.MatchesFile(source))

	require.NoError(t, os.WriteFile(source, []byte("pub fn add() {}\n"), 0o644))
	require.False(t, p.MatchesFile(source))

	require.False(t, p.MatchesFile(filepath.Join(dir, "missing.rs")))
}

func TestMatchesContent(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		filename string
		content  string
		want     bool
	}{
		{"flask dep", "flask", "requirements.txt", "flask==2.3.0\n", true},
		{"flask wrong file", "flask", "Pipfile", "flask\n", false},
		{"fastapi dep", "fastapi", "requirements.txt", "fastapi\nuvicorn\n", true},
		{"django module", "python-module", "requirements.txt", "django>=4\n", true},
		{"pytest module", "python-module", "requirements.txt", "pytest\n", true},
		{"no module markers", "python-module", "requirements.txt", "requests\n", false},
		{"library manifest", "rust-lib", "Cargo.toml", "[package]\n[lib]\n", true},
		{"binary manifest", "rust-lib", "Cargo.toml", "[package]\n[[bin]]\nname = \"x\"\n", false},
		{"test marker", "rust-test", "main.rs", "#[test]\nfn t() {}\n", true},
		{"file-only provider", "python", "requirements.txt", "anything", false},
	}

	reg := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := reg.Lookup(tt.provider)
			require.True(t, ok)
			require.Equal(t, tt.want, p.MatchesContent(tt.filename, tt.content))
		})
	}
}
