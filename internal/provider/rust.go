package provider

import (
	"os"
	"path/filepath"
	"strings"
)

type rustProvider struct {
	noContentMatch
}

func (*rustProvider) Name() string {
	return "rust"
}

func (*rustProvider) Config(string) map[string]any {
	return map[string]any{
		"name":          "Rust: Debug Binary",
		"type":          "lldb",
		"request":       "launch",
		"program":       "${workspaceFolder}/target/debug/${workspaceFolderBasename}",
		"args":          []any{},
		"cwd":           "${workspaceFolder}",
		"preLaunchTask": "cargo build",
	}
}

func (*rustProvider) MatchesFile(path string) bool {
	if filepath.Ext(path) == ".rs" {
		return true
	}

	return filepath.Base(path) == "Cargo.toml"
}

type rustLibProvider struct{}

func (*rustLibProvider) Name() string {
	return "rust-lib"
}

func (*rustLibProvider) Config(string) map[string]any {
	return map[string]any{
		"name":    "Rust: Debug Library",
		"type":    "lldb",
		"request": "launch",
		"cargo": map[string]any{
			"args": []any{
				"build",
				"--lib",
			},
		},
		"args": []any{},
		"cwd":  "${workspaceFolder}",
	}
}

// MatchesFile peeks inside a Cargo manifest to decide whether this looks like
// a library project. A manifest that cannot be read is no evidence.
func (*rustLibProvider) MatchesFile(path string) bool {
	if filepath.Base(path) == "Cargo.toml" {
		if content, err := os.ReadFile(path); err == nil {
			return isLibraryManifest(string(content))
		}
	}

	return filepath.Base(path) == "lib.rs"
}

func (*rustLibProvider) MatchesContent(filename, content string) bool {
	return filename == "Cargo.toml" && isLibraryManifest(content)
}

// isLibraryManifest treats a manifest as library-shaped when it declares a
// [lib] section or declares no binary target at all.
func isLibraryManifest(content string) bool {
	return strings.Contains(content, "[lib]") || !strings.Contains(content, "[[bin]]")
}

type rustTestProvider struct{}

func (*rustTestProvider) Name() string {
	return "rust-test"
}

func (*rustTestProvider) Config(string) map[string]any {
	return map[string]any{
		"name":    "Rust: Debug Tests",
		"type":    "lldb",
		"request": "launch",
		"cargo": map[string]any{
			"args": []any{
				"test",
				"--no-run",
			},
		},
		"args": []any{},
		"cwd":  "${workspaceFolder}",
	}
}

func (*rustTestProvider) MatchesFile(path string) bool {
	if filepath.Ext(path) != ".rs" {
		return false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	return hasTestMarker(string(content))
}

func (*rustTestProvider) MatchesContent(filename, content string) bool {
	return strings.HasSuffix(filename, ".rs") && hasTestMarker(content)
}

func hasTestMarker(content string) bool {
	return strings.Contains(content, "#[test]") || strings.Contains(content, "mod test")
}

type rustAllProvider struct {
	noContentMatch
}

func (*rustAllProvider) Name() string {
	return "rust-all"
}

func (*rustAllProvider) Config(string) map[string]any {
	return map[string]any{
		"configurations": []any{
			(&rustProvider{}).Config(""),
			(&rustLibProvider{}).Config(""),
			(&rustTestProvider{}).Config(""),
		},
	}
}

func (*rustAllProvider) MatchesFile(path string) bool {
	if filepath.Ext(path) == ".rs" {
		return true
	}

	return filepath.Base(path) == "Cargo.toml"
}
