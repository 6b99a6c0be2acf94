// Package appdetect infers which language and framework ecosystems are
// present in a project tree.
//
// Detection is a shallow, best-effort scan: one bounded-depth walk collects
// file-extension evidence, well-known manifest files and per-provider file
// matches, then a handful of content heuristics run over the remembered
// manifests. Unreadable files are never an error, they are simply not
// evidence.
package appdetect

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/digimatic/vscode-launch-gen/internal/provider"
)

const (
	// languageScanDepth bounds the main evidence walk. Files directly under
	// the root are at depth 1.
	languageScanDepth = 2

	// testScanDepth bounds the second walk that looks for Rust test markers.
	testScanDepth = 3
)

// manifestNames are the files remembered during the walk for content
// inspection. One path is kept per name; when the tree holds several, the
// last one encountered in walk order wins.
var manifestNames = map[string]struct{}{
	"package.json":     {},
	"requirements.txt": {},
	"Cargo.toml":       {},
	"CMakeLists.txt":   {},
	"Makefile":         {},
}

// Detect walks the project tree under root and returns the sorted, duplicate
// free set of detected type tags. Tags are provider names, optionally
// parameterized as kind:parameter. Evidence that cannot be read is skipped;
// the only error surfaced is a walk failure at the root itself.
func Detect(root string, reg *provider.Registry, options ...DetectOption) ([]string, error) {
	cfg := newConfig(options...)

	var (
		detected      []string
		manifests     = map[string]string{}
		hasPython     bool
		hasJavaScript bool
		hasTypeScript bool
		hasRust       bool
		hasCpp        bool
	)

	err := walkFiles(root, languageScanDepth, cfg, func(path string) error {
		switch filepath.Ext(path) {
		case ".py":
			hasPython = true
		case ".js":
			hasJavaScript = true
		case ".ts":
			hasTypeScript = true
		case ".rs":
			hasRust = true
		case ".cpp", ".cc", ".cxx", ".h", ".hpp":
			hasCpp = true
		}

		name := filepath.Base(path)
		if _, ok := manifestNames[name]; ok {
			manifests[name] = path
		}

		for _, p := range reg.All() {
			if p.MatchesFile(path) {
				detected = append(detected, p.Name())
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// The extension scan emits cpp-gdb directly and no bare rust tag; rust is
	// added by the Rust branch below. Downstream consumers depend on this
	// exact tag vocabulary.
	if hasPython {
		detected = append(detected, "python")
	}
	if hasJavaScript {
		detected = append(detected, "javascript")
	}
	if hasTypeScript {
		detected = append(detected, "typescript")
	}
	if hasCpp {
		detected = append(detected, "cpp-gdb")
	}

	if path, ok := manifests["package.json"]; ok {
		detected = append(detected, "node")
		detected = append(detected, packageDependencyTags(path)...)
	}

	if path, ok := manifests["requirements.txt"]; ok {
		detected = append(detected, requirementsTags(path)...)
	}

	if hasRust {
		detected = append(detected, "rust")

		if path, ok := manifests["Cargo.toml"]; ok {
			if content, err := os.ReadFile(path); err == nil {
				text := string(content)
				if strings.Contains(text, "[lib]") || !strings.Contains(text, "[[bin]]") {
					detected = append(detected, "rust-lib")
				}
			}
		}

		if hasRustTests(root, cfg) {
			detected = append(detected, "rust-test")
		}

		count := 0
		for _, tag := range []string{"rust", "rust-lib", "rust-test"} {
			if slices.Contains(detected, tag) {
				count++
			}
		}
		if count >= 2 {
			detected = append(detected, "rust-all")
		}
	}

	for name, path := range manifests {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		for _, p := range reg.All() {
			if p.MatchesContent(name, string(content)) && !slices.Contains(detected, p.Name()) {
				detected = append(detected, p.Name())
			}
		}
	}

	slices.Sort(detected)
	return slices.Compact(detected), nil
}

type packagesJSON struct {
	Dependencies map[string]string `json:"dependencies"`
}

// packageDependencyTags sniffs package.json dependencies for frameworks that
// carry their own launch configuration. Only key presence matters; version
// strings are ignored. A manifest that does not parse yields no tags.
func packageDependencyTags(path string) []string {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var pkg packagesJSON
	if err := json.Unmarshal(contents, &pkg); err != nil {
		log.Printf("skipping framework sniff, %s did not parse: %v", path, err)
		return nil
	}

	var tags []string
	for _, dep := range []string{"react", "vue", "express"} {
		if _, ok := pkg.Dependencies[dep]; ok {
			tags = append(tags, dep)
		}
	}

	return tags
}

// requirementsTags sniffs a requirements file for Python web frameworks and
// for runnable modules. django and pytest each contribute an independent
// parameterized python-module tag.
func requirementsTags(path string) []string {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	text := string(contents)

	var tags []string
	if strings.Contains(text, "flask") {
		tags = append(tags, "flask")
	}
	if strings.Contains(text, "fastapi") {
		tags = append(tags, "fastapi")
	}
	if strings.Contains(text, "django") {
		tags = append(tags, "python-module:django")
	}
	if strings.Contains(text, "pytest") {
		tags = append(tags, "python-module:pytest")
	}

	return tags
}

// hasRustTests reports whether any .rs file within testScanDepth of root
// carries a test attribute or test module. The walk stops at the first hit.
func hasRustTests(root string, cfg detectConfig) bool {
	found := false
	err := walkFiles(root, testScanDepth, cfg, func(path string) error {
		if filepath.Ext(path) != ".rs" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		if strings.Contains(string(content), "#[test]") || strings.Contains(string(content), "mod test") {
			found = true
			return filepath.SkipAll
		}

		return nil
	})
	if err != nil {
		log.Printf("scanning for rust tests: %v", err)
	}

	return found
}
