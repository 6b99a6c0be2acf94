// Package launchcfg writes the launch.json document VS Code reads.
package launchcfg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/digimatic/vscode-launch-gen/pkg/osutil"
)

// Version is the launch.json schema version VS Code expects. The envelope
// schema is constant across runs; only the configurations list varies.
const Version = "0.2.0"

// DefaultPath is where VS Code looks for launch configurations, relative to
// the workspace root.
var DefaultPath = filepath.Join(".vscode", "launch.json")

// LaunchConfig is the envelope written to launch.json.
type LaunchConfig struct {
	Version        string           `json:"version"`
	Configurations []map[string]any `json:"configurations"`
}

// Write renders configs into the launch.json envelope at path, creating
// parent directories as needed and replacing any existing file wholesale.
// The document goes to a temporary file in the destination directory first
// and is renamed into place, so a failure part way through cannot leave a
// torn launch.json behind.
func Write(path string, configs []map[string]any) error {
	doc := LaunchConfig{
		Version:        Version,
		Configurations: configs,
	}
	if doc.Configurations == nil {
		// The envelope always carries a list, never null.
		doc.Configurations = []map[string]any{}
	}

	formatted, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling launch configuration: %w", err)
	}
	formatted = append(formatted, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, osutil.PermissionDirectory); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, fmt.Sprintf("%s.tmp*", filepath.Base(path)))
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
		_ = os.Remove(f.Name())
	}()

	if _, err := f.Write(formatted); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Chmod(osutil.PermissionFile); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
