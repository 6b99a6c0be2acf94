package launchcfg

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".vscode", "launch.json")

	configs := []map[string]any{
		{"name": "first", "type": "debugpy", "request": "launch"},
		{"name": "second", "type": "node", "request": "launch"},
	}

	require.NoError(t, Write(path, configs))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(contents), "\n"))

	var doc LaunchConfig
	require.NoError(t, json.Unmarshal(contents, &doc))
	require.Equal(t, Version, doc.Version)
	require.Len(t, doc.Configurations, 2)
	require.Equal(t, "first", doc.Configurations[0]["name"])
	require.Equal(t, "second", doc.Configurations[1]["name"])
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "launch.json")

	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))
	require.NoError(t, Write(path, []map[string]any{{"name": "only"}}))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc LaunchConfig
	require.NoError(t, json.Unmarshal(contents, &doc))
	require.Len(t, doc.Configurations, 1)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Write(filepath.Join(dir, "launch.json"), nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "launch.json", entries[0].Name())
}

func TestWriteEmptyListStaysAList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "launch.json")

	require.NoError(t, Write(path, nil))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), `"configurations": []`)
}
