package provider

import "path/filepath"

type javaScriptProvider struct {
	noContentMatch
}

func (*javaScriptProvider) Name() string {
	return "javascript"
}

func (*javaScriptProvider) Config(string) map[string]any {
	return map[string]any{
		"name":    "JavaScript: Launch Chrome",
		"type":    "chrome",
		"request": "launch",
		"url":     "http://localhost:3000",
		"webRoot": "${workspaceFolder}",
	}
}

func (*javaScriptProvider) MatchesFile(path string) bool {
	return filepath.Ext(path) == ".js"
}

type nodeProvider struct {
	noContentMatch
}

func (*nodeProvider) Name() string {
	return "node"
}

func (*nodeProvider) Config(string) map[string]any {
	return map[string]any{
		"name":    "Node.js: Current File",
		"type":    "node",
		"request": "launch",
		"program": "${file}",
		"console": "integratedTerminal",
	}
}

func (*nodeProvider) MatchesFile(path string) bool {
	return filepath.Base(path) == "package.json"
}

type typeScriptProvider struct {
	noContentMatch
}

func (*typeScriptProvider) Name() string {
	return "typescript"
}

func (*typeScriptProvider) Config(string) map[string]any {
	return map[string]any{
		"name":          "TypeScript: Current File",
		"type":          "node",
		"request":       "launch",
		"program":       "${file}",
		"preLaunchTask": "tsc: build - tsconfig.json",
		"outFiles":      []any{"${workspaceFolder}/dist/**/*.js"},
	}
}

func (*typeScriptProvider) MatchesFile(path string) bool {
	if filepath.Ext(path) == ".ts" {
		return true
	}

	return filepath.Base(path) == "tsconfig.json"
}
