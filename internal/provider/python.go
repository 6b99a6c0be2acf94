package provider

import (
	"fmt"
	"path/filepath"
	"strings"
)

type pythonProvider struct {
	noContentMatch
}

func (*pythonProvider) Name() string {
	return "python"
}

func (*pythonProvider) Config(string) map[string]any {
	return map[string]any{
		"name":       "Python: Current File",
		"type":       "debugpy",
		"request":    "launch",
		"program":    "${file}",
		"console":    "integratedTerminal",
		"justMyCode": true,
		"args":       []any{},
	}
}

func (*pythonProvider) MatchesFile(path string) bool {
	return filepath.Ext(path) == ".py"
}

type pythonModuleProvider struct{}

func (*pythonModuleProvider) Name() string {
	return "python-module"
}

// Config debugs a module run with python -m. The module defaults to "app"
// when no parameter was given.
func (*pythonModuleProvider) Config(param string) map[string]any {
	module := param
	if module == "" {
		module = "app"
	}

	return map[string]any{
		"name":       fmt.Sprintf("Python: Module %s", module),
		"type":       "debugpy",
		"request":    "launch",
		"module":     module,
		"console":    "integratedTerminal",
		"justMyCode": true,
		"args":       []any{},
	}
}

func (*pythonModuleProvider) MatchesFile(string) bool {
	return false
}

func (*pythonModuleProvider) MatchesContent(filename, content string) bool {
	if filename != "requirements.txt" {
		return false
	}

	return strings.Contains(content, "django") || strings.Contains(content, "pytest")
}

type flaskProvider struct{}

func (*flaskProvider) Name() string {
	return "flask"
}

func (*flaskProvider) Config(string) map[string]any {
	return map[string]any{
		"name":    "Python: Flask",
		"type":    "python",
		"request": "launch",
		"module":  "flask",
		"env": map[string]any{
			"FLASK_APP":   "app.py",
			"FLASK_DEBUG": "1",
		},
		"args": []any{
			"run",
			"--no-debugger",
			"--no-reload",
		},
		"jinja":      true,
		"justMyCode": true,
	}
}

func (*flaskProvider) MatchesFile(string) bool {
	return false
}

func (*flaskProvider) MatchesContent(filename, content string) bool {
	return filename == "requirements.txt" && strings.Contains(content, "flask")
}

type fastAPIProvider struct{}

func (*fastAPIProvider) Name() string {
	return "fastapi"
}

func (*fastAPIProvider) Config(string) map[string]any {
	return map[string]any{
		"name":    "Python: FastAPI",
		"type":    "python",
		"request": "launch",
		"module":  "uvicorn",
		"args": []any{
			"app.main:app",
			"--reload",
		},
		"justMyCode": true,
	}
}

func (*fastAPIProvider) MatchesFile(string) bool {
	return false
}

func (*fastAPIProvider) MatchesContent(filename, content string) bool {
	return filename == "requirements.txt" && strings.Contains(content, "fastapi")
}
