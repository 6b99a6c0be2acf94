package provider

import "path/filepath"

// isCppFile matches C/C++ sources and headers as well as the build manifests
// commonly found at the root of C/C++ projects.
func isCppFile(path string) bool {
	switch filepath.Ext(path) {
	case ".cpp", ".cc", ".cxx", ".h", ".hpp":
		return true
	}

	switch filepath.Base(path) {
	case "CMakeLists.txt", "Makefile":
		return true
	}

	return false
}

type cppGdbProvider struct {
	noContentMatch
}

func (*cppGdbProvider) Name() string {
	return "cpp-gdb"
}

func (*cppGdbProvider) Config(string) map[string]any {
	return map[string]any{
		"name":            "C++: GDB",
		"type":            "cppdbg",
		"request":         "launch",
		"program":         "${workspaceFolder}/build/${fileBasenameNoExtension}",
		"args":            []any{},
		"stopAtEntry":     false,
		"cwd":             "${workspaceFolder}",
		"environment":     []any{},
		"externalConsole": false,
		"MIMode":          "gdb",
		"setupCommands": []any{
			map[string]any{
				"description":    "Enable pretty-printing for gdb",
				"text":           "-enable-pretty-printing",
				"ignoreFailures": true,
			},
		},
		"preLaunchTask": "C/C++: Build active file",
	}
}

func (*cppGdbProvider) MatchesFile(path string) bool {
	return isCppFile(path)
}

type cppLldbProvider struct {
	noContentMatch
}

func (*cppLldbProvider) Name() string {
	return "cpp-lldb"
}

func (*cppLldbProvider) Config(string) map[string]any {
	return map[string]any{
		"name":            "C++: LLDB",
		"type":            "lldb",
		"request":         "launch",
		"program":         "${workspaceFolder}/build/${fileBasenameNoExtension}",
		"args":            []any{},
		"stopAtEntry":     false,
		"cwd":             "${workspaceFolder}",
		"environment":     []any{},
		"externalConsole": false,
		"preLaunchTask":   "C/C++: Build active file",
	}
}

func (*cppLldbProvider) MatchesFile(path string) bool {
	return isCppFile(path)
}
