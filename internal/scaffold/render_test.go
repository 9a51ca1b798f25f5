package scaffold

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func findFile(t *testing.T, result *Result, path string) *File {
	t.Helper()
	for i := range result.Files {
		if result.Files[i].Path == path {
			return &result.Files[i]
		}
	}
	t.Fatalf("no rendered file at %s; have %v", path, paths(result))
	return nil
}

func hasFile(result *Result, path string) bool {
	for _, f := range result.Files {
		if f.Path == path {
			return true
		}
	}
	return false
}

func paths(result *Result) []string {
	var out []string
	for _, f := range result.Files {
		out = append(out, f.Path)
	}
	return out
}

func assertContains(t *testing.T, content, want string) {
	t.Helper()
	if !strings.Contains(content, want) {
		t.Errorf("content missing %q:\n%s", want, content)
	}
}

func assertNotContains(t *testing.T, content, unwanted string) {
	t.Helper()
	if strings.Contains(content, unwanted) {
		t.Errorf("content should not contain %q:\n%s", unwanted, content)
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, workspace := range []bool{false, true} {
		cfg := testConfig("widget-api", workspace, true)

		first, err := Render(cfg)
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		second, err := Render(cfg)
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}

		if len(first.Files) != len(second.Files) {
			t.Fatalf("file counts differ: %d vs %d", len(first.Files), len(second.Files))
		}
		for i := range first.Files {
			if first.Files[i].Path != second.Files[i].Path {
				t.Errorf("file %d path differs: %s vs %s", i, first.Files[i].Path, second.Files[i].Path)
			}
			if !bytes.Equal(first.Files[i].Content, second.Files[i].Content) {
				t.Errorf("file %s content differs between renders", first.Files[i].Path)
			}
		}
	}
}

func TestRenderSinglePackage(t *testing.T) {
	cfg := testConfig("widget-api", false, false)
	result, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	for _, want := range []string{
		"package.json", "tsconfig.json", "vitest.config.ts", "eslint.config.mjs",
		"README.md", "src/index.ts", "src/index.test.ts", ".gitignore",
		".hooks/pre-commit", ".hooks/commit-msg", ".hooks/pre-push",
	} {
		if !hasFile(result, want) {
			t.Errorf("missing rendered file %s", want)
		}
	}

	// The accepted name must round-trip verbatim into every position that
	// references it.
	manifest := string(findFile(t, result, "package.json").Content)
	assertContains(t, manifest, `"name": "widget-api"`)
	assertContains(t, manifest, `"version": "0.1.0"`)
	assertContains(t, string(findFile(t, result, "src/index.ts").Content), "'widget-api'")
	assertContains(t, string(findFile(t, result, "README.md").Content), "# widget-api")

	// Manifest must be real JSON.
	var parsed map[string]interface{}
	if err := json.Unmarshal(findFile(t, result, "package.json").Content, &parsed); err != nil {
		t.Errorf("rendered package.json is not valid JSON: %v", err)
	}

	// Hooks carry the executable bit and use the single-package commands.
	hook := findFile(t, result, ".hooks/pre-push")
	if hook.Mode != 0755 {
		t.Errorf("pre-push mode = %o, want 0755", hook.Mode)
	}
	assertContains(t, string(hook.Content), "npm test")
	assertNotContains(t, string(hook.Content), "--workspaces")

	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRenderOptionalSubsystemGating(t *testing.T) {
	t.Run("excluded when flag unset", func(t *testing.T) {
		result, err := Render(testConfig("widget-api", false, false))
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		for _, p := range paths(result) {
			if strings.Contains(p, "mcp") {
				t.Errorf("MCP file %s rendered without the flag", p)
			}
		}
		manifest := string(findFile(t, result, "package.json").Content)
		assertNotContains(t, manifest, "@modelcontextprotocol/sdk")
		assertNotContains(t, manifest, `"dependencies"`)
	})

	t.Run("included when flag set", func(t *testing.T) {
		result, err := Render(testConfig("widget-api", false, true))
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if !hasFile(result, "src/mcp/server.ts") {
			t.Error("missing src/mcp/server.ts")
		}
		if !hasFile(result, "docs/mcp.md") {
			t.Error("missing docs/mcp.md")
		}
		manifest := string(findFile(t, result, "package.json").Content)
		assertContains(t, manifest, "@modelcontextprotocol/sdk")

		var parsed map[string]interface{}
		if err := json.Unmarshal(findFile(t, result, "package.json").Content, &parsed); err != nil {
			t.Errorf("manifest with MCP deps is not valid JSON: %v", err)
		}
		if len(result.Warnings) > 0 {
			t.Errorf("unexpected warnings: %v", result.Warnings)
		}
	})
}

func TestRenderWorkspace(t *testing.T) {
	cfg := testConfig("platform", true, false)
	result, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// Root manifest plus shared utilities plus one example package.
	for _, want := range []string{
		"package.json",
		"tsconfig.base.json",
		"packages/shared/package.json",
		"packages/shared/src/index.ts",
		"packages/platform-app/package.json",
		"packages/platform-app/src/index.ts",
	} {
		if !hasFile(result, want) {
			t.Errorf("missing rendered file %s", want)
		}
	}

	root := string(findFile(t, result, "package.json").Content)
	assertContains(t, root, `"private": true`)
	assertContains(t, root, `"workspaces": ["packages/*"]`)

	app := string(findFile(t, result, "packages/platform-app/package.json").Content)
	assertContains(t, app, `"@platform/platform-app"`)
	assertContains(t, app, `"@platform/shared": "0.1.0"`)

	// Workspace hooks fan out across packages.
	assertContains(t, string(findFile(t, result, ".hooks/pre-push").Content), "npm test --workspaces")

	// No single-package files in a workspace tree.
	if hasFile(result, "src/index.ts") {
		t.Error("single-package src/index.ts rendered in workspace mode")
	}
	if hasFile(result, "vitest.config.ts") {
		t.Error("single-package vitest config rendered in workspace mode")
	}

	var parsed map[string]interface{}
	for _, p := range []string{"package.json", "packages/shared/package.json", "packages/platform-app/package.json"} {
		if err := json.Unmarshal(findFile(t, result, p).Content, &parsed); err != nil {
			t.Errorf("%s is not valid JSON: %v", p, err)
		}
	}

	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRenderManifestsPassSchema(t *testing.T) {
	for _, tc := range []struct {
		name      string
		workspace bool
		withMCP   bool
	}{
		{"single", false, false},
		{"single-mcp", false, true},
		{"workspace", true, false},
		{"workspace-mcp", true, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Render(testConfig("schema-check", tc.workspace, tc.withMCP))
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if len(result.Warnings) > 0 {
				t.Errorf("schema warnings: %v", result.Warnings)
			}
		})
	}
}
