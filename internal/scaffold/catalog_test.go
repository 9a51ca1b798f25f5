package scaffold

import (
	"io/fs"
	"strings"
	"testing"
)

// testConfig builds a synthetic Config without touching the filesystem;
// rendering is a pure function of it.
func testConfig(name string, workspace, withMCP bool) *Config {
	return &Config{
		Name:          name,
		Description:   "A test project",
		Version:       "0.1.0",
		Workspace:     workspace,
		WithMCP:       withMCP,
		TargetDir:     "/tmp/" + name,
		AppPackage:    "@" + name + "/" + name + "-app",
		SharedPackage: "@" + name + "/shared",
		Year:          2026,
	}
}

func TestCatalogSourcesExist(t *testing.T) {
	for _, tmpl := range Catalog() {
		if _, err := fs.Stat(templatesFS, tmpl.Source); err != nil {
			t.Errorf("template %s: source %s missing from embedded FS: %v", tmpl.ID, tmpl.Source, err)
		}
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, tmpl := range Catalog() {
		if seen[tmpl.ID] {
			t.Errorf("duplicate template ID %s", tmpl.ID)
		}
		seen[tmpl.ID] = true
	}
}

// Collision-freedom is a static property of the catalog: for every flag
// combination, no two applicable templates may resolve to the same path.
func TestCatalogCollisionFree(t *testing.T) {
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
			cfg := testConfig("collide-check", tc.workspace, tc.withMCP)
			result, err := Render(cfg)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			seen := make(map[string]bool)
			for _, f := range result.Files {
				if seen[f.Path] {
					t.Errorf("two rendered files resolve to %s", f.Path)
				}
				seen[f.Path] = true
			}
		})
	}
}

func TestCatalogHookModes(t *testing.T) {
	for _, tmpl := range Catalog() {
		isHook := strings.HasPrefix(tmpl.ID, "hooks/")
		if isHook && tmpl.Mode != 0755 {
			t.Errorf("hook template %s mode = %o, want 0755", tmpl.ID, tmpl.Mode)
		}
		if !isHook && tmpl.Mode != 0644 {
			t.Errorf("template %s mode = %o, want 0644", tmpl.ID, tmpl.Mode)
		}
	}
}
