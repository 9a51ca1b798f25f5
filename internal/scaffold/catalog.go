package scaffold

import "os"

// Template is one named unit of generatable content: an embedded source
// file, a destination path pattern (itself templated against the Config),
// a permission mode, and a predicate deciding whether it applies to a
// given run.
type Template struct {
	ID     string
	Source string // path inside templatesFS
	Dest   string // destination pattern, relative to the target root
	Mode   os.FileMode
	When   func(*Config) bool
}

const (
	modeFile = os.FileMode(0644)
	// Hook scripts must carry the executable bit; git silently skips
	// non-executable hooks.
	modeScript = os.FileMode(0755)
)

func always(*Config) bool      { return true }
func single(c *Config) bool    { return !c.Workspace }
func workspace(c *Config) bool { return c.Workspace }
func singleMCP(c *Config) bool { return !c.Workspace && c.WithMCP }
func wsMCP(c *Config) bool     { return c.Workspace && c.WithMCP }

// Catalog returns every template Stencil can generate, in declaration
// order. Write order follows this order; it is not semantically meaningful
// but keeps output deterministic and test fixtures diffable.
func Catalog() []Template {
	return []Template{
		// Single-package set.
		{ID: "single/manifest", Source: "templates/single/package.json.tmpl", Dest: "package.json", Mode: modeFile, When: single},
		{ID: "single/tsconfig", Source: "templates/single/tsconfig.json.tmpl", Dest: "tsconfig.json", Mode: modeFile, When: single},
		{ID: "single/vitest", Source: "templates/single/vitest.config.ts.tmpl", Dest: "vitest.config.ts", Mode: modeFile, When: single},
		{ID: "single/eslint", Source: "templates/shared/eslint.config.mjs.tmpl", Dest: "eslint.config.mjs", Mode: modeFile, When: single},
		{ID: "single/readme", Source: "templates/single/README.md.tmpl", Dest: "README.md", Mode: modeFile, When: single},
		{ID: "single/index", Source: "templates/single/index.ts.tmpl", Dest: "src/index.ts", Mode: modeFile, When: single},
		{ID: "single/index-test", Source: "templates/single/index.test.ts.tmpl", Dest: "src/index.test.ts", Mode: modeFile, When: single},

		// Optional MCP subsystem (single-package layout).
		{ID: "mcp/server", Source: "templates/mcp/server.ts.tmpl", Dest: "src/mcp/server.ts", Mode: modeFile, When: singleMCP},
		{ID: "mcp/docs", Source: "templates/mcp/mcp.md.tmpl", Dest: "docs/mcp.md", Mode: modeFile, When: singleMCP},

		// Workspace set: root manifest plus shared utilities plus one
		// example app package.
		{ID: "workspace/manifest", Source: "templates/workspace/package.json.tmpl", Dest: "package.json", Mode: modeFile, When: workspace},
		{ID: "workspace/tsconfig-base", Source: "templates/workspace/tsconfig.base.json.tmpl", Dest: "tsconfig.base.json", Mode: modeFile, When: workspace},
		{ID: "workspace/tsconfig", Source: "templates/workspace/tsconfig.json.tmpl", Dest: "tsconfig.json", Mode: modeFile, When: workspace},
		{ID: "workspace/eslint", Source: "templates/shared/eslint.config.mjs.tmpl", Dest: "eslint.config.mjs", Mode: modeFile, When: workspace},
		{ID: "workspace/readme", Source: "templates/workspace/README.md.tmpl", Dest: "README.md", Mode: modeFile, When: workspace},
		{ID: "workspace/shared-manifest", Source: "templates/workspace/shared/package.json.tmpl", Dest: "packages/shared/package.json", Mode: modeFile, When: workspace},
		{ID: "workspace/shared-tsconfig", Source: "templates/workspace/shared/tsconfig.json.tmpl", Dest: "packages/shared/tsconfig.json", Mode: modeFile, When: workspace},
		{ID: "workspace/shared-index", Source: "templates/workspace/shared/index.ts.tmpl", Dest: "packages/shared/src/index.ts", Mode: modeFile, When: workspace},
		{ID: "workspace/shared-index-test", Source: "templates/workspace/shared/index.test.ts.tmpl", Dest: "packages/shared/src/index.test.ts", Mode: modeFile, When: workspace},
		{ID: "workspace/app-manifest", Source: "templates/workspace/app/package.json.tmpl", Dest: "packages/{{ .Name }}-app/package.json", Mode: modeFile, When: workspace},
		{ID: "workspace/app-tsconfig", Source: "templates/workspace/app/tsconfig.json.tmpl", Dest: "packages/{{ .Name }}-app/tsconfig.json", Mode: modeFile, When: workspace},
		{ID: "workspace/app-index", Source: "templates/workspace/app/index.ts.tmpl", Dest: "packages/{{ .Name }}-app/src/index.ts", Mode: modeFile, When: workspace},
		{ID: "workspace/app-index-test", Source: "templates/workspace/app/index.test.ts.tmpl", Dest: "packages/{{ .Name }}-app/src/index.test.ts", Mode: modeFile, When: workspace},

		// Optional MCP subsystem (workspace layout: lives in the app package).
		{ID: "mcp/ws-server", Source: "templates/mcp/server.ts.tmpl", Dest: "packages/{{ .Name }}-app/src/mcp/server.ts", Mode: modeFile, When: wsMCP},
		{ID: "mcp/ws-docs", Source: "templates/mcp/mcp.md.tmpl", Dest: "docs/mcp.md", Mode: modeFile, When: wsMCP},

		// Shared across both layouts.
		{ID: "shared/gitignore", Source: "templates/shared/gitignore.tmpl", Dest: ".gitignore", Mode: modeFile, When: always},
		{ID: "hooks/pre-commit", Source: "templates/hooks/pre-commit.tmpl", Dest: ".hooks/pre-commit", Mode: modeScript, When: always},
		{ID: "hooks/commit-msg", Source: "templates/hooks/commit-msg.tmpl", Dest: ".hooks/commit-msg", Mode: modeScript, When: always},
		{ID: "hooks/pre-push", Source: "templates/hooks/pre-push.tmpl", Dest: ".hooks/pre-push", Mode: modeScript, When: always},
	}
}
