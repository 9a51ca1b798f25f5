package toolchain

// Minimum tool versions. git 2.9 introduced core.hooksPath, which the hook
// install step relies on.
const (
	minGitVersion  = "2.9.0"
	minNPMVersion  = "9.0.0"
	minNodeVersion = "18.0.0"
)

// Requirement names one external tool the generator depends on, with its
// semver floor. Used by the doctor command's preflight.
type Requirement struct {
	Tool       string
	MinVersion string
}

// Requirements lists every external tool a full verification run needs.
func Requirements() []Requirement {
	return []Requirement{
		{Tool: "node", MinVersion: minNodeVersion},
		{Tool: "npm", MinVersion: minNPMVersion},
		{Tool: "git", MinVersion: minGitVersion},
	}
}

// SingleSteps returns the canonical chain for a single-package target:
// install dependencies → git init → hook install → build → lint → test.
// Lint is the only non-fatal step; everything else aborts the chain.
func SingleSteps(dir string) []Step {
	return []Step{
		{Name: "install-deps", Tool: "npm", Args: []string{"install"}, Dir: dir, Fatal: true, MinVersion: minNPMVersion},
		{Name: "git-init", Tool: "git", Args: []string{"init"}, Dir: dir, Fatal: true, MinVersion: minGitVersion},
		{Name: "install-hooks", Tool: "git", Args: []string{"config", "core.hooksPath", ".hooks"}, Dir: dir, DependsOn: []string{"git-init"}, Fatal: true},
		{Name: "build", Tool: "npm", Args: []string{"run", "build"}, Dir: dir, DependsOn: []string{"install-deps"}, Fatal: true},
		{Name: "lint", Tool: "npm", Args: []string{"run", "lint"}, Dir: dir, DependsOn: []string{"build"}, Fatal: false},
		{Name: "test", Tool: "npm", Args: []string{"test"}, Dir: dir, DependsOn: []string{"build"}, Fatal: true},
	}
}

// WorkspaceSteps returns the chain for a multi-package target. An extra
// per-package dependency install precedes the shared build, and build/test
// operate across all workspace packages.
func WorkspaceSteps(dir string) []Step {
	return []Step{
		{Name: "install-deps", Tool: "npm", Args: []string{"install"}, Dir: dir, Fatal: true, MinVersion: minNPMVersion},
		{Name: "install-workspace-deps", Tool: "npm", Args: []string{"install", "--workspaces", "--include-workspace-root=false"}, Dir: dir, DependsOn: []string{"install-deps"}, Fatal: true},
		{Name: "git-init", Tool: "git", Args: []string{"init"}, Dir: dir, Fatal: true, MinVersion: minGitVersion},
		{Name: "install-hooks", Tool: "git", Args: []string{"config", "core.hooksPath", ".hooks"}, Dir: dir, DependsOn: []string{"git-init"}, Fatal: true},
		{Name: "build", Tool: "npm", Args: []string{"run", "build"}, Dir: dir, DependsOn: []string{"install-deps", "install-workspace-deps"}, Fatal: true},
		{Name: "lint", Tool: "npm", Args: []string{"run", "lint"}, Dir: dir, DependsOn: []string{"build"}, Fatal: false},
		{Name: "test", Tool: "npm", Args: []string{"test", "--workspaces"}, Dir: dir, DependsOn: []string{"build"}, Fatal: true},
	}
}
