package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/Masterminds/semver/v3"
)

// namePattern matches names safe for both filesystem paths and npm package
// identifiers.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Options holds the raw, unvalidated invocation arguments for one
// generation run.
type Options struct {
	Name        string
	Description string
	Version     string
	OutputDir   string // parent-relative target override; default ./<name>
	Workspace   bool
	WithMCP     bool
}

// Config is the resolved, immutable description of one generation run.
// It is created exactly once by Resolve and never re-derived mid-run.
type Config struct {
	Name        string
	Description string
	Version     string
	Workspace   bool
	WithMCP     bool

	// TargetDir is the absolute path the tree will be written to.
	TargetDir string

	// AppPackage is the npm name of the example workspace package,
	// e.g. "@platform/platform-app".
	AppPackage string
	// SharedPackage is the npm name of the shared utilities package,
	// e.g. "@platform/shared".
	SharedPackage string

	Year int
}

// Resolve validates the invocation options and produces a Config.
// It performs no side effects beyond the target existence check.
func Resolve(opts Options) (*Config, error) {
	if !namePattern.MatchString(opts.Name) {
		return nil, &ConfigError{
			Kind:    InvalidName,
			Message: fmt.Sprintf("%q must match pattern [a-z0-9][a-z0-9-]*", opts.Name),
		}
	}

	version := opts.Version
	if version == "" {
		version = "0.1.0"
	}
	if _, err := semver.StrictNewVersion(version); err != nil {
		return nil, &ConfigError{
			Kind:    InvalidName,
			Message: fmt.Sprintf("version %q is not valid semver: %v", version, err),
		}
	}

	description := opts.Description
	if description == "" {
		description = fmt.Sprintf("TypeScript project %s", opts.Name)
	}

	targetDir := opts.OutputDir
	if targetDir == "" {
		targetDir = filepath.Join(".", opts.Name)
	}
	abs, err := filepath.Abs(targetDir)
	if err != nil {
		return nil, fmt.Errorf("resolving target path %s: %w", targetDir, err)
	}

	if _, err := os.Lstat(abs); err == nil {
		return nil, &ConfigError{
			Kind:    TargetExists,
			Message: fmt.Sprintf("%s already exists; remove it or choose another name", abs),
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking target path %s: %w", abs, err)
	}

	return &Config{
		Name:          opts.Name,
		Description:   description,
		Version:       version,
		Workspace:     opts.Workspace,
		WithMCP:       opts.WithMCP,
		TargetDir:     abs,
		AppPackage:    fmt.Sprintf("@%s/%s-app", opts.Name, opts.Name),
		SharedPackage: fmt.Sprintf("@%s/shared", opts.Name),
		Year:          time.Now().Year(),
	}, nil
}
