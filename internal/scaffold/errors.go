package scaffold

import "fmt"

// ConfigErrorKind classifies resolver rejections. All of them are detected
// before any filesystem mutation, so the caller can retry with corrected
// input.
type ConfigErrorKind int

const (
	// InvalidName means the project name is empty or contains characters
	// unsafe for a filesystem path or package identifier.
	InvalidName ConfigErrorKind = iota
	// TargetExists means the target path already exists as a file or
	// directory. Stencil never merges into or overwrites an existing target.
	TargetExists
	// UnknownOption means an unrecognized flag was passed.
	UnknownOption
)

func (k ConfigErrorKind) String() string {
	switch k {
	case InvalidName:
		return "invalid name"
	case TargetExists:
		return "target exists"
	case UnknownOption:
		return "unknown option"
	default:
		return "config error"
	}
}

// ConfigError reports invalid user input to the resolver.
type ConfigError struct {
	Kind    ConfigErrorKind
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// TemplateError reports a template that failed to parse or execute. This is
// a defect in the catalog itself, never a user input error.
type TemplateError struct {
	TemplateID string
	Err        error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %v (catalog defect)", e.TemplateID, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// CollisionError reports two templates resolving to the same destination
// path. Like TemplateError it indicates a catalog defect and is always fatal.
type CollisionError struct {
	Path     string
	FirstID  string
	SecondID string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("templates %s and %s both resolve to %s (catalog defect)",
		e.FirstID, e.SecondID, e.Path)
}

// GenerationError reports a filesystem failure during materialization. The
// partially written tree is left in place; callers must report it rather
// than claim success.
type GenerationError struct {
	Op   string
	Path string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
