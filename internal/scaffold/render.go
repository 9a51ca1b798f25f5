package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"text/template"
)

// File is the output of applying one template to one configuration:
// final bytes plus the permission mode at its resolved destination.
type File struct {
	Path    string // relative to the target root, slash-separated
	Content []byte
	Mode    os.FileMode
}

// Result holds the rendered file set and any internal-consistency warnings
// (schema issues in generated manifests).
type Result struct {
	Files    []File
	Warnings []string
}

// Render evaluates every applicable catalog template against cfg.
// It is deterministic and side-effect-free: the same Config always yields
// byte-identical output. Template failures surface as *TemplateError and
// destination collisions as *CollisionError; both indicate catalog defects.
func Render(cfg *Config) (*Result, error) {
	result := &Result{}
	owner := make(map[string]string) // dest path -> template ID

	for _, t := range Catalog() {
		if !t.When(cfg) {
			continue
		}

		dest, err := renderString(t.ID+":dest", t.Dest, cfg)
		if err != nil {
			return nil, &TemplateError{TemplateID: t.ID, Err: err}
		}
		dest = path.Clean(dest)

		if first, ok := owner[dest]; ok {
			return nil, &CollisionError{Path: dest, FirstID: first, SecondID: t.ID}
		}
		owner[dest] = t.ID

		body, err := fs.ReadFile(templatesFS, t.Source)
		if err != nil {
			return nil, &TemplateError{TemplateID: t.ID, Err: fmt.Errorf("reading %s: %w", t.Source, err)}
		}

		content, err := renderString(t.ID, string(body), cfg)
		if err != nil {
			return nil, &TemplateError{TemplateID: t.ID, Err: err}
		}

		result.Files = append(result.Files, File{
			Path:    dest,
			Content: []byte(content),
			Mode:    t.Mode,
		})

		// Validate rendered manifests against the embedded JSON Schema.
		if path.Base(dest) == "package.json" {
			val, valErr := ValidateManifest([]byte(content))
			if valErr != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Could not validate %s: %v", dest, valErr))
			} else if !val.Valid {
				for _, issue := range val.Issues {
					msg := issue.Message
					if issue.Path != "" {
						msg = issue.Path + ": " + msg
					}
					result.Warnings = append(result.Warnings, dest+": "+msg)
				}
			}
		}
	}

	return result, nil
}

// renderString parses and executes one template body. A placeholder with no
// corresponding Config value fails execution; that is a defect, not a
// recoverable condition.
func renderString(id, body string, cfg *Config) (string, error) {
	tmpl, err := template.New(id).Option("missingkey=error").Parse(body)
	if err != nil {
		return "", fmt.Errorf("parsing: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("executing: %w", err)
	}
	return buf.String(), nil
}
