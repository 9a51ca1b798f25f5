package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stencil-labs/stencil/internal/platform"
)

// Tree records what was actually written to disk for one run.
type Tree struct {
	Root  string
	Files []string // relative paths, write order
}

// Materialize writes rendered files under targetDir, creating the directory
// tree as needed. The target root is created with an atomic
// create-fail-if-exists operation, closing the gap between the resolver's
// existence check and the first write.
//
// On failure the partial tree is left in place; there is no rollback. The
// returned error reports what could not be written, and the caller must
// surface it rather than claim success.
func Materialize(files []File, targetDir string) (*Tree, error) {
	if err := os.Mkdir(targetDir, 0755); err != nil {
		return nil, &GenerationError{Op: "creating target directory", Path: targetDir, Err: err}
	}

	tree := &Tree{Root: targetDir}
	written := make(map[string]bool)

	for _, f := range files {
		if written[f.Path] {
			return tree, &CollisionError{Path: f.Path, FirstID: "(written)", SecondID: "(duplicate)"}
		}
		written[f.Path] = true

		dest := filepath.Join(targetDir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return tree, &GenerationError{Op: "creating directory", Path: filepath.Dir(dest), Err: err}
		}
		if err := os.WriteFile(dest, f.Content, f.Mode); err != nil {
			return tree, &GenerationError{Op: "writing", Path: dest, Err: err}
		}
		// WriteFile's mode is masked by umask; set the bits explicitly so
		// hook scripts come out executable.
		if err := platform.Chmod(dest, f.Mode); err != nil {
			return tree, &GenerationError{Op: "setting permissions on", Path: dest, Err: err}
		}

		tree.Files = append(tree.Files, f.Path)
	}

	return tree, nil
}

// Describe returns a short human-readable summary of the tree for the
// final report.
func (t *Tree) Describe() string {
	return fmt.Sprintf("%d files under %s", len(t.Files), t.Root)
}
