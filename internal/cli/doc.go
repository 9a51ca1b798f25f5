// Package cli wires the cobra command tree for the stencil binary:
// generate, generate-workspace, doctor, config, and version.
package cli
