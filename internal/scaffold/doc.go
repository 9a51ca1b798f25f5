// Package scaffold turns a resolved project configuration into a rendered
// file set and writes it to disk. It powers the "stencil generate" commands:
// the catalog declares every generatable file, the renderer substitutes
// configuration values into embedded templates, and the materializer creates
// the target tree with the right permission bits.
package scaffold
