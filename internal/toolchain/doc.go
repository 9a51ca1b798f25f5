// Package toolchain drives the external verification chain over a freshly
// materialized project tree: dependency install, git init, hook wiring,
// build, lint, and test. Steps run strictly in declaration order; a fatal
// failure aborts the remainder of the chain, and the run report never
// claims success for a step that was never reached.
package toolchain
