// Package platform provides cross-platform permission management. On Unix
// systems it uses chmod directly; on Windows permission bits are a no-op.
// The executable bit matters here: git silently skips hook scripts that are
// not marked executable.
package platform
