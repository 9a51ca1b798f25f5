// Package config manages user-level settings stored at ~/.stencil/config.yaml.
// Keys under "defaults." seed flag defaults for the generate commands, e.g.
// defaults.with_mcp, defaults.skip_verify, and defaults.pkg_version.
package config
