// Package config loads secretguard settings from repo-local and global YAML
// files. Precedence is CLI flags over the local file over the global file;
// the layering itself happens in the CLI, which maps the result into an
// engine configuration.
package config
