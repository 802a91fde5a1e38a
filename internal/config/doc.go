// Package config defines the application configuration structure and its
// loading rules. Values resolve in precedence order: environment variables
// (PAPERBANK_ prefix), then an optional config.yaml in the working
// directory, then built-in defaults. The resolved configuration is
// validated before use so misconfiguration fails at startup, not at the
// first request.
package config
