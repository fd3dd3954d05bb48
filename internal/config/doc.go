// Package config defines the application's immutable configuration structure
// and loads it once at process start from environment variables with
// documented defaults.
package config
