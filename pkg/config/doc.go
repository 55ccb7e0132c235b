// Package config provides configuration management for the Roboflow
// dataset tools.
//
// Configuration is read from a .env file (KEY=VALUE lines, blank lines
// and # comments ignored) merged with process environment variables,
// the environment taking precedence. The package supports:
//   - Roboflow API credentials (private and publishable keys)
//   - Workspace and project identifiers
//   - The local dataset path, defaulting to ./dataset
//
// Loading never fails on missing keys; callers check MissingKeys or
// Validate and decide whether to abort.
package config
