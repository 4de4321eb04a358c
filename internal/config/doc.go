// Package config loads the two project-local configuration files:
// breath.yml (commit scopes and types, documentation commands, hook
// policy) and breathes.toml (project coordinates for the issue
// integration). Missing files yield defaults; parse and validation
// failures are errors.
package config
