// Package config is the configuration store for actions: a TOML file holding
// the ordered action list, the global command timeout and display flags.
// Store serializes read-modify-write updates and reports file changes so
// command bindings can be rebuilt. Import and export cover JSON, YAML, TOML
// and VS Code settings.json files.
package config
