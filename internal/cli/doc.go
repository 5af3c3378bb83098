// Package cli defines the Cobra command tree for the rolodex CLI. Each file
// registers one top-level command with the root command. Commands load the
// registry document named by --file, delegate to internal/entity for the
// actual work, and only handle flag parsing, output formatting and saving.
package cli
