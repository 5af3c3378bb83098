// Package branding provides compile-time identity values for the CLI.
//
// Values come from branding.yaml in this package, baked into the binary
// with //go:embed. Forks change the CLI name, home directory and
// environment prefix there instead of in code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	DefaultEntity string `yaml:"default_entity"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:       "rolodex",
			DisplayName:   "Rolodex",
			Description:   "In-memory record registry with export and project scaffolding",
			HomeDir:       ".rolodex",
			EnvPrefix:     "ROLODEX",
			GoModule:      "github.com/rolodex-labs/rolodex",
			DefaultEntity: "user",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "rolodex").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Rolodex").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".rolodex").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ROLODEX").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path, used as the default module root for
// scaffolded projects.
func GoModule() string { load(); return defaults.GoModule }

// DefaultEntity returns the entity noun used when none is configured.
func DefaultEntity() string { load(); return defaults.DefaultEntity }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "ROLODEX_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
