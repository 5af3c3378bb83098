// Package config manages user-level settings stored at ~/.rolodex/config.yaml.
// Values can be overridden with ROLODEX_-prefixed environment variables
// (ROLODEX_ENTITY_NAME, ROLODEX_LOG_LEVEL, ...).
package config
