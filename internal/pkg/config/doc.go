// Package config loads and validates the settings of the kudos web application.
//
// Settings are read from a YAML file and may be overridden by KUDOS_-prefixed
// environment variables. Every settings section validates itself so a broken
// deployment fails at startup rather than on the first request.
package config
