// Package app contains the application services behind the web handlers
// and the CLI.
package app
