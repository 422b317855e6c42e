// Package web serves the server-rendered pages of the kudos application.
package web
