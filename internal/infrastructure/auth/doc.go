// Package auth provides the session token and password hashing
// implementations used by the web application.
package auth
