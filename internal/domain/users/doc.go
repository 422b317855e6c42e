// Package users contains the User and Profile entities of the kudos domain
// together with the contracts for storing, authenticating and managing them.
package users
