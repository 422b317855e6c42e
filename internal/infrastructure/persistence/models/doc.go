// Package models contains the GORM database models of the kudos application.
// Models are an infrastructure concern and convert to and from domain
// entities with ToDomain and FromDomain.
package models
