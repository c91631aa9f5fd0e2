// Package models contains the GORM table models of the key ring. They are
// kept apart from the domain entities and converted at the repository boundary.
package models
