// Package persistence stores the key ring through GORM on sqlite or postgres.
package persistence
