// Package models contains GORM database models for the persistence layer.
// These models handle database storage and are separated from domain entities
// to maintain Clean Architecture principles.
package models
