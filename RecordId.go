package main

import "github.com/google/uuid"

// NewRecordId returns a time-ordered UUID, so bbolt keeps records in creation order
func NewRecordId() string {
	return uuid.Must(uuid.NewV7()).String()
}
