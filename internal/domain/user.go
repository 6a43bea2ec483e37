package domain

import "time"

// User represents an authenticated user of the system.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
