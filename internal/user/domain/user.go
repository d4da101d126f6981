package domain

import "time"

// User is keyed by username; email is unique as well. Records are
// created by registration only and never mutated or deleted.
type User struct {
	Username     string
	PasswordHash string
	Email        string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}
