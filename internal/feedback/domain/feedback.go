package domain

import "time"

// Feedback is always owned by exactly one user. The owner never changes
// after creation.
type Feedback struct {
	ID        int64
	Title     string
	Content   string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
