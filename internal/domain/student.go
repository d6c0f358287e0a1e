package domain

import "time"

// Student is the domain model for a student record.
type Student struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
