package models

import "time"

// FacultyDB represents a faculty record in the database.
//
// Coordinator is a string holding "true" or "false" rather than a boolean.
// Existing clients depend on the string shape, so it is preserved as-is.
type FacultyDB struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Section      string    `json:"section" db:"section"`
	Dept         string    `json:"dept" db:"dept"`
	Coordinator  string    `json:"coordinator" db:"coordinator"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
