package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList stores a list of identifiers as a JSONB column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported type for StringList")
}

// ProjectEventDB represents a project event record. Events are created by
// admins and have no deletion path; only the coordinator list is mutated
// after creation.
type ProjectEventDB struct {
	ID           int64      `json:"id" db:"id"`
	ShortName    string     `json:"short_name" db:"short_name"`
	Name         string     `json:"name" db:"name"`
	Coordinators StringList `json:"coordinators" db:"coordinators"`
	MaxTeamSize  int        `json:"max_team_size" db:"max_team_size"`
	IsEnabled    bool       `json:"isEnabled" db:"is_enabled"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}
