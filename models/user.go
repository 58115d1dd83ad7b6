package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Known role names. Roles ride along in the token but no route restricts
// beyond "is authenticated".
const (
	RoleSuper = "super"
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Roles is a set of role names stored as a JSON array column.
type Roles []string

// Value implements driver.Valuer.
func (r Roles) Value() (driver.Value, error) {
	if len(r) == 0 {
		r = Roles{RoleUser}
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner.
func (r *Roles) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = Roles{RoleUser}
		return nil
	default:
		return fmt.Errorf("unsupported roles column type %T", value)
	}
}

// User is an account allowed to manage articles. Passwords are stored as
// bcrypt hashes only.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Roles     Roles     `gorm:"type:varchar(255)" json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
