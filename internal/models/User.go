package models

import "gorm.io/gorm"

// Role is the closed set of account roles. Values outside this set are
// rejected at the request and token boundaries, never stored.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleDormManager Role = "dorm_manager"
	RoleStudent     Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDormManager, RoleStudent:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Name     string `json:"name"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}
