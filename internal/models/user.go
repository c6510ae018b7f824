package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// ParseUserRole falls back to the plain user role for anything it does
// not recognise, so a bad value in a register request cannot mint an admin.
func ParseUserRole(s string) UserRole {
	if UserRole(s) == UserRoleAdmin {
		return UserRoleAdmin
	}
	return UserRoleUser
}

type User struct {
	ID uuid.UUID `db:"id" json:"id"`

	Email        string   `db:"email" json:"email"`
	PasswordHash string   `db:"password_hash" json:"-"`
	Role         UserRole `db:"role" json:"role"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
