package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the authorization role assigned to a user.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleVendor   Role = "Vendor"
	RoleAdmin    Role = "Admin"
)

// ParseRole maps a submitted role name onto a recognized role,
// case-insensitively. Unrecognized values fall back to Customer, the
// lowest-privilege role.
func ParseRole(s string) Role {
	switch strings.ToLower(s) {
	case "admin":
		return RoleAdmin
	case "vendor":
		return RoleVendor
	default:
		return RoleCustomer
	}
}

// User represents an account in the system.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)
