package core

import (
	"fmt"
	"time"
)

// Role is the fixed set of account roles. The set is closed; there is no
// dynamic extension and no hierarchy between roles.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleDriver   Role = "DRIVER"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleDriver:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts a wire-level role string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Account represents an identity record.
//
// At least one of Email or Phone is always present. Each non-nil email and
// each non-nil phone is unique across all accounts. Accounts are created
// once during registration and never mutated afterwards by this module.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
}
