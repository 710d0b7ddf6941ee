package domain

import (
	"fmt"
	"strings"
)

// UserRole distinguishes partners (investors) from managers of the club.
type UserRole string

const (
	RolePartner UserRole = "partner"
	RoleManager UserRole = "manager"
	RoleAdmin   UserRole = "admin"
)

// ParseUserRole validates a client-supplied role string.
func ParseUserRole(s string) (UserRole, error) {
	switch role := UserRole(strings.ToLower(strings.TrimSpace(s))); role {
	case RolePartner, RoleManager, RoleAdmin:
		return role, nil
	default:
		return "", fmt.Errorf("unknown user role %q", s)
	}
}

// User is a club member. ActiveInvestor is a denormalized flag: true while the
// user has at least one confirmed or completed investment across any project.
// It is recomputed best-effort after ledger mutations and never participates in
// the funding transaction.
type User struct {
	UserID         string   `json:"userID"`
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	PasswordHash   string   `json:"-"`
	Role           UserRole `json:"role"`
	ActiveInvestor bool     `json:"activeInvestor"`
	AuditFields
}

// IsManager reports whether the user may perform manager/admin operations.
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
