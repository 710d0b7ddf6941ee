package dto

import "github.com/loretops/finalproject-LPS-sub000/internal/core/domain"

// CreateUserRequest registers a new club member. The club is invitation-only,
// so accounts are created by managers rather than through a public sign-up.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// UserResponse is the API representation of a club member. The password hash
// never leaves the service layer.
type UserResponse struct {
	UserID         string `json:"userID"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	ActiveInvestor bool   `json:"activeInvestor"`
}

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           string(u.Role),
		ActiveInvestor: u.ActiveInvestor,
	}
}
