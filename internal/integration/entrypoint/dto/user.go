package dto

import "github.com/finbook/backend/internal/domain/entity"

// UserResponse represents a user profile in API responses. The password hash
// never leaves the server.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// UpdateProfileRequest represents the request body for profile update. The
// username is immutable and therefore absent.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
	}
}
