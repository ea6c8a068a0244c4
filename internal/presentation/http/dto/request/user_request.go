package request

import "github.com/truythudien/truythu-api/internal/domain/enum"

// CreateUserRequest represents an admin account-creation request
type CreateUserRequest struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Role     enum.Role `json:"role"`
}

// AssistantSearchRequest represents a legal-assistant query
type AssistantSearchRequest struct {
	Query string `json:"query"`
	Model string `json:"model"`
}
