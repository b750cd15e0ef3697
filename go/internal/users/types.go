package users

// CreateUserRequest represents the data needed to create a new user
type CreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}
