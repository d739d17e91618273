package dto

import "time"

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CreateUserInput struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName" binding:"required"`
	IsAdmin     bool   `json:"isAdmin"`
	AdminKey    string `json:"adminKey"`
}

type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

// UserResponse is the public view of a user. CreatedAt is only populated
// on the user-listing route; identity derived from token claims omits it.
type UserResponse struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName"`
	IsAdmin     bool       `json:"isAdmin"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}
