package dto

import (
	"time"
	userModel "tourdesk/internal/domains/user/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public projection of an admin user. The password
// hash never leaves the service layer.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (r *UserResponse) FromModel(model userModel.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.Role = model.Role
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (r *LoginResponse) FromModel(token string, model userModel.User) {
	r.Token = token
	r.User.FromModel(model)
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}
