package helpers

import model "gallery-auction/internal/models"

// Request/Response DTOs
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	UserID     string `json:"user_id"`
	Fullname   string `json:"fullname"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ProfileURL string `json:"profile_url"`
	IsAdmin    bool   `json:"is_admin"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// NewUserResponse projects a user model onto the wire shape
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Fullname:   u.Fullname,
		Username:   u.Username,
		Email:      u.Email,
		Phone:      u.Phone,
		ProfileURL: u.Profile,
		IsAdmin:    u.IsAdmin,
	}
}
