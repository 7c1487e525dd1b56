package handler

import (
	"context"
	"fmt"
	"net/http"

	"gallery-auction/internal/auth"
	model "gallery-auction/internal/models"
	user "gallery-auction/internal/userService"
	"gallery-auction/services/user/helpers"
	"gallery-auction/utils"

	"github.com/gin-gonic/gin"
)

type UserServiceInterface interface {
	Register(ctx context.Context, in user.RegisterInput) (model.User, string, error)
	Login(email, password string) (model.User, string, error)
	GetProfile(userID string) (model.User, error)
	EditProfile(ctx context.Context, userID string, update user.ProfileUpdate) (model.User, error)
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// SignupHandler handles POST /users/signup (multipart form)
func (h *UserHandler) SignupHandler(c *gin.Context) {
	in := user.RegisterInput{
		Fullname: c.PostForm("fullname"),
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Phone:    c.PostForm("phone"),
		Password: c.PostForm("password"),
	}

	// a missing image is left for the service to reject
	if image, contentType, err := utils.ReadFormFile(c, "image"); err == nil {
		in.ProfileImage = image
		in.ContentType = contentType
	}

	created, token, err := h.service.Register(c.Request.Context(), in)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SignupHandler: failed to register user", map[string]any{
			"handler": "SignupHandler",
			"email":   in.Email,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.AuthResponse{
		User:  helpers.NewUserResponse(created),
		Token: token,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "user registered successfully")
	helpers.LogSuccess("SignupHandler", "user registered successfully", map[string]any{
		"user_id":  created.UserID,
		"username": created.Username,
		"is_admin": created.IsAdmin,
	})
}

// LoginHandler handles POST /users/login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	account, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{"email": req.Email, "error": err.Error()})
		return
	}

	resp := helpers.AuthResponse{
		User:  helpers.NewUserResponse(account),
		Token: token,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id": account.UserID,
	})
}

// LogoutHandler handles POST /users/logout. Tokens are stateless, so
// logout just tells the client to discard its copy.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
	helpers.LogSuccess("LogoutHandler", "logged out successfully", map[string]any{
		"user_id": c.GetString(auth.ContextUserID),
	})
}

// MeHandler handles GET /users/me
func (h *UserHandler) MeHandler(c *gin.Context) {
	userID := c.GetString(auth.ContextUserID)
	account, err := h.service.GetProfile(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MeHandler: error retrieving profile", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(account), "profile retrieved successfully")
	helpers.LogSuccess("MeHandler", "profile retrieved successfully", map[string]any{
		"user_id": account.UserID,
	})
}

// EditProfileHandler handles PUT /users/profile (multipart form)
func (h *UserHandler) EditProfileHandler(c *gin.Context) {
	userID := c.GetString(auth.ContextUserID)

	update := user.ProfileUpdate{
		Fullname: c.PostForm("fullname"),
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
	}
	if image, contentType, err := utils.ReadFormFile(c, "image"); err == nil {
		update.ProfileImage = image
		update.ContentType = contentType
	}

	account, err := h.service.EditProfile(c.Request.Context(), userID, update)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("EditProfileHandler: failed to update profile", map[string]any{
			"handler": "EditProfileHandler",
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(account), "profile updated successfully")
	helpers.LogSuccess("EditProfileHandler", "profile updated successfully", map[string]any{
		"user_id": account.UserID,
	})
}
