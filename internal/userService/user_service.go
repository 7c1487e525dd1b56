package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"gallery-auction/internal/apperrors"
	"gallery-auction/internal/auth"
	model "gallery-auction/internal/models"
	"gallery-auction/internal/repository"
	"gallery-auction/internal/storage"
	"gallery-auction/utils"
)

// RegisterInput carries everything needed to create an account
type RegisterInput struct {
	Fullname     string
	Username     string
	Email        string
	Phone        string
	Password     string
	ProfileImage []byte
	ContentType  string
}

// ProfileUpdate carries the editable profile fields; empty strings are
// left untouched, a non-empty image replaces the stored one
type ProfileUpdate struct {
	Fullname     string
	Username     string
	Email        string
	ProfileImage []byte
	ContentType  string
}

// UserService owns registration, login and profile editing
type UserService struct {
	users      repository.UserStore
	objects    storage.ObjectStore
	tokens     *auth.Manager
	adminEmail string
}

// NewUserService creates a new UserService instance. Accounts registered
// with adminEmail are granted the admin capability.
func NewUserService(users repository.UserStore, objects storage.ObjectStore, tokens *auth.Manager, adminEmail string) *UserService {
	return &UserService{
		users:      users,
		objects:    objects,
		tokens:     tokens,
		adminEmail: adminEmail,
	}
}

// Register creates an account, uploads the profile image and issues a token
func (s *UserService) Register(ctx context.Context, in RegisterInput) (model.User, string, error) {
	if in.Fullname == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return model.User{}, "", fmt.Errorf("service: %w - please fill all the fields", apperrors.ErrInvalidInput)
	}
	if len(in.ProfileImage) == 0 {
		return model.User{}, "", fmt.Errorf("service: %w - profile picture is required", apperrors.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return model.User{}, "", fmt.Errorf("service: %w - email is not a valid email", apperrors.ErrInvalidInput)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to hash password: %w", err)
	}

	userID := utils.GenerateID()
	profileURL, err := s.objects.Upload(ctx, profileObjectName(userID), in.ProfileImage, in.ContentType)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to upload profile image: %w", err)
	}

	newUser := model.User{
		UserID:   userID,
		Fullname: in.Fullname,
		Username: in.Username,
		Email:    in.Email,
		Phone:    in.Phone,
		Profile:  profileURL,
		Password: hash,
		IsAdmin:  s.adminEmail != "" && strings.EqualFold(in.Email, s.adminEmail),
	}

	if err := s.users.AddUser(newUser); err != nil {
		// the account was rejected, drop the orphaned image
		_ = s.objects.Delete(ctx, profileObjectName(userID))
		return model.User{}, "", fmt.Errorf("service: failed to create user: %w", err)
	}

	token, err := s.tokens.IssueToken(newUser.UserID, newUser.IsAdmin)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to issue token: %w", err)
	}

	utils.Info("user registered", map[string]any{
		"user_id":  newUser.UserID,
		"username": newUser.Username,
		"is_admin": newUser.IsAdmin,
	})
	return newUser, token, nil
}

// Login checks credentials and issues a fresh token
func (s *UserService) Login(email, password string) (model.User, string, error) {
	if email == "" || password == "" {
		return model.User{}, "", fmt.Errorf("service: %w - email and password are required", apperrors.ErrInvalidInput)
	}

	account, err := s.users.GetUserByEmail(email)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: %w", apperrors.ErrInvalidCredentials)
	}
	if err := auth.ComparePassword(password, account.Password); err != nil {
		return model.User{}, "", fmt.Errorf("service: %w", apperrors.ErrInvalidCredentials)
	}

	token, err := s.tokens.IssueToken(account.UserID, account.IsAdmin)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to issue token: %w", err)
	}
	return account, token, nil
}

// GetProfile returns the account for an authenticated user
func (s *UserService) GetProfile(userID string) (model.User, error) {
	account, err := s.users.GetUser(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return account, nil
}

// EditProfile updates the given fields, replacing the profile image when
// a new one is provided
func (s *UserService) EditProfile(ctx context.Context, userID string, update ProfileUpdate) (model.User, error) {
	account, err := s.users.GetUser(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}

	if update.Fullname != "" {
		account.Fullname = update.Fullname
	}
	if update.Username != "" {
		account.Username = update.Username
	}
	if update.Email != "" {
		if _, err := mail.ParseAddress(update.Email); err != nil {
			return model.User{}, fmt.Errorf("service: %w - email is not a valid email", apperrors.ErrInvalidInput)
		}
		account.Email = update.Email
	}

	if len(update.ProfileImage) > 0 {
		// the object name is stable per user, the upload overwrites in place
		url, err := s.objects.Upload(ctx, profileObjectName(userID), update.ProfileImage, update.ContentType)
		if err != nil {
			return model.User{}, fmt.Errorf("service: failed to upload new profile image: %w", err)
		}
		account.Profile = url
	}

	if err := s.users.UpdateUser(account); err != nil {
		return model.User{}, fmt.Errorf("service: failed to update user %s: %w", userID, err)
	}
	return account, nil
}

func profileObjectName(userID string) string {
	return "profiles/" + userID
}
