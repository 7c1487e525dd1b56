package apperrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrPictureNotFound  = errors.New("picture not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrPostNotFound     = errors.New("post not found")
)

// Uniqueness conflicts
var (
	ErrAlreadyAuctioned = errors.New("picture is already placed in an auction")
	ErrCategoryExists   = errors.New("category already exists")
	ErrEmailExists      = errors.New("email already exists")
	ErrUsernameExists   = errors.New("username already exists")
	ErrPhoneExists      = errors.New("phone already exists")
	ErrAlreadyFollowing = errors.New("already following this user")
)

// Business logic errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAuctionEnded       = errors.New("auction has already ended")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrDuplicateAmount    = errors.New("a bid with the same amount already exists")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("admin access required")
	ErrUnauthenticated    = errors.New("authentication required")
)
