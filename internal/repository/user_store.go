package repository

import (
	"fmt"
	"sync"

	"gallery-auction/internal/apperrors"
	model "gallery-auction/internal/models"
)

// UserStore defines storage for user accounts
type UserStore interface {
	AddUser(user model.User) error
	GetUser(userID string) (model.User, error)
	GetUserByEmail(email string) (model.User, error)
	GetUserByUsername(username string) (model.User, error)
	UpdateUser(user model.User) error
}

// MemoryUserStore is a concurrency-safe in-memory implementation of UserStore
type MemoryUserStore struct {
	mu         sync.RWMutex
	users      map[string]model.User // key: userID
	byEmail    map[string]string     // key: email -> userID
	byUsername map[string]string     // key: username -> userID
	byPhone    map[string]string     // key: phone -> userID
}

// NewMemoryUserStore creates an empty user store
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users:      make(map[string]model.User),
		byEmail:    make(map[string]string),
		byUsername: make(map[string]string),
		byPhone:    make(map[string]string),
	}
}

// AddUser stores a new user, enforcing email, username and phone uniqueness
func (s *MemoryUserStore) AddUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return fmt.Errorf("add user %s: %w", user.Email, apperrors.ErrEmailExists)
	}
	if _, ok := s.byUsername[user.Username]; ok {
		return fmt.Errorf("add user %s: %w", user.Username, apperrors.ErrUsernameExists)
	}
	if user.Phone != "" {
		if _, ok := s.byPhone[user.Phone]; ok {
			return fmt.Errorf("add user %s: %w", user.Phone, apperrors.ErrPhoneExists)
		}
	}

	s.users[user.UserID] = user
	s.byEmail[user.Email] = user.UserID
	s.byUsername[user.Username] = user.UserID
	if user.Phone != "" {
		s.byPhone[user.Phone] = user.UserID
	}
	return nil
}

// GetUser returns the user by ID
func (s *MemoryUserStore) GetUser(userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("user %s: %w", userID, apperrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByEmail returns the user with the given email
func (s *MemoryUserStore) GetUserByEmail(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.byEmail[email]
	if !ok {
		return model.User{}, fmt.Errorf("user with email %s: %w", email, apperrors.ErrUserNotFound)
	}
	return s.users[userID], nil
}

// GetUserByUsername returns the user with the given username
func (s *MemoryUserStore) GetUserByUsername(username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.byUsername[username]
	if !ok {
		return model.User{}, fmt.Errorf("user with username %s: %w", username, apperrors.ErrUserNotFound)
	}
	return s.users[userID], nil
}

// UpdateUser replaces the stored record, keeping the uniqueness indexes in step
func (s *MemoryUserStore) UpdateUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.users[user.UserID]
	if !ok {
		return fmt.Errorf("update user %s: %w", user.UserID, apperrors.ErrUserNotFound)
	}

	if user.Email != old.Email {
		if _, taken := s.byEmail[user.Email]; taken {
			return fmt.Errorf("update user %s: %w", user.UserID, apperrors.ErrEmailExists)
		}
		delete(s.byEmail, old.Email)
		s.byEmail[user.Email] = user.UserID
	}
	if user.Username != old.Username {
		if _, taken := s.byUsername[user.Username]; taken {
			return fmt.Errorf("update user %s: %w", user.UserID, apperrors.ErrUsernameExists)
		}
		delete(s.byUsername, old.Username)
		s.byUsername[user.Username] = user.UserID
	}
	if user.Phone != old.Phone {
		if user.Phone != "" {
			if _, taken := s.byPhone[user.Phone]; taken {
				return fmt.Errorf("update user %s: %w", user.UserID, apperrors.ErrPhoneExists)
			}
			s.byPhone[user.Phone] = user.UserID
		}
		delete(s.byPhone, old.Phone)
	}

	s.users[user.UserID] = user
	return nil
}
