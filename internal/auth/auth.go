package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"gallery-auction/utils"
)

const tokenDuration = 24 * time.Hour

// Gin context keys populated by the auth middleware
const (
	ContextUserID  = "auth_user_id"
	ContextIsAdmin = "auth_is_admin"
)

// UserClaims is the payload carried by an access token
type UserClaims struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Manager mints and verifies access tokens
type Manager struct {
	secret []byte
}

// NewManager reads the signing secret from ACCESS_TOKEN_SECRET
func NewManager() (*Manager, error) {
	secret := utils.GetEnv("ACCESS_TOKEN_SECRET", "")
	if secret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET must be set in environment")
	}
	return &Manager{secret: []byte(secret)}, nil
}

// NewManagerWithSecret is intended for tests
func NewManagerWithSecret(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// IssueToken signs an access token for the given user
func (m *Manager) IssueToken(userID string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        utils.GenerateID(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates an access token string
func (m *Manager) VerifyToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth: invalid or expired token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("auth: invalid token")
	}
	return claims, nil
}

// HashPassword returns the bcrypt hash of a plaintext password
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(h), err
}

// ComparePassword checks a plaintext password against a stored hash
func ComparePassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
