package auth

import (
	"context"
	"errors"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"ecommerce-backend/internal/modules/user"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login verifies the credentials and issues a signed bearer token.
	Login(ctx context.Context, email, password string) (*AuthResponse, error)

	// Register creates a new account and issues a token for it.
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// ParseToken validates a bearer token and returns its claims.
	ParseToken(tokenString string) (*Claims, error)
}

// Claims are the JWT claims carried by every issued token. The user id
// travels in the standard Subject field.
type Claims struct {
	jwt.StandardClaims
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  user.Role `json:"role"`
}

// UserID returns the authenticated user's id from the Subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   user.Role `json:"role"`
}

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")
