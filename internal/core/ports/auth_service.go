package ports

import (
	"context"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

// SignupInput carries the fields required to register an account.
type SignupInput struct {
	Email    string
	Password string
	FullName string
}

// AuthResult pairs a signed bearer token with the authenticated user.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Profile returns the account behind a validated token's user id.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
