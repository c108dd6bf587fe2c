package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/careerforge/resume-platform/internal/api/metrics"
	"github.com/careerforge/resume-platform/internal/core/domain"
	"github.com/careerforge/resume-platform/internal/core/ports"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// AuthService implements signup, login and profile lookup.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	jwtMethod jwt.SigningMethod
	tokenTTL  time.Duration
}

// NewAuthService builds an AuthService. Unknown algorithm names and
// non-positive TTLs fall back to HS256 and 30 days.
func NewAuthService(repo ports.UserRepository, jwtSecret, jwtAlgorithm string, tokenTTL time.Duration) *AuthService {
	method := jwt.GetSigningMethod(jwtAlgorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, jwtMethod: method, tokenTTL: tokenTTL}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	if input.Email == "" || input.Password == "" || input.FullName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	// Uniqueness is enforced by the unique index on email; the repository
	// surfaces a duplicate write as domain.ErrEmailTaken.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.Inc()
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// A missing account and a bad password are indistinguishable to
			// the caller.
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(s.jwtMethod, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
