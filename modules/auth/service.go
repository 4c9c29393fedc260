package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"

	domain "github.com/example/securecam-store/domain/directory"
)

var (
	// ErrInvalidCredentials is returned when login credentials are wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrWeakPassword is returned when the password is too short.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
	// ErrPasswordTooLong is returned when the password exceeds bcrypt's
	// 72-byte limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters")
	// ErrNameRequired is returned when registering without a name.
	ErrNameRequired = errors.New("name is required")
)

// Service handles authentication. Roles come from the stored user record,
// not from any property of the email address: the original system derived
// ADMIN from a hardcoded address, which is not a security model and was
// deliberately not ported.
type Service struct {
	repo   *domain.Repository
	hasher *PasswordHasher
	jwt    *JWTManager
}

// NewService creates a new auth service.
func NewService(repo *domain.Repository, hasher *PasswordHasher, jwt *JWTManager) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Login authenticates a user and returns a token pair carrying the user's
// role claim.
func (s *Service) Login(_ context.Context, email, password string) (*TokenPair, error) {
	user, err := s.repo.FindUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	log.Printf("[auth] Login user=%s role=%s", user.ID, user.Role)
	return s.tokenPair(user)
}

// Register creates a new customer account.
func (s *Service) Register(_ context.Context, req *RegisterRequest) (*domain.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrWeakPassword
	}
	if len(req.Password) > 72 {
		return nil, ErrPasswordTooLong
	}

	exists, err := s.repo.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	ids, err := s.repo.UserIDs()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           domain.NextUserID(ids),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Role:         domain.RoleCustomer,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[auth] Registered user=%s", user.ID)
	return user, nil
}

// Refresh validates a refresh token and issues a new token pair.
func (s *Service) Refresh(_ context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	user, err := s.repo.FindUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return s.tokenPair(user)
}

// ValidateToken validates an access token and returns its claims.
func (s *Service) ValidateToken(_ context.Context, token string) (*Claims, error) {
	return s.jwt.ValidateAccessToken(token)
}

func (s *Service) tokenPair(user *domain.User) (*TokenPair, error) {
	access, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.jwt.AccessTokenDuration(),
		TokenType:    "Bearer",
		UserID:       user.ID,
		Name:         user.Name,
		Role:         user.Role,
	}, nil
}
