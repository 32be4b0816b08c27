package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// ErrUsernameTaken is returned by Register when the username already exists.
var ErrUsernameTaken = errors.New("username already registered")

// ErrInvalidCredentials is returned by Login on a bad username or password.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// UserStore is the persistence surface the auth service needs.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// AuthConfig holds configuration for the auth service.
type AuthConfig struct {
	Secret      string
	TokenExpiry time.Duration
	BcryptCost  int // 0 means bcrypt.DefaultCost
}

// AuthService handles registration, login, and token issuing.
type AuthService struct {
	users       UserStore
	secret      []byte
	tokenExpiry time.Duration
	bcryptCost  int
}

// Claims are the JWT claims carried by an access token.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// Token is the login response body.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewAuthService creates a new auth service.
// Parameters:
//   - users: user persistence store.
//   - cfg: auth configuration; nil falls back to defaults with an empty secret.
// Returns:
//   - *AuthService: initialized service.
func NewAuthService(users UserStore, cfg *AuthConfig) *AuthService {
	svc := &AuthService{
		users:       users,
		tokenExpiry: 30 * time.Minute,
		bcryptCost:  bcrypt.DefaultCost,
	}
	if cfg != nil {
		svc.secret = []byte(cfg.Secret)
		if cfg.TokenExpiry > 0 {
			svc.tokenExpiry = cfg.TokenExpiry
		}
		if cfg.BcryptCost > 0 {
			svc.bcryptCost = cfg.BcryptCost
		}
	}
	return svc
}

// Register creates a new user account with a bcrypt-hashed password.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - username: desired unique username.
//   - password: plaintext password.
// Returns:
//   - *domain.User: created user with assigned ID.
//   - error: ErrUsernameTaken if the name is in use, or a store failure.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:       username,
		HashedPassword: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a signed access token.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - username: account username.
//   - password: plaintext password.
// Returns:
//   - *Token: bearer token on success.
//   - error: ErrInvalidCredentials on a bad username or password, or a store failure.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Token, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	signed, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &Token{AccessToken: signed, TokenType: "bearer"}, nil
}

// issueToken signs an HS256 JWT with the user's identity claims.
func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates an access token.
// Parameters:
//   - tokenString: compact JWT from the Authorization header.
// Returns:
//   - *Claims: token claims if the token is valid and unexpired.
//   - error: non-nil if the token cannot be verified.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
