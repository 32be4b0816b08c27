package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
)

type memUserStore struct {
	users  map[string]*domain.User
	nextID int
	err    error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*domain.User), nextID: 1}
}

func (s *memUserStore) Create(_ context.Context, user *domain.User) error {
	if s.err != nil {
		return s.err
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.Username] = user
	return nil
}

func (s *memUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[username], nil
}

func (s *memUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.users[username]
	return ok, nil
}

func newTestAuthService(store UserStore) *AuthService {
	return NewAuthService(store, &AuthConfig{
		Secret:      "test-secret",
		TokenExpiry: time.Minute,
		BcryptCost:  4, // bcrypt.MinCost, keeps the tests fast
	})
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	store := newMemUserStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected assigned user id")
	}
	if user.HashedPassword == "s3cret" {
		t.Error("password must not be stored in plaintext")
	}

	token, err := svc.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.TokenType != "bearer" {
		t.Errorf("expected bearer token type, got %q", token.TokenType)
	}
	if token.AccessToken == "" {
		t.Fatal("expected non-empty access token")
	}

	claims, err := svc.VerifyToken(token.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected user_id %d in claims, got %d", user.ID, claims.UserID)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject alice, got %q", claims.Subject)
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc := newTestAuthService(newMemUserStore())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "bob", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(ctx, "bob", "other"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc := newTestAuthService(newMemUserStore())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "carol", "right"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown user", username: "nobody", password: "right"},
		{name: "wrong password", username: "carol", password: "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, tt.username, tt.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_VerifyTokenRejectsTampering(t *testing.T) {
	store := newMemUserStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dave", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	token, err := svc.Login(ctx, "dave", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.VerifyToken(token.AccessToken + "x"); err == nil {
		t.Error("expected error for tampered token")
	}

	// A token signed under a different secret must not verify.
	other := NewAuthService(store, &AuthConfig{Secret: "other-secret", TokenExpiry: time.Minute, BcryptCost: 4})
	if _, err := other.VerifyToken(token.AccessToken); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestAuthService_StoreError(t *testing.T) {
	store := newMemUserStore()
	store.err = errors.New("connection refused")
	svc := newTestAuthService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "erin", "pw"); err == nil {
		t.Error("expected store error from Register")
	}
	if _, err := svc.Login(ctx, "erin", "pw"); err == nil {
		t.Error("expected store error from Login")
	}
}
