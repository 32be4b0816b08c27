package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sanuatmasai/Product-Recommendation/internal/config"
	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB(&config.DatabaseConfig{
		Driver:          "sqlite",
		Path:            filepath.Join(t.TempDir(), "test.db"),
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Minute,
		AutoMigrate:     true,
	})
	if err != nil {
		t.Fatalf("failed to init test database: %v", err)
	}
	return db
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	user := &domain.User{Username: "alice", HashedPassword: "hashed"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected assigned user id")
	}

	got, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != user.ID || got.HashedPassword != "hashed" {
		t.Errorf("unexpected user: %+v", got)
	}

	missing, err := repo.GetByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown username, got %+v", missing)
	}
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{Username: "bob", HashedPassword: "h"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exists, err := repo.ExistsByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected bob to exist")
	}

	exists, err = repo.ExistsByUsername(ctx, "carol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected carol to not exist")
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{Username: "dave", HashedPassword: "h"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Create(ctx, &domain.User{Username: "dave", HashedPassword: "h2"}); err == nil {
		t.Error("expected unique constraint violation")
	}
}

func TestInteractionRepository_CreateAndListByUser(t *testing.T) {
	repo := NewInteractionRepository(testDB(t))
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.Interaction{
		{UserID: 1, ProductID: 10, Type: domain.InteractionView, Timestamp: base},
		{UserID: 1, ProductID: 20, Type: domain.InteractionLike, Timestamp: base.Add(time.Minute)},
		{UserID: 1, ProductID: 30, Type: domain.InteractionPurchase, Timestamp: base.Add(2 * time.Minute)},
		{UserID: 2, ProductID: 10, Type: domain.InteractionLike, Timestamp: base.Add(3 * time.Minute)},
	}
	for i := range records {
		if err := repo.Create(ctx, &records[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if records[i].ID == 0 {
			t.Fatal("expected assigned interaction id")
		}
	}

	history, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 records for user 1, got %d", len(history))
	}
	// Newest first.
	expected := []int{30, 20, 10}
	for i, productID := range expected {
		if history[i].ProductID != productID {
			t.Errorf("position %d: expected product %d, got %d", i, productID, history[i].ProductID)
		}
	}

	empty, err := repo.ListByUser(ctx, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no records for user 99, got %d", len(empty))
	}
}

func TestInteractionRepository_ListByTypes(t *testing.T) {
	repo := NewInteractionRepository(testDB(t))
	ctx := context.Background()

	records := []domain.Interaction{
		{UserID: 1, ProductID: 10, Type: domain.InteractionView},
		{UserID: 1, ProductID: 20, Type: domain.InteractionLike},
		{UserID: 2, ProductID: 30, Type: domain.InteractionPurchase},
		{UserID: 2, ProductID: 40, Type: domain.InteractionView},
	}
	for i := range records {
		if err := repo.Create(ctx, &records[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := repo.ListByTypes(ctx, domain.CollaborativeTypes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 like/purchase records, got %d", len(got))
	}
	// Insertion order.
	if got[0].ProductID != 20 || got[1].ProductID != 30 {
		t.Errorf("unexpected ordering: [%d %d]", got[0].ProductID, got[1].ProductID)
	}
	for _, rec := range got {
		if rec.Type == domain.InteractionView {
			t.Errorf("view interaction leaked into collaborative query: %+v", rec)
		}
	}
}
