package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"

	"github.com/sanuatmasai/Product-Recommendation/internal/catalog"
	"github.com/sanuatmasai/Product-Recommendation/internal/config"
	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
	"github.com/sanuatmasai/Product-Recommendation/internal/logger"
	"github.com/sanuatmasai/Product-Recommendation/internal/repository"
	"github.com/sanuatmasai/Product-Recommendation/internal/service"
)

// seed provisions demo users and randomized interactions so the
// collaborative endpoints have data to work with locally.
func main() {
	appLogger := logger.New(&logger.Config{
		Level:       "info",
		Format:      "text",
		ServiceName: "product-api-seed",
	})
	logger.SetDefaultLogger(appLogger)

	users := flag.Int("users", 10, "Number of demo users to create")
	perUser := flag.Int("interactions", 8, "Interactions to record per user")
	password := flag.String("password", "password123", "Password for demo users")
	seedVal := flag.Int64("seed", 42, "Random seed")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	store, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load product catalog")
	}
	if store.Len() == 0 {
		appLogger.Fatal("Catalog is empty, nothing to seed against")
	}

	userRepo := repository.NewUserRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	authService := service.NewAuthService(userRepo, &service.AuthConfig{
		Secret:      cfg.Auth.Secret,
		TokenExpiry: cfg.Auth.TokenExpiry,
		BcryptCost:  cfg.Auth.BcryptCost,
	})
	trackingService := service.NewTrackingService(interactionRepo, appLogger)

	rng := rand.New(rand.NewSource(*seedVal))
	types := []domain.InteractionType{
		domain.InteractionView,
		domain.InteractionView,
		domain.InteractionLike,
		domain.InteractionPurchase,
	}
	products := store.All()
	ctx := context.Background()

	created := 0
	recorded := 0
	for i := 1; i <= *users; i++ {
		username := fmt.Sprintf("demo_user_%d", i)
		user, err := authService.Register(ctx, username, *password)
		if err != nil {
			if errors.Is(err, service.ErrUsernameTaken) {
				existing, lookupErr := userRepo.GetByUsername(ctx, username)
				if lookupErr != nil || existing == nil {
					appLogger.WithError(lookupErr).Fatal("Failed to look up existing demo user")
				}
				user = existing
			} else {
				appLogger.WithError(err).Fatal("Failed to create demo user")
			}
		} else {
			created++
		}

		for j := 0; j < *perUser; j++ {
			product := products[rng.Intn(len(products))]
			interactionType := types[rng.Intn(len(types))]
			if _, err := trackingService.Track(ctx, user.ID, product.ID, interactionType); err != nil {
				appLogger.WithError(err).Fatal("Failed to record interaction")
			}
			recorded++
		}
	}

	logger.With(logger.Fields{"users_created": created}).
		WithCount(recorded).
		Info(ctx, "Seeding complete")
}
