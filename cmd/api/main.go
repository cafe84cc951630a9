// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arumaroma/storefront-backend/internal/config"
	"github.com/arumaroma/storefront-backend/internal/domain/cart"
	"github.com/arumaroma/storefront-backend/internal/domain/catalog"
	"github.com/arumaroma/storefront-backend/internal/domain/favorites"
	"github.com/arumaroma/storefront-backend/internal/domain/payment"
	"github.com/arumaroma/storefront-backend/internal/domain/prefs"
	"github.com/arumaroma/storefront-backend/internal/domain/quotes"
	"github.com/arumaroma/storefront-backend/internal/domain/user"
	"github.com/arumaroma/storefront-backend/internal/infrastructure/database/postgres"
	"github.com/arumaroma/storefront-backend/internal/infrastructure/database/redis"
	httpserver "github.com/arumaroma/storefront-backend/internal/interfaces/http"
	"github.com/arumaroma/storefront-backend/internal/interfaces/http/routes"
	"github.com/arumaroma/storefront-backend/internal/logging"
	"github.com/arumaroma/storefront-backend/internal/pkg/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg)
	logger.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	db, err := postgres.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := db.Health(); err != nil {
		log.Fatalf("Database health check failed: %v", err)
	}
	if err := redisClient.Health(); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	migration := postgres.NewMigration(db.GetDB())
	if err := migration.RunAutoMigrations(); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
	if err := migration.CreateIndexes(); err != nil {
		log.Printf("Warning: Index creation failed: %v", err)
	}

	// Preference store over Redis, scoped per user.
	store := prefs.NewStore(prefs.NewRedisBackend(redisClient.GetClient()), logger)

	// Catalog sources and reconciliation.
	cache := catalog.NewCache()
	bundled := catalog.NewBundledSource(cfg.Catalog.BundledPath, logger)
	var remote catalog.Source
	if cfg.Catalog.RemoteEnable {
		remote = catalog.NewRemoteSource(cfg.Catalog.RemoteURL, cfg.Catalog.FetchTimeout, logger)
	}
	reconciler := catalog.NewReconciler(bundled, remote, cache, logger)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	reconciler.Reconcile(startupCtx)

	favoritesService := favorites.NewService(startupCtx, store, logger)

	cartService := cart.NewService(store, logger)
	cartService.Restore(startupCtx, bundled)
	cancelStartup()

	paymentService := payment.NewService(store, logger)
	quotesService := quotes.NewService(cfg.Quotes.FeedURL, cfg.Quotes.FetchTimeout, logger)
	jwtManager := auth.NewJWTManager(cfg)
	userService := user.NewService(db.GetDB(), cfg, store)
	userService.OnScopeChange(func(ctx context.Context) {
		favoritesService.ReloadForActiveUser(ctx)
		cartService.Restore(ctx, bundled)
	})

	services := &routes.Services{
		Users:       userService,
		Reconciler:  reconciler,
		Cache:       cache,
		Favorites:   favoritesService,
		Cart:        cartService,
		Payments:    paymentService,
		Quotes:      quotesService,
		Prefs:       store,
		JWT:         jwtManager,
		QuotesLimit: cfg.Quotes.Limit,
	}

	server := httpserver.NewServer(cfg, logger, db.GetDB(), redisClient.GetClient(), services)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logger.Info("Server shutdown completed")
}
