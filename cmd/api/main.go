package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/farmfeed/farmfeed/internal/config"
	"github.com/farmfeed/farmfeed/internal/contract"
	"github.com/farmfeed/farmfeed/internal/database"
	"github.com/farmfeed/farmfeed/internal/deal"
	dealStore "github.com/farmfeed/farmfeed/internal/deal/store"
	farmfeedHttp "github.com/farmfeed/farmfeed/internal/http"
	contractHandler "github.com/farmfeed/farmfeed/internal/http/contract"
	dealHandler "github.com/farmfeed/farmfeed/internal/http/deal"
	diagnosticsHandler "github.com/farmfeed/farmfeed/internal/http/diagnostics"
	listingHandler "github.com/farmfeed/farmfeed/internal/http/listing"
	matchingHandler "github.com/farmfeed/farmfeed/internal/http/matching"
	offerHandler "github.com/farmfeed/farmfeed/internal/http/offer"
	transportHandler "github.com/farmfeed/farmfeed/internal/http/transport"
	"github.com/farmfeed/farmfeed/internal/listing"
	"github.com/farmfeed/farmfeed/internal/listing/importer"
	listingStore "github.com/farmfeed/farmfeed/internal/listing/store"
	"github.com/farmfeed/farmfeed/internal/matching"
	matchingStore "github.com/farmfeed/farmfeed/internal/matching/store"
	"github.com/farmfeed/farmfeed/internal/offer"
	offerStore "github.com/farmfeed/farmfeed/internal/offer/store"
	"github.com/farmfeed/farmfeed/internal/transport"
	transportStore "github.com/farmfeed/farmfeed/internal/transport/store"
	"github.com/farmfeed/farmfeed/internal/user"
	userStore "github.com/farmfeed/farmfeed/internal/user/store"
)

const shutdownTimeout = 10 * time.Second

var migrateOnly = flag.Bool("migrate-only", false, "apply database migrations and exit")

func main() {
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.DB.Migrate || *migrateOnly {
		if err := database.Migrate(db); err != nil {
			return err
		}

		if *migrateOnly {
			return nil
		}
	}

	if !cfg.Deals.StrictTransitions {
		slog.Warn("deal status transitions are not enforced", "env", "DEALS_STRICT_TRANSITIONS")
	}

	userService, err := user.NewService(userStore.New(db), cfg.Users.CacheSize, cfg.Users.CacheTTL)
	if err != nil {
		return err
	}

	var (
		matchingService  = matching.NewService(matchingStore.New(db))
		listingService   = listing.NewService(listingStore.New(db), userService)
		offerService     = offer.NewService(offerStore.New(db), userService, listingService, offer.LogNotifier{Logger: slog.Default()})
		dealService      = deal.NewService(dealStore.New(db), cfg.Deals.StrictTransitions)
		transportService = transport.NewService(transportStore.New(db), userService)
		contractService  = contract.NewService(dealService, offerService, listingService, userService)
	)

	router := farmfeedHttp.New(farmfeedHttp.Handlers{
		Listings:    listingHandler.NewHandler(listingService, importer.NewParser(matchingService)),
		Aliases:     matchingHandler.NewHandler(matchingService),
		Offers:      offerHandler.NewHandler(offerService),
		Deals:       dealHandler.NewHandler(dealService),
		Transport:   transportHandler.NewHandler(transportService),
		Contracts:   contractHandler.NewHandler(contractService),
		Diagnostics: diagnosticsHandler.NewHandler(database.NewProbe(db), dealService),
	}, farmfeedHttp.Options{
		Timeout:        cfg.Server.Timeout,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		JWTSecret:      []byte(cfg.Auth.JWTSecret),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       time.Minute,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr, "auth", cfg.Auth.JWTSecret != "")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
