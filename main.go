package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"assuredgig/config"
	_ "assuredgig/docs" // Generated by swag init
	"assuredgig/internal/app"
	"assuredgig/internal/database"
	"assuredgig/internal/logger"
	"assuredgig/internal/metrics"
	"assuredgig/internal/payments"
	"assuredgig/internal/server"
	"assuredgig/internal/session"
	"assuredgig/internal/storage/postgres"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

//go:generate swag init -g main.go -o docs

// @title           AssuredGig API
// @version         1.0
// @description     Freelance marketplace: jobs, proposals, contracts, milestone progress and payments.

// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cliApp := &cli.App{
		Name:   "assuredgig",
		Usage:  "AssuredGig marketplace API",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API (default)",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "Apply or roll back database migrations",
				Subcommands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "Apply all pending migrations",
						Action: migrateUp,
					},
					{
						Name:  "down",
						Usage: "Roll back migrations",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
						},
						Action: migrateDown,
					},
					{
						Name:   "version",
						Usage:  "Print the current schema version",
						Action: migrateVersion,
					},
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Setup(cfg.App.LogLevel, cfg.App.Env)
	return cfg, nil
}

func serve(cCtx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cCtx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbPool.Close()

	if err := database.MigrateUp(cfg.DB.DSN()); err != nil {
		return err
	}

	registry := payments.NewRegistry()
	if cfg.Payments.RazorpayEnabled() {
		registry.Register(payments.NewRazorpayGateway(cfg.Payments.RazorpayKeyID, cfg.Payments.RazorpayKeySecret, cfg.Payments.RazorpayWebhookSecret))
	} else {
		log.Info("Razorpay keys missing, provider disabled")
	}
	if cfg.Payments.StripeEnabled() {
		registry.Register(payments.NewStripeGateway(cfg.Payments.StripeSecretKey, cfg.Payments.StripeWebhookSecret, nil))
	} else {
		log.Info("Stripe keys missing, provider disabled")
	}

	application, err := app.New(cfg, app.Infrastructure{
		DBPool:      dbPool,
		RedisClient: redisClient,
		Store:       postgres.NewStore(dbPool),
		Sessions:    session.NewRedisStore(redisClient),
		Payments:    registry,
		Metrics:     metrics.New(),
	})
	if err != nil {
		return err
	}
	defer application.Close()

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go application.Hub.Run(hubCtx)

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shut down")
	}
	stopHub()

	log.Info("Application gracefully stopped.")
	return nil
}

func migrateUp(_ *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return database.MigrateUp(cfg.DB.DSN())
}

func migrateDown(cCtx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return database.MigrateDown(cfg.DB.DSN(), cCtx.Int("steps"))
}

func migrateVersion(_ *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	version, dirty, err := database.MigrationVersion(cfg.DB.DSN())
	if err != nil {
		return err
	}
	fmt.Printf("version %d (dirty: %t)\n", version, dirty)
	return nil
}
