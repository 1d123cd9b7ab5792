package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/slyouthjobs/api/internal/config"
	"github.com/slyouthjobs/api/internal/database"
	"github.com/slyouthjobs/api/internal/handler"
	"github.com/slyouthjobs/api/internal/middleware"
	"github.com/slyouthjobs/api/internal/repository"
	"github.com/slyouthjobs/api/internal/service"
	"github.com/slyouthjobs/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Apply schema definitions (tables, fields, unique indexes)
	if err := database.ApplySchema(ctx, db, cfg.Database.MigrationsPath); err != nil {
		slog.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	districtRepo := repository.NewDistrictRepository(db)

	// Initialize services
	tokenService := service.NewTokenService(service.TokenServiceConfig{
		JWTService: jwtService,
	})

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:     userRepo,
		TokenService: tokenService,
	})

	jobService := service.NewJobService(service.JobServiceConfig{
		JobRepo:  jobRepo,
		UserRepo: userRepo,
	})

	applicationService := service.NewApplicationService(service.ApplicationServiceConfig{
		AppRepo: applicationRepo,
		JobRepo: jobRepo,
	})

	districtService := service.NewDistrictService(service.DistrictServiceConfig{
		DistrictRepo: districtRepo,
		JobRepo:      jobRepo,
	})

	seederService := service.NewSeederService(service.SeederServiceConfig{
		DistrictRepo: districtRepo,
		UserRepo:     userRepo,
		AuthService:  authService,
		JobService:   jobService,
	})

	// Seed the district reference table (idempotent upserts)
	if err := seederService.SeedDistricts(ctx); err != nil {
		slog.Error("failed to seed districts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Optionally seed demo accounts and jobs for local development
	if cfg.Seed.DemoData {
		if err := seederService.SeedDemoData(ctx); err != nil {
			slog.Error("failed to seed demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100, // 100 requests per minute
		Window: time.Minute,
		Burst:  20, // Allow bursts up to 20
	})
	defer rateLimiter.Stop()

	// Initialize idempotency store for retried writes on flaky connections
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService, authService)
	applicationHandler := handler.NewApplicationHandler(applicationService, authService)
	districtHandler := handler.NewDistrictHandler(districtService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Auth endpoints (public)
	mux.HandleFunc("POST /api/register", authHandler.Register)
	mux.HandleFunc("POST /api/login", authHandler.Login)

	// District reference and stats endpoints (public)
	mux.HandleFunc("GET /api/districts", districtHandler.List)
	mux.HandleFunc("GET /api/stats/districts", districtHandler.Stats)

	// Job endpoints (search and detail are public)
	mux.HandleFunc("GET /api/jobs", jobHandler.Search)
	mux.HandleFunc("GET /api/jobs/{jobId}", jobHandler.Get)

	// Protected endpoints
	authMiddleware := middleware.Auth(tokenService)
	mux.Handle("GET /api/me", authMiddleware(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /api/jobs", authMiddleware(http.HandlerFunc(jobHandler.Create)))
	mux.Handle("POST /api/applications", authMiddleware(http.HandlerFunc(applicationHandler.Apply)))
	mux.Handle("GET /api/my-applications", authMiddleware(http.HandlerFunc(applicationHandler.MyApplications)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Idempotency(idempotencyStore),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
