package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/campaignhub/api/internal/app"
	"github.com/campaignhub/api/internal/config"
	"github.com/campaignhub/api/internal/infra/http"
	"github.com/campaignhub/api/internal/infra/http/handler"
	"github.com/campaignhub/api/internal/infra/http/routes"
	"github.com/campaignhub/api/internal/infra/jobs"
	"github.com/campaignhub/api/internal/infra/postgres"
	"github.com/campaignhub/api/internal/infra/redis"
	"github.com/campaignhub/api/pkg/email"
	"github.com/campaignhub/api/pkg/idp"
	"github.com/campaignhub/api/pkg/logger"
	"github.com/campaignhub/api/pkg/token"
	"github.com/campaignhub/api/pkg/validator"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	// ==========================================================================
	// Configuration & Logger
	// ==========================================================================
	cfg, err := config.Load()
	if err != nil {
		log := logger.NewDefault()
		log.Error("failed to load configuration", "error", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		log := logger.NewDefault()
		log.Error("invalid configuration", "error", err)
		return 1
	}

	log := initLogger(cfg)
	log.Info("starting application", "app", cfg.App.Name, "env", cfg.App.Env)

	// ==========================================================================
	// Infrastructure
	// ==========================================================================
	db, err := postgres.New(&cfg.Database)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		return 1
	}
	defer closeWithLog(db, "database", log)
	log.Info("database connected")

	redisClient, err := redis.New(&cfg.Redis, log)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		return 1
	}
	defer closeWithLog(redisClient, "redis", log)
	log.Info("redis connected")

	// ==========================================================================
	// Authentication
	// ==========================================================================
	verifier, err := initVerifier(ctx, cfg, log)
	if err != nil {
		return 1
	}
	defer closeWithLog(verifier, "credential verifier", log)

	// ==========================================================================
	// Repositories
	// ==========================================================================
	userRepo := postgres.NewUserRepository(db)
	tenantRepo := postgres.NewTenantRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	profileRepo := postgres.NewBrandProfileRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	planRepo := postgres.NewPlanRepository(db)
	log.Info("repositories initialized")

	// ==========================================================================
	// Job Queue
	// ==========================================================================
	var jobClient *jobs.Client
	if cfg.Jobs.Enabled {
		jobClient, err = jobs.NewClient(jobs.ClientConfig{
			RedisAddr:     cfg.Redis.Addr(),
			RedisPassword: cfg.Redis.Password,
			RedisDB:       cfg.Redis.DB,
		}, log)
		if err != nil {
			log.Error("failed to initialize job client", "error", err)
			return 1
		}
		defer closeWithLog(jobClient, "job client", log)
		log.Info("job client initialized")
	}

	// ==========================================================================
	// Services
	// ==========================================================================
	hasher := token.NewHasher(cfg.Invite.TokenSecret)

	membershipCache, err := app.NewMembershipCacheService(redisClient, tenantRepo, log)
	if err != nil {
		log.Error("failed to initialize membership cache", "error", err)
		return 1
	}

	tenantOpts := []app.TenantServiceOption{
		app.WithMembershipCacheService(membershipCache),
	}
	if jobClient != nil {
		tenantOpts = append(tenantOpts, app.WithEmailEnqueuer(jobClient))
	}

	userService := app.NewUserService(userRepo, log)
	tenantService := app.NewTenantService(tenantRepo, userRepo, projectRepo, hasher, log, tenantOpts...)
	clientService := app.NewClientService(clientRepo, log)
	profileService := app.NewBrandProfileService(profileRepo, clientRepo, log)
	projectService := app.NewProjectService(projectRepo, clientRepo, log)
	planService := app.NewPlanService(planRepo, projectRepo, log)
	log.Info("services initialized")

	// ==========================================================================
	// Handlers
	// ==========================================================================
	v := validator.New()
	handlers := routes.Handlers{
		Health: handler.NewHealthHandler(
			handler.WithDatabase(handler.PingerFunc(db.HealthCheck)),
			handler.WithRedis(handler.PingerFunc(redisClient.Ping)),
		),
		Auth:    handler.NewAuthHandler(membershipCache, log),
		Tenant:  handler.NewTenantHandler(tenantService, v, log),
		Client:  handler.NewClientHandler(clientService, v, log),
		Profile: handler.NewBrandProfileHandler(profileService, v, log),
		Project: handler.NewProjectHandler(projectService, v, log),
		Plan:    handler.NewPlanHandler(planService, v, log),
	}

	// ==========================================================================
	// HTTP Server
	// ==========================================================================
	server := http.NewServer(cfg, log)
	routes.Register(server.Router(), handlers, log, verifier, userService)

	// ==========================================================================
	// Email Worker
	// ==========================================================================
	var worker *jobs.Worker
	if cfg.Jobs.Enabled {
		emailService := app.NewEmailService(initEmailSender(cfg, log), cfg.Email, cfg.App.Name, log)
		worker, err = jobs.NewWorker(jobs.WorkerConfig{
			RedisAddr:     cfg.Redis.Addr(),
			RedisPassword: cfg.Redis.Password,
			RedisDB:       cfg.Redis.DB,
			Concurrency:   cfg.Jobs.Concurrency,
		}, emailService, log)
		if err != nil {
			log.Error("failed to initialize worker", "error", err)
			return 1
		}
		if err := worker.Start(); err != nil {
			log.Error("failed to start worker", "error", err)
			return 1
		}
		log.Info("email worker started", "concurrency", cfg.Jobs.Concurrency)
	}

	// ==========================================================================
	// Start Server
	// ==========================================================================
	go func() {
		if err := server.Start(); err != nil {
			log.Error("server error", "error", err)
		}
	}()
	log.Info("application started", "http_addr", cfg.Server.Addr())

	// ==========================================================================
	// Graceful Shutdown
	// ==========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if worker != nil {
		worker.Stop()
		log.Info("email worker stopped")
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
		return 1
	}

	log.Info("application stopped")
	return 0
}

// =============================================================================
// Helper Functions
// =============================================================================

func initLogger(cfg *config.Config) *logger.Logger {
	if cfg.IsDevelopment() {
		return logger.NewDevelopment()
	}
	return logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
}

func initVerifier(ctx context.Context, cfg *config.Config, log *logger.Logger) (*idp.Verifier, error) {
	verifier, err := idp.NewVerifier(ctx, idp.Config{
		JWKSURL:             cfg.IdP.ResolveJWKSURL(),
		IssuerURL:           cfg.IdP.IssuerURL,
		Audience:            cfg.IdP.Audience,
		RefreshInterval:     cfg.IdP.JWKSRefreshInterval,
		HTTPTimeout:         cfg.IdP.HTTPTimeout,
		RequireInitialFetch: false,
	})
	if err != nil {
		log.Error("failed to initialize credential verifier", "error", err)
		return nil, err
	}

	if verifier.HasKeys() {
		log.Info("credential verifier initialized",
			"jwks_url", cfg.IdP.ResolveJWKSURL(),
			"issuer", cfg.IdP.IssuerURL,
		)
	} else {
		log.Warn("credential verifier initialized without keys, will retry in background",
			"jwks_url", cfg.IdP.ResolveJWKSURL(),
			"issuer", cfg.IdP.IssuerURL,
		)
	}
	return verifier, nil
}

func initEmailSender(cfg *config.Config, log *logger.Logger) email.Sender {
	if cfg.Email.Enabled && cfg.Email.SMTPHost != "" {
		log.Info("smtp sender initialized", "host", cfg.Email.SMTPHost, "port", cfg.Email.SMTPPort)
		return email.NewSMTPSender(email.Config{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			User:     cfg.Email.SMTPUser,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.From,
			FromName: cfg.Email.FromName,
			TLS:      cfg.Email.SMTPTLS,
		})
	}
	log.Info("email sending disabled, using no-op sender")
	return email.NewNoOpSender()
}

type closer interface {
	Close() error
}

func closeWithLog(c closer, name string, log *logger.Logger) {
	if err := c.Close(); err != nil {
		log.Error("failed to close "+name, "error", err)
	}
}
