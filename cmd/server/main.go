package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "clubhub-backend/internal/api/http"
	"clubhub-backend/internal/clock"
	"clubhub-backend/internal/config"
	"clubhub-backend/internal/jobs"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository/postgres"
	"clubhub-backend/internal/scheduler"
	"clubhub-backend/internal/security"
	"clubhub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ClubHub backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	clk := clock.New()
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	sessions := security.NewSessionManager(cfg.Session.Secret, sessionTTL)
	hasher := security.NewPasswordHasher()
	throttleWindow := time.Duration(cfg.Throttle.WindowSeconds) * time.Second
	accountThrottle := security.NewLoginThrottle(throttleWindow, cfg.Throttle.MaxAttempts, clk)
	managerThrottle := security.NewLoginThrottle(throttleWindow, cfg.Throttle.MaxAttempts, clk)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	authSvc := service.NewAuthService(store, hasher, sessions, accountThrottle, managerThrottle)
	clubSvc := service.NewClubService(store, clk)
	clubAppSvc := service.NewClubApplicationService(store, emailSvc, clk)
	membershipSvc := service.NewMembershipService(store, clk)
	eventSvc := service.NewEventService(store, clk)
	announcementSvc := service.NewAnnouncementService(store, clk)
	notificationSvc := service.NewNotificationService(store)
	adminSvc := service.NewAdminService(store, hasher, emailSvc, clk)

	// Initialize HTTP handlers
	session := httpapi.NewSessionMiddleware(sessions, store)
	authHandler := httpapi.NewAuthHandler(authSvc, sessionTTL)
	studentHandler := httpapi.NewStudentHandler(clubSvc, clubAppSvc, membershipSvc, eventSvc, announcementSvc, notificationSvc, cfg.Paging.PageSize)
	managerHandler := httpapi.NewManagerHandler(clubSvc, membershipSvc, eventSvc, announcementSvc)
	adminHandler := httpapi.NewAdminHandler(adminSvc, cfg.Paging.PageSize)

	router := httpapi.NewRouter(session, authHandler, studentHandler, managerHandler, adminHandler)

	// The throttle is process-local state, so scheduled jobs run in-process.
	jobRunner := jobs.NewJobRunner(store, []*security.LoginThrottle{accountThrottle, managerThrottle}, clk, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
}
