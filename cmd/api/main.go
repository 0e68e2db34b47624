package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"celebrationgarden/config"
	"celebrationgarden/internal/adapters/auth"
	"celebrationgarden/internal/adapters/cms"
	"celebrationgarden/internal/adapters/email"
	"celebrationgarden/internal/adapters/pdf"
	"celebrationgarden/internal/adapters/textgen"
	delivery "celebrationgarden/internal/delivery/http"
	"celebrationgarden/internal/domain"
	"celebrationgarden/internal/repository/postgres"
	"celebrationgarden/internal/services"
)

// @title           Celebration Garden API
// @version         1.0
// @description     Backend for the Celebration Garden venue site: invitations, guest scrapbooks, venue inquiries.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	store := cms.NewClient(cfg.CMSBaseURL, cfg.CMSAPIToken, logger)

	generator := textgen.New(textgen.Config{
		Provider:       cfg.LLMProvider,
		GoogleAIAPIKey: cfg.GoogleAIAPIKey,
		GeminiModel:    cfg.GeminiModel,
		GroqAPIKey:     cfg.GroqAPIKey,
	}, logger)

	heuristic := services.NewHeuristicOrganizer()
	var organizer domain.ContentOrganizer = heuristic
	if generator != nil {
		organizer = services.NewModelOrganizer(generator, heuristic, logger)
	}

	templates, err := email.NewTemplateRenderer()
	if err != nil {
		logger.Error("parse email templates", "err", err)
		os.Exit(1)
	}
	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)
	hasher := auth.NewPasswordHasher()

	inquiryRepo := postgres.NewInquiryRepository(db)

	scrapbookService := services.NewScrapbookService(
		store, organizer, pdf.NewRenderer(), logger, cfg.RequestTimeout, cfg.LLMTimeout)
	invitationService := services.NewInvitationService(store, logger, cfg.RequestTimeout)
	inquiryService := services.NewInquiryService(
		inquiryRepo, mailer, templates, cfg.InquiryNotifyEmail, logger, cfg.RequestTimeout)
	contentService := services.NewContentService(store, logger, cfg.RequestTimeout)
	authService := services.NewAuthService(
		cfg.AdminEmail, cfg.AdminPasswordHash, hasher, tokens, logger)

	router := delivery.NewRouter(delivery.RouterConfig{
		Invitations:    invitationService,
		Scrapbook:      scrapbookService,
		Inquiries:      inquiryService,
		Content:        contentService,
		Auth:           authService,
		TokenVerifier:  tokens,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
