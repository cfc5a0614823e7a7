package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/draftmail/draftmail/internal/config"
	"github.com/draftmail/draftmail/internal/email"
	"github.com/draftmail/draftmail/internal/generator"
	"github.com/draftmail/draftmail/internal/handler"
	"github.com/draftmail/draftmail/internal/logger"
	"github.com/draftmail/draftmail/internal/middleware"
	"github.com/draftmail/draftmail/internal/router"
	"github.com/draftmail/draftmail/internal/service"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "draftmail",
	Short:        "AI email drafting and delivery server",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", "0.1.0").Str("environment", cfg.Environment).Msg("starting DraftMail server")

	// Completion provider client (read-only after startup)
	gen := generator.NewGroqClient(cfg.Generator)
	log.Info().Str("model", cfg.Generator.Model).Msg("completion client initialized")

	// Mail relay provider
	sender, err := newSender(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize mail sender")
	}
	log.Info().Str("provider", cfg.Email.Provider).Msg("mail sender initialized")

	// Initialize services
	draftSvc := service.NewDraftService(gen, log)
	deliverySvc := service.NewDeliveryService(sender, log)

	// Initialize handlers and middleware
	h := handler.New(draftSvc, deliverySvc, cfg, log)
	mw := middleware.New(log, cfg)

	// Set up router
	r := router.New(h, mw)

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

// newSender builds the configured mail relay provider.
func newSender(ctx context.Context, cfg *config.Config) (email.Sender, error) {
	switch cfg.Email.Provider {
	case "gmail":
		if cfg.Email.Gmail.RefreshToken != "" {
			return email.NewGmailSenderWithToken(
				ctx,
				cfg.Email.Gmail.ClientID,
				cfg.Email.Gmail.ClientSecret,
				cfg.Email.Gmail.RefreshToken,
				cfg.Email.SenderAddress,
				cfg.Email.SenderName,
			)
		}
		return email.NewGmailSender(ctx, email.GmailConfig{
			CredentialsJSON: cfg.Email.Gmail.CredentialsJSON,
			SenderAddress:   cfg.Email.SenderAddress,
			SenderName:      cfg.Email.SenderName,
		})
	case "smtp":
		return email.NewSMTPSender(email.SMTPConfig{
			Host:          cfg.Email.SMTP.Host,
			Port:          cfg.Email.SMTP.Port,
			Username:      cfg.Email.SMTP.Username,
			Password:      cfg.Email.SMTP.Password,
			SenderAddress: cfg.Email.SenderAddress,
			SenderName:    cfg.Email.SenderName,
		})
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Email.Provider)
	}
}
