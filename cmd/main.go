package main

import (
	"context"
	"errors"
	"flag"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"reviewsBack/internal/config"
	"reviewsBack/internal/logging"
	"reviewsBack/internal/repositories"
	"reviewsBack/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger := logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	addr := flag.String("addr", ":"+cfg.Server.Port, "HTTP network address")
	migrate := flag.Bool("migrate", cfg.Database.AutoMigrate, "create tables before serving")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repositories.OpenDatabase(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	logger.Info().Str("dialect", db.Dialect.Name).Msg("connected to database")

	if *migrate {
		if err := repositories.Migrate(ctx, db); err != nil {
			logger.Fatal().Err(err).Msg("migrate database")
		}
		logger.Info().Msg("database schema is up to date")
	}

	verifier := services.NewTokenVerifier(cfg.Auth.TokenVerificationURL, cfg.Auth.ServerToken, nil)
	app := initializeApp(cfg, db, verifier, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", services.AuthHeader},
	})

	srv := &http.Server{
		Addr:         *addr,
		ErrorLog:     stdlog.New(logger, "", 0),
		Handler:      addSecurityHeaders(c.Handler(app.routes())),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("addr", *addr).Str("env", cfg.Env).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("listen")
	}
	logger.Info().Msg("server stopped")
}
