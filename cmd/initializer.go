package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"reviewsBack/internal/config"
	"reviewsBack/internal/handlers"
	"reviewsBack/internal/repositories"
	"reviewsBack/internal/services"
)

type tokenVerifier interface {
	Verify(ctx context.Context, token string) error
}

type application struct {
	cfg      config.Config
	logger   zerolog.Logger
	db       *repositories.Database
	verifier tokenVerifier

	userReviewsHandler        *handlers.UserReviewsHandler
	publicationReviewsHandler *handlers.PublicationReviewsHandler
	healthHandler             *handlers.HealthHandler
}

func initializeApp(cfg config.Config, db *repositories.Database, verifier tokenVerifier, logger zerolog.Logger) *application {
	// Repositories
	userReviewsRepo := repositories.NewUserReviewRepository(db)
	publicationReviewsRepo := repositories.NewPublicationReviewRepository(db)

	// Services
	userReviewsService := &services.UserReviewService{ReviewsRepo: userReviewsRepo}
	publicationReviewsService := &services.PublicationReviewService{ReviewsRepo: publicationReviewsRepo}

	// Handlers
	return &application{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		verifier: verifier,

		userReviewsHandler:        &handlers.UserReviewsHandler{Service: userReviewsService},
		publicationReviewsHandler: &handlers.PublicationReviewsHandler{Service: publicationReviewsService},
		healthHandler:             &handlers.HealthHandler{DB: db},
	}
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
