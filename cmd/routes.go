package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.requestID, app.logRequest, secureHeaders)
	apiMiddleware := standardMiddleware.Append(app.authenticate, makeResponseJSON)

	mux := pat.New()

	mux.Get("/health", standardMiddleware.ThenFunc(app.healthHandler.Health))
	mux.Get("/metrics", standardMiddleware.Then(promhttp.Handler()))

	// User reviews
	mux.Get("/v1/user_reviews/reviews", apiMiddleware.ThenFunc(app.userReviewsHandler.GetReviews))
	mux.Post("/v1/user_reviews/reviews", apiMiddleware.ThenFunc(app.userReviewsHandler.CreateReview))
	mux.Get("/v1/user_reviews/score/user/:reviewee_id", apiMiddleware.ThenFunc(app.userReviewsHandler.GetScore))

	// Publication reviews
	mux.Get("/v1/publication_reviews/reviews", apiMiddleware.ThenFunc(app.publicationReviewsHandler.GetReviews))
	mux.Post("/v1/publication_reviews/reviews", apiMiddleware.ThenFunc(app.publicationReviewsHandler.CreateReview))
	mux.Get("/v1/publication_reviews/score/publication/:publication_id", apiMiddleware.ThenFunc(app.publicationReviewsHandler.GetScore))

	mux.NotFound = standardMiddleware.ThenFunc(app.notFound)

	return mux
}
