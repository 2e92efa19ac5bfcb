package handlers

import (
	"net/http"

	"reviewsBack/internal/models"
	"reviewsBack/internal/repositories"
	"reviewsBack/internal/services"
)

// UserReviewsHandler serves /v1/user_reviews.
type UserReviewsHandler struct {
	Service *services.UserReviewService
}

// GetReviews lists user reviews matching the booking_id, reviewer_id and
// reviewee_id query parameters. Absent parameters don't filter.
func (h *UserReviewsHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	filters, err := repositories.UserReviewFilters.Bind(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	reviews, err := h.Service.GetUserReviews(r.Context(), filters)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *UserReviewsHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserReviewRequest
	if err := decodeRequest(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	created, err := h.Service.CreateUserReview(r.Context(), req.Review())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// GetScore answers 204 with no body when the user has never been reviewed.
func (h *UserReviewsHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	revieweeID, err := intParam(r, "reviewee_id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	score, ok, err := h.Service.GetRevieweeScore(r.Context(), revieweeID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, score)
}
