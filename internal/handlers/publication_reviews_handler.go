package handlers

import (
	"net/http"

	"reviewsBack/internal/models"
	"reviewsBack/internal/repositories"
	"reviewsBack/internal/services"
)

type PublicationReviewsHandler struct {
	Service *services.PublicationReviewService
}

func (h *PublicationReviewsHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	filters, err := repositories.PublicationReviewFilters.Bind(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	reviews, err := h.Service.GetPublicationReviews(r.Context(), filters)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *PublicationReviewsHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePublicationReviewRequest
	if err := decodeRequest(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	created, err := h.Service.CreatePublicationReview(r.Context(), req.Review())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *PublicationReviewsHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	publicationID, err := intParam(r, "publication_id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	score, ok, err := h.Service.GetPublicationScore(r.Context(), publicationID)
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
