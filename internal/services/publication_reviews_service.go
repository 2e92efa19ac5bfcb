package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"reviewsBack/internal/metrics"
	"reviewsBack/internal/models"
	"reviewsBack/internal/query"
	"reviewsBack/internal/repositories"
)

const publicationReviewEntity = "publication_review"

type PublicationReviewService struct {
	ReviewsRepo *repositories.PublicationReviewRepository
}

func (s *PublicationReviewService) GetPublicationReviews(ctx context.Context, filters []query.Filter) ([]models.PublicationReview, error) {
	return s.ReviewsRepo.GetPublicationReviews(ctx, filters)
}

func (s *PublicationReviewService) CreatePublicationReview(ctx context.Context, rev models.PublicationReview) (models.PublicationReview, error) {
	created, err := s.ReviewsRepo.CreatePublicationReview(ctx, rev)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateReview) {
			metrics.RecordReviewConflict(publicationReviewEntity)
			log.Ctx(ctx).Debug().Int("booking_id", rev.BookingID).Str("entity", publicationReviewEntity).Msg("duplicate review rejected")
		}
		return models.PublicationReview{}, err
	}
	metrics.RecordReviewCreated(publicationReviewEntity)
	return created, nil
}

func (s *PublicationReviewService) GetPublicationScore(ctx context.Context, publicationID int) (models.PublicationScore, bool, error) {
	avg, ok, err := s.ReviewsRepo.GetPublicationAverageScore(ctx, publicationID)
	if err != nil || !ok {
		return models.PublicationScore{}, false, err
	}
	return models.PublicationScore{PublicationID: publicationID, ScoreAvg: avg}, true, nil
}
