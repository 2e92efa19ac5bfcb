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

const userReviewEntity = "user_review"

// UserReviewService exposes user review storage to the HTTP layer.
type UserReviewService struct {
	ReviewsRepo *repositories.UserReviewRepository
}

func (s *UserReviewService) GetUserReviews(ctx context.Context, filters []query.Filter) ([]models.UserReview, error) {
	return s.ReviewsRepo.GetUserReviews(ctx, filters)
}

func (s *UserReviewService) CreateUserReview(ctx context.Context, rev models.UserReview) (models.UserReview, error) {
	created, err := s.ReviewsRepo.CreateUserReview(ctx, rev)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateReview) {
			metrics.RecordReviewConflict(userReviewEntity)
			log.Ctx(ctx).Debug().Int("booking_id", rev.BookingID).Str("entity", userReviewEntity).Msg("duplicate review rejected")
		}
		return models.UserReview{}, err
	}
	metrics.RecordReviewCreated(userReviewEntity)
	return created, nil
}

// GetRevieweeScore returns the reviewee's mean score; ok is false when no
// review exists for them.
func (s *UserReviewService) GetRevieweeScore(ctx context.Context, revieweeID int) (models.RevieweeScore, bool, error) {
	avg, ok, err := s.ReviewsRepo.GetRevieweeAverageScore(ctx, revieweeID)
	if err != nil || !ok {
		return models.RevieweeScore{}, false, err
	}
	return models.RevieweeScore{RevieweeID: revieweeID, ScoreAvg: avg}, true, nil
}
