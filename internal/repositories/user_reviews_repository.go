package repositories

import (
	"context"
	"fmt"

	"reviewsBack/internal/models"
	"reviewsBack/internal/query"
)

var userReviewTable = query.NewTable("user_review", "id",
	[]string{"id", "reviewer_id", "reviewee_id", "booking_id", "score", "comment", "timestamp"},
	query.BookingID, query.ReviewerID, query.RevieweeID)

// UserReviewFilters are the list filters accepted for user reviews, in the
// order they are applied.
var UserReviewFilters = query.MustFilterSet(userReviewTable,
	query.Equal(query.BookingID),
	query.Equal(query.ReviewerID),
	query.Equal(query.RevieweeID),
)

type UserReviewRepository struct {
	store reviewStore[models.UserReview]
}

func NewUserReviewRepository(db *Database) *UserReviewRepository {
	return &UserReviewRepository{store: newReviewStore[models.UserReview](db, UserReviewFilters, query.RevieweeID)}
}

// GetUserReviews lists user reviews matching every bound filter.
func (r *UserReviewRepository) GetUserReviews(ctx context.Context, filters []query.Filter) ([]models.UserReview, error) {
	reviews, err := r.store.list(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("UserReviewRepository.GetUserReviews: %w", err)
	}
	return reviews, nil
}

// CreateUserReview validates and stores rev. It fails with a
// *models.ValidationError for an out of range score and with
// models.ErrDuplicateReview when the booking already has a review.
func (r *UserReviewRepository) CreateUserReview(ctx context.Context, rev models.UserReview) (models.UserReview, error) {
	if err := models.ValidateScore(rev.Score); err != nil {
		return models.UserReview{}, err
	}
	created, err := r.store.insert(ctx,
		[]string{"reviewer_id", "reviewee_id", "booking_id", "score", "comment"},
		[]interface{}{rev.ReviewerID, rev.RevieweeID, rev.BookingID, rev.Score, rev.Comment},
	)
	if err != nil {
		return models.UserReview{}, fmt.Errorf("UserReviewRepository.CreateUserReview: %w", err)
	}
	return created, nil
}

// GetRevieweeAverageScore returns the mean score received by revieweeID.
// ok is false when the user has no reviews.
func (r *UserReviewRepository) GetRevieweeAverageScore(ctx context.Context, revieweeID int) (avg float64, ok bool, err error) {
	avg, ok, err = r.store.averageScore(ctx, revieweeID)
	if err != nil {
		return 0, false, fmt.Errorf("UserReviewRepository.GetRevieweeAverageScore: %w", err)
	}
	return avg, ok, nil
}
