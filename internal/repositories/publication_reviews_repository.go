package repositories

import (
	"context"
	"fmt"

	"reviewsBack/internal/models"
	"reviewsBack/internal/query"
)

var publicationReviewTable = query.NewTable("publication_review", "id",
	[]string{"id", "reviewer_id", "publication_id", "booking_id", "score", "comment", "timestamp"},
	query.BookingID, query.ReviewerID, query.PublicationID)

var PublicationReviewFilters = query.MustFilterSet(publicationReviewTable,
	query.Equal(query.BookingID),
	query.Equal(query.ReviewerID),
	query.Equal(query.PublicationID),
)

type PublicationReviewRepository struct {
	store reviewStore[models.PublicationReview]
}

func NewPublicationReviewRepository(db *Database) *PublicationReviewRepository {
	return &PublicationReviewRepository{store: newReviewStore[models.PublicationReview](db, PublicationReviewFilters, query.PublicationID)}
}

func (r *PublicationReviewRepository) GetPublicationReviews(ctx context.Context, filters []query.Filter) ([]models.PublicationReview, error) {
	reviews, err := r.store.list(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("PublicationReviewRepository.GetPublicationReviews: %w", err)
	}
	return reviews, nil
}

func (r *PublicationReviewRepository) CreatePublicationReview(ctx context.Context, rev models.PublicationReview) (models.PublicationReview, error) {
	if err := models.ValidateScore(rev.Score); err != nil {
		return models.PublicationReview{}, err
	}
	created, err := r.store.insert(ctx,
		[]string{"reviewer_id", "publication_id", "booking_id", "score", "comment"},
		[]interface{}{rev.ReviewerID, rev.PublicationID, rev.BookingID, rev.Score, rev.Comment},
	)
	if err != nil {
		return models.PublicationReview{}, fmt.Errorf("PublicationReviewRepository.CreatePublicationReview: %w", err)
	}
	return created, nil
}

func (r *PublicationReviewRepository) GetPublicationAverageScore(ctx context.Context, publicationID int) (avg float64, ok bool, err error) {
	avg, ok, err = r.store.averageScore(ctx, publicationID)
	if err != nil {
		return 0, false, fmt.Errorf("PublicationReviewRepository.GetPublicationAverageScore: %w", err)
	}
	return avg, ok, nil
}
