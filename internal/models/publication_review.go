package models

import "time"

// PublicationReview is a review a guest leaves about a publication they booked.
type PublicationReview struct {
	ID            int       `json:"id" db:"id"`
	ReviewerID    int       `json:"reviewer_id" db:"reviewer_id"`
	PublicationID int       `json:"publication_id" db:"publication_id"`
	BookingID     int       `json:"booking_id" db:"booking_id"`
	Score         int       `json:"score" db:"score"`
	Comment       *string   `json:"comment" db:"comment"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
}

type CreatePublicationReviewRequest struct {
	ReviewerID    *int    `json:"reviewer_id" validate:"required"`
	PublicationID *int    `json:"publication_id" validate:"required"`
	BookingID     *int    `json:"booking_id" validate:"required"`
	Score         *int    `json:"score" validate:"required"`
	Comment       *string `json:"comment"`
}

func (r CreatePublicationReviewRequest) Review() PublicationReview {
	return PublicationReview{
		ReviewerID:    deref(r.ReviewerID),
		PublicationID: deref(r.PublicationID),
		BookingID:     deref(r.BookingID),
		Score:         deref(r.Score),
		Comment:       r.Comment,
	}
}
