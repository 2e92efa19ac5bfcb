package models

import "time"

// UserReview is a review a user leaves about another user after a booking.
type UserReview struct {
	ID         int       `json:"id" db:"id"`
	ReviewerID int       `json:"reviewer_id" db:"reviewer_id"`
	RevieweeID int       `json:"reviewee_id" db:"reviewee_id"`
	BookingID  int       `json:"booking_id" db:"booking_id"`
	Score      int       `json:"score" db:"score"`
	Comment    *string   `json:"comment" db:"comment"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
}

// CreateUserReviewRequest is the POST body for a user review. Pointers let
// required-field validation tell a missing value from a zero.
type CreateUserReviewRequest struct {
	ReviewerID *int    `json:"reviewer_id" validate:"required"`
	RevieweeID *int    `json:"reviewee_id" validate:"required"`
	BookingID  *int    `json:"booking_id" validate:"required"`
	Score      *int    `json:"score" validate:"required"`
	Comment    *string `json:"comment"`
}

// Review converts the request into an unsaved UserReview.
func (r CreateUserReviewRequest) Review() UserReview {
	return UserReview{
		ReviewerID: deref(r.ReviewerID),
		RevieweeID: deref(r.RevieweeID),
		BookingID:  deref(r.BookingID),
		Score:      deref(r.Score),
		Comment:    r.Comment,
	}
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
