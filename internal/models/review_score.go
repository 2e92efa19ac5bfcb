package models

const (
	MinScore = 1
	MaxScore = 4
)

// ValidateScore checks that score is within [MinScore, MaxScore].
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return &ValidationError{Field: "score", Message: "Score must be between 1 and 4"}
	}
	return nil
}

// RevieweeScore is the average score of a reviewed user.
type RevieweeScore struct {
	RevieweeID int     `json:"reviewee_id"`
	ScoreAvg   float64 `json:"score_avg"`
}

// PublicationScore is the average score of a reviewed publication.
type PublicationScore struct {
	PublicationID int     `json:"publication_id"`
	ScoreAvg      float64 `json:"score_avg"`
}
