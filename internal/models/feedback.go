package models

// CategoryScore is one scored rubric category.
type CategoryScore struct {
	Name    string  `json:"name" bson:"name"`
	Score   float64 `json:"score" bson:"score"`
	Comment string  `json:"comment" bson:"comment"`
}

// Feedback is the stored scoring result for one interview/user pair.
type Feedback struct {
	ID                  string          `json:"id"`
	InterviewID         string          `json:"interviewId"`
	UserID              string          `json:"userId"`
	TotalScore          float64         `json:"totalScore"`
	CategoryScores      []CategoryScore `json:"categoryScores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areasForImprovement"`
	FinalAssessment     string          `json:"finalAssessment"`
	CreatedAt           string          `json:"createdAt"`
}

// SaveFeedbackParams carries everything needed to score a transcript and
// upsert the resulting feedback. FeedbackID is empty for inserts.
type SaveFeedbackParams struct {
	InterviewID string
	UserID      string
	FeedbackID  string
	Transcript  []TranscriptMessage
}
