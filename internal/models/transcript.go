package models

// TranscriptMessage is one role-tagged line of an interview transcript.
type TranscriptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ScoreResult is the structured output of the external scoring service.
type ScoreResult struct {
	TotalScore          float64         `json:"totalScore"`
	CategoryScores      []CategoryScore `json:"categoryScores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areasForImprovement"`
	FinalAssessment     string          `json:"finalAssessment"`
}
