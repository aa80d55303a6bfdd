package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
)

const scorerSystemPrompt = "You are a professional interviewer analyzing a mock interview. " +
	"Your task is to evaluate the candidate based on structured categories"

const scorerRubric = `Please score the candidate from 0 to 100 in the following areas. Do not add categories other than the ones provided:
- **Communication Skills**: Clarity, articulation, structured responses.
- **Technical Knowledge**: Understanding of key concepts for the role.
- **Problem-Solving**: Ability to analyze problems and propose solutions.
- **Cultural & Role Fit**: Alignment with company values and job role.
- **Confidence & Clarity**: Confidence in responses, engagement, and clarity.`

// ScoringHTTPFacade implements transcript scoring against an external AI
// completion endpoint that returns the structured score as JSON.
type ScoringHTTPFacade struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewScoringHTTPFacade creates a new facade for the given endpoint.
func NewScoringHTTPFacade(baseURL, apiKey, model string) *ScoringHTTPFacade {
	return &ScoringHTTPFacade{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  http.DefaultClient,
	}
}

type scoreRequest struct {
	Model  string `json:"model"`
	System string `json:"system"`
	Prompt string `json:"prompt"`
}

// Score formats the transcript into the fixed rubric prompt, calls the
// completion endpoint once, and decodes the structured result. No retry.
func (f *ScoringHTTPFacade) Score(ctx context.Context, transcript []models.TranscriptMessage) (*models.ScoreResult, error) {
	body, err := json.Marshal(scoreRequest{
		Model:  f.model,
		System: scorerSystemPrompt,
		Prompt: buildPrompt(transcript),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if f.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to call scoring service", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("scoring service returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("scoring service returned status %d", resp.StatusCode)
	}

	var result models.ScoreResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Log.Errorw("failed to decode scoring response", "error", err)
		return nil, err
	}

	return &result, nil
}

func buildPrompt(transcript []models.TranscriptMessage) string {
	var sb strings.Builder
	for _, msg := range transcript {
		fmt.Fprintf(&sb, "- %s: %s\n", msg.Role, msg.Content)
	}

	return fmt.Sprintf(`You are an AI interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories. Be thorough and detailed in your analysis. Don't be lenient with the candidate. If there are mistakes or areas for improvement, point them out.
Transcript:
%s

%s`, sb.String(), scorerRubric)
}
