package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intervuo/interview-platform/internal/models"
)

func TestScoringHTTPFacade_Score(t *testing.T) {
	transcript := []models.TranscriptMessage{
		{Role: "interviewer", Content: "Tell me about goroutines."},
		{Role: "candidate", Content: "They are lightweight threads."},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req scoreRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.True(t, strings.Contains(req.Prompt, "- interviewer: Tell me about goroutines."))
		assert.True(t, strings.Contains(req.Prompt, "Communication Skills"))

		json.NewEncoder(w).Encode(models.ScoreResult{
			TotalScore:      72,
			FinalAssessment: "Solid fundamentals.",
			CategoryScores: []models.CategoryScore{
				{Name: "Technical Knowledge", Score: 80, Comment: "Good"},
			},
			Strengths:           []string{"clarity"},
			AreasForImprovement: []string{"depth"},
		})
	}))
	defer srv.Close()

	f := NewScoringHTTPFacade(srv.URL, "test-key", "test-model")

	result, err := f.Score(context.Background(), transcript)
	assert.NoError(t, err)
	assert.Equal(t, float64(72), result.TotalScore)
	assert.Equal(t, "Solid fundamentals.", result.FinalAssessment)
	assert.Len(t, result.CategoryScores, 1)
}

func TestScoringHTTPFacade_Score_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewScoringHTTPFacade(srv.URL, "", "test-model")

	result, err := f.Score(context.Background(), nil)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestScoringHTTPFacade_Score_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	f := NewScoringHTTPFacade(srv.URL, "", "test-model")

	result, err := f.Score(context.Background(), nil)
	assert.Error(t, err)
	assert.Nil(t, result)
}
