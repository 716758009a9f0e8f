package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananya/intern-match/internal/llm"
	"github.com/ananya/intern-match/internal/types"
)

// stubClient is an llm.Client that returns canned responses.
type stubClient struct {
	response string
	err      error
	prompts  []string
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Close() error { return nil }

func testProfile() *types.Profile {
	return &types.Profile{Skills: []string{"Python", "SQL"}, Interests: []string{"data"}}
}

func testOpportunity() *types.Opportunity {
	return &types.Opportunity{
		Title:          "Data Analytics Intern",
		Company:        "TechCorp",
		RequiredSkills: []string{"Python", "SQL", "Excel"},
	}
}

func TestTryScoreSuccess(t *testing.T) {
	client := &stubClient{response: `{"score": 87, "rationale": "Strong skill overlap."}`}
	scorer := NewGeminiScorer(client)

	result, err := scorer.TryScore(context.Background(), testProfile(), testOpportunity())
	require.NoError(t, err)
	assert.Equal(t, 87, result.Score)
	assert.Equal(t, "Strong skill overlap.", result.Rationale)
}

func TestTryScorePromptContainsBothSides(t *testing.T) {
	client := &stubClient{response: `{"score": 50, "rationale": "ok"}`}
	scorer := NewGeminiScorer(client)

	_, err := scorer.TryScore(context.Background(), testProfile(), testOpportunity())
	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Python")
	assert.Contains(t, client.prompts[0], "Data Analytics Intern")
	assert.NotContains(t, client.prompts[0], "{{.")
}

func TestTryScoreClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected int
	}{
		{"above range", `{"score": 140, "rationale": "r"}`, 100},
		{"below range", `{"score": -5, "rationale": "r"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewGeminiScorer(&stubClient{response: tt.response})
			result, err := scorer.TryScore(context.Background(), testProfile(), testOpportunity())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Score)
		})
	}
}

func TestTryScoreAPIErrorIsUnavailable(t *testing.T) {
	scorer := NewGeminiScorer(&stubClient{err: errors.New("quota exhausted")})
	_, err := scorer.TryScore(context.Background(), testProfile(), testOpportunity())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestTryScoreBadJSONIsUnavailable(t *testing.T) {
	scorer := NewGeminiScorer(&stubClient{response: "I think this candidate is great"})
	_, err := scorer.TryScore(context.Background(), testProfile(), testOpportunity())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestTryScoreCancelledContextIsNotUnavailable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scorer := NewGeminiScorer(&stubClient{response: `{"score": 50, "rationale": "r"}`})
	_, err := scorer.TryScore(ctx, testProfile(), testOpportunity())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithTimeout(t *testing.T) {
	scorer := NewGeminiScorer(&stubClient{response: `{"score": 50, "rationale": "r"}`}).WithTimeout(time.Second)
	assert.Equal(t, time.Second, scorer.timeout)
}
