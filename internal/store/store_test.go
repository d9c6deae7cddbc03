package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got), tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func sampleResult(subject string) *TestResult {
	return &TestResult{
		SubjectID:    subject,
		NumbersScore: 4,
		LogicScore:   2,
		ShapesScore:  5,
		Likelihood:   "Moderate",
		Message:      "Some areas may need attention: Logic.",
		Breakdown: map[string]any{
			"part_scores":   map[string]any{"numbers": 4, "logic": 2, "shapes": 5},
			"survey_scores": map[string]any{"math_anxiety": 1},
		},
	}
}

func TestResultCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "s-100")
	require.NoError(t, err)
	require.Nil(t, got, "expected nil result when none exists")

	id, err := repo.Create(ctx, sampleResult("s-100"))
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err = repo.Get(ctx, "s-100")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.LogicScore)
	assert.Equal(t, "Moderate", got.Likelihood)
	assert.NotNil(t, got.Breakdown, "breakdown should survive the round-trip")
}

func TestResultCreateDuplicateConflicts(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleResult("s-200"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, sampleResult("s-200"))
	require.ErrorIs(t, err, ErrDuplicate)

	// The original record is untouched.
	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	count := 0
	for _, r := range all {
		if r.SubjectID == "s-200" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestResultDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleResult("s-250"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "s-250"))

	got, err := repo.Get(ctx, "s-250")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is not an error.
	require.NoError(t, repo.Delete(ctx, "s-250"))
}

func TestSurveySaveGetDuplicate(t *testing.T) {
	s := openTestStore(t)
	repo := s.SurveyRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "s-300")
	require.NoError(t, err)
	require.Nil(t, got, "expected nil survey when none exists")

	resp := &SurveyResponse{
		SubjectID: "s-300",
		Scores:    map[string]int{"math_difficulty": 4, "math_anxiety": 1, "reading_numbers": 0},
		FreeText:  map[string]string{"support_needed": "extra time in tests"},
	}
	require.NoError(t, repo.Save(ctx, resp))

	got, err = repo.Get(ctx, "s-300")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, got.Scores["math_difficulty"])
	assert.Equal(t, "extra time in tests", got.FreeText["support_needed"])

	require.ErrorIs(t, repo.Save(ctx, resp), ErrDuplicate)
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      "question-gen",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    800,
			Success:      true,
			RequestBody:  "[user]\ngenerate a question\n",
			ResponseBody: `{"question":"What is 7 x 6?"}`,
		})
		require.NoError(t, err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first.
	assert.Greater(t, events[0].Sequence, events[1].Sequence)

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "question-gen", got.Purpose)

	missing, err := repo.GetLLMEvent(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
