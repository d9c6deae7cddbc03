package risk

import (
	"context"
	"errors"
	"testing"

	"github.com/nlebele/dyscreen/internal/question"
	"github.com/nlebele/dyscreen/internal/store"
)

type fakeResultRepo struct {
	saved map[string]*store.TestResult
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{saved: make(map[string]*store.TestResult)}
}

func (f *fakeResultRepo) Create(_ context.Context, r *store.TestResult) (int, error) {
	if _, ok := f.saved[r.SubjectID]; ok {
		return 0, store.ErrDuplicate
	}
	r.ID = len(f.saved) + 1
	f.saved[r.SubjectID] = r
	return r.ID, nil
}

func (f *fakeResultRepo) Get(_ context.Context, subjectID string) (*store.TestResult, error) {
	return f.saved[subjectID], nil
}

func (f *fakeResultRepo) List(_ context.Context, _ int) ([]*store.TestResult, error) {
	out := make([]*store.TestResult, 0, len(f.saved))
	for _, r := range f.saved {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeResultRepo) Delete(_ context.Context, subjectID string) error {
	delete(f.saved, subjectID)
	return nil
}

type fakeSurveyRepo struct {
	saved map[string]*store.SurveyResponse
}

func newFakeSurveyRepo() *fakeSurveyRepo {
	return &fakeSurveyRepo{saved: make(map[string]*store.SurveyResponse)}
}

func (f *fakeSurveyRepo) Save(_ context.Context, r *store.SurveyResponse) error {
	if _, ok := f.saved[r.SubjectID]; ok {
		return store.ErrDuplicate
	}
	f.saved[r.SubjectID] = r
	return nil
}

func (f *fakeSurveyRepo) Get(_ context.Context, subjectID string) (*store.SurveyResponse, error) {
	return f.saved[subjectID], nil
}

func (f *fakeSurveyRepo) Delete(_ context.Context, subjectID string) error {
	delete(f.saved, subjectID)
	return nil
}

func allScores(n int) Scores {
	return Scores{
		question.PartNumbers: n,
		question.PartLogic:   n,
		question.PartShapes:  n,
	}
}

func TestCompute_Boundaries(t *testing.T) {
	cases := []struct {
		name   string
		scores Scores
		survey map[string]int
		want   Level
	}{
		{"perfect score", allScores(5), nil, LevelLow},
		{"all wrong", allScores(0), nil, LevelHigh},
		{"combined 7 is low", Scores{question.PartNumbers: 3, question.PartLogic: 3, question.PartShapes: 2}, nil, LevelLow},
		{"combined 8 is moderate", Scores{question.PartNumbers: 3, question.PartLogic: 2, question.PartShapes: 2}, nil, LevelModerate},
		{"combined 14 is moderate", Scores{question.PartNumbers: 1, question.PartLogic: 0, question.PartShapes: 0}, nil, LevelModerate},
		{"combined 15 is high", Scores{question.PartNumbers: 1, question.PartLogic: 0, question.PartShapes: 0}, map[string]int{"math_anxiety": 1}, LevelHigh},
		{"survey pushes perfect score to moderate", allScores(5), map[string]int{"math_difficulty": 5, "math_anxiety": 3}, LevelModerate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute("s-1", tc.scores, tc.survey)
			if got.Likelihood != tc.want {
				t.Errorf("likelihood = %s, want %s (breakdown %v)", got.Likelihood, tc.want, got.Breakdown)
			}
			if got.Message == "" {
				t.Error("message must never be empty")
			}
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	scores := Scores{question.PartNumbers: 2, question.PartLogic: 4, question.PartShapes: 1}
	survey := map[string]int{"reading_numbers": 1, "math_anxiety": 0}

	a := Compute("s-1", scores, survey)
	b := Compute("s-1", scores, survey)

	if a.Likelihood != b.Likelihood || a.Message != b.Message {
		t.Error("repeated computation diverged")
	}
	if len(a.Flags) != len(b.Flags) {
		t.Fatalf("flag count diverged: %v vs %v", a.Flags, b.Flags)
	}
	for i := range a.Flags {
		if a.Flags[i] != b.Flags[i] {
			t.Errorf("flag order diverged at %d: %q vs %q", i, a.Flags[i], b.Flags[i])
		}
	}
}

func TestCompute_Flags(t *testing.T) {
	scores := Scores{question.PartNumbers: 2, question.PartLogic: 5, question.PartShapes: 3}
	survey := map[string]int{"math_anxiety": 2, "previous_diagnosis": 0}

	got := Compute("s-1", scores, survey)

	wantFlags := []string{
		"Low score in Numbers",
		"Self-reported math anxiety",
	}
	if len(got.Flags) != len(wantFlags) {
		t.Fatalf("flags = %v, want %v", got.Flags, wantFlags)
	}
	for i := range wantFlags {
		if got.Flags[i] != wantFlags[i] {
			t.Errorf("flag %d = %q, want %q", i, got.Flags[i], wantFlags[i])
		}
	}
}

func TestCompute_Breakdown(t *testing.T) {
	got := Compute("s-1", allScores(4), map[string]int{"math_difficulty": 2})

	if got.Breakdown["test_risk"] != 3 {
		t.Errorf("test_risk = %v, want 3", got.Breakdown["test_risk"])
	}
	if got.Breakdown["survey_total"] != 2 {
		t.Errorf("survey_total = %v, want 2", got.Breakdown["survey_total"])
	}
	if got.Breakdown["combined_risk"] != 5 {
		t.Errorf("combined_risk = %v, want 5", got.Breakdown["combined_risk"])
	}
	parts, ok := got.Breakdown["part_scores"].(map[string]int)
	if !ok || parts["numbers"] != 4 {
		t.Errorf("part_scores = %v", got.Breakdown["part_scores"])
	}
}

func TestFinalize_PersistsResult(t *testing.T) {
	results := newFakeResultRepo()
	surveys := newFakeSurveyRepo()
	agg := New(results, surveys)

	outcome, err := agg.Finalize(context.Background(), "s-1", allScores(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Likelihood != LevelLow {
		t.Errorf("likelihood = %s, want Low", outcome.Likelihood)
	}

	stored := results.saved["s-1"]
	if stored == nil {
		t.Fatal("result was not persisted")
	}
	if stored.NumbersScore != 5 || stored.LogicScore != 5 || stored.ShapesScore != 5 {
		t.Errorf("stored scores = %d/%d/%d", stored.NumbersScore, stored.LogicScore, stored.ShapesScore)
	}
	if stored.Likelihood != string(LevelLow) {
		t.Errorf("stored likelihood = %q", stored.Likelihood)
	}
}

func TestFinalize_UsesStoredSurvey(t *testing.T) {
	results := newFakeResultRepo()
	surveys := newFakeSurveyRepo()
	surveys.saved["s-1"] = &store.SurveyResponse{
		SubjectID: "s-1",
		Scores:    map[string]int{"math_difficulty": 5, "math_anxiety": 4},
	}
	agg := New(results, surveys)

	outcome, err := agg.Finalize(context.Background(), "s-1", allScores(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Likelihood != LevelModerate {
		t.Errorf("likelihood = %s, want Moderate", outcome.Likelihood)
	}
}

func TestFinalize_MissingSurveyContributesZero(t *testing.T) {
	agg := New(newFakeResultRepo(), newFakeSurveyRepo())

	outcome, err := agg.Finalize(context.Background(), "s-2", allScores(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Breakdown["survey_total"] != 0 {
		t.Errorf("survey_total = %v, want 0", outcome.Breakdown["survey_total"])
	}
}

func TestFinalize_DuplicateConflicts(t *testing.T) {
	agg := New(newFakeResultRepo(), newFakeSurveyRepo())

	if _, err := agg.Finalize(context.Background(), "s-1", allScores(3)); err != nil {
		t.Fatalf("first finalize failed: %v", err)
	}
	_, err := agg.Finalize(context.Background(), "s-1", allScores(3))
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}
