package assess

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nlebele/dyscreen/internal/question"
	"github.com/nlebele/dyscreen/internal/risk"
	"github.com/nlebele/dyscreen/internal/store"
)

type stubProvider struct {
	calls int
}

func (p *stubProvider) Request(_ context.Context, part question.Part, difficulty question.Difficulty, position int) *question.Question {
	p.calls++
	return &question.Question{
		Part:       part,
		Difficulty: difficulty,
		Position:   position,
		Kind:       question.KindFor(part),
		Text:       fmt.Sprintf("Question for %s position %d?", part, position),
		Answer:     "right",
	}
}

// stubEval grades an answer correct when it matches the canonical one
// verbatim.
type stubEval struct{}

func (stubEval) Evaluate(_ context.Context, q *question.Question, answer string) bool {
	return answer == q.Answer
}

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

type fakeSurveyRepo struct{}

func (fakeSurveyRepo) Save(_ context.Context, _ *store.SurveyResponse) error { return nil }
func (fakeSurveyRepo) Get(_ context.Context, _ string) (*store.SurveyResponse, error) {
	return nil, nil
}
func (fakeSurveyRepo) Delete(_ context.Context, _ string) error { return nil }

func newTestTracker() (*Tracker, *stubProvider, *fakeResultRepo) {
	provider := &stubProvider{}
	results := newFakeResultRepo()
	agg := risk.New(results, fakeSurveyRepo{})
	return NewTracker(provider, stubEval{}, agg, results), provider, results
}

// walk answers every slot; correctByPart controls how many answers per
// part are graded correct.
func walk(t *testing.T, tr *Tracker, subjectID string, correctByPart map[question.Part]int) *Progress {
	t.Helper()

	var last *Progress
	for _, part := range question.Parts {
		for pos := 1; pos <= question.PositionsPerPart; pos++ {
			if _, err := tr.Question(context.Background(), subjectID); err != nil {
				t.Fatalf("fetch %s/%d: %v", part, pos, err)
			}
			answer := "wrong"
			if pos <= correctByPart[part] {
				answer = "right"
			}
			p, err := tr.Submit(context.Background(), subjectID, part, pos, answer)
			if err != nil {
				t.Fatalf("submit %s/%d: %v", part, pos, err)
			}
			last = p
		}
	}
	return last
}

func TestDifficultySchedule(t *testing.T) {
	want := map[int]question.Difficulty{
		1: question.DifficultyEasy,
		2: question.DifficultyMedium,
		3: question.DifficultyMedium,
		4: question.DifficultyHard,
		5: question.DifficultyHard,
	}
	for pos, difficulty := range want {
		if got := difficultyFor(pos); got != difficulty {
			t.Errorf("difficultyFor(%d) = %s, want %s", pos, got, difficulty)
		}
	}
}

func TestBegin(t *testing.T) {
	tr, _, _ := newTestTracker()

	view, err := tr.Begin(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.SessionID == "" {
		t.Error("expected a session id")
	}
	if view.Part != question.PartNumbers || view.Position != 1 || view.Difficulty != question.DifficultyEasy {
		t.Errorf("unexpected opening slot: %+v", view)
	}
}

func TestBegin_TwiceConflicts(t *testing.T) {
	tr, _, _ := newTestTracker()

	if _, err := tr.Begin(context.Background(), "s-1"); err != nil {
		t.Fatalf("first begin failed: %v", err)
	}
	_, err := tr.Begin(context.Background(), "s-1")
	var conflict *ConflictError
	if !asError(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestBegin_AfterResultConflicts(t *testing.T) {
	tr, _, results := newTestTracker()
	results.saved["s-1"] = &store.TestResult{SubjectID: "s-1"}

	_, err := tr.Begin(context.Background(), "s-1")
	var conflict *ConflictError
	if !asError(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestBegin_EmptySubject(t *testing.T) {
	tr, _, _ := newTestTracker()

	_, err := tr.Begin(context.Background(), "  ")
	var invalid *ValidationError
	if !asError(err, &invalid) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestQuestion_Idempotent(t *testing.T) {
	tr, provider, _ := newTestTracker()
	mustBegin(t, tr, "s-1")

	a, err := tr.Question(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := tr.Question(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Text != b.Text {
		t.Error("repeated fetch returned a different question")
	}
	if provider.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", provider.calls)
	}
}

func TestQuestion_NoSession(t *testing.T) {
	tr, _, _ := newTestTracker()

	_, err := tr.Question(context.Background(), "s-1")
	var missing *NotFoundError
	if !asError(err, &missing) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSubmit_Validation(t *testing.T) {
	tr, _, _ := newTestTracker()
	mustBegin(t, tr, "s-1")

	cases := []struct {
		name     string
		part     question.Part
		position int
		answer   string
	}{
		{"unknown part", question.Part("colors"), 1, "x"},
		{"position zero", question.PartNumbers, 0, "x"},
		{"position past part", question.PartNumbers, 6, "x"},
		{"blank answer", question.PartNumbers, 1, "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tr.Submit(context.Background(), "s-1", tc.part, tc.position, tc.answer)
			var invalid *ValidationError
			if !asError(err, &invalid) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestSubmit_BeforeFetchConflicts(t *testing.T) {
	tr, _, _ := newTestTracker()
	mustBegin(t, tr, "s-1")

	_, err := tr.Submit(context.Background(), "s-1", question.PartNumbers, 1, "right")
	var conflict *ConflictError
	if !asError(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestSubmit_StaleSlotConflicts(t *testing.T) {
	tr, _, _ := newTestTracker()
	mustBegin(t, tr, "s-1")
	if _, err := tr.Question(context.Background(), "s-1"); err != nil {
		t.Fatal(err)
	}

	_, err := tr.Submit(context.Background(), "s-1", question.PartNumbers, 2, "right")
	var conflict *ConflictError
	if !asError(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	// The outstanding question is still answerable.
	if _, err := tr.Submit(context.Background(), "s-1", question.PartNumbers, 1, "right"); err != nil {
		t.Fatalf("current slot rejected after stale attempt: %v", err)
	}
}

func TestSubmit_AdvancesThroughParts(t *testing.T) {
	tr, _, _ := newTestTracker()
	mustBegin(t, tr, "s-1")

	seen := make([]question.Part, 0, 15)
	for i := 0; i < 15; i++ {
		q, err := tr.Question(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		seen = append(seen, q.Part)
		if _, err := tr.Submit(context.Background(), "s-1", q.Part, q.Position, "right"); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	for i, part := range seen {
		want := question.Parts[i/question.PositionsPerPart]
		if part != want {
			t.Errorf("question %d served for %s, want %s", i, part, want)
		}
	}
}

func TestCompleteScreening(t *testing.T) {
	tr, _, results := newTestTracker()
	mustBegin(t, tr, "s-1")

	last := walk(t, tr, "s-1", map[question.Part]int{
		question.PartNumbers: 5,
		question.PartLogic:   5,
		question.PartShapes:  5,
	})

	if !last.Completed {
		t.Fatal("final submit did not complete the screening")
	}
	if last.Outcome == nil || last.Outcome.Likelihood != risk.LevelLow {
		t.Errorf("unexpected outcome: %+v", last.Outcome)
	}

	stored := results.saved["s-1"]
	if stored == nil {
		t.Fatal("result was not persisted")
	}
	if stored.NumbersScore != 5 || stored.LogicScore != 5 || stored.ShapesScore != 5 {
		t.Errorf("stored scores = %d/%d/%d", stored.NumbersScore, stored.LogicScore, stored.ShapesScore)
	}

	// The session is gone once the result exists.
	_, err := tr.Question(context.Background(), "s-1")
	var missing *NotFoundError
	if !asError(err, &missing) {
		t.Fatalf("expected NotFoundError after completion, got %v", err)
	}
}

func TestCompleteScreening_ScoresPerPart(t *testing.T) {
	tr, _, results := newTestTracker()
	mustBegin(t, tr, "s-1")

	last := walk(t, tr, "s-1", map[question.Part]int{
		question.PartNumbers: 2,
		question.PartLogic:   4,
		question.PartShapes:  0,
	})

	if !last.Completed {
		t.Fatal("screening did not complete")
	}
	stored := results.saved["s-1"]
	if stored.NumbersScore != 2 || stored.LogicScore != 4 || stored.ShapesScore != 0 {
		t.Errorf("stored scores = %d/%d/%d, want 2/4/0", stored.NumbersScore, stored.LogicScore, stored.ShapesScore)
	}
	// testRisk 9 and no survey lands in the moderate band.
	if stored.Likelihood != string(risk.LevelModerate) {
		t.Errorf("likelihood = %q, want Moderate", stored.Likelihood)
	}
}

func TestResult(t *testing.T) {
	tr, _, results := newTestTracker()

	_, err := tr.Result(context.Background(), "s-1")
	var missing *NotFoundError
	if !asError(err, &missing) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	results.saved["s-1"] = &store.TestResult{SubjectID: "s-1", Likelihood: "Low"}
	got, err := tr.Result(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Likelihood != "Low" {
		t.Errorf("likelihood = %q", got.Likelihood)
	}
}

func TestAbandon(t *testing.T) {
	tr, _, _ := newTestTracker()
	mustBegin(t, tr, "s-1")

	tr.Abandon("s-1")

	if _, err := tr.Begin(context.Background(), "s-1"); err != nil {
		t.Fatalf("begin after abandon failed: %v", err)
	}
}

func asError[T error](err error, target *T) bool {
	return errors.As(err, target)
}

func mustBegin(t *testing.T, tr *Tracker, subjectID string) {
	t.Helper()
	if _, err := tr.Begin(context.Background(), subjectID); err != nil {
		t.Fatalf("begin %s: %v", subjectID, err)
	}
}
