package survey

import (
	"context"
	"errors"
	"testing"

	"github.com/nlebele/dyscreen/internal/store"
)

func validSubmission() Submission {
	return Submission{
		MathDifficulty:    "4",
		ReadingNumbers:    "Yes",
		MathAnxiety:       "no",
		TimeManagement:    "Yes",
		PreviousDiagnosis: "No",
		SupportNeeded:     "Extra time on tests.",
		DailyChallenges:   "",
	}
}

func TestScore(t *testing.T) {
	scores, freeText, err := Score(validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]int{
		KeyMathDifficulty:    4,
		KeyReadingNumbers:    1,
		KeyMathAnxiety:       0,
		KeyTimeManagement:    1,
		KeyPreviousDiagnosis: 0,
	}
	for k, v := range want {
		if scores[k] != v {
			t.Errorf("scores[%s] = %d, want %d", k, scores[k], v)
		}
	}
	if len(scores) != len(want) {
		t.Errorf("unexpected extra scored items: %v", scores)
	}

	if freeText[KeySupportNeeded] != "Extra time on tests." {
		t.Errorf("support_needed = %q", freeText[KeySupportNeeded])
	}
	if _, ok := freeText[KeyDailyChallenges]; ok {
		t.Error("blank free-text field should be omitted")
	}
}

func TestScore_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Submission)
		field  string
	}{
		{"scale too high", func(s *Submission) { s.MathDifficulty = "6" }, KeyMathDifficulty},
		{"scale not a number", func(s *Submission) { s.MathDifficulty = "often" }, KeyMathDifficulty},
		{"scale empty", func(s *Submission) { s.MathDifficulty = "" }, KeyMathDifficulty},
		{"yes/no free text", func(s *Submission) { s.MathAnxiety = "sometimes" }, KeyMathAnxiety},
		{"yes/no empty", func(s *Submission) { s.PreviousDiagnosis = "" }, KeyPreviousDiagnosis},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission()
			tc.mutate(&sub)

			_, _, err := Score(sub)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %s, want %s", verr.Field, tc.field)
			}
		})
	}
}

type fakeRepo struct {
	saved map[string]*store.SurveyResponse
}

func (f *fakeRepo) Save(_ context.Context, r *store.SurveyResponse) error {
	if _, ok := f.saved[r.SubjectID]; ok {
		return store.ErrDuplicate
	}
	f.saved[r.SubjectID] = r
	return nil
}

func (f *fakeRepo) Get(_ context.Context, subjectID string) (*store.SurveyResponse, error) {
	return f.saved[subjectID], nil
}

func (f *fakeRepo) Delete(_ context.Context, subjectID string) error {
	delete(f.saved, subjectID)
	return nil
}

func TestService_Submit(t *testing.T) {
	repo := &fakeRepo{saved: make(map[string]*store.SurveyResponse)}
	svc := NewService(repo)

	if err := svc.Submit(context.Background(), "s-1", validSubmission()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved := repo.saved["s-1"]
	if saved == nil {
		t.Fatal("submission was not persisted")
	}
	if saved.Scores[KeyMathDifficulty] != 4 {
		t.Errorf("persisted scores = %v", saved.Scores)
	}

	err := svc.Submit(context.Background(), "s-1", validSubmission())
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate on resubmission, got %v", err)
	}
}

func TestService_Submit_EmptySubject(t *testing.T) {
	svc := NewService(&fakeRepo{saved: make(map[string]*store.SurveyResponse)})

	err := svc.Submit(context.Background(), "  ", validSubmission())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
