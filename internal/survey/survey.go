// Package survey handles the self-report questionnaire that accompanies
// the screening. Scored items contribute to the combined risk score;
// free-text items are stored verbatim for staff review and never scored.
package survey

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nlebele/dyscreen/internal/store"
)

// Item keys as persisted in the survey scores map.
const (
	KeyMathDifficulty    = "math_difficulty"
	KeyReadingNumbers    = "reading_numbers"
	KeyMathAnxiety       = "math_anxiety"
	KeyTimeManagement    = "time_management"
	KeyPreviousDiagnosis = "previous_diagnosis"

	KeySupportNeeded   = "support_needed"
	KeyDailyChallenges = "daily_challenges"
)

// Submission is a raw submitted survey. MathDifficulty is a 1-5 scale;
// the next four items are Yes/No; the last two are free text.
type Submission struct {
	MathDifficulty    string `json:"math_difficulty"`
	ReadingNumbers    string `json:"reading_numbers"`
	MathAnxiety       string `json:"math_anxiety"`
	TimeManagement    string `json:"time_management"`
	PreviousDiagnosis string `json:"previous_diagnosis"`
	SupportNeeded     string `json:"support_needed"`
	DailyChallenges   string `json:"daily_challenges"`
}

// ValidationError describes a rejected survey field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("survey field %s: %s", e.Field, e.Msg)
}

// Score validates a submission and splits it into per-item scores and
// free-text answers. Yes/No items score 1 for Yes and 0 for No; the
// difficulty scale contributes its face value.
func Score(sub Submission) (map[string]int, map[string]string, error) {
	scores := make(map[string]int, 5)

	scale, err := scaleScore(KeyMathDifficulty, sub.MathDifficulty)
	if err != nil {
		return nil, nil, err
	}
	scores[KeyMathDifficulty] = scale

	yesNo := []struct {
		key   string
		value string
	}{
		{KeyReadingNumbers, sub.ReadingNumbers},
		{KeyMathAnxiety, sub.MathAnxiety},
		{KeyTimeManagement, sub.TimeManagement},
		{KeyPreviousDiagnosis, sub.PreviousDiagnosis},
	}
	for _, item := range yesNo {
		v, err := yesNoScore(item.key, item.value)
		if err != nil {
			return nil, nil, err
		}
		scores[item.key] = v
	}

	freeText := make(map[string]string, 2)
	if t := strings.TrimSpace(sub.SupportNeeded); t != "" {
		freeText[KeySupportNeeded] = t
	}
	if t := strings.TrimSpace(sub.DailyChallenges); t != "" {
		freeText[KeyDailyChallenges] = t
	}

	return scores, freeText, nil
}

func scaleScore(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 || n > 5 {
		return 0, &ValidationError{Field: field, Msg: "must be a number from 1 to 5"}
	}
	return n, nil
}

func yesNoScore(field, value string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes":
		return 1, nil
	case "no":
		return 0, nil
	}
	return 0, &ValidationError{Field: field, Msg: "must be Yes or No"}
}

// Service validates and persists survey submissions.
type Service struct {
	repo store.SurveyRepo
}

// NewService creates a Service over the given repository.
func NewService(repo store.SurveyRepo) *Service {
	return &Service{repo: repo}
}

// Submit stores the subject's survey. Returns a *ValidationError for a
// malformed submission and an error wrapping store.ErrDuplicate when the
// subject already submitted one.
func (s *Service) Submit(ctx context.Context, subjectID string, sub Submission) error {
	if strings.TrimSpace(subjectID) == "" {
		return &ValidationError{Field: "subject", Msg: "subject id is required"}
	}

	scores, freeText, err := Score(sub)
	if err != nil {
		return err
	}

	return s.repo.Save(ctx, &store.SurveyResponse{
		SubjectID: subjectID,
		Scores:    scores,
		FreeText:  freeText,
	})
}

// Get returns the subject's stored survey, or nil if none exists.
func (s *Service) Get(ctx context.Context, subjectID string) (*store.SurveyResponse, error) {
	return s.repo.Get(ctx, subjectID)
}
