// Package risk turns part scores and survey answers into a screening
// outcome. Aggregation is fully deterministic: the same scores and
// survey always produce the same likelihood, flags, and message.
package risk

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/nlebele/dyscreen/internal/question"
	"github.com/nlebele/dyscreen/internal/store"
)

// Level is the screening likelihood bucket.
type Level string

const (
	LevelHigh     Level = "High"
	LevelModerate Level = "Moderate"
	LevelLow      Level = "Low"
)

// Thresholds on the combined risk score. The test contributes 0-15
// (missed questions) and the survey adds its item scores on top.
const (
	highThreshold     = 15
	moderateThreshold = 8
)

// flagThreshold is the part score below which a per-part flag is raised.
const flagThreshold = 3

// Scores holds the number of correct answers per part, each 0-5.
type Scores map[question.Part]int

// Total returns the sum of all part scores.
func (s Scores) Total() int {
	total := 0
	for _, part := range question.Parts {
		total += clampScore(s[part])
	}
	return total
}

// Outcome is the computed screening result for one subject.
type Outcome struct {
	SubjectID  string
	Likelihood Level
	Message    string
	Flags      []string
	Breakdown  map[string]any
}

// Aggregator computes and persists screening outcomes.
type Aggregator struct {
	results store.ResultRepo
	surveys store.SurveyRepo
}

// New creates an Aggregator over the given repositories.
func New(results store.ResultRepo, surveys store.SurveyRepo) *Aggregator {
	return &Aggregator{results: results, surveys: surveys}
}

// Finalize computes the outcome for a completed screening and persists
// it. The subject's survey, if one was submitted, contributes to the
// combined score; an absent survey contributes zero. Returns an error
// wrapping store.ErrDuplicate when the subject already has a result.
func (a *Aggregator) Finalize(ctx context.Context, subjectID string, scores Scores) (*Outcome, error) {
	surveyScores, err := a.loadSurvey(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	outcome := Compute(subjectID, scores, surveyScores)

	result := &store.TestResult{
		SubjectID:    subjectID,
		NumbersScore: clampScore(scores[question.PartNumbers]),
		LogicScore:   clampScore(scores[question.PartLogic]),
		ShapesScore:  clampScore(scores[question.PartShapes]),
		Likelihood:   string(outcome.Likelihood),
		Message:      outcome.Message,
		Breakdown:    outcome.Breakdown,
	}
	if _, err := a.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("persist result for %s: %w", subjectID, err)
	}
	return outcome, nil
}

func (a *Aggregator) loadSurvey(ctx context.Context, subjectID string) (map[string]int, error) {
	if a.surveys == nil {
		return nil, nil
	}
	resp, err := a.surveys.Get(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("load survey for %s: %w", subjectID, err)
	}
	if resp == nil {
		return nil, nil
	}
	return resp.Scores, nil
}

// Compute derives the outcome from part scores and survey item scores
// without touching storage.
func Compute(subjectID string, scores Scores, surveyScores map[string]int) *Outcome {
	testRisk := question.PositionsPerPart*len(question.Parts) - scores.Total()

	surveyTotal := 0
	for _, v := range surveyScores {
		surveyTotal += v
	}

	combined := testRisk + surveyTotal

	var likelihood Level
	switch {
	case combined >= highThreshold:
		likelihood = LevelHigh
	case combined >= moderateThreshold:
		likelihood = LevelModerate
	default:
		likelihood = LevelLow
	}

	return &Outcome{
		SubjectID:  subjectID,
		Likelihood: likelihood,
		Message:    messageFor(likelihood),
		Flags:      buildFlags(scores, surveyScores),
		Breakdown:  buildBreakdown(scores, surveyScores, testRisk, surveyTotal, combined),
	}
}

func buildFlags(scores Scores, surveyScores map[string]int) []string {
	var flags []string
	for _, part := range question.Parts {
		if clampScore(scores[part]) < flagThreshold {
			flags = append(flags, fmt.Sprintf("Low score in %s", part.Label()))
		}
	}

	keys := make([]string, 0, len(surveyScores))
	for k := range surveyScores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if surveyScores[k] > 0 {
			flags = append(flags, fmt.Sprintf("Self-reported %s", humanizeKey(k)))
		}
	}
	return flags
}

func buildBreakdown(scores Scores, surveyScores map[string]int, testRisk, surveyTotal, combined int) map[string]any {
	partScores := make(map[string]int, len(question.Parts))
	for _, part := range question.Parts {
		partScores[string(part)] = clampScore(scores[part])
	}

	breakdown := map[string]any{
		"part_scores":   partScores,
		"test_risk":     testRisk,
		"survey_total":  surveyTotal,
		"combined_risk": combined,
	}
	if len(surveyScores) > 0 {
		breakdown["survey_scores"] = surveyScores
	}
	return breakdown
}

func messageFor(likelihood Level) string {
	switch likelihood {
	case LevelHigh:
		return "The screening suggests a high likelihood of dyscalculia-related difficulties. We recommend a full assessment by a qualified specialist."
	case LevelModerate:
		return "The screening suggests some difficulties with number-related tasks. A follow-up conversation with a specialist may be helpful."
	default:
		return "The screening did not indicate significant signs of dyscalculia. If concerns remain, a specialist can provide a full assessment."
	}
}

// humanizeKey turns a survey item key like "math_difficulty" into
// readable words.
func humanizeKey(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > question.PositionsPerPart {
		return question.PositionsPerPart
	}
	return n
}
