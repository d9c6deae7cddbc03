// Package evaluate grades a subject's answer against the canonical one.
//
// Multiple-choice answers are graded by letter comparison alone.
// Free-text answers go through three tiers: normalized exact match, an
// LLM yes/no judge, and a token-overlap similarity check. Grading is
// total: every input produces a verdict, and a judge outage degrades to
// the similarity tier instead of surfacing an error.
package evaluate

import (
	"context"

	"github.com/nlebele/dyscreen/internal/llm"
	"github.com/nlebele/dyscreen/internal/question"
)

// similarityThreshold is the minimum share of canonical-answer tokens
// that must appear in the subject's answer for the similarity tier to
// accept it.
const similarityThreshold = 0.6

// Evaluator grades answers. The LLM provider is optional; without one
// the judge tier is skipped and free-text grading uses exact match plus
// token overlap.
type Evaluator struct {
	llm llm.Provider
}

// New creates an Evaluator backed by the given LLM provider. Pass nil
// to disable the judge tier.
func New(provider llm.Provider) *Evaluator {
	return &Evaluator{llm: provider}
}

// Evaluate reports whether the subject's answer to q is correct.
func (e *Evaluator) Evaluate(ctx context.Context, q *question.Question, student string) bool {
	if q == nil {
		return false
	}

	if q.Kind == question.KindMultipleChoice {
		return matchChoice(student, q.Answer, q.Choices)
	}

	if normalizeText(student) == "" {
		return false
	}
	if normalizeText(student) == normalizeText(q.Answer) {
		return true
	}

	if e.llm != nil {
		if verdict, ok := e.askJudge(ctx, q.Text, q.Answer, student); ok {
			return verdict
		}
	}

	return tokenOverlap(student, q.Answer) >= similarityThreshold
}
