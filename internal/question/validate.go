package question

import (
	"fmt"
	"strings"
)

// Validator checks a parsed question before it is accepted.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g.
	// "structural", "choices".
	Name() string

	// Validate returns nil if the question passes the check, or a
	// ValidationError describing the failure. A failure sends the
	// pipeline back to the generate stage (bounded by the attempt
	// budget), never to the caller.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that the core fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{Validator: v.Name(), Message: "question text is empty"}
	}
	if len(q.Text) > 500 {
		return &ValidationError{Validator: v.Name(), Message: "question text exceeds 500 characters"}
	}
	if strings.TrimSpace(q.Answer) == "" {
		return &ValidationError{Validator: v.Name(), Message: "canonical answer is empty"}
	}
	return nil
}

// ChoiceValidator enforces the multiple-choice contract for the Numbers
// part: exactly 4 options and a canonical answer that resolves to one of
// them, and no stray options on free-text questions.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choices" }

func (v *ChoiceValidator) Validate(q *Question) *ValidationError {
	if q.Kind != KindMultipleChoice {
		if len(q.Choices) != 0 {
			return &ValidationError{Validator: v.Name(), Message: "free-text question must not carry options"}
		}
		return nil
	}

	if len(q.Choices) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 4 options, got %d", len(q.Choices)),
		}
	}
	if _, ok := choiceIndex(q.Answer); !ok {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %q is not a choice letter A-D", q.Answer),
		}
	}
	return nil
}

// choiceIndex resolves a canonical multiple-choice answer to an option
// index. Accepts bare letters ("B"), lettered prefixes ("B) 42"), in
// either case.
func choiceIndex(answer string) (int, bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0, false
	}
	letter := answer[0]
	if letter >= 'a' && letter <= 'd' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'D' {
		return 0, false
	}
	// A bare letter, or a letter followed by a separator.
	if len(answer) == 1 {
		return int(letter - 'A'), true
	}
	switch answer[1] {
	case ')', '.', ':', ' ':
		return int(letter - 'A'), true
	}
	return 0, false
}

// AnswerLengthValidator rejects free-text canonical answers too long to
// compare meaningfully.
type AnswerLengthValidator struct{}

func (v *AnswerLengthValidator) Name() string { return "answer-length" }

func (v *AnswerLengthValidator) Validate(q *Question) *ValidationError {
	if q.Kind == KindFreeText && len(q.Answer) > 120 {
		return &ValidationError{Validator: v.Name(), Message: "free-text answer exceeds 120 characters"}
	}
	return nil
}
