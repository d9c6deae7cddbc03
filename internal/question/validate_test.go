package question

import (
	"strings"
	"testing"
)

func mcQuestion() *Question {
	return &Question{
		Part:       PartNumbers,
		Difficulty: DifficultyMedium,
		Position:   2,
		Kind:       KindMultipleChoice,
		Text:       "What is 6 x 7?",
		Choices:    []string{"40", "42", "44", "48"},
		Answer:     "B",
	}
}

func freeTextQuestion() *Question {
	return &Question{
		Part:       PartLogic,
		Difficulty: DifficultyEasy,
		Position:   1,
		Kind:       KindFreeText,
		Text:       "What day comes after Monday?",
		Answer:     "Tuesday",
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	if err := v.Validate(mcQuestion()); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}

	q := mcQuestion()
	q.Text = "  "
	if v.Validate(q) == nil {
		t.Error("expected rejection for empty text")
	}

	q = mcQuestion()
	q.Text = strings.Repeat("x", 501)
	if v.Validate(q) == nil {
		t.Error("expected rejection for overlong text")
	}

	q = mcQuestion()
	q.Answer = ""
	if v.Validate(q) == nil {
		t.Error("expected rejection for empty answer")
	}
}

func TestChoiceValidator_MultipleChoice(t *testing.T) {
	v := &ChoiceValidator{}

	if err := v.Validate(mcQuestion()); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}

	q := mcQuestion()
	q.Answer = "b) 42"
	if err := v.Validate(q); err != nil {
		t.Errorf("lettered-prefix answer rejected: %v", err)
	}

	q = mcQuestion()
	q.Choices = q.Choices[:3]
	if v.Validate(q) == nil {
		t.Error("expected rejection for 3 options")
	}

	q = mcQuestion()
	q.Answer = "E"
	if v.Validate(q) == nil {
		t.Error("expected rejection for answer outside A-D")
	}

	q = mcQuestion()
	q.Answer = "42"
	if v.Validate(q) == nil {
		t.Error("expected rejection for non-letter answer")
	}
}

func TestChoiceValidator_FreeText(t *testing.T) {
	v := &ChoiceValidator{}

	if err := v.Validate(freeTextQuestion()); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}

	q := freeTextQuestion()
	q.Choices = []string{"yes", "no"}
	if v.Validate(q) == nil {
		t.Error("expected rejection for options on a free-text question")
	}
}

func TestAnswerLengthValidator(t *testing.T) {
	v := &AnswerLengthValidator{}

	if err := v.Validate(freeTextQuestion()); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}

	q := freeTextQuestion()
	q.Answer = strings.Repeat("a", 121)
	if v.Validate(q) == nil {
		t.Error("expected rejection for overlong free-text answer")
	}

	// Multiple-choice answers are letters; the limit does not apply.
	q = mcQuestion()
	q.Answer = strings.Repeat("a", 121)
	if err := v.Validate(q); err != nil {
		t.Errorf("multiple-choice question rejected: %v", err)
	}
}

func TestChoiceIndex(t *testing.T) {
	cases := []struct {
		answer string
		idx    int
		ok     bool
	}{
		{"B", 1, true},
		{"b", 1, true},
		{" b ", 1, true},
		{"b) 42", 1, true},
		{"D. seven", 3, true},
		{"E", 0, false},
		{"42", 0, false},
		{"", 0, false},
		{"Banana", 0, false},
	}
	for _, tc := range cases {
		idx, ok := choiceIndex(tc.answer)
		if ok != tc.ok || (ok && idx != tc.idx) {
			t.Errorf("choiceIndex(%q) = (%d, %v), want (%d, %v)", tc.answer, idx, ok, tc.idx, tc.ok)
		}
	}
}
