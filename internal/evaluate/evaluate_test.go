package evaluate

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nlebele/dyscreen/internal/llm"
	"github.com/nlebele/dyscreen/internal/question"
)

func mcQuestion() *question.Question {
	return &question.Question{
		Part:    question.PartNumbers,
		Kind:    question.KindMultipleChoice,
		Text:    "What is 6 x 7?",
		Choices: []string{"40", "42", "44", "48"},
		Answer:  "B",
	}
}

func freeTextQuestion(canonical string) *question.Question {
	return &question.Question{
		Part:   question.PartLogic,
		Kind:   question.KindFreeText,
		Text:   "Two pencils cost 8 cents. How much do five pencils cost?",
		Answer: canonical,
	}
}

func TestEvaluate_MultipleChoice(t *testing.T) {
	e := New(nil)
	ctx := context.Background()
	q := mcQuestion()

	cases := []struct {
		student string
		want    bool
	}{
		{"B", true},
		{"b", true},
		{" b ", true},
		{"b) 42", true},
		{"42", true},
		{"C", false},
		{"40", false},
		{"", false},
		{"banana", false},
	}
	for _, tc := range cases {
		if got := e.Evaluate(ctx, q, tc.student); got != tc.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.student, got, tc.want)
		}
	}
}

func TestEvaluate_MultipleChoiceNeverCallsJudge(t *testing.T) {
	mock := llm.NewMockProvider()
	e := New(mock)

	e.Evaluate(context.Background(), mcQuestion(), "wrong answer")

	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls for multiple choice, got %d", mock.CallCount())
	}
}

func TestEvaluate_FreeTextExactMatch(t *testing.T) {
	mock := llm.NewMockProvider()
	e := New(mock)

	q := freeTextQuestion("20 cents")
	if !e.Evaluate(context.Background(), q, "  20   Cents. ") {
		t.Error("normalized exact match should pass")
	}
	if mock.CallCount() != 0 {
		t.Errorf("exact match should not reach the judge, got %d calls", mock.CallCount())
	}
}

func TestEvaluate_JudgeVerdicts(t *testing.T) {
	q := freeTextQuestion("20 cents")

	yes := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("yes")})
	if !New(yes).Evaluate(context.Background(), q, "twenty cents") {
		t.Error("judge yes should accept the answer")
	}

	no := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("no")})
	if New(no).Evaluate(context.Background(), q, "eight cents") {
		t.Error("judge no should reject the answer")
	}
}

func TestEvaluate_JudgeDownFallsToSimilarity(t *testing.T) {
	// Empty queue: the judge call fails with ErrProviderUnavailable.
	mock := llm.NewMockProvider()
	e := New(mock)
	q := freeTextQuestion("20 cents")

	if !e.Evaluate(context.Background(), q, "it is 20 cents") {
		t.Error("similarity tier should accept an answer containing the canonical tokens")
	}
	if e.Evaluate(context.Background(), q, "no idea") {
		t.Error("similarity tier should reject an unrelated answer")
	}
}

func TestEvaluate_AmbiguousJudgeReplyFallsToSimilarity(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("well, that depends on interpretation"),
	})
	e := New(mock)

	q := freeTextQuestion("95 minutes")
	if !e.Evaluate(context.Background(), q, "about 95 minutes total") {
		t.Error("ambiguous verdict should fall through to similarity, which accepts here")
	}
}

func TestEvaluate_NilProviderSkipsJudge(t *testing.T) {
	e := New(nil)
	q := freeTextQuestion("Thursday")

	if !e.Evaluate(context.Background(), q, "thursday") {
		t.Error("exact match should pass without a provider")
	}
	if e.Evaluate(context.Background(), q, "friday") {
		t.Error("mismatch should fail without a provider")
	}
}

func TestEvaluate_EmptyAndNil(t *testing.T) {
	mock := llm.NewMockProvider()
	e := New(mock)

	if e.Evaluate(context.Background(), nil, "anything") {
		t.Error("nil question must grade false")
	}
	if e.Evaluate(context.Background(), freeTextQuestion("7"), "   ") {
		t.Error("blank answer must grade false")
	}
	if mock.CallCount() != 0 {
		t.Errorf("degenerate inputs should not reach the judge, got %d calls", mock.CallCount())
	}
}

func TestParseVerdict(t *testing.T) {
	cases := []struct {
		reply   string
		verdict bool
		ok      bool
	}{
		{"yes", true, true},
		{"Yes.", true, true},
		{`"no"`, false, true},
		{"NO", false, true},
		{"yes, the student is correct", false, false},
		{"maybe", false, false},
		{"", false, false},
	}
	for _, tc := range cases {
		verdict, ok := parseVerdict(tc.reply)
		if verdict != tc.verdict || ok != tc.ok {
			t.Errorf("parseVerdict(%q) = (%v, %v), want (%v, %v)", tc.reply, verdict, ok, tc.verdict, tc.ok)
		}
	}
}

func TestTokenOverlap(t *testing.T) {
	cases := []struct {
		student   string
		canonical string
		want      float64
	}{
		{"20 cents", "20 cents", 1.0},
		{"20", "20 cents", 0.5},
		{"the answer is second place", "second", 1.0},
		{"no idea", "95 minutes", 0.0},
		{"anything", "", 0.0},
	}
	for _, tc := range cases {
		if got := tokenOverlap(tc.student, tc.canonical); got != tc.want {
			t.Errorf("tokenOverlap(%q, %q) = %v, want %v", tc.student, tc.canonical, got, tc.want)
		}
	}
}
