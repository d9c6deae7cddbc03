package question

import (
	"strings"
	"testing"
)

func TestParseReply_JSON(t *testing.T) {
	raw := `{"question": "What is 6 x 7?", "choices": ["40", "42", "44", "48"], "answer": "B"}`

	p, err := parseReply(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Text != "What is 6 x 7?" {
		t.Errorf("unexpected text: %q", p.Text)
	}
	if len(p.Choices) != 4 {
		t.Errorf("expected 4 choices, got %d", len(p.Choices))
	}
	if p.Answer != "B" {
		t.Errorf("expected answer B, got %q", p.Answer)
	}
}

func TestParseReply_JSONFenced(t *testing.T) {
	raw := "```json\n{\"question\": \"What comes next: 2, 4, 8?\", \"choices\": [], \"answer\": \"16\"}\n```"

	p, err := parseReply(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Text != "What comes next: 2, 4, 8?" {
		t.Errorf("unexpected text: %q", p.Text)
	}
	if p.Answer != "16" {
		t.Errorf("expected answer 16, got %q", p.Answer)
	}
	if len(p.Choices) != 0 {
		t.Errorf("expected no choices, got %v", p.Choices)
	}
}

func TestParseReply_Tagged(t *testing.T) {
	raw := strings.Join([]string{
		"Question: Which number is the largest?",
		"A) 12",
		"B) 21",
		"C) 19",
		"D) 15",
		"Answer: B",
	}, "\n")

	p, err := parseReply(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Text != "Which number is the largest?" {
		t.Errorf("unexpected text: %q", p.Text)
	}
	if len(p.Choices) != 4 || p.Choices[1] != "21" {
		t.Errorf("unexpected choices: %v", p.Choices)
	}
	if p.Answer != "B" {
		t.Errorf("expected answer B, got %q", p.Answer)
	}
}

func TestParseReply_TaggedMultilineQuestion(t *testing.T) {
	raw := strings.Join([]string{
		"Question: Sara has 3 apples.",
		"She buys 4 more. How many apples does she have?",
		"Answer: 7",
	}, "\n")

	p, err := parseReply(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(p.Text, "How many apples") {
		t.Errorf("continuation line not joined: %q", p.Text)
	}
	if p.Answer != "7" {
		t.Errorf("expected answer 7, got %q", p.Answer)
	}
}

func TestParseReply_Heuristic(t *testing.T) {
	raw := strings.Join([]string{
		"Sure, here is a question for you.",
		"How many sides does a triangle have?",
		"",
		"The answer is 3.",
	}, "\n")

	p, err := parseReply(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Text != "How many sides does a triangle have?" {
		t.Errorf("unexpected text: %q", p.Text)
	}
	if p.Answer != "The answer is 3." {
		t.Errorf("unexpected answer: %q", p.Answer)
	}
}

func TestParseReply_Empty(t *testing.T) {
	if _, err := parseReply("   \n  "); err == nil {
		t.Fatal("expected error for empty reply")
	}
}

func TestParseReply_NoQuestionMark(t *testing.T) {
	_, err := parseReply("I cannot help with that request.")
	if err == nil {
		t.Fatal("expected error for reply without a question")
	}
}

func TestParseReply_NoTrailingAnswer(t *testing.T) {
	_, err := parseReply("How many sides does a triangle have?")
	if err == nil {
		t.Fatal("expected error when no answer line follows the question")
	}
}

func TestIsOptionLine(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"A) 42", true},
		{"b. seven", true},
		{"D: 100", true},
		{"E) 42", false},
		{"Answer: B", false},
		{"A", false},
	}
	for _, tc := range cases {
		if got := isOptionLine(tc.line); got != tc.want {
			t.Errorf("isOptionLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}
