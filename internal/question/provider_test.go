package question

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nlebele/dyscreen/internal/llm"
)

func validNumbersJSON() json.RawMessage {
	return json.RawMessage(`{
		"question": "What is 23 + 19?",
		"choices": ["41", "42", "43", "44"],
		"answer": "B"
	}`)
}

func validLogicJSON() json.RawMessage {
	return json.RawMessage(`{
		"question": "What comes next: 2, 4, 8, 16?",
		"choices": [],
		"answer": "32"
	}`)
}

func TestRequest_Generated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNumbersJSON()})
	p := New(mock, DefaultConfig())

	q := p.Request(context.Background(), PartNumbers, DifficultyMedium, 2)

	if q.Fallback {
		t.Fatal("expected a generated question, got fallback")
	}
	if q.Text != "What is 23 + 19?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if q.Kind != KindMultipleChoice || len(q.Choices) != 4 {
		t.Errorf("unexpected kind/choices: %q %v", q.Kind, q.Choices)
	}
	if q.Part != PartNumbers || q.Difficulty != DifficultyMedium || q.Position != 2 {
		t.Errorf("slot fields not stamped: %+v", q)
	}
	if q.Topic == "" {
		t.Error("expected a topic to be picked")
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Schema != Schema {
		t.Error("generation request did not carry the question schema")
	}
}

func TestRequest_FallbackWhenProviderDown(t *testing.T) {
	// Empty queue: every call returns ErrProviderUnavailable.
	mock := llm.NewMockProvider()
	cfg := DefaultConfig()
	p := New(mock, cfg)

	q := p.Request(context.Background(), PartLogic, DifficultyHard, 4)

	if !q.Fallback {
		t.Fatal("expected fallback question")
	}
	want, _ := fallbackFor(PartLogic, DifficultyHard, 4)
	if q.Text != want.Text || q.Answer != want.Answer {
		t.Errorf("fallback does not match table entry: %+v", q)
	}
	if mock.CallCount() != cfg.MaxAttempts {
		t.Errorf("expected %d attempts, got %d", cfg.MaxAttempts, mock.CallCount())
	}
}

func TestRequest_FallbackAfterUnparsableReplies(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"I cannot help with that."`)},
		llm.MockResponse{Content: json.RawMessage(`"Still no question here."`)},
	)
	p := New(mock, DefaultConfig())

	q := p.Request(context.Background(), PartShapes, DifficultyEasy, 1)

	if !q.Fallback {
		t.Fatal("expected fallback after unparsable replies")
	}
	if q.Part != PartShapes || q.Position != 1 {
		t.Errorf("fallback slot mismatch: %+v", q)
	}
}

func TestRequest_RecoversFromSchemaRejection(t *testing.T) {
	// The reply fails schema validation but the tagged parser can
	// still extract a question from the raw content.
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{
			Content: json.RawMessage("Question: What day comes after Friday?\nAnswer: Saturday"),
			Err:     errors.New("schema validation failed"),
		},
	})
	p := New(mock, DefaultConfig())

	q := p.Request(context.Background(), PartLogic, DifficultyEasy, 1)

	if q.Fallback {
		t.Fatal("expected recovery from the rejected reply, got fallback")
	}
	if q.Text != "What day comes after Friday?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if q.Answer != "Saturday" {
		t.Errorf("unexpected answer: %q", q.Answer)
	}
}

func TestRequest_ValidationFailureRetries(t *testing.T) {
	// First reply has only 3 options; second is valid.
	bad := json.RawMessage(`{
		"question": "What is 6 x 7?",
		"choices": ["40", "42", "44"],
		"answer": "B"
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: validNumbersJSON()},
	)
	p := New(mock, DefaultConfig())

	q := p.Request(context.Background(), PartNumbers, DifficultyMedium, 2)

	if q.Fallback {
		t.Fatal("expected second attempt to succeed")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 attempts, got %d", mock.CallCount())
	}
}

type fixedIllustrator struct {
	data string
}

func (f *fixedIllustrator) Render(string) (string, bool) {
	return f.data, f.data != ""
}

func TestRequest_ShapesIllustration(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"question": "How many sides does a square have?",
		"choices": [],
		"answer": "4"
	}`)})
	p := New(mock, DefaultConfig())
	p.SetIllustrator(&fixedIllustrator{data: "png-bytes"})

	q := p.Request(context.Background(), PartShapes, DifficultyEasy, 3)
	if q.Illustration != "png-bytes" {
		t.Errorf("expected illustration to be attached, got %q", q.Illustration)
	}
}

func TestRequest_NoIllustrationOutsideShapes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLogicJSON()})
	p := New(mock, DefaultConfig())
	p.SetIllustrator(&fixedIllustrator{data: "png-bytes"})

	q := p.Request(context.Background(), PartLogic, DifficultyMedium, 3)
	if q.Illustration != "" {
		t.Errorf("logic question should not carry an illustration, got %q", q.Illustration)
	}
}
