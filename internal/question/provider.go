package question

import (
	"context"
	"errors"

	"github.com/nlebele/dyscreen/internal/llm"
)

// Illustrator renders an inline illustration for a question. Render
// returns the encoded image and true when the question text names a
// figure it can draw.
type Illustrator interface {
	Render(questionText string) (data string, ok bool)
}

// Provider produces screening questions using an LLM backend with a
// static fallback table. Request never returns an error: every failure
// mode ends in a fallback question so the assessment can always proceed.
type Provider struct {
	llm         llm.Provider
	config      Config
	illustrator Illustrator
}

// New creates a new Provider with the given LLM backend and config.
func New(provider llm.Provider, cfg Config) *Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Provider{llm: provider, config: cfg}
}

// SetIllustrator attaches a renderer used to decorate shape questions.
// Illustration is best effort; a nil illustrator disables it.
func (p *Provider) SetIllustrator(ill Illustrator) {
	p.illustrator = ill
}

// Request produces the question for one slot of the assessment.
// Position is 1-based within the part. Generation is attempted up to
// MaxAttempts times; any generation, parse, or validation failure moves
// to the next attempt, and when the budget is spent the static fallback
// for the same slot is served instead.
func (p *Provider) Request(ctx context.Context, part Part, difficulty Difficulty, position int) *Question {
	topic := pickTopic(part, position)

	for attempt := 0; attempt < p.config.MaxAttempts; attempt++ {
		q, err := p.generate(ctx, part, difficulty, position, topic)
		if err != nil {
			continue
		}
		p.decorate(q)
		return q
	}

	fb, ok := fallbackFor(part, difficulty, position)
	if !ok {
		fb, _ = fallbackFor(PartNumbers, DifficultyEasy, 1)
	}
	p.decorate(fb)
	return fb
}

// generate performs one LLM attempt: call, parse, validate.
func (p *Provider) generate(ctx context.Context, part Part, difficulty Difficulty, position int, topic string) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(part, difficulty, topic)},
		},
		Schema:      Schema,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	}

	resp, err := p.llm.Generate(ctx, req)

	// A schema rejection still carries the raw reply; the layered text
	// parser can often recover a usable question from it.
	var raw string
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) && len(invalid.Content) > 0 {
			raw = string(invalid.Content)
		} else {
			return nil, err
		}
	} else {
		raw = string(resp.Content)
	}

	pr, err := parseReply(raw)
	if err != nil {
		return nil, err
	}

	q := &Question{
		Part:       part,
		Difficulty: difficulty,
		Position:   position,
		Topic:      topic,
		Kind:       KindFor(part),
		Text:       pr.Text,
		Choices:    pr.Choices,
		Answer:     pr.Answer,
	}

	for _, v := range p.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

func (p *Provider) decorate(q *Question) {
	if q.Part != PartShapes || p.illustrator == nil {
		return
	}
	if img, ok := p.illustrator.Render(q.Text); ok {
		q.Illustration = img
	}
}
