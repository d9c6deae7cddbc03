package question

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError indicates a backend reply that none of the parse layers
// could make sense of. It never crosses the engine boundary: the caller
// retries and eventually falls back to the static table.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse question reply: %s", e.Reason)
}

// parsed is the raw question content extracted from a backend reply,
// before validation.
type parsed struct {
	Text    string
	Choices []string
	Answer  string
}

// parseReply extracts a question/answer pair from a backend reply using
// three layers, strictest first:
//
//  1. structured JSON matching the generation schema
//  2. strict tag parsing (Question: / A) .. D) / Answer: markers)
//  3. a heuristic scan: a line containing "?" as the question, a short
//     trailing line as the answer
func parseReply(raw string) (*parsed, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, &ParseError{Reason: "empty reply"}
	}

	if p, err := parseJSON(raw); err == nil {
		return p, nil
	}
	if p, err := parseTagged(raw); err == nil {
		return p, nil
	}
	return parseHeuristic(raw)
}

// jsonReply mirrors the generation schema.
type jsonReply struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer"`
}

func parseJSON(raw string) (*parsed, error) {
	// Some backends wrap JSON in a markdown fence even when asked not to.
	raw = stripFence(raw)

	var r jsonReply
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, &ParseError{Reason: "not valid JSON"}
	}
	if strings.TrimSpace(r.Question) == "" || strings.TrimSpace(r.Answer) == "" {
		return nil, &ParseError{Reason: "JSON missing question or answer"}
	}
	return &parsed{
		Text:    strings.TrimSpace(r.Question),
		Choices: trimAll(r.Choices),
		Answer:  strings.TrimSpace(r.Answer),
	}, nil
}

// optionMarkers are the accepted prefixes for multiple-choice options.
var optionMarkers = []string{")", ".", ":"}

func parseTagged(raw string) (*parsed, error) {
	lines := strings.Split(raw, "\n")

	var (
		questionLines []string
		choices       []string
		answer        string
		inQuestion    bool
	)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "Question:"):
			inQuestion = true
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "Question:"))
			if rest != "" {
				questionLines = append(questionLines, rest)
			}

		case strings.HasPrefix(trimmed, "Answer:"):
			inQuestion = false
			answer = strings.TrimSpace(strings.TrimPrefix(trimmed, "Answer:"))

		case isOptionLine(trimmed):
			inQuestion = false
			choices = append(choices, optionText(trimmed))

		case inQuestion:
			questionLines = append(questionLines, trimmed)
		}
	}

	if len(questionLines) == 0 || answer == "" {
		return nil, &ParseError{Reason: "missing Question: or Answer: tag"}
	}
	return &parsed{
		Text:    strings.Join(questionLines, " "),
		Choices: choices,
		Answer:  answer,
	}, nil
}

// isOptionLine reports whether the line starts with an A-D option marker,
// e.g. "A) 42" or "b. seven".
func isOptionLine(line string) bool {
	if len(line) < 2 {
		return false
	}
	letter := line[0]
	if letter >= 'a' && letter <= 'd' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'D' {
		return false
	}
	for _, m := range optionMarkers {
		if strings.HasPrefix(line[1:], m) {
			return true
		}
	}
	return false
}

// optionText strips the option marker from an option line.
func optionText(line string) string {
	return strings.TrimSpace(line[2:])
}

// maxHeuristicAnswerLen caps how long a trailing line may be to count as
// the answer in the heuristic layer. Anything longer is prose, not an
// answer.
const maxHeuristicAnswerLen = 80

func parseHeuristic(raw string) (*parsed, error) {
	lines := strings.Split(raw, "\n")

	questionIdx := -1
	for i, line := range lines {
		if strings.Contains(line, "?") {
			questionIdx = i
			break
		}
	}
	if questionIdx == -1 {
		return nil, &ParseError{Reason: "no line containing a question mark"}
	}

	// The answer is the last short, non-empty line after the question.
	for i := len(lines) - 1; i > questionIdx; i-- {
		candidate := strings.TrimSpace(lines[i])
		if candidate == "" || len(candidate) > maxHeuristicAnswerLen {
			continue
		}
		return &parsed{
			Text:   strings.TrimSpace(lines[questionIdx]),
			Answer: candidate,
		}, nil
	}
	return nil, &ParseError{Reason: "no trailing answer line"}
}

// stripFence removes a surrounding markdown code fence, if present.
func stripFence(raw string) string {
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}

func trimAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
