package question

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a professional assessor specializing in learning difficulties, specifically dyscalculia. You are generating questions for a short, non-diagnostic screening test. Your tone is neutral and supportive.

Rules:
- Generate exactly one question per request, for the given category, difficulty, and topic.
- Use plain ASCII text. No LaTeX, no Unicode symbols, no markdown.
- The question must be self-contained and answerable without any prior question.
- The canonical answer must be correct and unambiguous.
- For multiple-choice questions, provide exactly 4 options labeled A to D where exactly one is correct, and give the correct option's letter as the answer.
- For free-text questions, give a single short phrase as the answer. Do not provide options.
- Never include the answer, hints, or explanations inside the question text.`

// buildUserMessage constructs the generation request for one question.
func buildUserMessage(part Part, difficulty Difficulty, topic string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category: %s\n", categoryLine(part))
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	if topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", topic)
	}

	if KindFor(part) == KindMultipleChoice {
		b.WriteString("\nProduce one multiple-choice question with options A-D and the correct letter as the answer.")
	} else {
		b.WriteString("\nProduce one free-text question with a single short correct answer.")
	}

	return b.String()
}

// categoryLine describes the part for the prompt, matching the screening's
// three cognitive categories.
func categoryLine(part Part) string {
	switch part {
	case PartNumbers:
		return "Numbers (mental arithmetic, number sequencing, place value, estimation)"
	case PartLogic:
		return "Logic (pattern recognition, sequential reasoning, problem solving)"
	case PartShapes:
		return "Shapes (recognizing and manipulating geometric shapes, spatial reasoning)"
	}
	return string(part)
}
