package evaluate

import (
	"context"
	"fmt"
	"strings"

	"github.com/nlebele/dyscreen/internal/llm"
)

const judgeSystemPrompt = `You grade answers on a screening test for children.
Given a question, the expected answer, and a student's answer, decide
whether the student's answer means the same thing as the expected answer.
Accept different wording, spelling slips, and extra words as long as the
meaning matches. Reply with exactly one word: yes or no.`

// askJudge asks the LLM whether the student's answer is equivalent to
// the canonical one. The second return value is false when the judge was
// unreachable or its reply was not an unambiguous yes/no, in which case
// the caller falls through to the similarity tier.
func (e *Evaluator) askJudge(ctx context.Context, questionText, canonical, student string) (bool, bool) {
	ctx = llm.WithPurpose(ctx, "answer-judge")

	userMsg := fmt.Sprintf(
		"Question: %s\nExpected answer: %s\nStudent answer: %s\n\nIs the student correct? Reply yes or no.",
		questionText, canonical, student,
	)

	resp, err := e.llm.Generate(ctx, llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   8,
		Temperature: 0,
	})
	if err != nil {
		return false, false
	}

	return parseVerdict(string(resp.Content))
}

// parseVerdict extracts a yes/no verdict from a judge reply. Anything
// other than a clear leading yes or no is treated as no verdict.
func parseVerdict(reply string) (bool, bool) {
	reply = strings.ToLower(strings.TrimSpace(reply))
	reply = strings.Trim(reply, `"'.!`)

	fields := strings.Fields(reply)
	if len(fields) != 1 {
		return false, false
	}
	switch fields[0] {
	case "yes":
		return true, true
	case "no":
		return false, true
	}
	return false, false
}
