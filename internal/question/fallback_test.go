package question

import "testing"

// Every slot the difficulty schedule can reach must resolve to a usable
// static question: fallback is the last line of defense and may not fail.
func TestFallbackCoverage(t *testing.T) {
	for _, part := range Parts {
		for _, difficulty := range Difficulties {
			for pos := 1; pos <= PositionsPerPart; pos++ {
				q, ok := fallbackFor(part, difficulty, pos)
				if !ok {
					t.Fatalf("no fallback for %s/%s position %d", part, difficulty, pos)
				}
				if q.Text == "" || q.Answer == "" {
					t.Errorf("%s/%s position %d: incomplete entry", part, difficulty, pos)
				}
				if !q.Fallback {
					t.Errorf("%s/%s position %d: Fallback flag not set", part, difficulty, pos)
				}
				if q.Part != part || q.Difficulty != difficulty || q.Position != pos {
					t.Errorf("%s/%s position %d: slot fields not stamped", part, difficulty, pos)
				}

				switch KindFor(part) {
				case KindMultipleChoice:
					if len(q.Choices) != 4 {
						t.Errorf("%s/%s position %d: expected 4 choices, got %d", part, difficulty, pos, len(q.Choices))
					}
					if _, ok := choiceIndex(q.Answer); !ok {
						t.Errorf("%s/%s position %d: answer %q is not a choice letter", part, difficulty, pos, q.Answer)
					}
				case KindFreeText:
					if len(q.Choices) != 0 {
						t.Errorf("%s/%s position %d: free-text entry carries choices", part, difficulty, pos)
					}
				}
			}
		}
	}
}

func TestFallbackFor_OutOfRange(t *testing.T) {
	if _, ok := fallbackFor(PartNumbers, DifficultyEasy, 0); ok {
		t.Error("position 0 should not resolve")
	}
	if _, ok := fallbackFor(PartNumbers, DifficultyEasy, PositionsPerPart+1); ok {
		t.Error("position past the part should not resolve")
	}
	if _, ok := fallbackFor(Part("colors"), DifficultyEasy, 1); ok {
		t.Error("unknown part should not resolve")
	}
}

func TestFallbackFor_CopiesChoices(t *testing.T) {
	a, _ := fallbackFor(PartNumbers, DifficultyEasy, 1)
	b, _ := fallbackFor(PartNumbers, DifficultyEasy, 1)
	a.Choices[0] = "mutated"
	if b.Choices[0] == "mutated" {
		t.Error("fallback questions share backing choice slices")
	}
}
