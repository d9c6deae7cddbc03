package question

// Part identifies a themed third of the screening.
type Part string

const (
	PartNumbers Part = "numbers"
	PartLogic   Part = "logic"
	PartShapes  Part = "shapes"
)

// Parts lists the assessment parts in the order they are administered.
var Parts = []Part{PartNumbers, PartLogic, PartShapes}

// Valid reports whether p is a known part.
func (p Part) Valid() bool {
	return p == PartNumbers || p == PartLogic || p == PartShapes
}

// Label returns the human-readable part name used in messages and
// staff breakdowns.
func (p Part) Label() string {
	switch p {
	case PartNumbers:
		return "Numbers"
	case PartLogic:
		return "Logic"
	case PartShapes:
		return "Shapes"
	}
	return string(p)
}

// Difficulty is a question difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all difficulty levels.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Kind describes how the subject answers a question.
type Kind string

const (
	// KindMultipleChoice means the subject picks one of 4 lettered options.
	// Used for the Numbers part.
	KindMultipleChoice Kind = "multiple_choice"

	// KindFreeText means the subject types a short answer.
	// Used for the Logic and Shapes parts.
	KindFreeText Kind = "free_text"
)

// KindFor returns the answer kind used by the given part.
func KindFor(part Part) Kind {
	if part == PartNumbers {
		return KindMultipleChoice
	}
	return KindFreeText
}

// PositionsPerPart is the number of questions in each part.
const PositionsPerPart = 5

// Question is one generated (or fallback) screening question together
// with its canonical answer. The canonical answer never leaves the engine.
type Question struct {
	// Part, Difficulty and Position record where in the screening this
	// question was issued.
	Part       Part
	Difficulty Difficulty
	Position   int

	// Topic is the thematic seed the question was generated from.
	Topic string

	// Kind indicates multiple-choice or free-text answering.
	Kind Kind

	// Text is the question prompt shown to the subject.
	Text string

	// Choices holds exactly 4 options for multiple-choice questions,
	// in A-D order. Empty for free-text questions.
	Choices []string

	// Answer is the canonical correct answer: a single letter (A-D) for
	// multiple choice, a short phrase for free text.
	Answer string

	// Illustration is an optional inline-encoded PNG for Shapes
	// questions. Empty when rendering was skipped or failed.
	Illustration string

	// Fallback is true when the question came from the static table
	// rather than the generative backend.
	Fallback bool
}
