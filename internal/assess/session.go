package assess

import (
	"time"

	"github.com/google/uuid"

	"github.com/nlebele/dyscreen/internal/question"
	"github.com/nlebele/dyscreen/internal/risk"
)

// session tracks one subject's progress through the screening. Parts
// are administered in order (Numbers, Logic, Shapes), five questions
// each. Access is serialized by the tracker's per-subject lock.
type session struct {
	ID        string
	SubjectID string
	StartedAt time.Time

	partIdx  int // index into question.Parts
	position int // 1-based within the current part

	scores  risk.Scores
	pending *question.Question

	// asked records every issued question so the staff breakdown can
	// show what the subject actually saw.
	asked []*question.Question
}

func newSession(subjectID string) *session {
	return &session{
		ID:        uuid.NewString(),
		SubjectID: subjectID,
		StartedAt: time.Now(),
		position:  1,
		scores:    make(risk.Scores, len(question.Parts)),
	}
}

// Completed reports whether all parts have been answered.
func (s *session) Completed() bool {
	return s.partIdx >= len(question.Parts)
}

// Part returns the part currently being administered.
func (s *session) Part() question.Part {
	return question.Parts[s.partIdx]
}

// Position returns the 1-based position within the current part.
func (s *session) Position() int {
	return s.position
}

// Difficulty returns the difficulty for the current position. Each part
// opens easy, ramps to medium for positions 2-3, and finishes hard.
func (s *session) Difficulty() question.Difficulty {
	return difficultyFor(s.position)
}

func difficultyFor(position int) question.Difficulty {
	switch {
	case position <= 1:
		return question.DifficultyEasy
	case position <= 3:
		return question.DifficultyMedium
	default:
		return question.DifficultyHard
	}
}

// record scores the pending question and advances to the next slot.
func (s *session) record(correct bool) {
	if correct {
		s.scores[s.Part()]++
	}
	s.asked = append(s.asked, s.pending)
	s.pending = nil

	s.position++
	if s.position > question.PositionsPerPart {
		s.position = 1
		s.partIdx++
	}
}
