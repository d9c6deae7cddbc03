package assess

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nlebele/dyscreen/internal/question"
	"github.com/nlebele/dyscreen/internal/risk"
	"github.com/nlebele/dyscreen/internal/store"
)

// QuestionProvider supplies the question for one slot of the screening.
type QuestionProvider interface {
	Request(ctx context.Context, part question.Part, difficulty question.Difficulty, position int) *question.Question
}

// AnswerEvaluator grades a subject's answer against a question.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, q *question.Question, answer string) bool
}

// Tracker owns all in-flight screening sessions and drives each one
// through the part sequence to a persisted result. All methods are safe
// for concurrent use; requests for the same subject are mutually
// exclusive, and a request that would have to wait fails with a
// ConflictError instead.
type Tracker struct {
	provider QuestionProvider
	eval     AnswerEvaluator
	agg      *risk.Aggregator
	results  store.ResultRepo

	mu       sync.Mutex
	sessions map[string]*session
	locks    map[string]*sync.Mutex
}

// NewTracker creates a Tracker wired to the given collaborators.
func NewTracker(provider QuestionProvider, eval AnswerEvaluator, agg *risk.Aggregator, results store.ResultRepo) *Tracker {
	return &Tracker{
		provider: provider,
		eval:     eval,
		agg:      agg,
		results:  results,
		sessions: make(map[string]*session),
		locks:    make(map[string]*sync.Mutex),
	}
}

// SessionView is the caller-facing state of a screening session.
type SessionView struct {
	SessionID  string
	Part       question.Part
	Position   int
	Difficulty question.Difficulty
	StartedAt  time.Time
}

// QuestionView is a question as shown to the subject. The canonical
// answer is deliberately absent.
type QuestionView struct {
	Part         question.Part
	Position     int
	Difficulty   question.Difficulty
	Kind         question.Kind
	Text         string
	Choices      []string
	Illustration string
}

// Progress is the outcome of one submitted answer.
type Progress struct {
	Correct   bool
	Completed bool

	// NextPart and NextPosition identify the upcoming slot. Unset when
	// the screening completed.
	NextPart     question.Part
	NextPosition int

	// Outcome is set when this answer completed the screening.
	Outcome *risk.Outcome
}

// Begin starts a screening for the subject. Fails with a ConflictError
// if the subject already has a session in flight or a recorded result.
func (t *Tracker) Begin(ctx context.Context, subjectID string) (*SessionView, error) {
	if err := checkSubject(subjectID); err != nil {
		return nil, err
	}
	unlock, err := t.acquire(subjectID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := t.results.Get(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("check existing result: %w", err)
	}
	if existing != nil {
		return nil, conflictf("subject %s already completed the screening", subjectID)
	}

	t.mu.Lock()
	_, inFlight := t.sessions[subjectID]
	if !inFlight {
		t.sessions[subjectID] = newSession(subjectID)
	}
	s := t.sessions[subjectID]
	t.mu.Unlock()

	if inFlight {
		return nil, conflictf("subject %s already has a screening in progress", subjectID)
	}
	return sessionView(s), nil
}

// Question returns the current question for the subject. The call is
// idempotent: repeated fetches of the same slot return the same
// question without regenerating it.
func (t *Tracker) Question(ctx context.Context, subjectID string) (*QuestionView, error) {
	if err := checkSubject(subjectID); err != nil {
		return nil, err
	}
	unlock, err := t.acquire(subjectID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	s, err := t.lookup(subjectID)
	if err != nil {
		return nil, err
	}

	if s.pending == nil {
		s.pending = t.provider.Request(ctx, s.Part(), s.Difficulty(), s.Position())
	}
	return questionView(s.pending), nil
}

// Submit grades the answer for the identified slot and advances the
// session. The (part, position) pair must match the outstanding
// question; a mismatch means the client is answering a slot that is no
// longer current and fails with a ConflictError. Completing the last
// slot finalizes the screening and drops the session.
func (t *Tracker) Submit(ctx context.Context, subjectID string, part question.Part, position int, answer string) (*Progress, error) {
	if err := checkSubject(subjectID); err != nil {
		return nil, err
	}
	if !part.Valid() {
		return nil, validationf("unknown part %q", part)
	}
	if position < 1 || position > question.PositionsPerPart {
		return nil, validationf("position %d out of range 1-%d", position, question.PositionsPerPart)
	}
	if strings.TrimSpace(answer) == "" {
		return nil, validationf("answer must not be empty")
	}

	unlock, err := t.acquire(subjectID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	s, err := t.lookup(subjectID)
	if err != nil {
		return nil, err
	}
	if s.pending == nil {
		return nil, conflictf("no question outstanding; fetch the current question first")
	}
	if part != s.Part() || position != s.Position() {
		return nil, conflictf("answer targets %s/%d but the current question is %s/%d",
			part, position, s.Part(), s.Position())
	}

	correct := t.eval.Evaluate(ctx, s.pending, answer)
	s.record(correct)

	if !s.Completed() {
		return &Progress{
			Correct:      correct,
			NextPart:     s.Part(),
			NextPosition: s.Position(),
		}, nil
	}

	outcome, err := t.agg.Finalize(ctx, subjectID, s.scores)
	t.drop(subjectID)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, conflictf("a result is already recorded for subject %s", subjectID)
		}
		return nil, err
	}
	return &Progress{Correct: correct, Completed: true, Outcome: outcome}, nil
}

// Result returns the subject's persisted screening result.
func (t *Tracker) Result(ctx context.Context, subjectID string) (*store.TestResult, error) {
	if err := checkSubject(subjectID); err != nil {
		return nil, err
	}
	r, err := t.results.Get(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("load result: %w", err)
	}
	if r == nil {
		return nil, notFoundf("no result recorded for subject %s", subjectID)
	}
	return r, nil
}

// Abandon discards the subject's in-flight session, if any.
func (t *Tracker) Abandon(subjectID string) {
	t.drop(subjectID)
}

// acquire takes the subject's lock without blocking. Contention means a
// concurrent request for the same subject is mid-flight.
func (t *Tracker) acquire(subjectID string) (func(), error) {
	t.mu.Lock()
	l, ok := t.locks[subjectID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[subjectID] = l
	}
	t.mu.Unlock()

	if !l.TryLock() {
		return nil, conflictf("another request for subject %s is in progress", subjectID)
	}
	return l.Unlock, nil
}

func (t *Tracker) lookup(subjectID string) (*session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[subjectID]
	if !ok {
		return nil, notFoundf("no active screening for subject %s", subjectID)
	}
	return s, nil
}

func (t *Tracker) drop(subjectID string) {
	t.mu.Lock()
	delete(t.sessions, subjectID)
	t.mu.Unlock()
}

func checkSubject(subjectID string) error {
	if strings.TrimSpace(subjectID) == "" {
		return validationf("subject id is required")
	}
	return nil
}

func sessionView(s *session) *SessionView {
	return &SessionView{
		SessionID:  s.ID,
		Part:       s.Part(),
		Position:   s.Position(),
		Difficulty: s.Difficulty(),
		StartedAt:  s.StartedAt,
	}
}

func questionView(q *question.Question) *QuestionView {
	return &QuestionView{
		Part:         q.Part,
		Position:     q.Position,
		Difficulty:   q.Difficulty,
		Kind:         q.Kind,
		Text:         q.Text,
		Choices:      append([]string(nil), q.Choices...),
		Illustration: q.Illustration,
	}
}
