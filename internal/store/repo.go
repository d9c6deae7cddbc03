package store

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicate is returned when a create would violate a one-per-subject
// uniqueness constraint (test result, survey response).
var ErrDuplicate = errors.New("record already exists for subject")

// TestResult is the persisted outcome of one completed screening.
type TestResult struct {
	ID           int
	SubjectID    string
	NumbersScore int
	LogicScore   int
	ShapesScore  int
	Likelihood   string
	Message      string
	Breakdown    map[string]any
	CreatedAt    time.Time
}

// ResultRepo manages screening results. At most one result exists per
// subject; Create must fail with ErrDuplicate rather than overwrite.
type ResultRepo interface {
	// Create stores a new result. Returns ErrDuplicate if the subject
	// already has one.
	Create(ctx context.Context, r *TestResult) (int, error)

	// Get returns the subject's result, or nil if none exists.
	Get(ctx context.Context, subjectID string) (*TestResult, error)

	// List returns all results, newest first, for staff review.
	List(ctx context.Context, limit int) ([]*TestResult, error)

	// Delete removes the subject's result. Removing a missing result is
	// not an error.
	Delete(ctx context.Context, subjectID string) error
}

// SurveyResponse is a subject's stored self-report survey.
type SurveyResponse struct {
	ID          int
	SubjectID   string
	Scores      map[string]int
	FreeText    map[string]string
	SubmittedAt time.Time
}

// SurveyRepo manages survey responses, one per subject.
type SurveyRepo interface {
	// Save stores a new response. Returns ErrDuplicate if the subject
	// already submitted one.
	Save(ctx context.Context, r *SurveyResponse) error

	// Get returns the subject's response, or nil if none exists.
	Get(ctx context.Context, subjectID string) (*SurveyResponse, error)

	// Delete removes the subject's response. Removing a missing response
	// is not an error.
	Delete(ctx context.Context, subjectID string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int   // max results (0 = unlimited)
	After  int64 // sequence > After
	Before int64 // sequence < Before
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request event, as read back for inspection.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
