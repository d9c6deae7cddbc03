package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nlebele/dyscreen/internal/assess"
	"github.com/nlebele/dyscreen/internal/question"
	"github.com/nlebele/dyscreen/internal/risk"
	"github.com/nlebele/dyscreen/internal/store"
	"github.com/nlebele/dyscreen/internal/survey"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProvider struct{}

func (stubProvider) Request(_ context.Context, part question.Part, difficulty question.Difficulty, position int) *question.Question {
	return &question.Question{
		Part:       part,
		Difficulty: difficulty,
		Position:   position,
		Kind:       question.KindFor(part),
		Text:       fmt.Sprintf("Question for %s position %d?", part, position),
		Answer:     "right",
	}
}

type stubEval struct{}

func (stubEval) Evaluate(_ context.Context, q *question.Question, answer string) bool {
	return answer == q.Answer
}

type memResults struct {
	saved map[string]*store.TestResult
}

func (m *memResults) Create(_ context.Context, r *store.TestResult) (int, error) {
	if _, ok := m.saved[r.SubjectID]; ok {
		return 0, store.ErrDuplicate
	}
	r.ID = len(m.saved) + 1
	m.saved[r.SubjectID] = r
	return r.ID, nil
}

func (m *memResults) Get(_ context.Context, subjectID string) (*store.TestResult, error) {
	return m.saved[subjectID], nil
}

func (m *memResults) List(_ context.Context, limit int) ([]*store.TestResult, error) {
	out := make([]*store.TestResult, 0, len(m.saved))
	for _, r := range m.saved {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memResults) Delete(_ context.Context, subjectID string) error {
	delete(m.saved, subjectID)
	return nil
}

type memSurveys struct {
	saved map[string]*store.SurveyResponse
}

func (m *memSurveys) Save(_ context.Context, r *store.SurveyResponse) error {
	if _, ok := m.saved[r.SubjectID]; ok {
		return store.ErrDuplicate
	}
	m.saved[r.SubjectID] = r
	return nil
}

func (m *memSurveys) Get(_ context.Context, subjectID string) (*store.SurveyResponse, error) {
	return m.saved[subjectID], nil
}

func (m *memSurveys) Delete(_ context.Context, subjectID string) error {
	delete(m.saved, subjectID)
	return nil
}

func newTestServer() *Server {
	results := &memResults{saved: make(map[string]*store.TestResult)}
	surveys := &memSurveys{saved: make(map[string]*store.SurveyResponse)}
	agg := risk.New(results, surveys)
	tracker := assess.NewTracker(stubProvider{}, stubEval{}, agg, results)
	return New(Config{Addr: ":0"}, tracker, survey.NewService(surveys), results)
}

func do(t *testing.T, s *Server, method, path, subject string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if subject != "" {
		req.Header.Set(headerSubjectID, subject)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	w := do(t, s, http.MethodGet, "/healthz", "", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestBegin(t *testing.T) {
	s := newTestServer()

	w := do(t, s, http.MethodPost, "/api/v1/assessment/begin", "s-1", nil, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["part"] != "numbers" || body["position"] != float64(1) {
		t.Errorf("unexpected opening slot: %v", body)
	}
	if body["session_id"] == "" {
		t.Error("missing session_id")
	}

	// Beginning again conflicts.
	w = do(t, s, http.MethodPost, "/api/v1/assessment/begin", "s-1", nil, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("second begin status = %d", w.Code)
	}
}

func TestBegin_MissingSubject(t *testing.T) {
	s := newTestServer()
	w := do(t, s, http.MethodPost, "/api/v1/assessment/begin", "", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestQuestionAndAnswer(t *testing.T) {
	s := newTestServer()
	do(t, s, http.MethodPost, "/api/v1/assessment/begin", "s-1", nil, nil)

	w := do(t, s, http.MethodGet, "/api/v1/assessment/question", "s-1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("question status = %d, body %s", w.Code, w.Body.String())
	}
	q := decode(t, w)
	if q["text"] == "" {
		t.Error("question has no text")
	}

	// Answering a stale slot conflicts.
	w = do(t, s, http.MethodPost, "/api/v1/assessment/answer", "s-1",
		map[string]any{"part": "numbers", "position": 3, "answer": "right"}, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("stale answer status = %d", w.Code)
	}

	// An unknown part is a validation error.
	w = do(t, s, http.MethodPost, "/api/v1/assessment/answer", "s-1",
		map[string]any{"part": "colors", "position": 1, "answer": "right"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid part status = %d", w.Code)
	}

	// The current slot is accepted.
	w = do(t, s, http.MethodPost, "/api/v1/assessment/answer", "s-1",
		map[string]any{"part": "numbers", "position": 1, "answer": "right"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("answer status = %d, body %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["correct"] != true || body["completed"] != false {
		t.Errorf("unexpected progress: %v", body)
	}
	if body["next_position"] != float64(2) {
		t.Errorf("next_position = %v", body["next_position"])
	}
}

func TestFullScreeningFlow(t *testing.T) {
	s := newTestServer()
	do(t, s, http.MethodPost, "/api/v1/assessment/begin", "s-1", nil, nil)

	var last map[string]any
	for i := 0; i < 15; i++ {
		w := do(t, s, http.MethodGet, "/api/v1/assessment/question", "s-1", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("question %d status = %d", i, w.Code)
		}
		q := decode(t, w)

		w = do(t, s, http.MethodPost, "/api/v1/assessment/answer", "s-1",
			map[string]any{"part": q["part"], "position": int(q["position"].(float64)), "answer": "right"}, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("answer %d status = %d, body %s", i, w.Code, w.Body.String())
		}
		last = decode(t, w)
	}

	if last["completed"] != true {
		t.Fatalf("screening did not complete: %v", last)
	}
	result, ok := last["result"].(map[string]any)
	if !ok || result["likelihood"] != "Low" {
		t.Errorf("unexpected result: %v", last["result"])
	}

	// The result endpoint serves the stored outcome.
	w := do(t, s, http.MethodGet, "/api/v1/assessment/result", "s-1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("result status = %d", w.Code)
	}
	if decode(t, w)["likelihood"] != "Low" {
		t.Errorf("stored likelihood mismatch: %s", w.Body.String())
	}

	// Re-screening the same subject conflicts.
	w = do(t, s, http.MethodPost, "/api/v1/assessment/begin", "s-1", nil, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("re-begin status = %d", w.Code)
	}
}

func TestResult_NotFound(t *testing.T) {
	s := newTestServer()
	w := do(t, s, http.MethodGet, "/api/v1/assessment/result", "s-1", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func validSurveyBody() map[string]any {
	return map[string]any{
		"math_difficulty":    "3",
		"reading_numbers":    "Yes",
		"math_anxiety":       "No",
		"time_management":    "Yes",
		"previous_diagnosis": "No",
		"support_needed":     "More practice time.",
	}
}

func TestSurvey(t *testing.T) {
	s := newTestServer()

	w := do(t, s, http.MethodPost, "/api/v1/survey", "s-1", validSurveyBody(), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	// Resubmission conflicts.
	w = do(t, s, http.MethodPost, "/api/v1/survey", "s-1", validSurveyBody(), nil)
	if w.Code != http.StatusConflict {
		t.Errorf("resubmission status = %d", w.Code)
	}

	// A malformed item is a validation error.
	bad := validSurveyBody()
	bad["math_anxiety"] = "sometimes"
	w = do(t, s, http.MethodPost, "/api/v1/survey", "s-2", bad, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid survey status = %d", w.Code)
	}
}

func TestStaffGate(t *testing.T) {
	s := newTestServer()

	w := do(t, s, http.MethodGet, "/api/v1/staff/results", "", nil, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("without role: status = %d", w.Code)
	}

	w = do(t, s, http.MethodGet, "/api/v1/staff/results", "", nil,
		map[string]string{headerActorRole: roleStaff})
	if w.Code != http.StatusOK {
		t.Fatalf("with role: status = %d", w.Code)
	}
}

func TestStaffDetail(t *testing.T) {
	s := newTestServer()
	staff := map[string]string{headerActorRole: roleStaff}

	w := do(t, s, http.MethodGet, "/api/v1/staff/results/s-1", "", nil, staff)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing subject status = %d", w.Code)
	}

	// Complete a screening with a survey on file, then review it.
	do(t, s, http.MethodPost, "/api/v1/survey", "s-1", validSurveyBody(), nil)
	do(t, s, http.MethodPost, "/api/v1/assessment/begin", "s-1", nil, nil)
	for i := 0; i < 15; i++ {
		w := do(t, s, http.MethodGet, "/api/v1/assessment/question", "s-1", nil, nil)
		q := decode(t, w)
		do(t, s, http.MethodPost, "/api/v1/assessment/answer", "s-1",
			map[string]any{"part": q["part"], "position": int(q["position"].(float64)), "answer": "wrong"}, nil)
	}

	w = do(t, s, http.MethodGet, "/api/v1/staff/results/s-1", "", nil, staff)
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d, body %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["likelihood"] != "High" {
		t.Errorf("likelihood = %v", body["likelihood"])
	}
	if body["numbers_score"] != float64(0) {
		t.Errorf("numbers_score = %v", body["numbers_score"])
	}
	if _, ok := body["survey"]; !ok {
		t.Error("survey missing from staff detail")
	}
}
