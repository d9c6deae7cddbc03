package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nlebele/dyscreen/internal/assess"
	"github.com/nlebele/dyscreen/internal/question"
	"github.com/nlebele/dyscreen/internal/store"
	"github.com/nlebele/dyscreen/internal/survey"
)

func (s *Server) handleBegin(c *gin.Context) {
	subject, ok := subjectID(c)
	if !ok {
		return
	}

	view, err := s.tracker.Begin(c.Request.Context(), subject)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session_id": view.SessionID,
		"part":       view.Part,
		"position":   view.Position,
		"difficulty": view.Difficulty,
		"started_at": view.StartedAt,
	})
}

func (s *Server) handleQuestion(c *gin.Context) {
	subject, ok := subjectID(c)
	if !ok {
		return
	}

	q, err := s.tracker.Question(c.Request.Context(), subject)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{
		"part":       q.Part,
		"position":   q.Position,
		"difficulty": q.Difficulty,
		"kind":       q.Kind,
		"text":       q.Text,
	}
	if len(q.Choices) > 0 {
		resp["choices"] = q.Choices
	}
	if q.Illustration != "" {
		resp["illustration"] = q.Illustration
	}
	c.JSON(http.StatusOK, resp)
}

type answerRequest struct {
	Part     string `json:"part"`
	Position int    `json:"position"`
	Answer   string `json:"answer"`
}

func (s *Server) handleAnswer(c *gin.Context) {
	subject, ok := subjectID(c)
	if !ok {
		return
	}

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	progress, err := s.tracker.Submit(c.Request.Context(), subject, question.Part(req.Part), req.Position, req.Answer)
	if err != nil {
		writeError(c, err)
		return
	}

	if progress.Completed {
		c.JSON(http.StatusOK, gin.H{
			"correct":   progress.Correct,
			"completed": true,
			"result": gin.H{
				"likelihood": progress.Outcome.Likelihood,
				"message":    progress.Outcome.Message,
				"flags":      progress.Outcome.Flags,
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"correct":       progress.Correct,
		"completed":     false,
		"next_part":     progress.NextPart,
		"next_position": progress.NextPosition,
	})
}

func (s *Server) handleResult(c *gin.Context) {
	subject, ok := subjectID(c)
	if !ok {
		return
	}

	r, err := s.tracker.Result(c.Request.Context(), subject)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"likelihood": r.Likelihood,
		"message":    r.Message,
		"created_at": r.CreatedAt,
	})
}

func (s *Server) handleSurvey(c *gin.Context) {
	subject, ok := subjectID(c)
	if !ok {
		return
	}

	var sub survey.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.surveys.Submit(c.Request.Context(), subject, sub); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}

func (s *Server) handleStaffList(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	results, err := s.results.List(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]gin.H, 0, len(results))
	for _, r := range results {
		out = append(out, gin.H{
			"subject_id": r.SubjectID,
			"likelihood": r.Likelihood,
			"created_at": r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": out})
}

func (s *Server) handleStaffDetail(c *gin.Context) {
	subject := c.Param("subject")

	r, err := s.tracker.Result(c.Request.Context(), subject)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{
		"subject_id":    r.SubjectID,
		"likelihood":    r.Likelihood,
		"message":       r.Message,
		"numbers_score": r.NumbersScore,
		"logic_score":   r.LogicScore,
		"shapes_score":  r.ShapesScore,
		"breakdown":     r.Breakdown,
		"created_at":    r.CreatedAt,
	}

	if sv, err := s.surveys.Get(c.Request.Context(), subject); err == nil && sv != nil {
		resp["survey"] = gin.H{
			"scores":       sv.Scores,
			"free_text":    sv.FreeText,
			"submitted_at": sv.SubmittedAt,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// writeError maps engine errors onto HTTP statuses. Backend failures
// never surface here: the question provider and evaluator absorb them
// before a request reaches this point.
func writeError(c *gin.Context, err error) {
	var (
		invalid       *assess.ValidationError
		surveyInvalid *survey.ValidationError
		conflict      *assess.ConflictError
		missing       *assess.NotFoundError
	)
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
	case errors.As(err, &surveyInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": surveyInvalid.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
	case errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "already recorded for this subject"})
	case errors.As(err, &missing):
		c.JSON(http.StatusNotFound, gin.H{"error": missing.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
