// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nlebele/dyscreen/ent/surveyresponse"
)

// SurveyResponse is the model entity for the SurveyResponse schema.
type SurveyResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Subject this survey belongs to; one survey per subject
	SubjectID string `json:"subject_id,omitempty"`
	// Item key to numeric severity: 0/1 for binary items, 1-5 for the math-difficulty scale
	Scores map[string]int `json:"scores,omitempty"`
	// Unscored free-text answers, kept for staff review
	FreeText map[string]string `json:"free_text,omitempty"`
	// When the survey was submitted
	SubmittedAt  time.Time `json:"submitted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SurveyResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case surveyresponse.FieldScores, surveyresponse.FieldFreeText:
			values[i] = new([]byte)
		case surveyresponse.FieldID:
			values[i] = new(sql.NullInt64)
		case surveyresponse.FieldSubjectID:
			values[i] = new(sql.NullString)
		case surveyresponse.FieldSubmittedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SurveyResponse fields.
func (_m *SurveyResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case surveyresponse.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case surveyresponse.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case surveyresponse.FieldScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scores); err != nil {
					return fmt.Errorf("unmarshal field scores: %w", err)
				}
			}
		case surveyresponse.FieldFreeText:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field free_text", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FreeText); err != nil {
					return fmt.Errorf("unmarshal field free_text: %w", err)
				}
			}
		case surveyresponse.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SurveyResponse.
// This includes values selected through modifiers, order, etc.
func (_m *SurveyResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SurveyResponse.
// Note that you need to call SurveyResponse.Unwrap() before calling this method if this SurveyResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SurveyResponse) Update() *SurveyResponseUpdateOne {
	return NewSurveyResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SurveyResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SurveyResponse) Unwrap() *SurveyResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SurveyResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SurveyResponse) String() string {
	var builder strings.Builder
	builder.WriteString("SurveyResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scores))
	builder.WriteString(", ")
	builder.WriteString("free_text=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreeText))
	builder.WriteString(", ")
	builder.WriteString("submitted_at=")
	builder.WriteString(_m.SubmittedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SurveyResponses is a parsable slice of SurveyResponse.
type SurveyResponses []*SurveyResponse
