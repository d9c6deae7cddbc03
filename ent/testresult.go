// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nlebele/dyscreen/ent/testresult"
)

// TestResult is the model entity for the TestResult schema.
type TestResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Subject this result belongs to; at most one result per subject
	SubjectID string `json:"subject_id,omitempty"`
	// Numbers part score, 0-5
	NumbersScore int `json:"numbers_score,omitempty"`
	// Logic part score, 0-5
	LogicScore int `json:"logic_score,omitempty"`
	// Shapes part score, 0-5
	ShapesScore int `json:"shapes_score,omitempty"`
	// Risk likelihood: low, moderate, high
	Likelihood string `json:"likelihood,omitempty"`
	// Student-facing outcome message
	Message string `json:"message,omitempty"`
	// Raw test and survey scores for staff review
	Breakdown map[string]interface{} `json:"breakdown,omitempty"`
	// When the screening completed
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testresult.FieldBreakdown:
			values[i] = new([]byte)
		case testresult.FieldID, testresult.FieldNumbersScore, testresult.FieldLogicScore, testresult.FieldShapesScore:
			values[i] = new(sql.NullInt64)
		case testresult.FieldSubjectID, testresult.FieldLikelihood, testresult.FieldMessage:
			values[i] = new(sql.NullString)
		case testresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestResult fields.
func (_m *TestResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case testresult.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case testresult.FieldNumbersScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field numbers_score", values[i])
			} else if value.Valid {
				_m.NumbersScore = int(value.Int64)
			}
		case testresult.FieldLogicScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field logic_score", values[i])
			} else if value.Valid {
				_m.LogicScore = int(value.Int64)
			}
		case testresult.FieldShapesScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field shapes_score", values[i])
			} else if value.Valid {
				_m.ShapesScore = int(value.Int64)
			}
		case testresult.FieldLikelihood:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field likelihood", values[i])
			} else if value.Valid {
				_m.Likelihood = value.String
			}
		case testresult.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case testresult.FieldBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Breakdown); err != nil {
					return fmt.Errorf("unmarshal field breakdown: %w", err)
				}
			}
		case testresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestResult.
// This includes values selected through modifiers, order, etc.
func (_m *TestResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TestResult.
// Note that you need to call TestResult.Unwrap() before calling this method if this TestResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestResult) Update() *TestResultUpdateOne {
	return NewTestResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestResult) Unwrap() *TestResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestResult) String() string {
	var builder strings.Builder
	builder.WriteString("TestResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("numbers_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumbersScore))
	builder.WriteString(", ")
	builder.WriteString("logic_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.LogicScore))
	builder.WriteString(", ")
	builder.WriteString("shapes_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShapesScore))
	builder.WriteString(", ")
	builder.WriteString("likelihood=")
	builder.WriteString(_m.Likelihood)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.Breakdown))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TestResults is a parsable slice of TestResult.
type TestResults []*TestResult
