// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// SurveyResponse is the predicate function for surveyresponse builders.
type SurveyResponse func(*sql.Selector)

// TestResult is the predicate function for testresult builders.
type TestResult func(*sql.Selector)
