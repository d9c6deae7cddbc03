// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SurveyResponsesColumns holds the columns for the "survey_responses" table.
	SurveyResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subject_id", Type: field.TypeString, Unique: true},
		{Name: "scores", Type: field.TypeJSON},
		{Name: "free_text", Type: field.TypeJSON, Nullable: true},
		{Name: "submitted_at", Type: field.TypeTime},
	}
	// SurveyResponsesTable holds the schema information for the "survey_responses" table.
	SurveyResponsesTable = &schema.Table{
		Name:       "survey_responses",
		Columns:    SurveyResponsesColumns,
		PrimaryKey: []*schema.Column{SurveyResponsesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "surveyresponse_subject_id",
				Unique:  true,
				Columns: []*schema.Column{SurveyResponsesColumns[1]},
			},
		},
	}
	// TestResultsColumns holds the columns for the "test_results" table.
	TestResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subject_id", Type: field.TypeString, Unique: true},
		{Name: "numbers_score", Type: field.TypeInt},
		{Name: "logic_score", Type: field.TypeInt},
		{Name: "shapes_score", Type: field.TypeInt},
		{Name: "likelihood", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "breakdown", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TestResultsTable holds the schema information for the "test_results" table.
	TestResultsTable = &schema.Table{
		Name:       "test_results",
		Columns:    TestResultsColumns,
		PrimaryKey: []*schema.Column{TestResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testresult_subject_id",
				Unique:  true,
				Columns: []*schema.Column{TestResultsColumns[1]},
			},
			{
				Name:    "testresult_likelihood",
				Unique:  false,
				Columns: []*schema.Column{TestResultsColumns[5]},
			},
			{
				Name:    "testresult_created_at",
				Unique:  false,
				Columns: []*schema.Column{TestResultsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		SurveyResponsesTable,
		TestResultsTable,
	}
)

func init() {
}
