package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SurveyResponse stores one subject's self-report survey. Numeric
// severities feed the risk aggregation; the free-text answers are kept
// verbatim for staff but never scored.
type SurveyResponse struct {
	ent.Schema
}

func (SurveyResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject_id").
			Unique().
			Immutable().
			Comment("Subject this survey belongs to; one survey per subject"),
		field.JSON("scores", map[string]int{}).
			Comment("Item key to numeric severity: 0/1 for binary items, 1-5 for the math-difficulty scale"),
		field.JSON("free_text", map[string]string{}).
			Optional().
			Comment("Unscored free-text answers, kept for staff review"),
		field.Time("submitted_at").
			Default(time.Now).
			Immutable().
			Comment("When the survey was submitted"),
	}
}

func (SurveyResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id").Unique(),
	}
}
