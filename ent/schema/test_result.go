package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestResult is the immutable outcome of one completed screening:
// per-part scores, the derived likelihood, the student-facing message,
// and the raw-input breakdown staff review.
type TestResult struct {
	ent.Schema
}

func (TestResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject_id").
			Unique().
			Immutable().
			Comment("Subject this result belongs to; at most one result per subject"),
		field.Int("numbers_score").
			Immutable().
			Comment("Numbers part score, 0-5"),
		field.Int("logic_score").
			Immutable().
			Comment("Logic part score, 0-5"),
		field.Int("shapes_score").
			Immutable().
			Comment("Shapes part score, 0-5"),
		field.String("likelihood").
			Immutable().
			Comment("Risk likelihood: low, moderate, high"),
		field.String("message").
			Immutable().
			Comment("Student-facing outcome message"),
		field.JSON("breakdown", map[string]any{}).
			Immutable().
			Comment("Raw test and survey scores for staff review"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the screening completed"),
	}
}

func (TestResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id").Unique(),
		index.Fields("likelihood"),
		index.Fields("created_at"),
	}
}
