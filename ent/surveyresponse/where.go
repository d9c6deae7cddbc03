// Code generated by ent, DO NOT EDIT.

package surveyresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nlebele/dyscreen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLTE(FieldID, id))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldSubjectID, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldContainsFold(FieldSubjectID, v))
}

// FreeTextIsNil applies the IsNil predicate on the "free_text" field.
func FreeTextIsNil() predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldIsNull(FieldFreeText))
}

// FreeTextNotNil applies the NotNil predicate on the "free_text" field.
func FreeTextNotNil() predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNotNull(FieldFreeText))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLTE(FieldSubmittedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SurveyResponse) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SurveyResponse) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SurveyResponse) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.NotPredicates(p))
}
