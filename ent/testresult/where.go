// Code generated by ent, DO NOT EDIT.

package testresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nlebele/dyscreen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldID, id))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldSubjectID, v))
}

// NumbersScore applies equality check predicate on the "numbers_score" field. It's identical to NumbersScoreEQ.
func NumbersScore(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldNumbersScore, v))
}

// LogicScore applies equality check predicate on the "logic_score" field. It's identical to LogicScoreEQ.
func LogicScore(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldLogicScore, v))
}

// ShapesScore applies equality check predicate on the "shapes_score" field. It's identical to ShapesScoreEQ.
func ShapesScore(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldShapesScore, v))
}

// Likelihood applies equality check predicate on the "likelihood" field. It's identical to LikelihoodEQ.
func Likelihood(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldLikelihood, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldCreatedAt, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldSubjectID, v))
}

// NumbersScoreEQ applies the EQ predicate on the "numbers_score" field.
func NumbersScoreEQ(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldNumbersScore, v))
}

// NumbersScoreNEQ applies the NEQ predicate on the "numbers_score" field.
func NumbersScoreNEQ(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldNumbersScore, v))
}

// NumbersScoreIn applies the In predicate on the "numbers_score" field.
func NumbersScoreIn(vs ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldNumbersScore, vs...))
}

// NumbersScoreNotIn applies the NotIn predicate on the "numbers_score" field.
func NumbersScoreNotIn(vs ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldNumbersScore, vs...))
}

// NumbersScoreGT applies the GT predicate on the "numbers_score" field.
func NumbersScoreGT(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldNumbersScore, v))
}

// NumbersScoreGTE applies the GTE predicate on the "numbers_score" field.
func NumbersScoreGTE(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldNumbersScore, v))
}

// NumbersScoreLT applies the LT predicate on the "numbers_score" field.
func NumbersScoreLT(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldNumbersScore, v))
}

// NumbersScoreLTE applies the LTE predicate on the "numbers_score" field.
func NumbersScoreLTE(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldNumbersScore, v))
}

// LogicScoreEQ applies the EQ predicate on the "logic_score" field.
func LogicScoreEQ(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldLogicScore, v))
}

// LogicScoreNEQ applies the NEQ predicate on the "logic_score" field.
func LogicScoreNEQ(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldLogicScore, v))
}

// LogicScoreIn applies the In predicate on the "logic_score" field.
func LogicScoreIn(vs ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldLogicScore, vs...))
}

// LogicScoreNotIn applies the NotIn predicate on the "logic_score" field.
func LogicScoreNotIn(vs ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldLogicScore, vs...))
}

// LogicScoreGT applies the GT predicate on the "logic_score" field.
func LogicScoreGT(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldLogicScore, v))
}

// LogicScoreGTE applies the GTE predicate on the "logic_score" field.
func LogicScoreGTE(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldLogicScore, v))
}

// LogicScoreLT applies the LT predicate on the "logic_score" field.
func LogicScoreLT(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldLogicScore, v))
}

// LogicScoreLTE applies the LTE predicate on the "logic_score" field.
func LogicScoreLTE(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldLogicScore, v))
}

// ShapesScoreEQ applies the EQ predicate on the "shapes_score" field.
func ShapesScoreEQ(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldShapesScore, v))
}

// ShapesScoreNEQ applies the NEQ predicate on the "shapes_score" field.
func ShapesScoreNEQ(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldShapesScore, v))
}

// ShapesScoreIn applies the In predicate on the "shapes_score" field.
func ShapesScoreIn(vs ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldShapesScore, vs...))
}

// ShapesScoreNotIn applies the NotIn predicate on the "shapes_score" field.
func ShapesScoreNotIn(vs ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldShapesScore, vs...))
}

// ShapesScoreGT applies the GT predicate on the "shapes_score" field.
func ShapesScoreGT(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldShapesScore, v))
}

// ShapesScoreGTE applies the GTE predicate on the "shapes_score" field.
func ShapesScoreGTE(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldShapesScore, v))
}

// ShapesScoreLT applies the LT predicate on the "shapes_score" field.
func ShapesScoreLT(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldShapesScore, v))
}

// ShapesScoreLTE applies the LTE predicate on the "shapes_score" field.
func ShapesScoreLTE(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldShapesScore, v))
}

// LikelihoodEQ applies the EQ predicate on the "likelihood" field.
func LikelihoodEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldLikelihood, v))
}

// LikelihoodNEQ applies the NEQ predicate on the "likelihood" field.
func LikelihoodNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldLikelihood, v))
}

// LikelihoodIn applies the In predicate on the "likelihood" field.
func LikelihoodIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldLikelihood, vs...))
}

// LikelihoodNotIn applies the NotIn predicate on the "likelihood" field.
func LikelihoodNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldLikelihood, vs...))
}

// LikelihoodGT applies the GT predicate on the "likelihood" field.
func LikelihoodGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldLikelihood, v))
}

// LikelihoodGTE applies the GTE predicate on the "likelihood" field.
func LikelihoodGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldLikelihood, v))
}

// LikelihoodLT applies the LT predicate on the "likelihood" field.
func LikelihoodLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldLikelihood, v))
}

// LikelihoodLTE applies the LTE predicate on the "likelihood" field.
func LikelihoodLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldLikelihood, v))
}

// LikelihoodContains applies the Contains predicate on the "likelihood" field.
func LikelihoodContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldLikelihood, v))
}

// LikelihoodHasPrefix applies the HasPrefix predicate on the "likelihood" field.
func LikelihoodHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldLikelihood, v))
}

// LikelihoodHasSuffix applies the HasSuffix predicate on the "likelihood" field.
func LikelihoodHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldLikelihood, v))
}

// LikelihoodEqualFold applies the EqualFold predicate on the "likelihood" field.
func LikelihoodEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldLikelihood, v))
}

// LikelihoodContainsFold applies the ContainsFold predicate on the "likelihood" field.
func LikelihoodContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldLikelihood, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.NotPredicates(p))
}
