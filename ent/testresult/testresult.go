// Code generated by ent, DO NOT EDIT.

package testresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the testresult type in the database.
	Label = "test_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldNumbersScore holds the string denoting the numbers_score field in the database.
	FieldNumbersScore = "numbers_score"
	// FieldLogicScore holds the string denoting the logic_score field in the database.
	FieldLogicScore = "logic_score"
	// FieldShapesScore holds the string denoting the shapes_score field in the database.
	FieldShapesScore = "shapes_score"
	// FieldLikelihood holds the string denoting the likelihood field in the database.
	FieldLikelihood = "likelihood"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldBreakdown holds the string denoting the breakdown field in the database.
	FieldBreakdown = "breakdown"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the testresult in the database.
	Table = "test_results"
)

// Columns holds all SQL columns for testresult fields.
var Columns = []string{
	FieldID,
	FieldSubjectID,
	FieldNumbersScore,
	FieldLogicScore,
	FieldShapesScore,
	FieldLikelihood,
	FieldMessage,
	FieldBreakdown,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TestResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByNumbersScore orders the results by the numbers_score field.
func ByNumbersScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumbersScore, opts...).ToFunc()
}

// ByLogicScore orders the results by the logic_score field.
func ByLogicScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogicScore, opts...).ToFunc()
}

// ByShapesScore orders the results by the shapes_score field.
func ByShapesScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShapesScore, opts...).ToFunc()
}

// ByLikelihood orders the results by the likelihood field.
func ByLikelihood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLikelihood, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
