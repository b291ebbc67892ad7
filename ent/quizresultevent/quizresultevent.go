// Code generated by ent, DO NOT EDIT.

package quizresultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizresultevent type in the database.
	Label = "quiz_result_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUnitID holds the string denoting the unit_id field in the database.
	FieldUnitID = "unit_id"
	// FieldUnitTitle holds the string denoting the unit_title field in the database.
	FieldUnitTitle = "unit_title"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldTimeSpentSeconds holds the string denoting the time_spent_seconds field in the database.
	FieldTimeSpentSeconds = "time_spent_seconds"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// Table holds the table name of the quizresultevent in the database.
	Table = "quiz_result_events"
)

// Columns holds all SQL columns for quizresultevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUnitID,
	FieldUnitTitle,
	FieldLevel,
	FieldScore,
	FieldTotal,
	FieldTimeSpentSeconds,
	FieldPassed,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultUnitTitle holds the default value on creation for the "unit_title" field.
	DefaultUnitTitle string
	// DefaultTimeSpentSeconds holds the default value on creation for the "time_spent_seconds" field.
	DefaultTimeSpentSeconds int
)

// OrderOption defines the ordering options for the QuizResultEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUnitID orders the results by the unit_id field.
func ByUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitID, opts...).ToFunc()
}

// ByUnitTitle orders the results by the unit_title field.
func ByUnitTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitTitle, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByTimeSpentSeconds orders the results by the time_spent_seconds field.
func ByTimeSpentSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSeconds, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}
