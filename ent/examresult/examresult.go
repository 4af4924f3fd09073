// Code generated by ent, DO NOT EDIT.

package examresult

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the examresult type in the database.
	Label = "exam_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldDurationSec holds the string denoting the duration_sec field in the database.
	FieldDurationSec = "duration_sec"
	// FieldTimeSpentSec holds the string denoting the time_spent_sec field in the database.
	FieldTimeSpentSec = "time_spent_sec"
	// FieldByTopic holds the string denoting the by_topic field in the database.
	FieldByTopic = "by_topic"
	// Table holds the table name of the examresult in the database.
	Table = "exam_results"
)

// Columns holds all SQL columns for examresult fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldFinishedAt,
	FieldMode,
	FieldTotal,
	FieldCorrect,
	FieldPassed,
	FieldDurationSec,
	FieldTimeSpentSec,
	FieldByTopic,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultMode holds the default value on creation for the "mode" field.
	DefaultMode string
)

// OrderOption defines the ordering options for the ExamResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByDurationSec orders the results by the duration_sec field.
func ByDurationSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSec, opts...).ToFunc()
}

// ByTimeSpentSec orders the results by the time_spent_sec field.
func ByTimeSpentSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSec, opts...).ToFunc()
}
