// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/repaso/ent/examresult"
)

// ExamResult is the model entity for the ExamResult schema.
type ExamResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session the exam ran in
	SessionID string `json:"session_id,omitempty"`
	// When the exam was scored
	FinishedAt time.Time `json:"finished_at,omitempty"`
	// official or adaptive
	Mode string `json:"mode,omitempty"`
	// Total holds the value of the "total" field.
	Total int `json:"total,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// Time limit in seconds
	DurationSec int `json:"duration_sec,omitempty"`
	// Seconds used, at most duration_sec
	TimeSpentSec int `json:"time_spent_sec,omitempty"`
	// Correct/total tally per topic id
	ByTopic      json.RawMessage `json:"by_topic,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExamResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examresult.FieldByTopic:
			values[i] = new([]byte)
		case examresult.FieldPassed:
			values[i] = new(sql.NullBool)
		case examresult.FieldID, examresult.FieldTotal, examresult.FieldCorrect, examresult.FieldDurationSec, examresult.FieldTimeSpentSec:
			values[i] = new(sql.NullInt64)
		case examresult.FieldSessionID, examresult.FieldMode:
			values[i] = new(sql.NullString)
		case examresult.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExamResult fields.
func (_m *ExamResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case examresult.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case examresult.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = value.Time
			}
		case examresult.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case examresult.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case examresult.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case examresult.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case examresult.FieldDurationSec:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_sec", values[i])
			} else if value.Valid {
				_m.DurationSec = int(value.Int64)
			}
		case examresult.FieldTimeSpentSec:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_sec", values[i])
			} else if value.Valid {
				_m.TimeSpentSec = int(value.Int64)
			}
		case examresult.FieldByTopic:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field by_topic", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ByTopic); err != nil {
					return fmt.Errorf("unmarshal field by_topic: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExamResult.
// This includes values selected through modifiers, order, etc.
func (_m *ExamResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExamResult.
// Note that you need to call ExamResult.Unwrap() before calling this method if this ExamResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExamResult) Update() *ExamResultUpdateOne {
	return NewExamResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExamResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExamResult) Unwrap() *ExamResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExamResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExamResult) String() string {
	var builder strings.Builder
	builder.WriteString("ExamResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("finished_at=")
	builder.WriteString(_m.FinishedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("duration_sec=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSec))
	builder.WriteString(", ")
	builder.WriteString("time_spent_sec=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSec))
	builder.WriteString(", ")
	builder.WriteString("by_topic=")
	builder.WriteString(fmt.Sprintf("%v", _m.ByTopic))
	builder.WriteByte(')')
	return builder.String()
}

// ExamResults is a parsable slice of ExamResult.
type ExamResults []*ExamResult
