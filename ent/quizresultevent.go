// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/khanhvo/mathgenius/ent/quizresultevent"
)

// QuizResultEvent is the model entity for the QuizResultEvent schema.
type QuizResultEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Learning unit this quiz belongs to
	UnitID string `json:"unit_id,omitempty"`
	// Unit title at completion time
	UnitTitle string `json:"unit_title,omitempty"`
	// Difficulty level of the unit, 99 for comprehensive tests
	Level int `json:"level,omitempty"`
	// Correct answers
	Score int `json:"score,omitempty"`
	// Question count
	Total int `json:"total,omitempty"`
	// Wall-clock duration of the quiz
	TimeSpentSeconds int `json:"time_spent_seconds,omitempty"`
	// Whether the score cleared the pass threshold
	Passed       bool `json:"passed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizResultEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizresultevent.FieldPassed:
			values[i] = new(sql.NullBool)
		case quizresultevent.FieldID, quizresultevent.FieldSequence, quizresultevent.FieldLevel, quizresultevent.FieldScore, quizresultevent.FieldTotal, quizresultevent.FieldTimeSpentSeconds:
			values[i] = new(sql.NullInt64)
		case quizresultevent.FieldUnitID, quizresultevent.FieldUnitTitle:
			values[i] = new(sql.NullString)
		case quizresultevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizResultEvent fields.
func (_m *QuizResultEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizresultevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizresultevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case quizresultevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case quizresultevent.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case quizresultevent.FieldUnitTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_title", values[i])
			} else if value.Valid {
				_m.UnitTitle = value.String
			}
		case quizresultevent.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case quizresultevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case quizresultevent.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case quizresultevent.FieldTimeSpentSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_seconds", values[i])
			} else if value.Valid {
				_m.TimeSpentSeconds = int(value.Int64)
			}
		case quizresultevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizResultEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QuizResultEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizResultEvent.
// Note that you need to call QuizResultEvent.Unwrap() before calling this method if this QuizResultEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizResultEvent) Update() *QuizResultEventUpdateOne {
	return NewQuizResultEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizResultEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizResultEvent) Unwrap() *QuizResultEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizResultEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizResultEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizResultEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("unit_title=")
	builder.WriteString(_m.UnitTitle)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("time_spent_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSeconds))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteByte(')')
	return builder.String()
}

// QuizResultEvents is a parsable slice of QuizResultEvent.
type QuizResultEvents []*QuizResultEvent
