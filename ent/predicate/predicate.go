// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ProfileRecord is the predicate function for profilerecord builders.
type ProfileRecord func(*sql.Selector)

// QuizResultEvent is the predicate function for quizresultevent builders.
type QuizResultEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
