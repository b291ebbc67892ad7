// Code generated by ent, DO NOT EDIT.

package quizresultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/khanhvo/mathgenius/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldUnitID, v))
}

// UnitTitle applies equality check predicate on the "unit_title" field. It's identical to UnitTitleEQ.
func UnitTitle(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldUnitTitle, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldLevel, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldScore, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTotal, v))
}

// TimeSpentSeconds applies equality check predicate on the "time_spent_seconds" field. It's identical to TimeSpentSecondsEQ.
func TimeSpentSeconds(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldPassed, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldUnitID, v))
}

// UnitTitleEQ applies the EQ predicate on the "unit_title" field.
func UnitTitleEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldUnitTitle, v))
}

// UnitTitleNEQ applies the NEQ predicate on the "unit_title" field.
func UnitTitleNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldUnitTitle, v))
}

// UnitTitleIn applies the In predicate on the "unit_title" field.
func UnitTitleIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldUnitTitle, vs...))
}

// UnitTitleNotIn applies the NotIn predicate on the "unit_title" field.
func UnitTitleNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldUnitTitle, vs...))
}

// UnitTitleGT applies the GT predicate on the "unit_title" field.
func UnitTitleGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldUnitTitle, v))
}

// UnitTitleGTE applies the GTE predicate on the "unit_title" field.
func UnitTitleGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldUnitTitle, v))
}

// UnitTitleLT applies the LT predicate on the "unit_title" field.
func UnitTitleLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldUnitTitle, v))
}

// UnitTitleLTE applies the LTE predicate on the "unit_title" field.
func UnitTitleLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldUnitTitle, v))
}

// UnitTitleContains applies the Contains predicate on the "unit_title" field.
func UnitTitleContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldUnitTitle, v))
}

// UnitTitleHasPrefix applies the HasPrefix predicate on the "unit_title" field.
func UnitTitleHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldUnitTitle, v))
}

// UnitTitleHasSuffix applies the HasSuffix predicate on the "unit_title" field.
func UnitTitleHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldUnitTitle, v))
}

// UnitTitleEqualFold applies the EqualFold predicate on the "unit_title" field.
func UnitTitleEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldUnitTitle, v))
}

// UnitTitleContainsFold applies the ContainsFold predicate on the "unit_title" field.
func UnitTitleContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldUnitTitle, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldLevel, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldScore, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldTotal, v))
}

// TimeSpentSecondsEQ applies the EQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsNEQ applies the NEQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsIn applies the In predicate on the "time_spent_seconds" field.
func TimeSpentSecondsIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsNotIn applies the NotIn predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsGT applies the GT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsGTE applies the GTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLT applies the LT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLTE applies the LTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldTimeSpentSeconds, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldPassed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.NotPredicates(p))
}
