// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/khanhvo/mathgenius/ent/predicate"
	"github.com/khanhvo/mathgenius/ent/quizresultevent"
)

// QuizResultEventUpdate is the builder for updating QuizResultEvent entities.
type QuizResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultEventMutation
}

// Where appends a list predicates to the QuizResultEventUpdate builder.
func (_u *QuizResultEventUpdate) Where(ps ...predicate.QuizResultEvent) *QuizResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *QuizResultEventUpdate) SetUnitID(v string) *QuizResultEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableUnitID(v *string) *QuizResultEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetUnitTitle sets the "unit_title" field.
func (_u *QuizResultEventUpdate) SetUnitTitle(v string) *QuizResultEventUpdate {
	_u.mutation.SetUnitTitle(v)
	return _u
}

// SetNillableUnitTitle sets the "unit_title" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableUnitTitle(v *string) *QuizResultEventUpdate {
	if v != nil {
		_u.SetUnitTitle(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *QuizResultEventUpdate) SetLevel(v int) *QuizResultEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableLevel(v *int) *QuizResultEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *QuizResultEventUpdate) AddLevel(v int) *QuizResultEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultEventUpdate) SetScore(v int) *QuizResultEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableScore(v *int) *QuizResultEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultEventUpdate) AddScore(v int) *QuizResultEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizResultEventUpdate) SetTotal(v int) *QuizResultEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableTotal(v *int) *QuizResultEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizResultEventUpdate) AddTotal(v int) *QuizResultEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *QuizResultEventUpdate) SetTimeSpentSeconds(v int) *QuizResultEventUpdate {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableTimeSpentSeconds(v *int) *QuizResultEventUpdate {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *QuizResultEventUpdate) AddTimeSpentSeconds(v int) *QuizResultEventUpdate {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizResultEventUpdate) SetPassed(v bool) *QuizResultEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillablePassed(v *bool) *QuizResultEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the QuizResultEventMutation object of the builder.
func (_u *QuizResultEventUpdate) Mutation() *QuizResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizresultevent.Table, quizresultevent.Columns, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(quizresultevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitTitle(); ok {
		_spec.SetField(quizresultevent.FieldUnitTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(quizresultevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(quizresultevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(quizresultevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(quizresultevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizresultevent.FieldPassed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResultEventUpdateOne is the builder for updating a single QuizResultEvent entity.
type QuizResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultEventMutation
}

// SetUnitID sets the "unit_id" field.
func (_u *QuizResultEventUpdateOne) SetUnitID(v string) *QuizResultEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableUnitID(v *string) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetUnitTitle sets the "unit_title" field.
func (_u *QuizResultEventUpdateOne) SetUnitTitle(v string) *QuizResultEventUpdateOne {
	_u.mutation.SetUnitTitle(v)
	return _u
}

// SetNillableUnitTitle sets the "unit_title" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableUnitTitle(v *string) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetUnitTitle(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *QuizResultEventUpdateOne) SetLevel(v int) *QuizResultEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableLevel(v *int) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *QuizResultEventUpdateOne) AddLevel(v int) *QuizResultEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultEventUpdateOne) SetScore(v int) *QuizResultEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableScore(v *int) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultEventUpdateOne) AddScore(v int) *QuizResultEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizResultEventUpdateOne) SetTotal(v int) *QuizResultEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableTotal(v *int) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizResultEventUpdateOne) AddTotal(v int) *QuizResultEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *QuizResultEventUpdateOne) SetTimeSpentSeconds(v int) *QuizResultEventUpdateOne {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableTimeSpentSeconds(v *int) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *QuizResultEventUpdateOne) AddTimeSpentSeconds(v int) *QuizResultEventUpdateOne {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizResultEventUpdateOne) SetPassed(v bool) *QuizResultEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillablePassed(v *bool) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the QuizResultEventMutation object of the builder.
func (_u *QuizResultEventUpdateOne) Mutation() *QuizResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizResultEventUpdate builder.
func (_u *QuizResultEventUpdateOne) Where(ps ...predicate.QuizResultEvent) *QuizResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResultEventUpdateOne) Select(field string, fields ...string) *QuizResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResultEvent entity.
func (_u *QuizResultEventUpdateOne) Save(ctx context.Context) (*QuizResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultEventUpdateOne) SaveX(ctx context.Context) *QuizResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizResultEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizResultEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizresultevent.Table, quizresultevent.Columns, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresultevent.FieldID)
		for _, f := range fields {
			if !quizresultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresultevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(quizresultevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitTitle(); ok {
		_spec.SetField(quizresultevent.FieldUnitTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(quizresultevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(quizresultevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(quizresultevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(quizresultevent.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizresultevent.FieldPassed, field.TypeBool, value)
	}
	_node = &QuizResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
