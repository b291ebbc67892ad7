// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/khanhvo/mathgenius/ent/quizresultevent"
)

// QuizResultEventCreate is the builder for creating a QuizResultEvent entity.
type QuizResultEventCreate struct {
	config
	mutation *QuizResultEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizResultEventCreate) SetSequence(v int64) *QuizResultEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizResultEventCreate) SetTimestamp(v time.Time) *QuizResultEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizResultEventCreate) SetNillableTimestamp(v *time.Time) *QuizResultEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *QuizResultEventCreate) SetUnitID(v string) *QuizResultEventCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetUnitTitle sets the "unit_title" field.
func (_c *QuizResultEventCreate) SetUnitTitle(v string) *QuizResultEventCreate {
	_c.mutation.SetUnitTitle(v)
	return _c
}

// SetNillableUnitTitle sets the "unit_title" field if the given value is not nil.
func (_c *QuizResultEventCreate) SetNillableUnitTitle(v *string) *QuizResultEventCreate {
	if v != nil {
		_c.SetUnitTitle(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *QuizResultEventCreate) SetLevel(v int) *QuizResultEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizResultEventCreate) SetScore(v int) *QuizResultEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *QuizResultEventCreate) SetTotal(v int) *QuizResultEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_c *QuizResultEventCreate) SetTimeSpentSeconds(v int) *QuizResultEventCreate {
	_c.mutation.SetTimeSpentSeconds(v)
	return _c
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_c *QuizResultEventCreate) SetNillableTimeSpentSeconds(v *int) *QuizResultEventCreate {
	if v != nil {
		_c.SetTimeSpentSeconds(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *QuizResultEventCreate) SetPassed(v bool) *QuizResultEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// Mutation returns the QuizResultEventMutation object of the builder.
func (_c *QuizResultEventCreate) Mutation() *QuizResultEventMutation {
	return _c.mutation
}

// Save creates the QuizResultEvent in the database.
func (_c *QuizResultEventCreate) Save(ctx context.Context) (*QuizResultEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizResultEventCreate) SaveX(ctx context.Context) *QuizResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizResultEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizresultevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UnitTitle(); !ok {
		v := quizresultevent.DefaultUnitTitle
		_c.mutation.SetUnitTitle(v)
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		v := quizresultevent.DefaultTimeSpentSeconds
		_c.mutation.SetTimeSpentSeconds(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizResultEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizResultEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizResultEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "QuizResultEvent.unit_id"`)}
	}
	if _, ok := _c.mutation.UnitTitle(); !ok {
		return &ValidationError{Name: "unit_title", err: errors.New(`ent: missing required field "QuizResultEvent.unit_title"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "QuizResultEvent.level"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizResultEvent.score"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "QuizResultEvent.total"`)}
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		return &ValidationError{Name: "time_spent_seconds", err: errors.New(`ent: missing required field "QuizResultEvent.time_spent_seconds"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "QuizResultEvent.passed"`)}
	}
	return nil
}

func (_c *QuizResultEventCreate) sqlSave(ctx context.Context) (*QuizResultEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizResultEventCreate) createSpec() (*QuizResultEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizResultEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizresultevent.Table, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizresultevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizresultevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(quizresultevent.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.UnitTitle(); ok {
		_spec.SetField(quizresultevent.FieldUnitTitle, field.TypeString, value)
		_node.UnitTitle = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(quizresultevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizresultevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(quizresultevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(quizresultevent.FieldTimeSpentSeconds, field.TypeInt, value)
		_node.TimeSpentSeconds = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(quizresultevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	return _node, _spec
}

// QuizResultEventCreateBulk is the builder for creating many QuizResultEvent entities in bulk.
type QuizResultEventCreateBulk struct {
	config
	err      error
	builders []*QuizResultEventCreate
}

// Save creates the QuizResultEvent entities in the database.
func (_c *QuizResultEventCreateBulk) Save(ctx context.Context) ([]*QuizResultEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizResultEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizResultEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizResultEventCreateBulk) SaveX(ctx context.Context) []*QuizResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
