// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/repaso/ent/examresult"
)

// ExamResultCreate is the builder for creating a ExamResult entity.
type ExamResultCreate struct {
	config
	mutation *ExamResultMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ExamResultCreate) SetSessionID(v string) *ExamResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExamResultCreate) SetFinishedAt(v time.Time) *ExamResultCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ExamResultCreate) SetMode(v string) *ExamResultCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *ExamResultCreate) SetNillableMode(v *string) *ExamResultCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *ExamResultCreate) SetTotal(v int) *ExamResultCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ExamResultCreate) SetCorrect(v int) *ExamResultCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ExamResultCreate) SetPassed(v bool) *ExamResultCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetDurationSec sets the "duration_sec" field.
func (_c *ExamResultCreate) SetDurationSec(v int) *ExamResultCreate {
	_c.mutation.SetDurationSec(v)
	return _c
}

// SetTimeSpentSec sets the "time_spent_sec" field.
func (_c *ExamResultCreate) SetTimeSpentSec(v int) *ExamResultCreate {
	_c.mutation.SetTimeSpentSec(v)
	return _c
}

// SetByTopic sets the "by_topic" field.
func (_c *ExamResultCreate) SetByTopic(v json.RawMessage) *ExamResultCreate {
	_c.mutation.SetByTopic(v)
	return _c
}

// Mutation returns the ExamResultMutation object of the builder.
func (_c *ExamResultCreate) Mutation() *ExamResultMutation {
	return _c.mutation
}

// Save creates the ExamResult in the database.
func (_c *ExamResultCreate) Save(ctx context.Context) (*ExamResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamResultCreate) SaveX(ctx context.Context) *ExamResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamResultCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := examresult.DefaultMode
		_c.mutation.SetMode(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamResultCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExamResult.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := examresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamResult.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "ExamResult.finished_at"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ExamResult.mode"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ExamResult.total"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ExamResult.correct"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ExamResult.passed"`)}
	}
	if _, ok := _c.mutation.DurationSec(); !ok {
		return &ValidationError{Name: "duration_sec", err: errors.New(`ent: missing required field "ExamResult.duration_sec"`)}
	}
	if _, ok := _c.mutation.TimeSpentSec(); !ok {
		return &ValidationError{Name: "time_spent_sec", err: errors.New(`ent: missing required field "ExamResult.time_spent_sec"`)}
	}
	if _, ok := _c.mutation.ByTopic(); !ok {
		return &ValidationError{Name: "by_topic", err: errors.New(`ent: missing required field "ExamResult.by_topic"`)}
	}
	return nil
}

func (_c *ExamResultCreate) sqlSave(ctx context.Context) (*ExamResult, error) {
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

func (_c *ExamResultCreate) createSpec() (*ExamResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examresult.Table, sqlgraph.NewFieldSpec(examresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(examresult.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(examresult.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(examresult.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(examresult.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(examresult.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(examresult.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.DurationSec(); ok {
		_spec.SetField(examresult.FieldDurationSec, field.TypeInt, value)
		_node.DurationSec = value
	}
	if value, ok := _c.mutation.TimeSpentSec(); ok {
		_spec.SetField(examresult.FieldTimeSpentSec, field.TypeInt, value)
		_node.TimeSpentSec = value
	}
	if value, ok := _c.mutation.ByTopic(); ok {
		_spec.SetField(examresult.FieldByTopic, field.TypeJSON, value)
		_node.ByTopic = value
	}
	return _node, _spec
}

// ExamResultCreateBulk is the builder for creating many ExamResult entities in bulk.
type ExamResultCreateBulk struct {
	config
	err      error
	builders []*ExamResultCreate
}

// Save creates the ExamResult entities in the database.
func (_c *ExamResultCreateBulk) Save(ctx context.Context) ([]*ExamResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamResultMutation)
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
func (_c *ExamResultCreateBulk) SaveX(ctx context.Context) []*ExamResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
