// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/repaso/ent/examresult"
	"github.com/abhisek/repaso/ent/predicate"
)

// ExamResultUpdate is the builder for updating ExamResult entities.
type ExamResultUpdate struct {
	config
	hooks    []Hook
	mutation *ExamResultMutation
}

// Where appends a list predicates to the ExamResultUpdate builder.
func (_u *ExamResultUpdate) Where(ps ...predicate.ExamResult) *ExamResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExamResultUpdate) SetFinishedAt(v time.Time) *ExamResultUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExamResultUpdate) SetNillableFinishedAt(v *time.Time) *ExamResultUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExamResultUpdate) SetMode(v string) *ExamResultUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExamResultUpdate) SetNillableMode(v *string) *ExamResultUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExamResultUpdate) SetTotal(v int) *ExamResultUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExamResultUpdate) SetNillableTotal(v *int) *ExamResultUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExamResultUpdate) AddTotal(v int) *ExamResultUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ExamResultUpdate) SetCorrect(v int) *ExamResultUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ExamResultUpdate) SetNillableCorrect(v *int) *ExamResultUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ExamResultUpdate) AddCorrect(v int) *ExamResultUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamResultUpdate) SetPassed(v bool) *ExamResultUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamResultUpdate) SetNillablePassed(v *bool) *ExamResultUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDurationSec sets the "duration_sec" field.
func (_u *ExamResultUpdate) SetDurationSec(v int) *ExamResultUpdate {
	_u.mutation.ResetDurationSec()
	_u.mutation.SetDurationSec(v)
	return _u
}

// SetNillableDurationSec sets the "duration_sec" field if the given value is not nil.
func (_u *ExamResultUpdate) SetNillableDurationSec(v *int) *ExamResultUpdate {
	if v != nil {
		_u.SetDurationSec(*v)
	}
	return _u
}

// AddDurationSec adds value to the "duration_sec" field.
func (_u *ExamResultUpdate) AddDurationSec(v int) *ExamResultUpdate {
	_u.mutation.AddDurationSec(v)
	return _u
}

// SetTimeSpentSec sets the "time_spent_sec" field.
func (_u *ExamResultUpdate) SetTimeSpentSec(v int) *ExamResultUpdate {
	_u.mutation.ResetTimeSpentSec()
	_u.mutation.SetTimeSpentSec(v)
	return _u
}

// SetNillableTimeSpentSec sets the "time_spent_sec" field if the given value is not nil.
func (_u *ExamResultUpdate) SetNillableTimeSpentSec(v *int) *ExamResultUpdate {
	if v != nil {
		_u.SetTimeSpentSec(*v)
	}
	return _u
}

// AddTimeSpentSec adds value to the "time_spent_sec" field.
func (_u *ExamResultUpdate) AddTimeSpentSec(v int) *ExamResultUpdate {
	_u.mutation.AddTimeSpentSec(v)
	return _u
}

// SetByTopic sets the "by_topic" field.
func (_u *ExamResultUpdate) SetByTopic(v json.RawMessage) *ExamResultUpdate {
	_u.mutation.SetByTopic(v)
	return _u
}

// AppendByTopic appends value to the "by_topic" field.
func (_u *ExamResultUpdate) AppendByTopic(v json.RawMessage) *ExamResultUpdate {
	_u.mutation.AppendByTopic(v)
	return _u
}

// Mutation returns the ExamResultMutation object of the builder.
func (_u *ExamResultUpdate) Mutation() *ExamResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExamResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(examresult.Table, examresult.Columns, sqlgraph.NewFieldSpec(examresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(examresult.FieldFinishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(examresult.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(examresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(examresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(examresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(examresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationSec(); ok {
		_spec.SetField(examresult.FieldDurationSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSec(); ok {
		_spec.AddField(examresult.FieldDurationSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSec(); ok {
		_spec.SetField(examresult.FieldTimeSpentSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSec(); ok {
		_spec.AddField(examresult.FieldTimeSpentSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ByTopic(); ok {
		_spec.SetField(examresult.FieldByTopic, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedByTopic(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examresult.FieldByTopic, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamResultUpdateOne is the builder for updating a single ExamResult entity.
type ExamResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamResultMutation
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExamResultUpdateOne) SetFinishedAt(v time.Time) *ExamResultUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExamResultUpdateOne) SetNillableFinishedAt(v *time.Time) *ExamResultUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExamResultUpdateOne) SetMode(v string) *ExamResultUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExamResultUpdateOne) SetNillableMode(v *string) *ExamResultUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExamResultUpdateOne) SetTotal(v int) *ExamResultUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExamResultUpdateOne) SetNillableTotal(v *int) *ExamResultUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExamResultUpdateOne) AddTotal(v int) *ExamResultUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ExamResultUpdateOne) SetCorrect(v int) *ExamResultUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ExamResultUpdateOne) SetNillableCorrect(v *int) *ExamResultUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ExamResultUpdateOne) AddCorrect(v int) *ExamResultUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamResultUpdateOne) SetPassed(v bool) *ExamResultUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamResultUpdateOne) SetNillablePassed(v *bool) *ExamResultUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDurationSec sets the "duration_sec" field.
func (_u *ExamResultUpdateOne) SetDurationSec(v int) *ExamResultUpdateOne {
	_u.mutation.ResetDurationSec()
	_u.mutation.SetDurationSec(v)
	return _u
}

// SetNillableDurationSec sets the "duration_sec" field if the given value is not nil.
func (_u *ExamResultUpdateOne) SetNillableDurationSec(v *int) *ExamResultUpdateOne {
	if v != nil {
		_u.SetDurationSec(*v)
	}
	return _u
}

// AddDurationSec adds value to the "duration_sec" field.
func (_u *ExamResultUpdateOne) AddDurationSec(v int) *ExamResultUpdateOne {
	_u.mutation.AddDurationSec(v)
	return _u
}

// SetTimeSpentSec sets the "time_spent_sec" field.
func (_u *ExamResultUpdateOne) SetTimeSpentSec(v int) *ExamResultUpdateOne {
	_u.mutation.ResetTimeSpentSec()
	_u.mutation.SetTimeSpentSec(v)
	return _u
}

// SetNillableTimeSpentSec sets the "time_spent_sec" field if the given value is not nil.
func (_u *ExamResultUpdateOne) SetNillableTimeSpentSec(v *int) *ExamResultUpdateOne {
	if v != nil {
		_u.SetTimeSpentSec(*v)
	}
	return _u
}

// AddTimeSpentSec adds value to the "time_spent_sec" field.
func (_u *ExamResultUpdateOne) AddTimeSpentSec(v int) *ExamResultUpdateOne {
	_u.mutation.AddTimeSpentSec(v)
	return _u
}

// SetByTopic sets the "by_topic" field.
func (_u *ExamResultUpdateOne) SetByTopic(v json.RawMessage) *ExamResultUpdateOne {
	_u.mutation.SetByTopic(v)
	return _u
}

// AppendByTopic appends value to the "by_topic" field.
func (_u *ExamResultUpdateOne) AppendByTopic(v json.RawMessage) *ExamResultUpdateOne {
	_u.mutation.AppendByTopic(v)
	return _u
}

// Mutation returns the ExamResultMutation object of the builder.
func (_u *ExamResultUpdateOne) Mutation() *ExamResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamResultUpdate builder.
func (_u *ExamResultUpdateOne) Where(ps ...predicate.ExamResult) *ExamResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamResultUpdateOne) Select(field string, fields ...string) *ExamResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamResult entity.
func (_u *ExamResultUpdateOne) Save(ctx context.Context) (*ExamResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamResultUpdateOne) SaveX(ctx context.Context) *ExamResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExamResultUpdateOne) sqlSave(ctx context.Context) (_node *ExamResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(examresult.Table, examresult.Columns, sqlgraph.NewFieldSpec(examresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examresult.FieldID)
		for _, f := range fields {
			if !examresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examresult.FieldID {
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
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(examresult.FieldFinishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(examresult.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(examresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(examresult.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(examresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(examresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationSec(); ok {
		_spec.SetField(examresult.FieldDurationSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSec(); ok {
		_spec.AddField(examresult.FieldDurationSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSec(); ok {
		_spec.SetField(examresult.FieldTimeSpentSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSec(); ok {
		_spec.AddField(examresult.FieldTimeSpentSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ByTopic(); ok {
		_spec.SetField(examresult.FieldByTopic, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedByTopic(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examresult.FieldByTopic, value)
		})
	}
	_node = &ExamResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
