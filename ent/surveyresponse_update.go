// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nlebele/dyscreen/ent/predicate"
	"github.com/nlebele/dyscreen/ent/surveyresponse"
)

// SurveyResponseUpdate is the builder for updating SurveyResponse entities.
type SurveyResponseUpdate struct {
	config
	hooks    []Hook
	mutation *SurveyResponseMutation
}

// Where appends a list predicates to the SurveyResponseUpdate builder.
func (_u *SurveyResponseUpdate) Where(ps ...predicate.SurveyResponse) *SurveyResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScores sets the "scores" field.
func (_u *SurveyResponseUpdate) SetScores(v map[string]int) *SurveyResponseUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// SetFreeText sets the "free_text" field.
func (_u *SurveyResponseUpdate) SetFreeText(v map[string]string) *SurveyResponseUpdate {
	_u.mutation.SetFreeText(v)
	return _u
}

// ClearFreeText clears the value of the "free_text" field.
func (_u *SurveyResponseUpdate) ClearFreeText() *SurveyResponseUpdate {
	_u.mutation.ClearFreeText()
	return _u
}

// Mutation returns the SurveyResponseMutation object of the builder.
func (_u *SurveyResponseUpdate) Mutation() *SurveyResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SurveyResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurveyResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SurveyResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurveyResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SurveyResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(surveyresponse.Table, surveyresponse.Columns, sqlgraph.NewFieldSpec(surveyresponse.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(surveyresponse.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.FreeText(); ok {
		_spec.SetField(surveyresponse.FieldFreeText, field.TypeJSON, value)
	}
	if _u.mutation.FreeTextCleared() {
		_spec.ClearField(surveyresponse.FieldFreeText, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{surveyresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SurveyResponseUpdateOne is the builder for updating a single SurveyResponse entity.
type SurveyResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SurveyResponseMutation
}

// SetScores sets the "scores" field.
func (_u *SurveyResponseUpdateOne) SetScores(v map[string]int) *SurveyResponseUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// SetFreeText sets the "free_text" field.
func (_u *SurveyResponseUpdateOne) SetFreeText(v map[string]string) *SurveyResponseUpdateOne {
	_u.mutation.SetFreeText(v)
	return _u
}

// ClearFreeText clears the value of the "free_text" field.
func (_u *SurveyResponseUpdateOne) ClearFreeText() *SurveyResponseUpdateOne {
	_u.mutation.ClearFreeText()
	return _u
}

// Mutation returns the SurveyResponseMutation object of the builder.
func (_u *SurveyResponseUpdateOne) Mutation() *SurveyResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the SurveyResponseUpdate builder.
func (_u *SurveyResponseUpdateOne) Where(ps ...predicate.SurveyResponse) *SurveyResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SurveyResponseUpdateOne) Select(field string, fields ...string) *SurveyResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SurveyResponse entity.
func (_u *SurveyResponseUpdateOne) Save(ctx context.Context) (*SurveyResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurveyResponseUpdateOne) SaveX(ctx context.Context) *SurveyResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SurveyResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurveyResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SurveyResponseUpdateOne) sqlSave(ctx context.Context) (_node *SurveyResponse, err error) {
	_spec := sqlgraph.NewUpdateSpec(surveyresponse.Table, surveyresponse.Columns, sqlgraph.NewFieldSpec(surveyresponse.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SurveyResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, surveyresponse.FieldID)
		for _, f := range fields {
			if !surveyresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != surveyresponse.FieldID {
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
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(surveyresponse.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.FreeText(); ok {
		_spec.SetField(surveyresponse.FieldFreeText, field.TypeJSON, value)
	}
	if _u.mutation.FreeTextCleared() {
		_spec.ClearField(surveyresponse.FieldFreeText, field.TypeJSON)
	}
	_node = &SurveyResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{surveyresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
