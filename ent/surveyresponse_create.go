// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nlebele/dyscreen/ent/surveyresponse"
)

// SurveyResponseCreate is the builder for creating a SurveyResponse entity.
type SurveyResponseCreate struct {
	config
	mutation *SurveyResponseMutation
	hooks    []Hook
}

// SetSubjectID sets the "subject_id" field.
func (_c *SurveyResponseCreate) SetSubjectID(v string) *SurveyResponseCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *SurveyResponseCreate) SetScores(v map[string]int) *SurveyResponseCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetFreeText sets the "free_text" field.
func (_c *SurveyResponseCreate) SetFreeText(v map[string]string) *SurveyResponseCreate {
	_c.mutation.SetFreeText(v)
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *SurveyResponseCreate) SetSubmittedAt(v time.Time) *SurveyResponseCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *SurveyResponseCreate) SetNillableSubmittedAt(v *time.Time) *SurveyResponseCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// Mutation returns the SurveyResponseMutation object of the builder.
func (_c *SurveyResponseCreate) Mutation() *SurveyResponseMutation {
	return _c.mutation
}

// Save creates the SurveyResponse in the database.
func (_c *SurveyResponseCreate) Save(ctx context.Context) (*SurveyResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SurveyResponseCreate) SaveX(ctx context.Context) *SurveyResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SurveyResponseCreate) defaults() {
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := surveyresponse.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SurveyResponseCreate) check() error {
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "SurveyResponse.subject_id"`)}
	}
	if _, ok := _c.mutation.Scores(); !ok {
		return &ValidationError{Name: "scores", err: errors.New(`ent: missing required field "SurveyResponse.scores"`)}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "SurveyResponse.submitted_at"`)}
	}
	return nil
}

func (_c *SurveyResponseCreate) sqlSave(ctx context.Context) (*SurveyResponse, error) {
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

func (_c *SurveyResponseCreate) createSpec() (*SurveyResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &SurveyResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(surveyresponse.Table, sqlgraph.NewFieldSpec(surveyresponse.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(surveyresponse.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(surveyresponse.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.FreeText(); ok {
		_spec.SetField(surveyresponse.FieldFreeText, field.TypeJSON, value)
		_node.FreeText = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(surveyresponse.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	return _node, _spec
}

// SurveyResponseCreateBulk is the builder for creating many SurveyResponse entities in bulk.
type SurveyResponseCreateBulk struct {
	config
	err      error
	builders []*SurveyResponseCreate
}

// Save creates the SurveyResponse entities in the database.
func (_c *SurveyResponseCreateBulk) Save(ctx context.Context) ([]*SurveyResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SurveyResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SurveyResponseMutation)
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
func (_c *SurveyResponseCreateBulk) SaveX(ctx context.Context) []*SurveyResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
