// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nlebele/dyscreen/ent/testresult"
)

// TestResultCreate is the builder for creating a TestResult entity.
type TestResultCreate struct {
	config
	mutation *TestResultMutation
	hooks    []Hook
}

// SetSubjectID sets the "subject_id" field.
func (_c *TestResultCreate) SetSubjectID(v string) *TestResultCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetNumbersScore sets the "numbers_score" field.
func (_c *TestResultCreate) SetNumbersScore(v int) *TestResultCreate {
	_c.mutation.SetNumbersScore(v)
	return _c
}

// SetLogicScore sets the "logic_score" field.
func (_c *TestResultCreate) SetLogicScore(v int) *TestResultCreate {
	_c.mutation.SetLogicScore(v)
	return _c
}

// SetShapesScore sets the "shapes_score" field.
func (_c *TestResultCreate) SetShapesScore(v int) *TestResultCreate {
	_c.mutation.SetShapesScore(v)
	return _c
}

// SetLikelihood sets the "likelihood" field.
func (_c *TestResultCreate) SetLikelihood(v string) *TestResultCreate {
	_c.mutation.SetLikelihood(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *TestResultCreate) SetMessage(v string) *TestResultCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetBreakdown sets the "breakdown" field.
func (_c *TestResultCreate) SetBreakdown(v map[string]interface{}) *TestResultCreate {
	_c.mutation.SetBreakdown(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestResultCreate) SetCreatedAt(v time.Time) *TestResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableCreatedAt(v *time.Time) *TestResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TestResultMutation object of the builder.
func (_c *TestResultCreate) Mutation() *TestResultMutation {
	return _c.mutation
}

// Save creates the TestResult in the database.
func (_c *TestResultCreate) Save(ctx context.Context) (*TestResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestResultCreate) SaveX(ctx context.Context) *TestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestResultCreate) check() error {
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "TestResult.subject_id"`)}
	}
	if _, ok := _c.mutation.NumbersScore(); !ok {
		return &ValidationError{Name: "numbers_score", err: errors.New(`ent: missing required field "TestResult.numbers_score"`)}
	}
	if _, ok := _c.mutation.LogicScore(); !ok {
		return &ValidationError{Name: "logic_score", err: errors.New(`ent: missing required field "TestResult.logic_score"`)}
	}
	if _, ok := _c.mutation.ShapesScore(); !ok {
		return &ValidationError{Name: "shapes_score", err: errors.New(`ent: missing required field "TestResult.shapes_score"`)}
	}
	if _, ok := _c.mutation.Likelihood(); !ok {
		return &ValidationError{Name: "likelihood", err: errors.New(`ent: missing required field "TestResult.likelihood"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "TestResult.message"`)}
	}
	if _, ok := _c.mutation.Breakdown(); !ok {
		return &ValidationError{Name: "breakdown", err: errors.New(`ent: missing required field "TestResult.breakdown"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestResult.created_at"`)}
	}
	return nil
}

func (_c *TestResultCreate) sqlSave(ctx context.Context) (*TestResult, error) {
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

func (_c *TestResultCreate) createSpec() (*TestResult, *sqlgraph.CreateSpec) {
	var (
		_node = &TestResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testresult.Table, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(testresult.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.NumbersScore(); ok {
		_spec.SetField(testresult.FieldNumbersScore, field.TypeInt, value)
		_node.NumbersScore = value
	}
	if value, ok := _c.mutation.LogicScore(); ok {
		_spec.SetField(testresult.FieldLogicScore, field.TypeInt, value)
		_node.LogicScore = value
	}
	if value, ok := _c.mutation.ShapesScore(); ok {
		_spec.SetField(testresult.FieldShapesScore, field.TypeInt, value)
		_node.ShapesScore = value
	}
	if value, ok := _c.mutation.Likelihood(); ok {
		_spec.SetField(testresult.FieldLikelihood, field.TypeString, value)
		_node.Likelihood = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(testresult.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Breakdown(); ok {
		_spec.SetField(testresult.FieldBreakdown, field.TypeJSON, value)
		_node.Breakdown = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TestResultCreateBulk is the builder for creating many TestResult entities in bulk.
type TestResultCreateBulk struct {
	config
	err      error
	builders []*TestResultCreate
}

// Save creates the TestResult entities in the database.
func (_c *TestResultCreateBulk) Save(ctx context.Context) ([]*TestResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestResultMutation)
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
func (_c *TestResultCreateBulk) SaveX(ctx context.Context) []*TestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
