package store

import (
	"context"
	"fmt"

	"github.com/nlebele/dyscreen/ent"
	"github.com/nlebele/dyscreen/ent/testresult"
)

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Create(ctx context.Context, res *TestResult) (int, error) {
	created, err := r.client.TestResult.Create().
		SetSubjectID(res.SubjectID).
		SetNumbersScore(res.NumbersScore).
		SetLogicScore(res.LogicScore).
		SetShapesScore(res.ShapesScore).
		SetLikelihood(res.Likelihood).
		SetMessage(res.Message).
		SetBreakdown(res.Breakdown).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("save test result: %w", err)
	}
	return created.ID, nil
}

func (r *resultRepo) Get(ctx context.Context, subjectID string) (*TestResult, error) {
	res, err := r.client.TestResult.Query().
		Where(testresult.SubjectID(subjectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query test result: %w", err)
	}
	return entResultToResult(res), nil
}

func (r *resultRepo) List(ctx context.Context, limit int) ([]*TestResult, error) {
	q := r.client.TestResult.Query().
		Order(ent.Desc(testresult.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list test results: %w", err)
	}
	out := make([]*TestResult, len(rows))
	for i, row := range rows {
		out[i] = entResultToResult(row)
	}
	return out, nil
}

func (r *resultRepo) Delete(ctx context.Context, subjectID string) error {
	_, err := r.client.TestResult.Delete().
		Where(testresult.SubjectID(subjectID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete test result: %w", err)
	}
	return nil
}

func entResultToResult(res *ent.TestResult) *TestResult {
	return &TestResult{
		ID:           res.ID,
		SubjectID:    res.SubjectID,
		NumbersScore: res.NumbersScore,
		LogicScore:   res.LogicScore,
		ShapesScore:  res.ShapesScore,
		Likelihood:   res.Likelihood,
		Message:      res.Message,
		Breakdown:    res.Breakdown,
		CreatedAt:    res.CreatedAt,
	}
}
