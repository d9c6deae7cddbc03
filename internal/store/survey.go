package store

import (
	"context"
	"fmt"

	"github.com/nlebele/dyscreen/ent"
	"github.com/nlebele/dyscreen/ent/surveyresponse"
)

// surveyRepo implements SurveyRepo using the ent client.
type surveyRepo struct {
	client *ent.Client
}

func (r *surveyRepo) Save(ctx context.Context, resp *SurveyResponse) error {
	create := r.client.SurveyResponse.Create().
		SetSubjectID(resp.SubjectID).
		SetScores(resp.Scores)
	if len(resp.FreeText) > 0 {
		create = create.SetFreeText(resp.FreeText)
	}
	_, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("save survey response: %w", err)
	}
	return nil
}

func (r *surveyRepo) Get(ctx context.Context, subjectID string) (*SurveyResponse, error) {
	resp, err := r.client.SurveyResponse.Query().
		Where(surveyresponse.SubjectID(subjectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query survey response: %w", err)
	}
	return &SurveyResponse{
		ID:          resp.ID,
		SubjectID:   resp.SubjectID,
		Scores:      resp.Scores,
		FreeText:    resp.FreeText,
		SubmittedAt: resp.SubmittedAt,
	}, nil
}

func (r *surveyRepo) Delete(ctx context.Context, subjectID string) error {
	_, err := r.client.SurveyResponse.Delete().
		Where(surveyresponse.SubjectID(subjectID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete survey response: %w", err)
	}
	return nil
}
