package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/repaso/ent"
	"github.com/abhisek/repaso/ent/examresult"
)

// examRepo implements ExamRepo using the ent client.
type examRepo struct {
	client *ent.Client
}

func (r *examRepo) SaveResult(ctx context.Context, data ExamResultData) error {
	exists, err := r.client.ExamResult.Query().
		Where(examresult.SessionID(data.SessionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check exam result: %w", err)
	}
	if exists {
		return nil
	}

	byTopic, err := json.Marshal(data.ByTopic)
	if err != nil {
		return fmt.Errorf("marshal topic tallies: %w", err)
	}

	_, err = r.client.ExamResult.Create().
		SetSessionID(data.SessionID).
		SetFinishedAt(data.FinishedAt).
		SetMode(data.Mode).
		SetTotal(data.Total).
		SetCorrect(data.Correct).
		SetPassed(data.Passed).
		SetDurationSec(data.DurationSec).
		SetTimeSpentSec(data.TimeSpentSec).
		SetByTopic(byTopic).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam result: %w", err)
	}
	return nil
}

func (r *examRepo) Recent(ctx context.Context, limit int) ([]ExamResultData, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.client.ExamResult.Query().
		Order(ent.Desc(examresult.FieldFinishedAt), ent.Asc(examresult.FieldSessionID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam results: %w", err)
	}

	out := make([]ExamResultData, 0, len(rows))
	for _, e := range rows {
		d := ExamResultData{
			SessionID:    e.SessionID,
			FinishedAt:   e.FinishedAt.UTC(),
			Mode:         e.Mode,
			Total:        e.Total,
			Correct:      e.Correct,
			Passed:       e.Passed,
			DurationSec:  e.DurationSec,
			TimeSpentSec: e.TimeSpentSec,
		}
		if err := json.Unmarshal(e.ByTopic, &d.ByTopic); err != nil {
			return nil, fmt.Errorf("decode topic tallies for %s: %w", e.SessionID, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *examRepo) Prune(ctx context.Context, keep int) error {
	ids, err := r.client.ExamResult.Query().
		Order(ent.Desc(examresult.FieldFinishedAt), ent.Asc(examresult.FieldSessionID)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("query exam results for prune: %w", err)
	}
	keep = max(0, keep)
	if len(ids) <= keep {
		return nil
	}

	_, err = r.client.ExamResult.Delete().
		Where(examresult.IDIn(ids[keep:]...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune exam results: %w", err)
	}
	return nil
}
