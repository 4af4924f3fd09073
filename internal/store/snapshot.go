package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/repaso/ent"
	"github.com/abhisek/repaso/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if len(snap.Data) == 0 {
		return errors.New("save snapshot: empty data")
	}
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}

	s, err := r.client.Snapshot.Create().
		SetSequence(seqNum).
		SetTimestamp(snap.Timestamp).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	snap.ID = int64(s.ID)
	snap.Sequence = s.Sequence
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp), ent.Desc(snapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return &Snapshot{
		ID:        int64(s.ID),
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp.UTC(),
		Data:      s.Data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	ids, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp), ent.Desc(snapshot.FieldID)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	keep = max(0, keep)
	if len(ids) <= keep {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.IDIn(ids[keep:]...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
