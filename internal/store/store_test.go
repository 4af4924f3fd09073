package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked with a file-based DB below.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDBUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repaso.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	first := &Snapshot{Timestamp: now, Data: json.RawMessage(`{"schemaVersion":1}`)}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := &Snapshot{Timestamp: now.Add(time.Second), Data: json.RawMessage(`{"schemaVersion":2}`)}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save: %v", err)
	}
	if second.Sequence <= first.Sequence {
		t.Errorf("sequence not increasing: %d then %d", first.Sequence, second.Sequence)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.ID != second.ID {
		t.Errorf("Latest ID = %d, want %d", snap.ID, second.ID)
	}
	if !snap.Timestamp.Equal(second.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", snap.Timestamp, second.Timestamp)
	}
	if string(snap.Data) != `{"schemaVersion":2}` {
		t.Errorf("Data = %s", snap.Data)
	}
}

func TestSnapshotSaveRejectsEmpty(t *testing.T) {
	s := openTestStore(t)
	if err := s.SnapshotRepo().Save(context.Background(), &Snapshot{}); err == nil {
		t.Error("expected error for empty snapshot data")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      json.RawMessage(fmt.Sprintf(`{"n":%d}`, i)),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshots after prune = %d, want 2", count)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if string(latest.Data) != `{"n":4}` {
		t.Errorf("latest after prune = %s", latest.Data)
	}
}

func TestExamResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.ExamRepo()
	ctx := context.Background()

	base := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		err := repo.SaveResult(ctx, ExamResultData{
			SessionID:    fmt.Sprintf("s%d", i),
			FinishedAt:   base.Add(time.Duration(i) * time.Hour),
			Mode:         "official",
			Total:        25,
			Correct:      14 + i,
			Passed:       14+i >= 15,
			DurationSec:  2700,
			TimeSpentSec: 600,
			ByTopic:      map[int]TopicTally{1: {Correct: 8, Total: 10}},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Duplicate session ids are ignored.
	if err := repo.SaveResult(ctx, ExamResultData{SessionID: "s0", FinishedAt: base.Add(24 * time.Hour), Total: 25}); err != nil {
		t.Fatalf("save duplicate: %v", err)
	}

	got, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if got[0].SessionID != "s3" || !got[0].Passed || got[0].Correct != 17 {
		t.Errorf("newest = %+v", got[0])
	}
	if got[3].SessionID != "s0" || got[3].Passed {
		t.Errorf("oldest = %+v", got[3])
	}
	if got[0].ByTopic[1] != (TopicTally{Correct: 8, Total: 10}) {
		t.Errorf("ByTopic = %v", got[0].ByTopic)
	}
	if !got[0].FinishedAt.Equal(base.Add(3 * time.Hour)) {
		t.Errorf("FinishedAt = %v", got[0].FinishedAt)
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}
	got, err = repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 || got[1].SessionID != "s2" {
		t.Errorf("after prune = %+v", got)
	}
}

func TestAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, n, err := repo.TopicAccuracy(ctx, 1)
	if err != nil || acc != 0 || n != 0 {
		t.Fatalf("empty accuracy = %v, %d, %v", acc, n, err)
	}

	events := []AnswerEventData{
		{QuestionID: "1001", TopicID: 1, Chosen: "a", Outcome: "knew", Correct: true},
		{QuestionID: "1002", TopicID: 1, Chosen: "b", Outcome: "wrong", Correct: false},
		{QuestionID: "1003", TopicID: 1, Chosen: "a", Outcome: "guessed", Correct: true},
		{QuestionID: "1004", TopicID: 1, Chosen: "a", Outcome: "knew", Correct: true},
		{QuestionID: "5001", TopicID: 5, Chosen: "c", Outcome: "wrong", Correct: false, SessionID: "s1"},
	}
	for _, e := range events {
		if err := repo.AppendAnswerEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	acc, n, err = repo.TopicAccuracy(ctx, 1)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if n != 4 || acc != 0.75 {
		t.Errorf("topic 1 accuracy = %v over %d, want 0.75 over 4", acc, n)
	}

	count, err := repo.AnswerCount(ctx)
	if err != nil || count != 5 {
		t.Errorf("AnswerCount = %d, %v", count, err)
	}

	recent, err := repo.RecentAnswers(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 || recent[0].QuestionID != "5001" || recent[0].SessionID != "s1" || recent[1].QuestionID != "1004" {
		t.Errorf("recent = %+v", recent)
	}
	if recent[0].TopicID != 5 || recent[0].Outcome != "wrong" || recent[0].Correct {
		t.Errorf("recent[0] fields = %+v", recent[0])
	}
	if recent[0].Sequence <= recent[1].Sequence {
		t.Errorf("sequences not descending: %d, %d", recent[0].Sequence, recent[1].Sequence)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("REPASO_DB", filepath.Join(dir, "explicit", "x.db"))
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != filepath.Join(dir, "explicit", "x.db") {
		t.Errorf("path = %q", p)
	}

	t.Setenv("REPASO_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != filepath.Join(dir, "repaso", "repaso.db") {
		t.Errorf("path = %q", p)
	}
}
