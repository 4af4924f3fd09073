package app

import (
	"context"

	"github.com/abhisek/repaso/internal/backup"
	"github.com/abhisek/repaso/internal/review"
)

// ExportPayload returns the current state as a backup payload.
func (a *App) ExportPayload() *backup.Payload {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := backup.New(a.pool.Version(), a.settings, a.reviews.Clone(), a.clock())
	return p
}

// Export encodes the current state, gzip-compressed when compress is set.
func (a *App) Export(compress bool) ([]byte, error) {
	p := a.ExportPayload()
	if compress {
		return backup.EncodeGzip(p)
	}
	return backup.Encode(p)
}

// Import replaces reviews and settings with the payload in data (plain or
// gzip JSON) and ends any session. A rejected payload leaves the state
// untouched and is reported as *backup.ImportError. A failed save also
// leaves it untouched.
func (a *App) Import(ctx context.Context, data []byte) error {
	p, err := backup.DecodeAny(data)
	if err != nil {
		a.log.Warn("import rejected", "error", err)
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	prev := a.checkpoint()
	a.reviews = p.Progress
	a.settings = p.Settings
	a.active = nil
	a.adaptive.Finish()
	if err := a.commit(ctx, prev); err != nil {
		return err
	}
	a.log.Info("state imported", "questions", len(p.Progress), "dataset", p.DatasetVersion)
	return nil
}

// AdoptReviews replaces the review map wholesale with m, as a remote sync
// does when its copy is newer. m is assumed consistent and is copied.
func (a *App) AdoptReviews(ctx context.Context, m review.Map) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	prev := a.checkpoint()
	a.reviews = m.Clone()
	if err := a.commit(ctx, prev); err != nil {
		return err
	}
	a.log.Info("reviews adopted", "questions", len(a.reviews))
	return nil
}
