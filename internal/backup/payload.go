// Package backup encodes the full learner state as one versioned JSON
// payload for export, import and local snapshots.
package backup

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/abhisek/repaso/internal/review"
	"github.com/abhisek/repaso/internal/schemas"
	"github.com/abhisek/repaso/internal/study"
)

// SchemaVersion is the only payload version this build reads and writes.
const SchemaVersion = 1

// Payload is the exported state. Progress holds the review map as-is.
type Payload struct {
	SchemaVersion  int            `json:"schemaVersion"`
	DatasetVersion string         `json:"datasetVersion"`
	CreatedAt      time.Time      `json:"createdAt"`
	LastUpdatedAt  time.Time      `json:"lastUpdatedAt"`
	Settings       study.Settings `json:"settings"`
	Progress       review.Map     `json:"progressById"`
}

// New builds a payload stamped at now.
func New(datasetVersion string, settings study.Settings, progress review.Map, now time.Time) *Payload {
	if progress == nil {
		progress = review.Map{}
	}
	return &Payload{
		SchemaVersion:  SchemaVersion,
		DatasetVersion: datasetVersion,
		CreatedAt:      now,
		LastUpdatedAt:  now,
		Settings:       settings,
		Progress:       progress,
	}
}

// ImportError is a rejected payload. Reason is shown to the user.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *ImportError) Unwrap() error { return e.Err }

// Encode writes p as compact JSON.
func Encode(p *Payload) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}

// wire is the decode shape; settings are merged over defaults separately.
type wire struct {
	SchemaVersion  int             `json:"schemaVersion"`
	DatasetVersion string          `json:"datasetVersion"`
	CreatedAt      *time.Time      `json:"createdAt"`
	LastUpdatedAt  *time.Time      `json:"lastUpdatedAt"`
	Settings       json.RawMessage `json:"settings"`
	Progress       review.Map      `json:"progressById"`
}

// Decode parses and checks a payload. Every failure is an *ImportError and
// nothing is returned with it, so callers never apply a partial payload.
func Decode(data []byte) (*Payload, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ImportError{Reason: "Invalid JSON", Err: err}
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &ImportError{Reason: "Invalid JSON", Err: errors.New("payload is not an object")}
	}
	if v, ok := obj["schemaVersion"].(float64); !ok || v != SchemaVersion {
		return nil, &ImportError{Reason: "Unsupported schemaVersion"}
	}
	if _, ok := obj["progressById"].(map[string]any); !ok {
		return nil, &ImportError{Reason: "Missing progressById"}
	}
	if err := schemas.Validate(schemas.Payload, doc); err != nil {
		return nil, &ImportError{Reason: "Invalid payload", Err: err}
	}

	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &ImportError{Reason: "Invalid payload", Err: err}
	}
	settings, err := study.MergeSettings(w.Settings)
	if err != nil {
		return nil, &ImportError{Reason: "Invalid settings", Err: err}
	}

	ids := make([]string, 0, len(w.Progress))
	for id := range w.Progress {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if err := review.Validate(w.Progress[id]); err != nil {
			return nil, &ImportError{Reason: "Invalid progress for " + id, Err: err}
		}
	}

	p := &Payload{
		SchemaVersion:  w.SchemaVersion,
		DatasetVersion: w.DatasetVersion,
		Settings:       settings,
		Progress:       w.Progress,
	}
	if w.CreatedAt != nil {
		p.CreatedAt = *w.CreatedAt
	}
	if w.LastUpdatedAt != nil {
		p.LastUpdatedAt = *w.LastUpdatedAt
	}
	return p, nil
}

// EncodeGzip writes p as gzip-compressed JSON.
func EncodeGzip(p *Payload) ([]byte, error) {
	data, err := Encode(p)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeGzip reverses EncodeGzip.
func DecodeGzip(data []byte) (*Payload, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ImportError{Reason: "Invalid gzip data", Err: err}
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, &ImportError{Reason: "Invalid gzip data", Err: err}
	}
	return Decode(raw)
}

// IsGzip reports whether data starts with the gzip magic bytes.
func IsGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}

// DecodeAny decodes plain or gzip-compressed JSON.
func DecodeAny(data []byte) (*Payload, error) {
	if IsGzip(data) {
		return DecodeGzip(data)
	}
	return Decode(data)
}
