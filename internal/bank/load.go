package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/repaso/internal/schemas"
)

// rawTopic and rawQuestion mirror the dump format, which uses either
// "tareas"/"tareaId" or the older "tasks"/"taskId" names.
type rawTopic struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type rawQuestion struct {
	ID      string       `json:"id"`
	TareaID *int         `json:"tareaId"`
	TaskID  *int         `json:"taskId"`
	Prompt  string       `json:"question"`
	Options []Option     `json:"options"`
	Answer  string       `json:"answer"`
	Type    QuestionType `json:"type"`
}

type rawDump struct {
	DatasetVersion string        `json:"datasetVersion"`
	Tareas         []rawTopic    `json:"tareas"`
	Tasks          []rawTopic    `json:"tasks"`
	Questions      []rawQuestion `json:"questions"`
}

// Load reads a question dump and returns the canonical pool along with any
// validation problems. The error is non-nil only when the input is not a
// readable dump at all; malformed entries are reported as ValidationErrors.
func Load(r io.Reader) (*Pool, []ValidationError, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read dataset: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse dataset: %w", err)
	}
	if err := schemas.Validate(schemas.Dataset, doc); err != nil {
		return nil, nil, fmt.Errorf("dataset shape: %w", err)
	}

	var raw rawDump
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decode dataset: %w", err)
	}

	pool := toCanonical(raw)
	errs := Validate(pool)

	if raw.DatasetVersion != "" && raw.DatasetVersion != DatasetVersion {
		errs = append(errs, ValidationError{
			Code:    CodeDatasetVersion,
			Message: fmt.Sprintf("datasetVersion must be %s (got '%s')", DatasetVersion, raw.DatasetVersion),
		})
	}
	return pool, errs, nil
}

// LoadFile is Load on the file at path.
func LoadFile(path string) (*Pool, []ValidationError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func toCanonical(raw rawDump) *Pool {
	src := raw.Tareas
	if src == nil {
		src = raw.Tasks
	}

	topics := make([]Topic, 0, len(src))
	for _, t := range src {
		id := TopicID(t.ID)
		if !id.Valid() {
			continue
		}
		topics = append(topics, Topic{ID: id, Name: t.Name})
	}

	questions := make([]Question, 0, len(raw.Questions))
	for _, rq := range raw.Questions {
		ref := rq.TareaID
		if ref == nil {
			ref = rq.TaskID
		}
		var topic TopicID
		if ref != nil {
			topic = TopicID(*ref)
		}
		questions = append(questions, Question{
			ID:      rq.ID,
			TopicID: topic,
			Prompt:  rq.Prompt,
			Options: rq.Options,
			Answer:  rq.Answer,
			Type:    rq.Type,
		})
	}

	// The dump carries no version on older exports; the canonical pool
	// always reports the edition it was converted to.
	return NewPool(DatasetVersion, topics, questions)
}
