package bank

import (
	"fmt"
	"slices"
)

// ValidationCode classifies a dataset problem.
type ValidationCode string

const (
	CodeDatasetVersion     ValidationCode = "missing_dataset_version"
	CodeDuplicateID        ValidationCode = "duplicate_question_id"
	CodeInvalidTopicID     ValidationCode = "invalid_tarea_id"
	CodeAnswerNotInOptions ValidationCode = "answer_not_in_options"
	CodeMissingTopic       ValidationCode = "missing_tarea_definition"
)

// ValidationError describes one malformed dataset entry.
// QuestionID is empty for dataset-level problems.
type ValidationError struct {
	Code       ValidationCode `json:"code"`
	Message    string         `json:"message"`
	QuestionID string         `json:"questionId,omitempty"`
}

func (e ValidationError) String() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validate performs all structural checks on the pool and returns every
// problem found. An empty result means the pool is usable as-is.
func Validate(p *Pool) []ValidationError {
	var errs []ValidationError

	if p.version != DatasetVersion {
		errs = append(errs, ValidationError{
			Code:    CodeDatasetVersion,
			Message: fmt.Sprintf("datasetVersion must be %s", DatasetVersion),
		})
	}

	defined := make(map[TopicID]bool, len(p.topics))
	for _, t := range p.topics {
		defined[t.ID] = true
	}

	seen := make(map[string]bool, len(p.questions))
	referenced := make(map[TopicID]bool)
	for _, q := range p.questions {
		if seen[q.ID] {
			errs = append(errs, ValidationError{
				Code:       CodeDuplicateID,
				Message:    fmt.Sprintf("Duplicate question id: %s", q.ID),
				QuestionID: q.ID,
			})
		}
		seen[q.ID] = true
		referenced[q.TopicID] = true

		if !q.TopicID.Valid() {
			errs = append(errs, ValidationError{
				Code:       CodeInvalidTopicID,
				Message:    fmt.Sprintf("Invalid tareaId for question %s: %d", q.ID, q.TopicID),
				QuestionID: q.ID,
			})
		}

		if !defined[q.TopicID] {
			errs = append(errs, ValidationError{
				Code:       CodeMissingTopic,
				Message:    fmt.Sprintf("Missing tarea definition for tareaId %d (question %s)", q.TopicID, q.ID),
				QuestionID: q.ID,
			})
		}

		if !q.HasOption(q.Answer) {
			errs = append(errs, ValidationError{
				Code:       CodeAnswerNotInOptions,
				Message:    fmt.Sprintf("Answer '%s' not found in options for question %s", q.Answer, q.ID),
				QuestionID: q.ID,
			})
		}
	}

	// Dataset-level summary for every referenced topic lacking a definition.
	for _, id := range TopicIDs {
		if referenced[id] && !defined[id] {
			errs = append(errs, ValidationError{
				Code:    CodeMissingTopic,
				Message: fmt.Sprintf("Missing tarea definition for tareaId %d", id),
			})
		}
	}

	return errs
}

// HasCode reports whether errs contains at least one error with code.
func HasCode(errs []ValidationError, code ValidationCode) bool {
	return slices.ContainsFunc(errs, func(e ValidationError) bool { return e.Code == code })
}
