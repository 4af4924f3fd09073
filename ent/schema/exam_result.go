package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamResult is the scored outcome of one simulacro.
type ExamResult struct {
	ent.Schema
}

func (ExamResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Session the exam ran in"),
		field.Time("finished_at").
			Comment("When the exam was scored"),
		field.String("mode").
			Default("").
			Comment("official or adaptive"),
		field.Int("total"),
		field.Int("correct"),
		field.Bool("passed"),
		field.Int("duration_sec").
			Comment("Time limit in seconds"),
		field.Int("time_spent_sec").
			Comment("Seconds used, at most duration_sec"),
		field.JSON("by_topic", json.RawMessage{}).
			Comment("Correct/total tally per topic id"),
	}
}

func (ExamResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("finished_at"),
	}
}
