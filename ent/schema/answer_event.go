package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answered question.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Default("").
			Comment("Session the answer belongs to; empty outside sessions"),
		field.String("question_id").
			NotEmpty().
			Comment("Bank question id"),
		field.Int("topic_id").
			Comment("Topic (tarea) of the question"),
		field.String("chosen").
			Comment("Option letter the learner picked"),
		field.String("outcome").
			NotEmpty().
			Comment("knew, guessed or wrong"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
		index.Fields("topic_id"),
	}
}
