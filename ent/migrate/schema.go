// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "question_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "chosen", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
		},
	}
	// ExamResultsColumns holds the columns for the "exam_results" table.
	ExamResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "finished_at", Type: field.TypeTime},
		{Name: "mode", Type: field.TypeString, Default: ""},
		{Name: "total", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "duration_sec", Type: field.TypeInt},
		{Name: "time_spent_sec", Type: field.TypeInt},
		{Name: "by_topic", Type: field.TypeJSON},
	}
	// ExamResultsTable holds the schema information for the "exam_results" table.
	ExamResultsTable = &schema.Table{
		Name:       "exam_results",
		Columns:    ExamResultsColumns,
		PrimaryKey: []*schema.Column{ExamResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examresult_finished_at",
				Unique:  false,
				Columns: []*schema.Column{ExamResultsColumns[2]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		ExamResultsTable,
		SnapshotsTable,
	}
)

func init() {
}
