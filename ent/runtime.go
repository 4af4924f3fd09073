// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/repaso/ent/answerevent"
	"github.com/abhisek/repaso/ent/examresult"
	"github.com/abhisek/repaso/ent/schema"
	"github.com/abhisek/repaso/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.DefaultSessionID holds the default value on creation for the session_id field.
	answerevent.DefaultSessionID = answereventDescSessionID.Default.(string)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescOutcome is the schema descriptor for outcome field.
	answereventDescOutcome := answereventFields[4].Descriptor()
	// answerevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	answerevent.OutcomeValidator = answereventDescOutcome.Validators[0].(func(string) error)
	examresultFields := schema.ExamResult{}.Fields()
	_ = examresultFields
	// examresultDescSessionID is the schema descriptor for session_id field.
	examresultDescSessionID := examresultFields[0].Descriptor()
	// examresult.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	examresult.SessionIDValidator = examresultDescSessionID.Validators[0].(func(string) error)
	// examresultDescMode is the schema descriptor for mode field.
	examresultDescMode := examresultFields[2].Descriptor()
	// examresult.DefaultMode holds the default value on creation for the mode field.
	examresult.DefaultMode = examresultDescMode.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
