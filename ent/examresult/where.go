// Code generated by ent, DO NOT EDIT.

package examresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/repaso/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldSessionID, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldFinishedAt, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldMode, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldTotal, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldCorrect, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldPassed, v))
}

// DurationSec applies equality check predicate on the "duration_sec" field. It's identical to DurationSecEQ.
func DurationSec(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldDurationSec, v))
}

// TimeSpentSec applies equality check predicate on the "time_spent_sec" field. It's identical to TimeSpentSecEQ.
func TimeSpentSec(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldTimeSpentSec, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldContainsFold(FieldSessionID, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldFinishedAt, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldContainsFold(FieldMode, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldTotal, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldCorrect, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldPassed, v))
}

// DurationSecEQ applies the EQ predicate on the "duration_sec" field.
func DurationSecEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldDurationSec, v))
}

// DurationSecNEQ applies the NEQ predicate on the "duration_sec" field.
func DurationSecNEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldDurationSec, v))
}

// DurationSecIn applies the In predicate on the "duration_sec" field.
func DurationSecIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldDurationSec, vs...))
}

// DurationSecNotIn applies the NotIn predicate on the "duration_sec" field.
func DurationSecNotIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldDurationSec, vs...))
}

// DurationSecGT applies the GT predicate on the "duration_sec" field.
func DurationSecGT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldDurationSec, v))
}

// DurationSecGTE applies the GTE predicate on the "duration_sec" field.
func DurationSecGTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldDurationSec, v))
}

// DurationSecLT applies the LT predicate on the "duration_sec" field.
func DurationSecLT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldDurationSec, v))
}

// DurationSecLTE applies the LTE predicate on the "duration_sec" field.
func DurationSecLTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldDurationSec, v))
}

// TimeSpentSecEQ applies the EQ predicate on the "time_spent_sec" field.
func TimeSpentSecEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldTimeSpentSec, v))
}

// TimeSpentSecNEQ applies the NEQ predicate on the "time_spent_sec" field.
func TimeSpentSecNEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldTimeSpentSec, v))
}

// TimeSpentSecIn applies the In predicate on the "time_spent_sec" field.
func TimeSpentSecIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldTimeSpentSec, vs...))
}

// TimeSpentSecNotIn applies the NotIn predicate on the "time_spent_sec" field.
func TimeSpentSecNotIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldTimeSpentSec, vs...))
}

// TimeSpentSecGT applies the GT predicate on the "time_spent_sec" field.
func TimeSpentSecGT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldTimeSpentSec, v))
}

// TimeSpentSecGTE applies the GTE predicate on the "time_spent_sec" field.
func TimeSpentSecGTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldTimeSpentSec, v))
}

// TimeSpentSecLT applies the LT predicate on the "time_spent_sec" field.
func TimeSpentSecLT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldTimeSpentSec, v))
}

// TimeSpentSecLTE applies the LTE predicate on the "time_spent_sec" field.
func TimeSpentSecLTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldTimeSpentSec, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamResult) predicate.ExamResult {
	return predicate.ExamResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamResult) predicate.ExamResult {
	return predicate.ExamResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamResult) predicate.ExamResult {
	return predicate.ExamResult(sql.NotPredicates(p))
}
