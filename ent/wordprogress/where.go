// Code generated by ent, DO NOT EDIT.

package wordprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/marchenko/lexrec/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldUserID, v))
}

// WordID applies equality check predicate on the "word_id" field. It's identical to WordIDEQ.
func WordID(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldWordID, v))
}

// MasteryState applies equality check predicate on the "mastery_state" field. It's identical to MasteryStateEQ.
func MasteryState(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldMasteryState, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldReviewCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldCorrectCount, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldAccuracy, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldLastReviewedAt, v))
}

// NextReviewDueAt applies equality check predicate on the "next_review_due_at" field. It's identical to NextReviewDueAtEQ.
func NextReviewDueAt(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldNextReviewDueAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldContainsFold(FieldUserID, v))
}

// WordIDEQ applies the EQ predicate on the "word_id" field.
func WordIDEQ(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldWordID, v))
}

// WordIDNEQ applies the NEQ predicate on the "word_id" field.
func WordIDNEQ(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNEQ(FieldWordID, v))
}

// WordIDIn applies the In predicate on the "word_id" field.
func WordIDIn(vs ...string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldIn(FieldWordID, vs...))
}

// WordIDNotIn applies the NotIn predicate on the "word_id" field.
func WordIDNotIn(vs ...string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNotIn(FieldWordID, vs...))
}

// WordIDGT applies the GT predicate on the "word_id" field.
func WordIDGT(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGT(FieldWordID, v))
}

// WordIDGTE applies the GTE predicate on the "word_id" field.
func WordIDGTE(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGTE(FieldWordID, v))
}

// WordIDLT applies the LT predicate on the "word_id" field.
func WordIDLT(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLT(FieldWordID, v))
}

// WordIDLTE applies the LTE predicate on the "word_id" field.
func WordIDLTE(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLTE(FieldWordID, v))
}

// WordIDContains applies the Contains predicate on the "word_id" field.
func WordIDContains(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldContains(FieldWordID, v))
}

// WordIDHasPrefix applies the HasPrefix predicate on the "word_id" field.
func WordIDHasPrefix(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldHasPrefix(FieldWordID, v))
}

// WordIDHasSuffix applies the HasSuffix predicate on the "word_id" field.
func WordIDHasSuffix(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldHasSuffix(FieldWordID, v))
}

// WordIDEqualFold applies the EqualFold predicate on the "word_id" field.
func WordIDEqualFold(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEqualFold(FieldWordID, v))
}

// WordIDContainsFold applies the ContainsFold predicate on the "word_id" field.
func WordIDContainsFold(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldContainsFold(FieldWordID, v))
}

// MasteryStateEQ applies the EQ predicate on the "mastery_state" field.
func MasteryStateEQ(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldMasteryState, v))
}

// MasteryStateNEQ applies the NEQ predicate on the "mastery_state" field.
func MasteryStateNEQ(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNEQ(FieldMasteryState, v))
}

// MasteryStateIn applies the In predicate on the "mastery_state" field.
func MasteryStateIn(vs ...string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldIn(FieldMasteryState, vs...))
}

// MasteryStateNotIn applies the NotIn predicate on the "mastery_state" field.
func MasteryStateNotIn(vs ...string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNotIn(FieldMasteryState, vs...))
}

// MasteryStateGT applies the GT predicate on the "mastery_state" field.
func MasteryStateGT(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGT(FieldMasteryState, v))
}

// MasteryStateGTE applies the GTE predicate on the "mastery_state" field.
func MasteryStateGTE(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGTE(FieldMasteryState, v))
}

// MasteryStateLT applies the LT predicate on the "mastery_state" field.
func MasteryStateLT(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLT(FieldMasteryState, v))
}

// MasteryStateLTE applies the LTE predicate on the "mastery_state" field.
func MasteryStateLTE(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLTE(FieldMasteryState, v))
}

// MasteryStateContains applies the Contains predicate on the "mastery_state" field.
func MasteryStateContains(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldContains(FieldMasteryState, v))
}

// MasteryStateHasPrefix applies the HasPrefix predicate on the "mastery_state" field.
func MasteryStateHasPrefix(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldHasPrefix(FieldMasteryState, v))
}

// MasteryStateHasSuffix applies the HasSuffix predicate on the "mastery_state" field.
func MasteryStateHasSuffix(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldHasSuffix(FieldMasteryState, v))
}

// MasteryStateEqualFold applies the EqualFold predicate on the "mastery_state" field.
func MasteryStateEqualFold(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEqualFold(FieldMasteryState, v))
}

// MasteryStateContainsFold applies the ContainsFold predicate on the "mastery_state" field.
func MasteryStateContainsFold(v string) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldContainsFold(FieldMasteryState, v))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLTE(FieldReviewCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLTE(FieldCorrectCount, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLTE(FieldAccuracy, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.WordProgress {
	return predicate.WordProgress(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNotNull(FieldLastReviewedAt))
}

// NextReviewDueAtEQ applies the EQ predicate on the "next_review_due_at" field.
func NextReviewDueAtEQ(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldEQ(FieldNextReviewDueAt, v))
}

// NextReviewDueAtNEQ applies the NEQ predicate on the "next_review_due_at" field.
func NextReviewDueAtNEQ(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNEQ(FieldNextReviewDueAt, v))
}

// NextReviewDueAtIn applies the In predicate on the "next_review_due_at" field.
func NextReviewDueAtIn(vs ...time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldIn(FieldNextReviewDueAt, vs...))
}

// NextReviewDueAtNotIn applies the NotIn predicate on the "next_review_due_at" field.
func NextReviewDueAtNotIn(vs ...time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNotIn(FieldNextReviewDueAt, vs...))
}

// NextReviewDueAtGT applies the GT predicate on the "next_review_due_at" field.
func NextReviewDueAtGT(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGT(FieldNextReviewDueAt, v))
}

// NextReviewDueAtGTE applies the GTE predicate on the "next_review_due_at" field.
func NextReviewDueAtGTE(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldGTE(FieldNextReviewDueAt, v))
}

// NextReviewDueAtLT applies the LT predicate on the "next_review_due_at" field.
func NextReviewDueAtLT(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLT(FieldNextReviewDueAt, v))
}

// NextReviewDueAtLTE applies the LTE predicate on the "next_review_due_at" field.
func NextReviewDueAtLTE(v time.Time) predicate.WordProgress {
	return predicate.WordProgress(sql.FieldLTE(FieldNextReviewDueAt, v))
}

// NextReviewDueAtIsNil applies the IsNil predicate on the "next_review_due_at" field.
func NextReviewDueAtIsNil() predicate.WordProgress {
	return predicate.WordProgress(sql.FieldIsNull(FieldNextReviewDueAt))
}

// NextReviewDueAtNotNil applies the NotNil predicate on the "next_review_due_at" field.
func NextReviewDueAtNotNil() predicate.WordProgress {
	return predicate.WordProgress(sql.FieldNotNull(FieldNextReviewDueAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WordProgress) predicate.WordProgress {
	return predicate.WordProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WordProgress) predicate.WordProgress {
	return predicate.WordProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WordProgress) predicate.WordProgress {
	return predicate.WordProgress(sql.NotPredicates(p))
}
