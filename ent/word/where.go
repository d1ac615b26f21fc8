// Code generated by ent, DO NOT EDIT.

package word

import (
	"entgo.io/ent/dialect/sql"
	"github.com/marchenko/lexrec/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldID, id))
}

// WordID applies equality check predicate on the "word_id" field. It's identical to WordIDEQ.
func WordID(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldWordID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldText, v))
}

// Pos applies equality check predicate on the "pos" field. It's identical to PosEQ.
func Pos(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPos, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldFrequency, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldGrade, v))
}

// WordIDEQ applies the EQ predicate on the "word_id" field.
func WordIDEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldWordID, v))
}

// WordIDNEQ applies the NEQ predicate on the "word_id" field.
func WordIDNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldWordID, v))
}

// WordIDIn applies the In predicate on the "word_id" field.
func WordIDIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldWordID, vs...))
}

// WordIDNotIn applies the NotIn predicate on the "word_id" field.
func WordIDNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldWordID, vs...))
}

// WordIDGT applies the GT predicate on the "word_id" field.
func WordIDGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldWordID, v))
}

// WordIDGTE applies the GTE predicate on the "word_id" field.
func WordIDGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldWordID, v))
}

// WordIDLT applies the LT predicate on the "word_id" field.
func WordIDLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldWordID, v))
}

// WordIDLTE applies the LTE predicate on the "word_id" field.
func WordIDLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldWordID, v))
}

// WordIDContains applies the Contains predicate on the "word_id" field.
func WordIDContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldWordID, v))
}

// WordIDHasPrefix applies the HasPrefix predicate on the "word_id" field.
func WordIDHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldWordID, v))
}

// WordIDHasSuffix applies the HasSuffix predicate on the "word_id" field.
func WordIDHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldWordID, v))
}

// WordIDEqualFold applies the EqualFold predicate on the "word_id" field.
func WordIDEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldWordID, v))
}

// WordIDContainsFold applies the ContainsFold predicate on the "word_id" field.
func WordIDContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldWordID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldText, v))
}

// PosEQ applies the EQ predicate on the "pos" field.
func PosEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPos, v))
}

// PosNEQ applies the NEQ predicate on the "pos" field.
func PosNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldPos, v))
}

// PosIn applies the In predicate on the "pos" field.
func PosIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldPos, vs...))
}

// PosNotIn applies the NotIn predicate on the "pos" field.
func PosNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldPos, vs...))
}

// PosGT applies the GT predicate on the "pos" field.
func PosGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldPos, v))
}

// PosGTE applies the GTE predicate on the "pos" field.
func PosGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldPos, v))
}

// PosLT applies the LT predicate on the "pos" field.
func PosLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldPos, v))
}

// PosLTE applies the LTE predicate on the "pos" field.
func PosLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldPos, v))
}

// PosContains applies the Contains predicate on the "pos" field.
func PosContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldPos, v))
}

// PosHasPrefix applies the HasPrefix predicate on the "pos" field.
func PosHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldPos, v))
}

// PosHasSuffix applies the HasSuffix predicate on the "pos" field.
func PosHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldPos, v))
}

// PosEqualFold applies the EqualFold predicate on the "pos" field.
func PosEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldPos, v))
}

// PosContainsFold applies the ContainsFold predicate on the "pos" field.
func PosContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldPos, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldFrequency, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldGrade, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Word) predicate.Word {
	return predicate.Word(sql.NotPredicates(p))
}
