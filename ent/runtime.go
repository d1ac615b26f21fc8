// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/marchenko/lexrec/ent/goal"
	"github.com/marchenko/lexrec/ent/goalword"
	"github.com/marchenko/lexrec/ent/learningevent"
	"github.com/marchenko/lexrec/ent/schema"
	"github.com/marchenko/lexrec/ent/word"
	"github.com/marchenko/lexrec/ent/wordprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescGoalID is the schema descriptor for goal_id field.
	goalDescGoalID := goalFields[0].Descriptor()
	// goal.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	goal.GoalIDValidator = goalDescGoalID.Validators[0].(func(string) error)
	// goalDescUserID is the schema descriptor for user_id field.
	goalDescUserID := goalFields[1].Descriptor()
	// goal.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	goal.UserIDValidator = goalDescUserID.Validators[0].(func(string) error)
	// goalDescName is the schema descriptor for name field.
	goalDescName := goalFields[2].Descriptor()
	// goal.NameValidator is a validator for the "name" field. It is called by the builders before save.
	goal.NameValidator = goalDescName.Validators[0].(func(string) error)
	// goalDescActive is the schema descriptor for active field.
	goalDescActive := goalFields[3].Descriptor()
	// goal.DefaultActive holds the default value on creation for the active field.
	goal.DefaultActive = goalDescActive.Default.(bool)
	goalwordFields := schema.GoalWord{}.Fields()
	_ = goalwordFields
	// goalwordDescGoalID is the schema descriptor for goal_id field.
	goalwordDescGoalID := goalwordFields[0].Descriptor()
	// goalword.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	goalword.GoalIDValidator = goalwordDescGoalID.Validators[0].(func(string) error)
	// goalwordDescWordID is the schema descriptor for word_id field.
	goalwordDescWordID := goalwordFields[1].Descriptor()
	// goalword.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	goalword.WordIDValidator = goalwordDescWordID.Validators[0].(func(string) error)
	learningeventMixin := schema.LearningEvent{}.Mixin()
	learningeventMixinFields0 := learningeventMixin[0].Fields()
	_ = learningeventMixinFields0
	learningeventFields := schema.LearningEvent{}.Fields()
	_ = learningeventFields
	// learningeventDescTimestamp is the schema descriptor for timestamp field.
	learningeventDescTimestamp := learningeventMixinFields0[1].Descriptor()
	// learningevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	learningevent.DefaultTimestamp = learningeventDescTimestamp.Default.(func() time.Time)
	// learningeventDescUserID is the schema descriptor for user_id field.
	learningeventDescUserID := learningeventFields[0].Descriptor()
	// learningevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningevent.UserIDValidator = learningeventDescUserID.Validators[0].(func(string) error)
	// learningeventDescWordID is the schema descriptor for word_id field.
	learningeventDescWordID := learningeventFields[1].Descriptor()
	// learningevent.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	learningevent.WordIDValidator = learningeventDescWordID.Validators[0].(func(string) error)
	// learningeventDescSessionID is the schema descriptor for session_id field.
	learningeventDescSessionID := learningeventFields[2].Descriptor()
	// learningevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	learningevent.SessionIDValidator = learningeventDescSessionID.Validators[0].(func(string) error)
	wordFields := schema.Word{}.Fields()
	_ = wordFields
	// wordDescWordID is the schema descriptor for word_id field.
	wordDescWordID := wordFields[0].Descriptor()
	// word.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	word.WordIDValidator = wordDescWordID.Validators[0].(func(string) error)
	// wordDescText is the schema descriptor for text field.
	wordDescText := wordFields[1].Descriptor()
	// word.TextValidator is a validator for the "text" field. It is called by the builders before save.
	word.TextValidator = wordDescText.Validators[0].(func(string) error)
	// wordDescPos is the schema descriptor for pos field.
	wordDescPos := wordFields[2].Descriptor()
	// word.PosValidator is a validator for the "pos" field. It is called by the builders before save.
	word.PosValidator = wordDescPos.Validators[0].(func(string) error)
	// wordDescFrequency is the schema descriptor for frequency field.
	wordDescFrequency := wordFields[3].Descriptor()
	// word.DefaultFrequency holds the default value on creation for the frequency field.
	word.DefaultFrequency = wordDescFrequency.Default.(int)
	// wordDescGrade is the schema descriptor for grade field.
	wordDescGrade := wordFields[4].Descriptor()
	// word.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	word.GradeValidator = wordDescGrade.Validators[0].(func(int) error)
	wordprogressFields := schema.WordProgress{}.Fields()
	_ = wordprogressFields
	// wordprogressDescUserID is the schema descriptor for user_id field.
	wordprogressDescUserID := wordprogressFields[0].Descriptor()
	// wordprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	wordprogress.UserIDValidator = wordprogressDescUserID.Validators[0].(func(string) error)
	// wordprogressDescWordID is the schema descriptor for word_id field.
	wordprogressDescWordID := wordprogressFields[1].Descriptor()
	// wordprogress.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	wordprogress.WordIDValidator = wordprogressDescWordID.Validators[0].(func(string) error)
	// wordprogressDescMasteryState is the schema descriptor for mastery_state field.
	wordprogressDescMasteryState := wordprogressFields[2].Descriptor()
	// wordprogress.DefaultMasteryState holds the default value on creation for the mastery_state field.
	wordprogress.DefaultMasteryState = wordprogressDescMasteryState.Default.(string)
	// wordprogressDescReviewCount is the schema descriptor for review_count field.
	wordprogressDescReviewCount := wordprogressFields[3].Descriptor()
	// wordprogress.DefaultReviewCount holds the default value on creation for the review_count field.
	wordprogress.DefaultReviewCount = wordprogressDescReviewCount.Default.(int)
	// wordprogressDescCorrectCount is the schema descriptor for correct_count field.
	wordprogressDescCorrectCount := wordprogressFields[4].Descriptor()
	// wordprogress.DefaultCorrectCount holds the default value on creation for the correct_count field.
	wordprogress.DefaultCorrectCount = wordprogressDescCorrectCount.Default.(int)
	// wordprogressDescAccuracy is the schema descriptor for accuracy field.
	wordprogressDescAccuracy := wordprogressFields[5].Descriptor()
	// wordprogress.DefaultAccuracy holds the default value on creation for the accuracy field.
	wordprogress.DefaultAccuracy = wordprogressDescAccuracy.Default.(float64)
}
