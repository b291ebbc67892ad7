// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/khanhvo/mathgenius/ent/llmrequestevent"
	"github.com/khanhvo/mathgenius/ent/profilerecord"
	"github.com/khanhvo/mathgenius/ent/quizresultevent"
	"github.com/khanhvo/mathgenius/ent/schema"
	"github.com/khanhvo/mathgenius/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	profilerecordFields := schema.ProfileRecord{}.Fields()
	_ = profilerecordFields
	// profilerecordDescUpdatedAt is the schema descriptor for updated_at field.
	profilerecordDescUpdatedAt := profilerecordFields[2].Descriptor()
	// profilerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profilerecord.DefaultUpdatedAt = profilerecordDescUpdatedAt.Default.(func() time.Time)
	// profilerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profilerecord.UpdateDefaultUpdatedAt = profilerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizresulteventMixin := schema.QuizResultEvent{}.Mixin()
	quizresulteventMixinFields0 := quizresulteventMixin[0].Fields()
	_ = quizresulteventMixinFields0
	quizresulteventFields := schema.QuizResultEvent{}.Fields()
	_ = quizresulteventFields
	// quizresulteventDescTimestamp is the schema descriptor for timestamp field.
	quizresulteventDescTimestamp := quizresulteventMixinFields0[1].Descriptor()
	// quizresultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizresultevent.DefaultTimestamp = quizresulteventDescTimestamp.Default.(func() time.Time)
	// quizresulteventDescUnitTitle is the schema descriptor for unit_title field.
	quizresulteventDescUnitTitle := quizresulteventFields[1].Descriptor()
	// quizresultevent.DefaultUnitTitle holds the default value on creation for the unit_title field.
	quizresultevent.DefaultUnitTitle = quizresulteventDescUnitTitle.Default.(string)
	// quizresulteventDescTimeSpentSeconds is the schema descriptor for time_spent_seconds field.
	quizresulteventDescTimeSpentSeconds := quizresulteventFields[5].Descriptor()
	// quizresultevent.DefaultTimeSpentSeconds holds the default value on creation for the time_spent_seconds field.
	quizresultevent.DefaultTimeSpentSeconds = quizresulteventDescTimeSpentSeconds.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
