// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/sigmapilot/lens/ent/dlqentry"
	"github.com/sigmapilot/lens/ent/enrichedevent"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/ent/llmconfig"
	"github.com/sigmapilot/lens/ent/modeldecision"
	"github.com/sigmapilot/lens/ent/processingtimeline"
	"github.com/sigmapilot/lens/ent/prompt"
	"github.com/sigmapilot/lens/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	dlqentryFields := schema.DLQEntry{}.Fields()
	_ = dlqentryFields
	// dlqentryDescEventID is the schema descriptor for event_id field.
	dlqentryDescEventID := dlqentryFields[1].Descriptor()
	// dlqentry.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	dlqentry.EventIDValidator = dlqentryDescEventID.Validators[0].(func(string) error)
	// dlqentryDescStage is the schema descriptor for stage field.
	dlqentryDescStage := dlqentryFields[2].Descriptor()
	// dlqentry.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	dlqentry.StageValidator = dlqentryDescStage.Validators[0].(func(string) error)
	// dlqentryDescReasonCode is the schema descriptor for reason_code field.
	dlqentryDescReasonCode := dlqentryFields[3].Descriptor()
	// dlqentry.ReasonCodeValidator is a validator for the "reason_code" field. It is called by the builders before save.
	dlqentry.ReasonCodeValidator = dlqentryDescReasonCode.Validators[0].(func(string) error)
	// dlqentryDescRetryCount is the schema descriptor for retry_count field.
	dlqentryDescRetryCount := dlqentryFields[6].Descriptor()
	// dlqentry.DefaultRetryCount holds the default value on creation for the retry_count field.
	dlqentry.DefaultRetryCount = dlqentryDescRetryCount.Default.(int)
	// dlqentryDescCreatedAt is the schema descriptor for created_at field.
	dlqentryDescCreatedAt := dlqentryFields[10].Descriptor()
	// dlqentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	dlqentry.DefaultCreatedAt = dlqentryDescCreatedAt.Default.(func() time.Time)
	// dlqentryDescID is the schema descriptor for id field.
	dlqentryDescID := dlqentryFields[0].Descriptor()
	// dlqentry.DefaultID holds the default value on creation for the id field.
	dlqentry.DefaultID = dlqentryDescID.Default.(func() uuid.UUID)
	enrichedeventFields := schema.EnrichedEvent{}.Fields()
	_ = enrichedeventFields
	// enrichedeventDescEventID is the schema descriptor for event_id field.
	enrichedeventDescEventID := enrichedeventFields[1].Descriptor()
	// enrichedevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	enrichedevent.EventIDValidator = enrichedeventDescEventID.Validators[0].(func(string) error)
	// enrichedeventDescFeatureProfile is the schema descriptor for feature_profile field.
	enrichedeventDescFeatureProfile := enrichedeventFields[2].Descriptor()
	// enrichedevent.FeatureProfileValidator is a validator for the "feature_profile" field. It is called by the builders before save.
	enrichedevent.FeatureProfileValidator = enrichedeventDescFeatureProfile.Validators[0].(func(string) error)
	// enrichedeventDescProvider is the schema descriptor for provider field.
	enrichedeventDescProvider := enrichedeventFields[3].Descriptor()
	// enrichedevent.DefaultProvider holds the default value on creation for the provider field.
	enrichedevent.DefaultProvider = enrichedeventDescProvider.Default.(string)
	// enrichedevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	enrichedevent.ProviderValidator = enrichedeventDescProvider.Validators[0].(func(string) error)
	// enrichedeventDescProviderVersion is the schema descriptor for provider_version field.
	enrichedeventDescProviderVersion := enrichedeventFields[4].Descriptor()
	// enrichedevent.ProviderVersionValidator is a validator for the "provider_version" field. It is called by the builders before save.
	enrichedevent.ProviderVersionValidator = enrichedeventDescProviderVersion.Validators[0].(func(string) error)
	// enrichedeventDescDataTimestamps is the schema descriptor for data_timestamps field.
	enrichedeventDescDataTimestamps := enrichedeventFields[10].Descriptor()
	// enrichedevent.DefaultDataTimestamps holds the default value on creation for the data_timestamps field.
	enrichedevent.DefaultDataTimestamps = enrichedeventDescDataTimestamps.Default.(func() map[string]interface{})
	// enrichedeventDescCreatedAt is the schema descriptor for created_at field.
	enrichedeventDescCreatedAt := enrichedeventFields[14].Descriptor()
	// enrichedevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	enrichedevent.DefaultCreatedAt = enrichedeventDescCreatedAt.Default.(func() time.Time)
	// enrichedeventDescID is the schema descriptor for id field.
	enrichedeventDescID := enrichedeventFields[0].Descriptor()
	// enrichedevent.DefaultID holds the default value on creation for the id field.
	enrichedevent.DefaultID = enrichedeventDescID.Default.(func() uuid.UUID)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescEventID is the schema descriptor for event_id field.
	eventDescEventID := eventFields[1].Descriptor()
	// event.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	event.EventIDValidator = eventDescEventID.Validators[0].(func(string) error)
	// eventDescIdempotencyKey is the schema descriptor for idempotency_key field.
	eventDescIdempotencyKey := eventFields[2].Descriptor()
	// event.IdempotencyKeyValidator is a validator for the "idempotency_key" field. It is called by the builders before save.
	event.IdempotencyKeyValidator = eventDescIdempotencyKey.Validators[0].(func(string) error)
	// eventDescSymbol is the schema descriptor for symbol field.
	eventDescSymbol := eventFields[4].Descriptor()
	// event.SymbolValidator is a validator for the "symbol" field. It is called by the builders before save.
	event.SymbolValidator = eventDescSymbol.Validators[0].(func(string) error)
	// eventDescSource is the schema descriptor for source field.
	eventDescSource := eventFields[10].Descriptor()
	// event.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	event.SourceValidator = eventDescSource.Validators[0].(func(string) error)
	// eventDescFeatureProfile is the schema descriptor for feature_profile field.
	eventDescFeatureProfile := eventFields[12].Descriptor()
	// event.FeatureProfileValidator is a validator for the "feature_profile" field. It is called by the builders before save.
	event.FeatureProfileValidator = eventDescFeatureProfile.Validators[0].(func(string) error)
	// eventDescReceivedAt is the schema descriptor for received_at field.
	eventDescReceivedAt := eventFields[13].Descriptor()
	// event.DefaultReceivedAt holds the default value on creation for the received_at field.
	event.DefaultReceivedAt = eventDescReceivedAt.Default.(func() time.Time)
	// eventDescID is the schema descriptor for id field.
	eventDescID := eventFields[0].Descriptor()
	// event.DefaultID holds the default value on creation for the id field.
	event.DefaultID = eventDescID.Default.(func() uuid.UUID)
	llmconfigFields := schema.LLMConfig{}.Fields()
	_ = llmconfigFields
	// llmconfigDescModelName is the schema descriptor for model_name field.
	llmconfigDescModelName := llmconfigFields[1].Descriptor()
	// llmconfig.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	llmconfig.ModelNameValidator = llmconfigDescModelName.Validators[0].(func(string) error)
	// llmconfigDescEnabled is the schema descriptor for enabled field.
	llmconfigDescEnabled := llmconfigFields[2].Descriptor()
	// llmconfig.DefaultEnabled holds the default value on creation for the enabled field.
	llmconfig.DefaultEnabled = llmconfigDescEnabled.Default.(bool)
	// llmconfigDescProvider is the schema descriptor for provider field.
	llmconfigDescProvider := llmconfigFields[3].Descriptor()
	// llmconfig.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmconfig.ProviderValidator = llmconfigDescProvider.Validators[0].(func(string) error)
	// llmconfigDescModelID is the schema descriptor for model_id field.
	llmconfigDescModelID := llmconfigFields[5].Descriptor()
	// llmconfig.ModelIDValidator is a validator for the "model_id" field. It is called by the builders before save.
	llmconfig.ModelIDValidator = llmconfigDescModelID.Validators[0].(func(string) error)
	// llmconfigDescTimeoutMs is the schema descriptor for timeout_ms field.
	llmconfigDescTimeoutMs := llmconfigFields[6].Descriptor()
	// llmconfig.DefaultTimeoutMs holds the default value on creation for the timeout_ms field.
	llmconfig.DefaultTimeoutMs = llmconfigDescTimeoutMs.Default.(int)
	// llmconfigDescMaxTokens is the schema descriptor for max_tokens field.
	llmconfigDescMaxTokens := llmconfigFields[7].Descriptor()
	// llmconfig.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	llmconfig.DefaultMaxTokens = llmconfigDescMaxTokens.Default.(int)
	// llmconfigDescPromptPath is the schema descriptor for prompt_path field.
	llmconfigDescPromptPath := llmconfigFields[8].Descriptor()
	// llmconfig.PromptPathValidator is a validator for the "prompt_path" field. It is called by the builders before save.
	llmconfig.PromptPathValidator = llmconfigDescPromptPath.Validators[0].(func(string) error)
	// llmconfigDescValidationStatus is the schema descriptor for validation_status field.
	llmconfigDescValidationStatus := llmconfigFields[9].Descriptor()
	// llmconfig.ValidationStatusValidator is a validator for the "validation_status" field. It is called by the builders before save.
	llmconfig.ValidationStatusValidator = llmconfigDescValidationStatus.Validators[0].(func(string) error)
	// llmconfigDescCreatedAt is the schema descriptor for created_at field.
	llmconfigDescCreatedAt := llmconfigFields[11].Descriptor()
	// llmconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmconfig.DefaultCreatedAt = llmconfigDescCreatedAt.Default.(func() time.Time)
	// llmconfigDescUpdatedAt is the schema descriptor for updated_at field.
	llmconfigDescUpdatedAt := llmconfigFields[12].Descriptor()
	// llmconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	llmconfig.DefaultUpdatedAt = llmconfigDescUpdatedAt.Default.(func() time.Time)
	// llmconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	llmconfig.UpdateDefaultUpdatedAt = llmconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// llmconfigDescID is the schema descriptor for id field.
	llmconfigDescID := llmconfigFields[0].Descriptor()
	// llmconfig.DefaultID holds the default value on creation for the id field.
	llmconfig.DefaultID = llmconfigDescID.Default.(func() uuid.UUID)
	modeldecisionFields := schema.ModelDecision{}.Fields()
	_ = modeldecisionFields
	// modeldecisionDescEventID is the schema descriptor for event_id field.
	modeldecisionDescEventID := modeldecisionFields[1].Descriptor()
	// modeldecision.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	modeldecision.EventIDValidator = modeldecisionDescEventID.Validators[0].(func(string) error)
	// modeldecisionDescModelName is the schema descriptor for model_name field.
	modeldecisionDescModelName := modeldecisionFields[2].Descriptor()
	// modeldecision.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	modeldecision.ModelNameValidator = modeldecisionDescModelName.Validators[0].(func(string) error)
	// modeldecisionDescModelVersion is the schema descriptor for model_version field.
	modeldecisionDescModelVersion := modeldecisionFields[3].Descriptor()
	// modeldecision.ModelVersionValidator is a validator for the "model_version" field. It is called by the builders before save.
	modeldecision.ModelVersionValidator = modeldecisionDescModelVersion.Validators[0].(func(string) error)
	// modeldecisionDescPromptVersion is the schema descriptor for prompt_version field.
	modeldecisionDescPromptVersion := modeldecisionFields[4].Descriptor()
	// modeldecision.PromptVersionValidator is a validator for the "prompt_version" field. It is called by the builders before save.
	modeldecision.PromptVersionValidator = modeldecisionDescPromptVersion.Validators[0].(func(string) error)
	// modeldecisionDescPromptHash is the schema descriptor for prompt_hash field.
	modeldecisionDescPromptHash := modeldecisionFields[5].Descriptor()
	// modeldecision.PromptHashValidator is a validator for the "prompt_hash" field. It is called by the builders before save.
	modeldecision.PromptHashValidator = modeldecisionDescPromptHash.Validators[0].(func(string) error)
	// modeldecisionDescDecision is the schema descriptor for decision field.
	modeldecisionDescDecision := modeldecisionFields[6].Descriptor()
	// modeldecision.DecisionValidator is a validator for the "decision" field. It is called by the builders before save.
	modeldecision.DecisionValidator = modeldecisionDescDecision.Validators[0].(func(string) error)
	// modeldecisionDescStatus is the schema descriptor for status field.
	modeldecisionDescStatus := modeldecisionFields[16].Descriptor()
	// modeldecision.DefaultStatus holds the default value on creation for the status field.
	modeldecision.DefaultStatus = modeldecisionDescStatus.Default.(string)
	// modeldecision.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	modeldecision.StatusValidator = modeldecisionDescStatus.Validators[0].(func(string) error)
	// modeldecisionDescErrorCode is the schema descriptor for error_code field.
	modeldecisionDescErrorCode := modeldecisionFields[17].Descriptor()
	// modeldecision.ErrorCodeValidator is a validator for the "error_code" field. It is called by the builders before save.
	modeldecision.ErrorCodeValidator = modeldecisionDescErrorCode.Validators[0].(func(string) error)
	// modeldecisionDescEvaluatedAt is the schema descriptor for evaluated_at field.
	modeldecisionDescEvaluatedAt := modeldecisionFields[20].Descriptor()
	// modeldecision.DefaultEvaluatedAt holds the default value on creation for the evaluated_at field.
	modeldecision.DefaultEvaluatedAt = modeldecisionDescEvaluatedAt.Default.(func() time.Time)
	// modeldecisionDescCreatedAt is the schema descriptor for created_at field.
	modeldecisionDescCreatedAt := modeldecisionFields[21].Descriptor()
	// modeldecision.DefaultCreatedAt holds the default value on creation for the created_at field.
	modeldecision.DefaultCreatedAt = modeldecisionDescCreatedAt.Default.(func() time.Time)
	// modeldecisionDescID is the schema descriptor for id field.
	modeldecisionDescID := modeldecisionFields[0].Descriptor()
	// modeldecision.DefaultID holds the default value on creation for the id field.
	modeldecision.DefaultID = modeldecisionDescID.Default.(func() uuid.UUID)
	processingtimelineFields := schema.ProcessingTimeline{}.Fields()
	_ = processingtimelineFields
	// processingtimelineDescEventID is the schema descriptor for event_id field.
	processingtimelineDescEventID := processingtimelineFields[1].Descriptor()
	// processingtimeline.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	processingtimeline.EventIDValidator = processingtimelineDescEventID.Validators[0].(func(string) error)
	// processingtimelineDescStatus is the schema descriptor for status field.
	processingtimelineDescStatus := processingtimelineFields[2].Descriptor()
	// processingtimeline.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processingtimeline.StatusValidator = processingtimelineDescStatus.Validators[0].(func(string) error)
	// processingtimelineDescOccurredAt is the schema descriptor for occurred_at field.
	processingtimelineDescOccurredAt := processingtimelineFields[4].Descriptor()
	// processingtimeline.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	processingtimeline.DefaultOccurredAt = processingtimelineDescOccurredAt.Default.(func() time.Time)
	// processingtimelineDescID is the schema descriptor for id field.
	processingtimelineDescID := processingtimelineFields[0].Descriptor()
	// processingtimeline.DefaultID holds the default value on creation for the id field.
	processingtimeline.DefaultID = processingtimelineDescID.Default.(func() uuid.UUID)
	promptFields := schema.Prompt{}.Fields()
	_ = promptFields
	// promptDescName is the schema descriptor for name field.
	promptDescName := promptFields[1].Descriptor()
	// prompt.NameValidator is a validator for the "name" field. It is called by the builders before save.
	prompt.NameValidator = promptDescName.Validators[0].(func(string) error)
	// promptDescVersion is the schema descriptor for version field.
	promptDescVersion := promptFields[2].Descriptor()
	// prompt.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	prompt.VersionValidator = promptDescVersion.Validators[0].(func(string) error)
	// promptDescModelName is the schema descriptor for model_name field.
	promptDescModelName := promptFields[4].Descriptor()
	// prompt.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	prompt.ModelNameValidator = promptDescModelName.Validators[0].(func(string) error)
	// promptDescIsActive is the schema descriptor for is_active field.
	promptDescIsActive := promptFields[7].Descriptor()
	// prompt.DefaultIsActive holds the default value on creation for the is_active field.
	prompt.DefaultIsActive = promptDescIsActive.Default.(bool)
	// promptDescContentHash is the schema descriptor for content_hash field.
	promptDescContentHash := promptFields[8].Descriptor()
	// prompt.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	prompt.ContentHashValidator = promptDescContentHash.Validators[0].(func(string) error)
	// promptDescCreatedBy is the schema descriptor for created_by field.
	promptDescCreatedBy := promptFields[9].Descriptor()
	// prompt.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	prompt.CreatedByValidator = promptDescCreatedBy.Validators[0].(func(string) error)
	// promptDescCreatedAt is the schema descriptor for created_at field.
	promptDescCreatedAt := promptFields[10].Descriptor()
	// prompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompt.DefaultCreatedAt = promptDescCreatedAt.Default.(func() time.Time)
	// promptDescUpdatedAt is the schema descriptor for updated_at field.
	promptDescUpdatedAt := promptFields[11].Descriptor()
	// prompt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prompt.DefaultUpdatedAt = promptDescUpdatedAt.Default.(func() time.Time)
	// prompt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prompt.UpdateDefaultUpdatedAt = promptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// promptDescID is the schema descriptor for id field.
	promptDescID := promptFields[0].Descriptor()
	// prompt.DefaultID holds the default value on creation for the id field.
	prompt.DefaultID = promptDescID.Default.(func() uuid.UUID)
}
