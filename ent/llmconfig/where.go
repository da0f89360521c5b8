// Code generated by ent, DO NOT EDIT.

package llmconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sigmapilot/lens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldID, id))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldModelName, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldEnabled, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldProvider, v))
}

// APIKey applies equality check predicate on the "api_key" field. It's identical to APIKeyEQ.
func APIKey(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldAPIKey, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldModelID, v))
}

// TimeoutMs applies equality check predicate on the "timeout_ms" field. It's identical to TimeoutMsEQ.
func TimeoutMs(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldTimeoutMs, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldMaxTokens, v))
}

// PromptPath applies equality check predicate on the "prompt_path" field. It's identical to PromptPathEQ.
func PromptPath(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldPromptPath, v))
}

// ValidationStatus applies equality check predicate on the "validation_status" field. It's identical to ValidationStatusEQ.
func ValidationStatus(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldValidationStatus, v))
}

// LastValidatedAt applies equality check predicate on the "last_validated_at" field. It's identical to LastValidatedAtEQ.
func LastValidatedAt(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldLastValidatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContainsFold(FieldModelName, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldEnabled, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContainsFold(FieldProvider, v))
}

// APIKeyEQ applies the EQ predicate on the "api_key" field.
func APIKeyEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldAPIKey, v))
}

// APIKeyNEQ applies the NEQ predicate on the "api_key" field.
func APIKeyNEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldAPIKey, v))
}

// APIKeyIn applies the In predicate on the "api_key" field.
func APIKeyIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldAPIKey, vs...))
}

// APIKeyNotIn applies the NotIn predicate on the "api_key" field.
func APIKeyNotIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldAPIKey, vs...))
}

// APIKeyGT applies the GT predicate on the "api_key" field.
func APIKeyGT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldAPIKey, v))
}

// APIKeyGTE applies the GTE predicate on the "api_key" field.
func APIKeyGTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldAPIKey, v))
}

// APIKeyLT applies the LT predicate on the "api_key" field.
func APIKeyLT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldAPIKey, v))
}

// APIKeyLTE applies the LTE predicate on the "api_key" field.
func APIKeyLTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldAPIKey, v))
}

// APIKeyContains applies the Contains predicate on the "api_key" field.
func APIKeyContains(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContains(FieldAPIKey, v))
}

// APIKeyHasPrefix applies the HasPrefix predicate on the "api_key" field.
func APIKeyHasPrefix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasPrefix(FieldAPIKey, v))
}

// APIKeyHasSuffix applies the HasSuffix predicate on the "api_key" field.
func APIKeyHasSuffix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasSuffix(FieldAPIKey, v))
}

// APIKeyEqualFold applies the EqualFold predicate on the "api_key" field.
func APIKeyEqualFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEqualFold(FieldAPIKey, v))
}

// APIKeyContainsFold applies the ContainsFold predicate on the "api_key" field.
func APIKeyContainsFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContainsFold(FieldAPIKey, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContainsFold(FieldModelID, v))
}

// TimeoutMsEQ applies the EQ predicate on the "timeout_ms" field.
func TimeoutMsEQ(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldTimeoutMs, v))
}

// TimeoutMsNEQ applies the NEQ predicate on the "timeout_ms" field.
func TimeoutMsNEQ(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldTimeoutMs, v))
}

// TimeoutMsIn applies the In predicate on the "timeout_ms" field.
func TimeoutMsIn(vs ...int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldTimeoutMs, vs...))
}

// TimeoutMsNotIn applies the NotIn predicate on the "timeout_ms" field.
func TimeoutMsNotIn(vs ...int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldTimeoutMs, vs...))
}

// TimeoutMsGT applies the GT predicate on the "timeout_ms" field.
func TimeoutMsGT(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldTimeoutMs, v))
}

// TimeoutMsGTE applies the GTE predicate on the "timeout_ms" field.
func TimeoutMsGTE(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldTimeoutMs, v))
}

// TimeoutMsLT applies the LT predicate on the "timeout_ms" field.
func TimeoutMsLT(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldTimeoutMs, v))
}

// TimeoutMsLTE applies the LTE predicate on the "timeout_ms" field.
func TimeoutMsLTE(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldTimeoutMs, v))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldMaxTokens, v))
}

// PromptPathEQ applies the EQ predicate on the "prompt_path" field.
func PromptPathEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldPromptPath, v))
}

// PromptPathNEQ applies the NEQ predicate on the "prompt_path" field.
func PromptPathNEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldPromptPath, v))
}

// PromptPathIn applies the In predicate on the "prompt_path" field.
func PromptPathIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldPromptPath, vs...))
}

// PromptPathNotIn applies the NotIn predicate on the "prompt_path" field.
func PromptPathNotIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldPromptPath, vs...))
}

// PromptPathGT applies the GT predicate on the "prompt_path" field.
func PromptPathGT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldPromptPath, v))
}

// PromptPathGTE applies the GTE predicate on the "prompt_path" field.
func PromptPathGTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldPromptPath, v))
}

// PromptPathLT applies the LT predicate on the "prompt_path" field.
func PromptPathLT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldPromptPath, v))
}

// PromptPathLTE applies the LTE predicate on the "prompt_path" field.
func PromptPathLTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldPromptPath, v))
}

// PromptPathContains applies the Contains predicate on the "prompt_path" field.
func PromptPathContains(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContains(FieldPromptPath, v))
}

// PromptPathHasPrefix applies the HasPrefix predicate on the "prompt_path" field.
func PromptPathHasPrefix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasPrefix(FieldPromptPath, v))
}

// PromptPathHasSuffix applies the HasSuffix predicate on the "prompt_path" field.
func PromptPathHasSuffix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasSuffix(FieldPromptPath, v))
}

// PromptPathIsNil applies the IsNil predicate on the "prompt_path" field.
func PromptPathIsNil() predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIsNull(FieldPromptPath))
}

// PromptPathNotNil applies the NotNil predicate on the "prompt_path" field.
func PromptPathNotNil() predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotNull(FieldPromptPath))
}

// PromptPathEqualFold applies the EqualFold predicate on the "prompt_path" field.
func PromptPathEqualFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEqualFold(FieldPromptPath, v))
}

// PromptPathContainsFold applies the ContainsFold predicate on the "prompt_path" field.
func PromptPathContainsFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContainsFold(FieldPromptPath, v))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// ValidationStatusGT applies the GT predicate on the "validation_status" field.
func ValidationStatusGT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldValidationStatus, v))
}

// ValidationStatusGTE applies the GTE predicate on the "validation_status" field.
func ValidationStatusGTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldValidationStatus, v))
}

// ValidationStatusLT applies the LT predicate on the "validation_status" field.
func ValidationStatusLT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldValidationStatus, v))
}

// ValidationStatusLTE applies the LTE predicate on the "validation_status" field.
func ValidationStatusLTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldValidationStatus, v))
}

// ValidationStatusContains applies the Contains predicate on the "validation_status" field.
func ValidationStatusContains(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContains(FieldValidationStatus, v))
}

// ValidationStatusHasPrefix applies the HasPrefix predicate on the "validation_status" field.
func ValidationStatusHasPrefix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasPrefix(FieldValidationStatus, v))
}

// ValidationStatusHasSuffix applies the HasSuffix predicate on the "validation_status" field.
func ValidationStatusHasSuffix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasSuffix(FieldValidationStatus, v))
}

// ValidationStatusIsNil applies the IsNil predicate on the "validation_status" field.
func ValidationStatusIsNil() predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIsNull(FieldValidationStatus))
}

// ValidationStatusNotNil applies the NotNil predicate on the "validation_status" field.
func ValidationStatusNotNil() predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotNull(FieldValidationStatus))
}

// ValidationStatusEqualFold applies the EqualFold predicate on the "validation_status" field.
func ValidationStatusEqualFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEqualFold(FieldValidationStatus, v))
}

// ValidationStatusContainsFold applies the ContainsFold predicate on the "validation_status" field.
func ValidationStatusContainsFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContainsFold(FieldValidationStatus, v))
}

// LastValidatedAtEQ applies the EQ predicate on the "last_validated_at" field.
func LastValidatedAtEQ(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldLastValidatedAt, v))
}

// LastValidatedAtNEQ applies the NEQ predicate on the "last_validated_at" field.
func LastValidatedAtNEQ(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldLastValidatedAt, v))
}

// LastValidatedAtIn applies the In predicate on the "last_validated_at" field.
func LastValidatedAtIn(vs ...time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldLastValidatedAt, vs...))
}

// LastValidatedAtNotIn applies the NotIn predicate on the "last_validated_at" field.
func LastValidatedAtNotIn(vs ...time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldLastValidatedAt, vs...))
}

// LastValidatedAtGT applies the GT predicate on the "last_validated_at" field.
func LastValidatedAtGT(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldLastValidatedAt, v))
}

// LastValidatedAtGTE applies the GTE predicate on the "last_validated_at" field.
func LastValidatedAtGTE(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldLastValidatedAt, v))
}

// LastValidatedAtLT applies the LT predicate on the "last_validated_at" field.
func LastValidatedAtLT(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldLastValidatedAt, v))
}

// LastValidatedAtLTE applies the LTE predicate on the "last_validated_at" field.
func LastValidatedAtLTE(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldLastValidatedAt, v))
}

// LastValidatedAtIsNil applies the IsNil predicate on the "last_validated_at" field.
func LastValidatedAtIsNil() predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIsNull(FieldLastValidatedAt))
}

// LastValidatedAtNotNil applies the NotNil predicate on the "last_validated_at" field.
func LastValidatedAtNotNil() predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotNull(FieldLastValidatedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMConfig) predicate.LLMConfig {
	return predicate.LLMConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMConfig) predicate.LLMConfig {
	return predicate.LLMConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMConfig) predicate.LLMConfig {
	return predicate.LLMConfig(sql.NotPredicates(p))
}
