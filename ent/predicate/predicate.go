// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DLQEntry is the predicate function for dlqentry builders.
type DLQEntry func(*sql.Selector)

// EnrichedEvent is the predicate function for enrichedevent builders.
type EnrichedEvent func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// LLMConfig is the predicate function for llmconfig builders.
type LLMConfig func(*sql.Selector)

// ModelDecision is the predicate function for modeldecision builders.
type ModelDecision func(*sql.Selector)

// ProcessingTimeline is the predicate function for processingtimeline builders.
type ProcessingTimeline func(*sql.Selector)

// Prompt is the predicate function for prompt builders.
type Prompt func(*sql.Selector)
