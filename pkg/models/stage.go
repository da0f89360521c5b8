package models

// Stage is the pipeline stage a message was in when it failed or retried.
// It is the unit of retry routing, DLQ classification and timeline accounting.
type Stage string

const (
	StageEnqueue  Stage = "enqueue"
	StageEnrich   Stage = "enrich"
	StageEvaluate Stage = "evaluate"
	StagePublish  Stage = "publish"
)

// ValidStages lists every canonical stage value.
var ValidStages = []Stage{StageEnqueue, StageEnrich, StageEvaluate, StagePublish}

// legacyStageAliases maps stage names found in pre-rename DLQ rows and old
// callers to their canonical values. Applied both when filtering DLQ lists
// and when routing retries. Retire once the database is known to contain
// only canonical values.
var legacyStageAliases = map[string]Stage{
	"enrichment": StageEnrich,
	"evaluation": StageEvaluate,
}

// CanonicalStage resolves s against the legacy alias table. The boolean is
// false when s is neither a canonical stage nor a known alias.
func CanonicalStage(s string) (Stage, bool) {
	if alias, ok := legacyStageAliases[s]; ok {
		return alias, true
	}
	for _, stage := range ValidStages {
		if Stage(s) == stage {
			return stage, true
		}
	}
	return "", false
}
