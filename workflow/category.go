// Package workflow turns extracted transcript spans into timestamped
// entities and groups them into a workflow profile.
package workflow

// Category is the extraction vocabulary used by the extraction collaborator.
type Category string

const (
	PlanningGoal        Category = "planning_goal"
	AcceptanceCriterion Category = "acceptance_criterion"
	ContextStrategy     Category = "context_strategy"
	Guardrail           Category = "guardrail"
	IterationPattern    Category = "iteration_pattern"
	ToolUsage           Category = "tool_usage"
	Orchestration       Category = "orchestration"
	DeploymentStep      Category = "deployment_step"
	Quote               Category = "quote"
)

// Categories lists the closed vocabulary in a stable order.
func Categories() []Category {
	return []Category{
		PlanningGoal, AcceptanceCriterion, ContextStrategy, Guardrail,
		IterationPattern, ToolUsage, Orchestration, DeploymentStep, Quote,
	}
}

// Known reports whether c belongs to the closed vocabulary.
func (c Category) Known() bool {
	_, ok := buckets[c]
	return ok
}

// Bucket is one list of a Profile.
type Bucket string

const (
	BucketPlanningGoals     Bucket = "planning_goals"
	BucketContextManagement Bucket = "context_management"
	BucketGuardrails        Bucket = "guardrails"
	BucketIterationStyle    Bucket = "iteration_style"
	BucketTools             Bucket = "tools"
	BucketOrchestration     Bucket = "orchestration"
	BucketDeployment        Bucket = "deployment"
	BucketQuotes            Bucket = "quotes"
	BucketUnclassified      Bucket = "unclassified"
)

// Buckets lists the fixed profile buckets, unclassified excluded.
func Buckets() []Bucket {
	return []Bucket{
		BucketPlanningGoals, BucketContextManagement, BucketGuardrails, BucketIterationStyle,
		BucketTools, BucketOrchestration, BucketDeployment, BucketQuotes,
	}
}

var buckets = map[Category]Bucket{
	PlanningGoal:        BucketPlanningGoals,
	AcceptanceCriterion: BucketPlanningGoals,
	ContextStrategy:     BucketContextManagement,
	Guardrail:           BucketGuardrails,
	IterationPattern:    BucketIterationStyle,
	ToolUsage:           BucketTools,
	Orchestration:       BucketOrchestration,
	DeploymentStep:      BucketDeployment,
	Quote:               BucketQuotes,
}

// BucketFor routes a category to its profile bucket. Unknown categories
// report false.
func BucketFor(c Category) (Bucket, bool) {
	b, ok := buckets[c]
	return b, ok
}
