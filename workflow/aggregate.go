package workflow

// OriginalCategoryKey is the attribute that keeps the extractor's category
// on entities routed to the unclassified bucket.
const OriginalCategoryKey = "original_category"

// Profile is the bucketed view of every entity from one transcript.
type Profile struct {
	PlanningGoals     []Entity `json:"planning_goals"`
	ContextManagement []Entity `json:"context_management"`
	Guardrails        []Entity `json:"guardrails"`
	IterationStyle    []Entity `json:"iteration_style"`
	Tools             []Entity `json:"tools"`
	Orchestration     []Entity `json:"orchestration"`
	Deployment        []Entity `json:"deployment"`
	Quotes            []Entity `json:"quotes"`
	Unclassified      []Entity `json:"unclassified,omitempty"`

	// Dropped counts unclassified entities discarded in strict mode.
	Dropped int `json:"dropped,omitempty"`
}

// AggregateOptions tunes Aggregate.
type AggregateOptions struct {
	// Strict drops entities with unknown categories instead of keeping
	// them under Unclassified.
	Strict bool
}

func newProfile() *Profile {
	return &Profile{
		PlanningGoals:     []Entity{},
		ContextManagement: []Entity{},
		Guardrails:        []Entity{},
		IterationStyle:    []Entity{},
		Tools:             []Entity{},
		Orchestration:     []Entity{},
		Deployment:        []Entity{},
		Quotes:            []Entity{},
	}
}

// Aggregate groups entities by category in a single pass. Each bucket
// keeps input order and nothing is deduplicated.
func Aggregate(entities []Entity, opts AggregateOptions) *Profile {
	p := newProfile()
	for _, e := range entities {
		b, ok := BucketFor(e.Category)
		if !ok {
			if opts.Strict {
				p.Dropped++
				continue
			}
			e = unclassified(e)
			b = BucketUnclassified
		}
		l := p.list(b)
		*l = append(*l, e)
	}
	return p
}

func unclassified(e Entity) Entity {
	attrs := e.Attributes.Clone()
	if attrs == nil {
		attrs = Attributes{}
	}
	attrs[OriginalCategoryKey] = Str(string(e.Category))
	e.Attributes = attrs
	e.Category = Category(BucketUnclassified)
	return e
}

func (p *Profile) list(b Bucket) *[]Entity {
	switch b {
	case BucketPlanningGoals:
		return &p.PlanningGoals
	case BucketContextManagement:
		return &p.ContextManagement
	case BucketGuardrails:
		return &p.Guardrails
	case BucketIterationStyle:
		return &p.IterationStyle
	case BucketTools:
		return &p.Tools
	case BucketOrchestration:
		return &p.Orchestration
	case BucketDeployment:
		return &p.Deployment
	case BucketQuotes:
		return &p.Quotes
	default:
		return &p.Unclassified
	}
}

// Bucket returns the entities of one bucket.
func (p *Profile) Bucket(b Bucket) []Entity { return *p.list(b) }

// Count is the number of entities across all buckets, unclassified included.
func (p *Profile) Count() int {
	n := len(p.Unclassified)
	for _, b := range Buckets() {
		n += len(p.Bucket(b))
	}
	return n
}
