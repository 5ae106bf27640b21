package workflow

import (
	"fmt"
	"strings"
)

// Card is a one-line summary of a profile bucket for rendering.
type Card struct {
	Bucket  Bucket `json:"bucket"`
	Summary string `json:"summary"`
	Count   int    `json:"count"`
}

var fallbacks = map[Bucket]string{
	BucketPlanningGoals:     "Structured approach to planning and scoping AI development projects.",
	BucketContextManagement: "Systematic approach to managing context and information flow to AI models.",
	BucketGuardrails:        "Structured approach to code verification and debugging safeguards.",
	BucketIterationStyle:    "Systematic approach to iterative development and refinement cycles.",
	BucketTools:             "No specific tools called out.",
	BucketOrchestration:     "Structured approach to chaining tools and models.",
	BucketDeployment:        "Structured approach to shipping and delivering software projects.",
	BucketQuotes:            "No quotes captured.",
}

// Summarize builds one card per fixed bucket, in Buckets order.
func Summarize(p *Profile) []Card {
	tools := toolNames(p.Tools)
	cards := make([]Card, 0, len(Buckets()))
	for _, b := range Buckets() {
		ents := p.Bucket(b)
		cards = append(cards, Card{Bucket: b, Summary: summarize(b, ents, tools), Count: len(ents)})
	}
	return cards
}

func summarize(b Bucket, ents []Entity, tools []string) string {
	if b == BucketTools && len(tools) > 0 {
		return fmt.Sprintf("Works with %s.", strings.Join(head(tools, 3), ", "))
	}
	if b == BucketQuotes && len(ents) > 0 {
		return fmt.Sprintf("%d quote(s) captured, starting with %q.", len(ents), clip(ents[0].Text, 60))
	}
	if len(ents) == 0 {
		return fallbacks[b]
	}
	first := clip(ents[0].Text, 60)
	switch b {
	case BucketPlanningGoals:
		if len(tools) > 0 {
			return fmt.Sprintf("Uses %s for planning. Follows a structured approach with %s.", strings.Join(head(tools, 2), ", "), first)
		}
		return fmt.Sprintf("Planning methodology: %s. Systematic project setup process.", first)
	case BucketContextManagement:
		return fmt.Sprintf("Context strategy: %s. Organized information management for AI tools.", first)
	case BucketGuardrails:
		return fmt.Sprintf("Quality assurance: %s. Systematic error prevention and recovery.", first)
	case BucketIterationStyle:
		return fmt.Sprintf("Development cadence: %s. Incremental improvement methodology.", first)
	case BucketOrchestration:
		return fmt.Sprintf("Orchestration: %s. Coordinated flow between tools and models.", first)
	case BucketDeployment:
		return fmt.Sprintf("Delivery strategy: %s. Phased deployment methodology.", first)
	}
	return fallbacks[b]
}

// toolNames collects distinct tool_name attributes, falling back to the
// entity text.
func toolNames(ents []Entity) []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range ents {
		name, ok := e.Attributes.Get("tool_name")
		if !ok || strings.TrimSpace(name) == "" {
			name = e.Text
		}
		name = strings.TrimSpace(name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		out = append(out, name)
	}
	return out
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func clip(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "..."
}
