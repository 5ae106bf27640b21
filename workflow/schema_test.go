package workflow

import (
	"strings"
	"testing"
)

func TestDefaultSchemaCoversVocabulary(t *testing.T) {
	s := DefaultSchema()
	for _, c := range Categories() {
		if _, ok := s[c]; !ok {
			t.Errorf("no rule for %s", c)
		}
	}
}

func TestSchemaCheck(t *testing.T) {
	s := DefaultSchema()
	cases := []struct {
		name  string
		ex    Extraction
		wants []string
	}{
		{
			name: "valid tool with extra key",
			ex: Extraction{Category: ToolUsage, Attributes: Attributes{
				"tool_name": Str("Cursor"), "category": Str("Editor"), "vendor": Str("anysphere"),
			}},
		},
		{
			name:  "missing required",
			ex:    Extraction{Category: ToolUsage, Attributes: Attributes{"tool_name": nil, "category": Str("gen")}},
			wants: []string{`missing required attribute "tool_name"`},
		},
		{
			name:  "bad enum",
			ex:    Extraction{Category: Guardrail, Attributes: Attributes{"type": Str("vibes")}},
			wants: []string{`attribute "type"="vibes"`},
		},
		{
			name: "optional only",
			ex:   Extraction{Category: PlanningGoal},
		},
		{
			name:  "quote topic",
			ex:    Extraction{Category: Quote, Attributes: Attributes{"topic": Str("weather")}},
			wants: []string{`attribute "topic"="weather"`},
		},
		{
			name: "unknown category has no rule",
			ex:   Extraction{Category: "sentiment", Attributes: Attributes{"tone": Str("upbeat")}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Check(tc.ex)
			if len(got) != len(tc.wants) {
				t.Fatalf("issues: want=%v got=%v", tc.wants, got)
			}
			for i, w := range tc.wants {
				if !strings.Contains(got[i], w) {
					t.Errorf("issue %d: want contains %q, got %q", i, w, got[i])
				}
			}
		})
	}
}

func TestValidateAttributesIndexesWarnings(t *testing.T) {
	exs := []Extraction{
		{Category: PlanningGoal},
		{Category: DeploymentStep, Attributes: Attributes{"step": Str("yolo")}},
	}
	ws := DefaultSchema().ValidateAttributes(exs)
	if len(ws) != 1 || ws[0].Index != 1 || ws[0].Category != DeploymentStep {
		t.Fatalf("warnings: %+v", ws)
	}
}

func TestLoadSchemaRejectsBadYAML(t *testing.T) {
	if _, err := LoadSchema(strings.NewReader("quote: [unclosed")); err == nil {
		t.Fatalf("expected decode error")
	}
}
