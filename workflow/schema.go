package workflow

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed schema.yaml
var defaultSchemaYAML []byte

// Rule is the attribute contract of one category.
type Rule struct {
	Required []string            `yaml:"required"`
	Optional []string            `yaml:"optional"`
	Enums    map[string][]string `yaml:"enums"`
}

// Schema maps categories to their attribute rules.
type Schema map[Category]Rule

// LoadSchema decodes a YAML schema document.
func LoadSchema(r io.Reader) (Schema, error) {
	var s Schema
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("schema decode: %w", err)
	}
	return s, nil
}

var defaultSchema = mustLoadSchema(defaultSchemaYAML)

func mustLoadSchema(b []byte) Schema {
	s, err := LoadSchema(bytes.NewReader(b))
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultSchema is the built-in attribute schema.
func DefaultSchema() Schema { return defaultSchema }

// Check lists the attribute problems of one extraction. Missing optional
// keys and unknown extra keys are fine. Categories without a rule have
// nothing to check; MapAll reports them as unknown.
func (s Schema) Check(ex Extraction) []string {
	rule, ok := s[ex.Category]
	if !ok {
		return nil
	}
	var issues []string
	for _, k := range rule.Required {
		if v, ok := ex.Attributes.Get(k); !ok || strings.TrimSpace(v) == "" {
			issues = append(issues, fmt.Sprintf("missing required attribute %q", k))
		}
	}
	keys := make([]string, 0, len(rule.Enums))
	for k := range rule.Enums {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		allowed := rule.Enums[k]
		v, ok := ex.Attributes.Get(k)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if !oneOf(v, allowed) {
			issues = append(issues, fmt.Sprintf("attribute %q=%q not in %v", k, v, allowed))
		}
	}
	return issues
}

// ValidateAttributes checks a batch at the collaborator boundary.
func (s Schema) ValidateAttributes(exs []Extraction) []SchemaWarning {
	var out []SchemaWarning
	for i, ex := range exs {
		for _, msg := range s.Check(ex) {
			out = append(out, SchemaWarning{Index: i, Category: ex.Category, Message: msg})
		}
	}
	return out
}

func oneOf(v string, allowed []string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == strings.ToLower(a) {
			return true
		}
	}
	return false
}
