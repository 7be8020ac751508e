// Package catalog holds the immutable slide template registry: structural
// text patterns plus the metadata the selection engine scores against.
package catalog

import (
	"fmt"
	"strings"
)

// ModuleType is the coarse narrative role of a slide.
type ModuleType string

const (
	ModuleHook       ModuleType = "hook"
	ModuleTransition ModuleType = "transition"
	ModuleValue      ModuleType = "value"
	ModuleCTA        ModuleType = "cta"
)

// ValueSubtype is the finer classification of a value slide's content.
// It is present iff the module type is "value".
type ValueSubtype string

const (
	SubtypeData     ValueSubtype = "data"
	SubtypeInsight  ValueSubtype = "insight"
	SubtypeSolution ValueSubtype = "solution"
	SubtypeExample  ValueSubtype = "example"
)

// ValidModuleType reports whether mt names a known module type.
func ValidModuleType(mt ModuleType) bool {
	switch mt {
	case ModuleHook, ModuleTransition, ModuleValue, ModuleCTA:
		return true
	}
	return false
}

// ValidValueSubtype reports whether vs names a known value subtype.
func ValidValueSubtype(vs ValueSubtype) bool {
	switch vs {
	case SubtypeData, SubtypeInsight, SubtypeSolution, SubtypeExample:
		return true
	}
	return false
}

// TemplateRecord is one entry of the template library. Records are created at
// process start from static definitions and never mutated afterwards.
type TemplateRecord struct {
	ID                  string       `json:"id"`
	ModuleType          ModuleType   `json:"module_type"`
	ValueSubtype        ValueSubtype `json:"value_subtype,omitempty"`
	StructuralPattern   string       `json:"structural_pattern"`
	MinLength           int          `json:"min_length"`
	MaxLength           int          `json:"max_length"`
	Tone                string       `json:"tone"`
	Keywords            []string     `json:"keywords"`
	SemanticDescription string       `json:"semantic_description"`
	Example             string       `json:"example"`
}

// TemplateRegistry is the on-disk shape of a template definitions file.
type TemplateRegistry struct {
	Version     string           `json:"version"`
	LastUpdated string           `json:"lastUpdated"`
	Templates   []TemplateRecord `json:"templates"`
}

// validate checks the structural invariants of a single record. The returned
// error message is meant for the catalog-level ConfigurationError.
func (r TemplateRecord) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("template id must not be empty")
	}
	if !ValidModuleType(r.ModuleType) {
		return fmt.Errorf("template %q: unknown module_type %q", r.ID, r.ModuleType)
	}
	if r.ModuleType == ModuleValue {
		if !ValidValueSubtype(r.ValueSubtype) {
			return fmt.Errorf("template %q: value templates require a value_subtype, got %q", r.ID, r.ValueSubtype)
		}
	} else if r.ValueSubtype != "" {
		return fmt.Errorf("template %q: value_subtype %q is only allowed on value templates", r.ID, r.ValueSubtype)
	}
	if len(r.Keywords) == 0 {
		return fmt.Errorf("template %q: keywords must not be empty", r.ID)
	}
	for i, kw := range r.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("template %q: keyword %d is blank", r.ID, i)
		}
	}
	if strings.TrimSpace(r.SemanticDescription) == "" {
		return fmt.Errorf("template %q: semantic_description must not be empty", r.ID)
	}
	if r.MinLength < 0 || r.MaxLength < r.MinLength {
		return fmt.Errorf("template %q: invalid length range [%d,%d]", r.ID, r.MinLength, r.MaxLength)
	}
	return nil
}
