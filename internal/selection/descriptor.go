// Package selection implements the template selection engine: given a slide
// descriptor it picks the best-fitting template from the catalog, using
// semantic similarity when the embedding backend is available and a
// deterministic keyword fallback otherwise.
package selection

import (
	"fmt"
	"strings"

	"carousel-workers/internal/common/errors"
	"carousel-workers/pkg/catalog"
)

// Descriptor is the per-slide input produced by the upstream
// narrative-structuring step. Consumed once per call, never persisted here.
type Descriptor struct {
	ModuleType    catalog.ModuleType   `json:"module_type"`
	ValueSubtype  catalog.ValueSubtype `json:"value_subtype,omitempty"`
	Purpose       string               `json:"purpose"`
	CopyDirection string               `json:"copy_direction"`
	KeyElements   []string             `json:"key_elements"`
	Tone          string               `json:"tone,omitempty"`
}

// Validate checks the descriptor's structural rules: module_type is required,
// value_subtype is required iff module_type is "value".
func (d *Descriptor) Validate() error {
	if d == nil {
		return errors.NewDescriptorValidationFailedError("descriptor is nil")
	}
	if !catalog.ValidModuleType(d.ModuleType) {
		return errors.NewDescriptorValidationFailedError(
			fmt.Sprintf("unknown module_type %q", d.ModuleType))
	}
	if d.ModuleType == catalog.ModuleValue {
		if !catalog.ValidValueSubtype(d.ValueSubtype) {
			return errors.NewDescriptorValidationFailedError(
				fmt.Sprintf("value slides require a value_subtype, got %q", d.ValueSubtype))
		}
	} else if d.ValueSubtype != "" {
		return errors.NewDescriptorValidationFailedError(
			fmt.Sprintf("value_subtype %q is only allowed when module_type is value", d.ValueSubtype))
	}
	return nil
}

// Text concatenates the descriptor's free-text fields into the single string
// that gets scored against each candidate template.
func (d *Descriptor) Text() string {
	parts := make([]string, 0, 2+len(d.KeyElements))
	if d.Purpose != "" {
		parts = append(parts, d.Purpose)
	}
	if d.CopyDirection != "" {
		parts = append(parts, d.CopyDirection)
	}
	for _, el := range d.KeyElements {
		if el != "" {
			parts = append(parts, el)
		}
	}
	return strings.Join(parts, " ")
}

// Category renders the descriptor's module/subtype pair for logs and
// justifications, e.g. "hook" or "value/insight".
func (d *Descriptor) Category() string {
	if d.ModuleType == catalog.ModuleValue && d.ValueSubtype != "" {
		return fmt.Sprintf("%s/%s", d.ModuleType, d.ValueSubtype)
	}
	return string(d.ModuleType)
}
