package resolvetemplate

import "carousel-workers/pkg/catalog"

// Input identifies the template to resolve, typically the output of the
// select-slide-template step.
type Input struct {
	TemplateID string `json:"selectedTemplateId"`
}

// Output carries the full template record so downstream copywriting steps
// get the structural pattern, length bounds and example in one place.
type Output struct {
	Template catalog.TemplateRecord `json:"template"`
}
