package selecttemplate

import "carousel-workers/internal/selection"

// Input are the job variables consumed by the worker. selectionId is
// optional; one is generated when the process does not supply it.
type Input struct {
	SelectionID string                `json:"selectionId,omitempty"`
	Descriptor  *selection.Descriptor `json:"slideDescriptor"`
}

// Output are the job variables produced on completion.
type Output struct {
	SelectionID        string  `json:"selectionId"`
	SelectedTemplateID string  `json:"selectedTemplateId"`
	Confidence         float64 `json:"confidence"`
	Justification      string  `json:"justification"`
	SelectionMethod    string  `json:"selectionMethod"`
}

// inputSchema is the JSON Schema applied to raw job variables before
// unmarshalling. Structural descriptor rules beyond shape (like the
// value/subtype pairing) live in the descriptor's own validation.
var inputSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"slideDescriptor"},
	"properties": map[string]interface{}{
		"selectionId": map[string]interface{}{"type": "string"},
		"slideDescriptor": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"module_type"},
			"properties": map[string]interface{}{
				"module_type": map[string]interface{}{
					"type": "string",
					"enum": []interface{}{"hook", "transition", "value", "cta"},
				},
				"value_subtype": map[string]interface{}{
					"type": "string",
					"enum": []interface{}{"data", "insight", "solution", "example"},
				},
				"purpose":        map[string]interface{}{"type": "string"},
				"copy_direction": map[string]interface{}{"type": "string"},
				"key_elements": map[string]interface{}{
					"type":  "array",
					"items": map[string]interface{}{"type": "string"},
				},
				"tone": map[string]interface{}{"type": "string"},
			},
		},
	},
}
