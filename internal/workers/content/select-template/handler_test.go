package selecttemplate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel-workers/internal/common/errors"
	"carousel-workers/internal/common/logger"
	"carousel-workers/internal/common/validation"
	"carousel-workers/internal/selection"
	"carousel-workers/pkg/catalog"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T) *Handler {
	testLogger := logger.NewTestLogger(t)
	selector := selection.New(catalog.Default(), nil, selection.DefaultTonePolicy(), testLogger)
	return NewHandler(LoadConfig(), selector, testLogger)
}

func createInput(moduleType catalog.ModuleType, subtype catalog.ValueSubtype, purpose string) *Input {
	return &Input{
		Descriptor: &selection.Descriptor{
			ModuleType:   moduleType,
			ValueSubtype: subtype,
			Purpose:      purpose,
		},
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name:  "hook descriptor selects a hook template",
			input: createInput(catalog.ModuleHook, "", "open with the contrast between before and after the transformation"),
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, "hook-before-after", output.SelectedTemplateID)
				assert.Equal(t, "keyword", output.SelectionMethod)
			},
		},
		{
			name:  "value descriptor stays within its subtype",
			input: createInput(catalog.ModuleValue, catalog.SubtypeSolution, "walk through the steps of the fix"),
			validateOutput: func(t *testing.T, output *Output) {
				tpl, ok := catalog.Default().Get(output.SelectedTemplateID)
				require.True(t, ok)
				assert.Equal(t, catalog.ModuleValue, tpl.ModuleType)
				assert.Equal(t, catalog.SubtypeSolution, tpl.ValueSubtype)
			},
		},
		{
			name: "provided selectionId is preserved",
			input: &Input{
				SelectionID: "sel-123",
				Descriptor: &selection.Descriptor{
					ModuleType: catalog.ModuleCTA,
					Purpose:    "ask readers to follow for more",
				},
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, "sel-123", output.SelectionID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := createTestHandler(t)
			output, err := handler.Execute(context.Background(), tt.input)

			require.NoError(t, err)
			require.NotNil(t, output)
			assert.NotEmpty(t, output.SelectionID)
			assert.NotEmpty(t, output.Justification)
			assert.GreaterOrEqual(t, output.Confidence, 0.0)
			assert.LessOrEqual(t, output.Confidence, 1.0)

			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    *Input
		wantCode errors.ErrorCode
	}{
		{
			name:     "missing descriptor",
			input:    &Input{},
			wantCode: errors.ErrCodeDescriptorValidationFailed,
		},
		{
			name:     "unknown module type",
			input:    createInput("outro", "", "wrap it up"),
			wantCode: errors.ErrCodeDescriptorValidationFailed,
		},
		{
			name:     "value without subtype",
			input:    createInput(catalog.ModuleValue, "", "teach something"),
			wantCode: errors.ErrCodeDescriptorValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := createTestHandler(t)
			output, err := handler.Execute(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.IsCode(err, tt.wantCode))
		})
	}
}

func TestInputSchema(t *testing.T) {
	tests := []struct {
		name      string
		variables string
		wantValid bool
	}{
		{
			name:      "valid hook input",
			variables: `{"slideDescriptor": {"module_type": "hook", "purpose": "open strong"}}`,
			wantValid: true,
		},
		{
			name:      "missing descriptor",
			variables: `{"selectionId": "sel-1"}`,
			wantValid: false,
		},
		{
			name:      "module type outside enum",
			variables: `{"slideDescriptor": {"module_type": "outro"}}`,
			wantValid: false,
		},
		{
			name:      "key elements must be strings",
			variables: `{"slideDescriptor": {"module_type": "hook", "key_elements": [42]}}`,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validation.ValidateJSON([]byte(tt.variables), inputSchema)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid, result.Summary())
		})
	}
}
