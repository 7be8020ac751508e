package resolvetemplate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel-workers/internal/common/errors"
	"carousel-workers/internal/common/logger"
	"carousel-workers/pkg/catalog"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), catalog.Default(), logger.NewTestLogger(t))
}

func TestHandler_Execute_Success(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{TemplateID: "hook-before-after"})
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, "hook-before-after", output.Template.ID)
	assert.Equal(t, catalog.ModuleHook, output.Template.ModuleType)
	assert.NotEmpty(t, output.Template.StructuralPattern)
	assert.NotEmpty(t, output.Template.Example)
	assert.Greater(t, output.Template.MaxLength, 0)
}

func TestHandler_Execute_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		input *Input
	}{
		{name: "unknown id", input: &Input{TemplateID: "hook-nonexistent"}},
		{name: "empty id", input: &Input{}},
		{name: "whitespace id", input: &Input{TemplateID: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := createTestHandler(t)
			output, err := handler.Execute(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.IsCode(err, errors.ErrCodeTemplateNotFound))
		})
	}
}
