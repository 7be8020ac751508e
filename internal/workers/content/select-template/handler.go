package selecttemplate

import (
	"context"
	"encoding/json"
	"time"

	"carousel-workers/internal/common/errors"
	"carousel-workers/internal/common/logger"
	"carousel-workers/internal/common/metrics"
	"carousel-workers/internal/common/validation"
	"carousel-workers/internal/selection"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "select-slide-template"
)

type Handler struct {
	config       *Config
	selector     *selection.Selector
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, selector *selection.Selector, log logger.Logger) *Handler {
	return &Handler{
		config:       config,
		selector:     selector,
		logger:       log.WithFields(map[string]interface{}{"taskType": TaskType}),
		errorHandler: errors.NewErrorHandler(log),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	variables := []byte(job.Variables)
	if result, err := validation.ValidateJSON(variables, inputSchema); err != nil || !result.Valid {
		valErr := errors.NewDescriptorValidationFailedError(validationDetails(result, err))
		h.failJob(ctx, client, job, valErr)
		return
	}

	var input Input
	if err := json.Unmarshal(variables, &input); err != nil {
		h.failJob(ctx, client, job, errors.NewDescriptorValidationFailedError(err.Error()))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Descriptor == nil {
		return nil, errors.NewDescriptorValidationFailedError("slideDescriptor is required")
	}

	result, err := h.selector.Select(ctx, input.Descriptor)
	if err != nil {
		return nil, err
	}

	selectionID := input.SelectionID
	if selectionID == "" {
		selectionID = uuid.New().String()
	}

	h.logger.Info("template selected", map[string]interface{}{
		"selectionId": selectionID,
		"templateId":  result.TemplateID,
		"method":      string(result.Method),
		"confidence":  result.Confidence,
	})

	return &Output{
		SelectionID:        selectionID,
		SelectedTemplateID: result.TemplateID,
		Confidence:         result.Confidence,
		Justification:      result.Justification,
		SelectionMethod:    string(result.Method),
	}, nil
}

// Execute exposes the business logic for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err = cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.CodeOf(err))).Inc()
	h.errorHandler.HandleJobError(ctx, client, job, err)
}

func validationDetails(result *validation.Result, err error) string {
	if err != nil {
		return err.Error()
	}
	return result.Summary()
}
