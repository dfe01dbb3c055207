package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/samadhan-setu/grievance-service/internal/annotator"
	"github.com/samadhan-setu/grievance-service/internal/events"
	"github.com/samadhan-setu/grievance-service/internal/repository"
)

// ClassificationWorker attaches annotator output to freshly submitted
// complaints. Submission returns before classification: the worker runs
// asynchronously and the complaint stays unclassified on failure, visible
// to the CM until a refresh or re-run picks it up.
type ClassificationWorker struct {
	annotator  annotator.Annotator
	complaints repository.ComplaintRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	timeout    time.Duration
}

// NewClassificationWorker builds the worker.
func NewClassificationWorker(ann annotator.Annotator, complaints repository.ComplaintRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ClassificationWorker {
	return &ClassificationWorker{
		annotator:  ann,
		complaints: complaints,
		dispatcher: dispatcher,
		logger:     logger,
		timeout:    30 * time.Second,
	}
}

// Start subscribes the worker to complaint submissions.
func (w *ClassificationWorker) Start() {
	w.dispatcher.Subscribe(events.EventComplaintSubmitted, w.handleSubmitted)
}

func (w *ClassificationWorker) handleSubmitted(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ComplaintSubmittedPayload)
	if !ok {
		return nil
	}
	// Detach from the request context so a finished request does not
	// cancel the classification call.
	go w.classify(event.ComplaintID, payload.Text)
	return nil
}

func (w *ClassificationWorker) classify(complaintID, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	classification, err := w.annotator.Classify(ctx, text)
	if err != nil {
		w.logger.Warn("classification failed",
			zap.String("complaint_id", complaintID),
			zap.Error(err))
		return
	}

	if err := w.complaints.SetClassification(ctx, complaintID, classification); err != nil {
		w.logger.Warn("persisting classification failed",
			zap.String("complaint_id", complaintID),
			zap.Error(err))
		return
	}

	_ = w.dispatcher.Publish(ctx, events.Event{
		ID:          uuid.NewString(),
		Type:        events.EventComplaintClassified,
		ComplaintID: complaintID,
		Timestamp:   time.Now(),
		Payload: events.ComplaintClassifiedPayload{
			Department:    classification.Department,
			SubDepartment: classification.SubDepartment,
			Priority:      classification.Priority,
		},
	})
}
