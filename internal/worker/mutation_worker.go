package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/atlas-rto/workforce-matrix/internal/events"
	"github.com/atlas-rto/workforce-matrix/internal/observability"
)

// StartMutationWorker subscribes handlers that log every roster mutation
// and feed the mutation counters.
func StartMutationWorker(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) {
	if dispatcher == nil {
		return
	}

	handler := func(_ context.Context, event events.Event) error {
		metrics.RecordMutation(string(event.Type))
		logger.Info("roster mutation",
			zap.String("event", string(event.Type)),
			zap.String("atlas_id", event.AtlasID),
			zap.String("actor", event.Actor),
		)
		return nil
	}

	for _, eventType := range events.AllTypes() {
		dispatcher.Subscribe(eventType, handler)
	}
}
