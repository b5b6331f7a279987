package publisher

import (
	"context"

	"newsreader/internal/domain"
	"newsreader/internal/logger"
)

// LogNotifier renders the progress indicator as structured log lines.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log.WithComponent("progress")}
}

func (n *LogNotifier) Notify(_ context.Context, event domain.DownloadEvent) error {
	fields := []any{
		"batch_id", event.BatchID,
		"completed", event.Completed,
		"total", event.Total,
	}

	switch event.Type {
	case domain.EventStarted:
		n.logger.Info("downloading articles", fields...)
	case domain.EventProgress:
		n.logger.Info("download progress", fields...)
	case domain.EventCompleted:
		n.logger.Info("download complete", fields...)
	case domain.EventCancelled:
		n.logger.Info("download cancelled", fields...)
	case domain.EventFailed:
		n.logger.Error("download failed", append(fields, "message", event.Message)...)
	}
	return nil
}

func (n *LogNotifier) Close() error { return nil }
