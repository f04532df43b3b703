package inbox

import (
	"context"

	"profitpilot/models"
	"profitpilot/services/booking"
	"profitpilot/services/notification"
	"profitpilot/utils"

	"go.uber.org/zap"
)

// Source yields incoming booking messages. Satisfied by Fetcher.
type Source interface {
	Fetch() ([]Message, error)
}

// Processor drains a message source through the booking pipeline. Each
// message is independent; one failure does not stop the batch.
type Processor struct {
	Source       Source
	Orchestrator *booking.Orchestrator
	Notifier     notification.Notifier
}

func NewProcessor(source Source, orch *booking.Orchestrator, notifier notification.Notifier) *Processor {
	return &Processor{Source: source, Orchestrator: orch, Notifier: notifier}
}

// Poll fetches unseen messages and processes each one. Returns the number
// of messages handled.
func (p *Processor) Poll(ctx context.Context) (int, error) {
	logger := utils.GetLogger()

	messages, err := p.Source.Fetch()
	if err != nil {
		return 0, err
	}
	for _, msg := range messages {
		fallback := models.Customer{Name: msg.FromName, Email: msg.From}
		text := msg.Subject + "\n\n" + msg.Body

		outcome := p.Orchestrator.ProcessText(ctx, text, fallback)
		logger.Info("processed inbox message",
			zap.String("from", msg.From),
			zap.String("state", string(outcome.State)))

		if outcome.State == booking.StateFailed && msg.From != "" {
			if err := p.Notifier.SendProcessingError(ctx, msg.From); err != nil {
				logger.Warn("failed to send processing error notice",
					zap.String("to", msg.From), zap.Error(err))
			}
		}
	}
	return len(messages), nil
}
