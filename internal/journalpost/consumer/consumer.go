// Package consumer decodes fordel events from Kafka and feeds them to the
// journalpost service.
package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"punsj/internal/journalpost/models"
)

// Mottaker is the processing side of the intake flow.
type Mottaker interface {
	Prosesser(ctx context.Context, event models.FordelPunsjEvent) error
}

// Consumer turns raw Kafka records into fordel events.
type Consumer struct {
	mottaker Mottaker
	logger   *slog.Logger
}

func New(mottaker Mottaker, logger *slog.Logger) *Consumer {
	return &Consumer{mottaker: mottaker, logger: logger}
}

// HandleRecord is the kafka.Handler for the fordel topic. Undecodable
// payloads are logged and dropped; redelivery cannot fix them.
func (c *Consumer) HandleRecord(ctx context.Context, key, value []byte) error {
	var event models.FordelPunsjEvent
	if err := json.Unmarshal(value, &event); err != nil {
		c.logger.ErrorContext(ctx, "kan ikke tolke fordel-hendelse, forkaster",
			"key", string(key), "error", err)
		return nil
	}
	if !event.JournalpostID.ErSatt() {
		c.logger.WarnContext(ctx, "fordel-hendelse uten journalpostId, forkaster", "key", string(key))
		return nil
	}
	if err := c.mottaker.Prosesser(ctx, event); err != nil {
		return fmt.Errorf("prosesser journalpost %s: %w", event.JournalpostID, err)
	}
	return nil
}
