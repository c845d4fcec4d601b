// Package kafka wraps the franz-go client for the punsj topics: an
// at-least-once group consumer for inbound fordel events and a producer for
// outbound document orders.
package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Handler processes one record. Returning an error leaves the offset
// uncommitted so the record is redelivered.
type Handler func(ctx context.Context, key, value []byte) error

// Consumer is a consumer-group reader for a single topic.
type Consumer struct {
	client  *kgo.Client
	handler Handler
	logger  *slog.Logger
}

func NewConsumer(brokers []string, group, topic string, handler Handler, logger *slog.Logger) (*Consumer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumerGroup(group),
		kgo.ConsumeTopics(topic),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return &Consumer{client: client, handler: handler, logger: logger}, nil
}

// Run polls until the context is canceled. Records that fail their handler
// are not committed; processing continues with the next record and the
// failed one comes back on rebalance or restart.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.client.Close()
	for {
		fetches := c.client.PollFetches(ctx)
		if err := ctx.Err(); err != nil {
			return err
		}
		if errs := fetches.Errors(); len(errs) > 0 {
			for _, err := range errs {
				c.logger.ErrorContext(ctx, "kafka fetch failed",
					"topic", err.Topic, "partition", err.Partition, "error", err.Err)
			}
		}

		var behandlet []*kgo.Record
		fetches.EachRecord(func(record *kgo.Record) {
			if err := c.handler(ctx, record.Key, record.Value); err != nil {
				c.logger.ErrorContext(ctx, "hendelse feilet, blir levert på nytt",
					"topic", record.Topic, "offset", record.Offset, "error", err)
				return
			}
			behandlet = append(behandlet, record)
		})

		if len(behandlet) > 0 {
			if err := c.client.CommitRecords(ctx, behandlet...); err != nil {
				c.logger.ErrorContext(ctx, "kafka commit failed", "error", err)
			}
		}
	}
}
