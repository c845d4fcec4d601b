package formidling

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"punsj/internal/k9format"
	"punsj/internal/pdl"
)

// Publisher delivers a serialized letter order to the formidling topic.
type Publisher interface {
	Send(ctx context.Context, topic, key string, value []byte) error
}

// Service maps letter orders and publishes them.
type Service struct {
	resolver  pdl.Resolver
	publisher Publisher
	topic     string
	logger    *slog.Logger
	nyBrevID  func() BrevID
}

func NewService(resolver pdl.Resolver, publisher Publisher, topic string, logger *slog.Logger) *Service {
	return &Service{
		resolver:  resolver,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
		nyBrevID:  func() BrevID { return BrevID(uuid.NewString()) },
	}
}

// Bestill maps the order and publishes it. Field errors abort before
// anything is published.
func (s *Service) Bestill(ctx context.Context, dto DokumentbestillingDto) (*Dokumentbestilling, []k9format.Feil, error) {
	brevID := s.nyBrevID()
	bestilling, feil := MapDokumentTilK9Formidling(ctx, brevID, dto, s.resolver)
	if len(feil) > 0 {
		return bestilling, feil, nil
	}

	payload, err := json.Marshal(bestilling)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal dokumentbestilling: %w", err)
	}
	if err := s.publisher.Send(ctx, s.topic, bestilling.DokumentbestillingID, payload); err != nil {
		return nil, nil, fmt.Errorf("publiser dokumentbestilling: %w", err)
	}
	s.logger.InfoContext(ctx, "dokumentbestilling publisert",
		"dokumentbestillingId", bestilling.DokumentbestillingID,
		"dokumentMal", bestilling.DokumentMal)
	return bestilling, nil, nil
}
