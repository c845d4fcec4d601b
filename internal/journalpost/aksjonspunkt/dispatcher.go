// Package aksjonspunkt publishes worklist events for journal posts awaiting
// manual transcription.
package aksjonspunkt

import (
	"context"
	"encoding/json"
	"fmt"

	"punsj/internal/journalpost/models"
	"punsj/pkg/domain"
)

// Publisher delivers a serialized event to a topic.
type Publisher interface {
	Send(ctx context.Context, topic, key string, value []byte) error
}

// Status values understood by the worklist consumer.
const (
	StatusOpprettet = "OPPR"
	StatusUtfoert   = "UTFO"
)

// Hendelse is the outbound worklist event.
type Hendelse struct {
	JournalpostID domain.JournalpostID `json:"journalpostId"`
	AktorID       domain.AktorID       `json:"aktørId,omitempty"`
	Ytelse        string               `json:"ytelse,omitempty"`
	Type          string               `json:"type,omitempty"`
	Status        string               `json:"status"`
}

// KafkaDispatcher publishes worklist events on the aksjonspunkt topic.
type KafkaDispatcher struct {
	publisher Publisher
	topic     string
}

func NewKafkaDispatcher(publisher Publisher, topic string) *KafkaDispatcher {
	return &KafkaDispatcher{publisher: publisher, topic: topic}
}

func (d *KafkaDispatcher) OpprettOppgave(ctx context.Context, journalpost models.Journalpost) error {
	return d.publiser(ctx, Hendelse{
		JournalpostID: journalpost.JournalpostID,
		AktorID:       journalpost.AktorID,
		Ytelse:        string(journalpost.Ytelse),
		Type:          string(journalpost.Type),
		Status:        StatusOpprettet,
	})
}

func (d *KafkaDispatcher) LukkOppgave(ctx context.Context, journalpostID domain.JournalpostID) error {
	return d.publiser(ctx, Hendelse{
		JournalpostID: journalpostID,
		Status:        StatusUtfoert,
	})
}

func (d *KafkaDispatcher) publiser(ctx context.Context, hendelse Hendelse) error {
	payload, err := json.Marshal(hendelse)
	if err != nil {
		return fmt.Errorf("marshal aksjonspunkthendelse: %w", err)
	}
	if err := d.publisher.Send(ctx, d.topic, hendelse.JournalpostID.String(), payload); err != nil {
		return fmt.Errorf("publiser aksjonspunkthendelse: %w", err)
	}
	return nil
}
