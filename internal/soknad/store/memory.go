package store

import (
	"context"
	"sync"
	"time"

	"punsj/internal/soknad/models"
	"punsj/pkg/domain"
	"punsj/pkg/platform/sentinel"
)

// InMemoryStore keeps drafts in a map guarded by a RWMutex.
type InMemoryStore struct {
	mu      sync.RWMutex
	drafter map[domain.SoknadID]models.SoknadEntitet
	now     func() time.Time
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		drafter: make(map[domain.SoknadID]models.SoknadEntitet),
		now:     time.Now,
	}
}

func (s *InMemoryStore) Opprett(_ context.Context, entitet models.SoknadEntitet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, finnes := s.drafter[entitet.SoknadID]; finnes {
		return sentinel.ErrConflict
	}
	entitet.Soknad = entitet.Soknad.Kopi()
	s.drafter[entitet.SoknadID] = entitet
	return nil
}

func (s *InMemoryStore) Hent(_ context.Context, soknadID domain.SoknadID) (*models.SoknadEntitet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entitet, finnes := s.drafter[soknadID]
	if !finnes {
		return nil, sentinel.ErrNotFound
	}
	entitet.Soknad = entitet.Soknad.Kopi()
	entitet.Journalposter = append([]domain.JournalpostID(nil), entitet.Journalposter...)
	return &entitet, nil
}

func (s *InMemoryStore) OppdaterSoknad(_ context.Context, soknadID domain.SoknadID, soknad models.SoknadJson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entitet, finnes := s.drafter[soknadID]
	if !finnes {
		return sentinel.ErrNotFound
	}
	entitet.Soknad = soknad.Kopi()
	entitet.SistEndret = s.now()
	s.drafter[soknadID] = entitet
	return nil
}

func (s *InMemoryStore) MarkerSendtInn(_ context.Context, soknadID domain.SoknadID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entitet, finnes := s.drafter[soknadID]
	if !finnes {
		return sentinel.ErrNotFound
	}
	entitet.SendtInn = true
	entitet.SistEndret = s.now()
	s.drafter[soknadID] = entitet
	return nil
}
