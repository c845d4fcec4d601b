package store

import (
	"context"
	"sync"

	"punsj/internal/journalpost/models"
	"punsj/pkg/domain"
	"punsj/pkg/platform/sentinel"
)

// InMemoryStore keeps journal posts in a mutex-guarded map.
type InMemoryStore struct {
	mu            sync.RWMutex
	journalposter map[domain.JournalpostID]models.Journalpost
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{journalposter: make(map[domain.JournalpostID]models.Journalpost)}
}

func (s *InMemoryStore) Opprett(_ context.Context, journalpost models.Journalpost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, finnes := s.journalposter[journalpost.JournalpostID]; finnes {
		return sentinel.ErrConflict
	}
	s.journalposter[journalpost.JournalpostID] = journalpost
	return nil
}

func (s *InMemoryStore) Hent(_ context.Context, journalpostID domain.JournalpostID) (*models.Journalpost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	journalpost, finnes := s.journalposter[journalpostID]
	if !finnes {
		return nil, sentinel.ErrNotFound
	}
	return &journalpost, nil
}

func (s *InMemoryStore) Eksisterer(_ context.Context, journalpostID domain.JournalpostID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, finnes := s.journalposter[journalpostID]
	return finnes, nil
}

func (s *InMemoryStore) SettInnsendingstype(_ context.Context, journalpostID domain.JournalpostID, type_ models.PunsjInnsendingType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	journalpost, finnes := s.journalposter[journalpostID]
	if !finnes {
		return sentinel.ErrNotFound
	}
	journalpost.Type = type_
	s.journalposter[journalpostID] = journalpost
	return nil
}

func (s *InMemoryStore) SettFerdigBehandlet(_ context.Context, journalpostID domain.JournalpostID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	journalpost, finnes := s.journalposter[journalpostID]
	if !finnes {
		return sentinel.ErrNotFound
	}
	journalpost.FerdigBehandlet = true
	s.journalposter[journalpostID] = journalpost
	return nil
}

func (s *InMemoryStore) AntallFerdigBehandlede(_ context.Context, ferdigBehandlet bool) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	antall := 0
	for _, journalpost := range s.journalposter {
		if journalpost.FerdigBehandlet == ferdigBehandlet {
			antall++
		}
	}
	return antall, nil
}

func (s *InMemoryStore) AntallPerType(_ context.Context) ([]models.AntallPerType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	perType := map[models.PunsjInnsendingType]int{}
	for _, journalpost := range s.journalposter {
		type_ := journalpost.Type
		if type_ == "" {
			type_ = models.InnsendingUkjent
		}
		perType[type_]++
	}
	antall := make([]models.AntallPerType, 0, len(perType))
	for type_, n := range perType {
		antall = append(antall, models.AntallPerType{Type: type_, Antall: n})
	}
	return antall, nil
}
