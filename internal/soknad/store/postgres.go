package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"punsj/internal/soknad/models"
	"punsj/pkg/domain"
	"punsj/pkg/platform/sentinel"
)

// PostgresStore persists drafts with the editable payload in a jsonb column.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Opprett(ctx context.Context, entitet models.SoknadEntitet) error {
	payload, err := json.Marshal(entitet.Soknad)
	if err != nil {
		return fmt.Errorf("marshal soknad: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO soknad (soknad_id, soker_ident, barn_ident, journalposter, soknad, sendt_inn, opprettet, sist_endret)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entitet.SoknadID.String(), entitet.SokerIdent.String(), entitet.BarnIdent.String(),
		journalposterTilKolonne(entitet.Journalposter), payload,
		entitet.SendtInn, entitet.Opprettet, entitet.SistEndret,
	)
	if err != nil {
		return fmt.Errorf("opprett soknad: %w", err)
	}
	return nil
}

func (s *PostgresStore) Hent(ctx context.Context, soknadID domain.SoknadID) (*models.SoknadEntitet, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT soknad_id, soker_ident, barn_ident, journalposter, soknad, sendt_inn, opprettet, sist_endret
		FROM soknad WHERE soknad_id = $1`, soknadID.String())

	var entitet models.SoknadEntitet
	var id, soker, barn, journalposter string
	var payload []byte
	err := row.Scan(&id, &soker, &barn, &journalposter, &payload,
		&entitet.SendtInn, &entitet.Opprettet, &entitet.SistEndret)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("hent soknad: %w", err)
	}
	entitet.SoknadID = domain.SoknadID(id)
	entitet.SokerIdent = domain.NorskIdent(soker)
	entitet.BarnIdent = domain.NorskIdent(barn)
	entitet.Journalposter = journalposterFraKolonne(journalposter)
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &entitet.Soknad); err != nil {
			return nil, fmt.Errorf("unmarshal soknad: %w", err)
		}
	}
	return &entitet, nil
}

func (s *PostgresStore) OppdaterSoknad(ctx context.Context, soknadID domain.SoknadID, soknad models.SoknadJson) error {
	payload, err := json.Marshal(soknad)
	if err != nil {
		return fmt.Errorf("marshal soknad: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE soknad SET soknad = $1, sist_endret = now() WHERE soknad_id = $2`,
		payload, soknadID.String(),
	)
	if err != nil {
		return fmt.Errorf("oppdater soknad: %w", err)
	}
	return kreverRad(res)
}

func (s *PostgresStore) MarkerSendtInn(ctx context.Context, soknadID domain.SoknadID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE soknad SET sendt_inn = TRUE, sist_endret = now() WHERE soknad_id = $1`,
		soknadID.String(),
	)
	if err != nil {
		return fmt.Errorf("marker sendt inn: %w", err)
	}
	return kreverRad(res)
}

func journalposterTilKolonne(ider []domain.JournalpostID) string {
	deler := make([]string, len(ider))
	for i, id := range ider {
		deler[i] = id.String()
	}
	return strings.Join(deler, ",")
}

func journalposterFraKolonne(kolonne string) []domain.JournalpostID {
	if kolonne == "" {
		return nil
	}
	deler := strings.Split(kolonne, ",")
	ider := make([]domain.JournalpostID, len(deler))
	for i, del := range deler {
		ider[i] = domain.JournalpostID(del)
	}
	return ider
}

func kreverRad(res sql.Result) error {
	rader, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rader == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
