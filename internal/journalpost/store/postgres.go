package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"punsj/internal/journalpost/models"
	"punsj/pkg/domain"
	"punsj/pkg/platform/sentinel"
)

// PostgresStore persists journal posts in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Opprett(ctx context.Context, journalpost models.Journalpost) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journalpost (uuid, journalpost_id, aktoer_id, ytelse, type, ferdig_behandlet, opprettet)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		journalpost.UUID, journalpost.JournalpostID.String(), journalpost.AktorID.String(),
		string(journalpost.Ytelse), string(journalpost.Type), journalpost.FerdigBehandlet, journalpost.Opprettet,
	)
	if err != nil {
		return fmt.Errorf("opprett journalpost: %w", err)
	}
	return nil
}

func (s *PostgresStore) Hent(ctx context.Context, journalpostID domain.JournalpostID) (*models.Journalpost, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT uuid, journalpost_id, aktoer_id, ytelse, type, ferdig_behandlet, opprettet
		FROM journalpost WHERE journalpost_id = $1`, journalpostID.String())

	var journalpost models.Journalpost
	var journalpostIDStr, aktorID, ytelse, type_ string
	err := row.Scan(&journalpost.UUID, &journalpostIDStr, &aktorID, &ytelse, &type_,
		&journalpost.FerdigBehandlet, &journalpost.Opprettet)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("hent journalpost: %w", err)
	}
	journalpost.JournalpostID = domain.JournalpostID(journalpostIDStr)
	journalpost.AktorID = domain.AktorID(aktorID)
	journalpost.Ytelse = models.FagsakYtelseType(ytelse)
	journalpost.Type = models.PunsjInnsendingType(type_)
	return &journalpost, nil
}

func (s *PostgresStore) Eksisterer(ctx context.Context, journalpostID domain.JournalpostID) (bool, error) {
	var finnes bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM journalpost WHERE journalpost_id = $1)`,
		journalpostID.String(),
	).Scan(&finnes)
	if err != nil {
		return false, fmt.Errorf("sjekk journalpost: %w", err)
	}
	return finnes, nil
}

func (s *PostgresStore) SettInnsendingstype(ctx context.Context, journalpostID domain.JournalpostID, type_ models.PunsjInnsendingType) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE journalpost SET type = $1 WHERE journalpost_id = $2`,
		string(type_), journalpostID.String(),
	)
	if err != nil {
		return fmt.Errorf("sett innsendingstype: %w", err)
	}
	return kreverRad(res)
}

func (s *PostgresStore) SettFerdigBehandlet(ctx context.Context, journalpostID domain.JournalpostID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE journalpost SET ferdig_behandlet = TRUE WHERE journalpost_id = $1`,
		journalpostID.String(),
	)
	if err != nil {
		return fmt.Errorf("sett ferdig behandlet: %w", err)
	}
	return kreverRad(res)
}

func (s *PostgresStore) AntallFerdigBehandlede(ctx context.Context, ferdigBehandlet bool) (int, error) {
	var antall int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM journalpost WHERE ferdig_behandlet = $1`, ferdigBehandlet,
	).Scan(&antall)
	if err != nil {
		return 0, fmt.Errorf("antall ferdig behandlede: %w", err)
	}
	return antall, nil
}

func (s *PostgresStore) AntallPerType(ctx context.Context) ([]models.AntallPerType, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT count(*), coalesce(type, '') FROM journalpost GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("antall per type: %w", err)
	}
	defer rows.Close()

	var antall []models.AntallPerType
	for rows.Next() {
		var n int
		var type_ string
		if err := rows.Scan(&n, &type_); err != nil {
			return nil, fmt.Errorf("antall per type: %w", err)
		}
		innsendingstype, err := models.PunsjInnsendingTypeFraKode(type_)
		if err != nil {
			innsendingstype = models.InnsendingUkjent
		}
		antall = append(antall, models.AntallPerType{Type: innsendingstype, Antall: n})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("antall per type: %w", err)
	}
	return antall, nil
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
