// Package metrikker runs the scheduled job that refreshes the journal post
// gauges from store counts.
package metrikker

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	journalpostmetrics "punsj/internal/journalpost/metrics"
	"punsj/internal/journalpost/models"
)

// Teller exposes the store counts the job reads.
type Teller interface {
	AntallFerdigBehandlede(ctx context.Context, ferdigBehandlet bool) (int, error)
	AntallPerType(ctx context.Context) ([]models.AntallPerType, error)
}

// Jobb periodically publishes store counts as gauges.
type Jobb struct {
	teller  Teller
	metrics *journalpostmetrics.Metrics
	logger  *slog.Logger
	cron    *cron.Cron
	timeout time.Duration
}

func NyJobb(teller Teller, metrics *journalpostmetrics.Metrics, logger *slog.Logger) *Jobb {
	return &Jobb{
		teller:  teller,
		metrics: metrics,
		logger:  logger,
		cron:    cron.New(),
		timeout: 30 * time.Second,
	}
}

// Start schedules the refresh with the given cron spec, for example
// "@every 5m", and runs one refresh immediately so the gauges are never
// stale at startup.
func (j *Jobb) Start(spec string) error {
	if _, err := j.cron.AddFunc(spec, j.oppdater); err != nil {
		return err
	}
	j.oppdater()
	j.cron.Start()
	return nil
}

// Stopp stops the scheduler and waits for a running refresh to finish.
func (j *Jobb) Stopp() {
	<-j.cron.Stop().Done()
}

func (j *Jobb) oppdater() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	ferdige, err := j.teller.AntallFerdigBehandlede(ctx, true)
	if err != nil {
		j.logger.ErrorContext(ctx, "kan ikke telle ferdig behandlede", "error", err)
		return
	}
	ventende, err := j.teller.AntallFerdigBehandlede(ctx, false)
	if err != nil {
		j.logger.ErrorContext(ctx, "kan ikke telle ventende", "error", err)
		return
	}
	perType, err := j.teller.AntallPerType(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "kan ikke telle per type", "error", err)
		return
	}

	j.metrics.FerdigBehandlede.Set(float64(ferdige))
	j.metrics.UnderBehandling.Set(float64(ventende))
	for _, antall := range perType {
		j.metrics.AntallPerType.WithLabelValues(string(antall.Type)).Set(float64(antall.Antall))
	}
}
