// Package metrics provides observability for journal post intake:
// throughput counters tagged by benefit and submission type, and gauges fed
// by the scheduled store counts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	JournalpostOpprettet *prometheus.CounterVec
	FerdigBehandlede     prometheus.Gauge
	UnderBehandling      prometheus.Gauge
	AntallPerType        *prometheus.GaugeVec
}

func New() *Metrics {
	return &Metrics{
		JournalpostOpprettet: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "punsj_journalpost_opprettet_total",
			Help: "Antall opprettede journalposter",
		}, []string{"ytelsestype", "punsjInnsendingstype"}),
		FerdigBehandlede: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "punsj_journalpost_ferdig_behandlede",
			Help: "Antall ferdig behandlede journalposter",
		}),
		UnderBehandling: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "punsj_journalpost_under_behandling",
			Help: "Antall journalposter som venter på punsj",
		}),
		AntallPerType: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "punsj_journalpost_per_type",
			Help: "Antall journalposter per innsendingstype",
		}, []string{"punsjInnsendingstype"}),
	}
}

// IncrementOpprettet records one created journal post.
func (m *Metrics) IncrementOpprettet(ytelse, innsendingstype string) {
	m.JournalpostOpprettet.WithLabelValues(ytelse, innsendingstype).Inc()
}
