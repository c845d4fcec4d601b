// Package config builds runtime configuration from the environment so main
// stays lean. A local .env file is honored when present.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures everything the server needs at startup.
type Config struct {
	Addr        string
	LogLevel    string
	DatabaseURL string
	RedisURL    string

	KafkaBrokers      []string
	FordelTopic       string
	FormidlingTopic   string
	AksjonspunktTopic string
	ConsumerGroup     string

	PdlURL string
	SakURL string

	// MetrikkCron is the cron expression for the journal post metrics job.
	MetrikkCron string
}

// FromEnv loads configuration from environment variables, falling back to
// development defaults.
func FromEnv() Config {
	// Ignore a missing .env: production injects the environment directly.
	_ = godotenv.Load()

	return Config{
		Addr:              getenv("PUNSJ_ADDR", ":8080"),
		LogLevel:          getenv("PUNSJ_LOG_LEVEL", "info"),
		DatabaseURL:       os.Getenv("PUNSJ_DATABASE_URL"),
		RedisURL:          os.Getenv("PUNSJ_REDIS_URL"),
		KafkaBrokers:      splitHosts(getenv("PUNSJ_KAFKA_BROKERS", "localhost:9092")),
		FordelTopic:       getenv("PUNSJ_FORDEL_TOPIC", "punsjbar-journalpost"),
		FormidlingTopic:   getenv("PUNSJ_FORMIDLING_TOPIC", "dokumentbestilling"),
		AksjonspunktTopic: getenv("PUNSJ_AKSJONSPUNKT_TOPIC", "punsj-aksjonspunkthendelse"),
		ConsumerGroup:     getenv("PUNSJ_CONSUMER_GROUP", "punsj"),
		PdlURL:            getenv("PUNSJ_PDL_URL", "http://localhost:8090/pdl"),
		SakURL:            getenv("PUNSJ_SAK_URL", "http://localhost:8091/k9sak"),
		MetrikkCron:       getenv("PUNSJ_METRIKK_CRON", "@every 5m"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitHosts(s string) []string {
	var hosts []string
	for _, host := range strings.Split(s, ",") {
		if host = strings.TrimSpace(host); host != "" {
			hosts = append(hosts, host)
		}
	}
	return hosts
}
