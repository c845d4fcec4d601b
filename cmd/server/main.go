// Command server runs the punsj backend: the HTTP api, the fordel event
// consumer and the scheduled metrics job.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"punsj/internal/formidling"
	httpapi "punsj/internal/http"
	"punsj/internal/journalpost/aksjonspunkt"
	journalpostconsumer "punsj/internal/journalpost/consumer"
	journalposthandler "punsj/internal/journalpost/handler"
	journalpostmetrics "punsj/internal/journalpost/metrics"
	journalpostservice "punsj/internal/journalpost/service"
	journalpoststore "punsj/internal/journalpost/store"
	"punsj/internal/k9format/validering"
	"punsj/internal/metrikker"
	"punsj/internal/pdl"
	"punsj/internal/platform/config"
	"punsj/internal/platform/database"
	"punsj/internal/platform/httpserver"
	"punsj/internal/platform/kafka"
	"punsj/internal/platform/logger"
	platformredis "punsj/internal/platform/redis"
	"punsj/internal/sak"
	soknadhandler "punsj/internal/soknad/handler"
	soknadservice "punsj/internal/soknad/service"
	soknadstore "punsj/internal/soknad/store"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	if err := kafka.EnsureTopics(ctx, cfg.KafkaBrokers, 3,
		cfg.FordelTopic, cfg.FormidlingTopic, cfg.AksjonspunktTopic); err != nil {
		log.Error("kafka topics unavailable", "error", err)
		os.Exit(1)
	}
	producer, err := kafka.NewProducer(cfg.KafkaBrokers)
	if err != nil {
		log.Error("kafka producer unavailable", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	// Stores and collaborators.
	journalposter := journalpoststore.NewPostgres(db)
	soknader := soknadstore.NewPostgres(db)
	pdlClient := pdl.NewClient(cfg.PdlURL)
	sakClient := sak.NewClient(cfg.SakURL)

	// Journalpost intake.
	jpMetrics := journalpostmetrics.New()
	dispatcher := aksjonspunkt.NewKafkaDispatcher(producer, cfg.AksjonspunktTopic)
	mottakerOpts := []journalpostservice.Option{}
	if redisClient != nil {
		guard := platformredis.NewIdempotencyGuard(redisClient, 24*time.Hour)
		mottakerOpts = append(mottakerOpts, journalpostservice.WithIdempotencyGuard(guard))
	}
	mottaker := journalpostservice.NewHendelseMottaker(
		journalposter, dispatcher, jpMetrics, log.With("component", "journalpost"), mottakerOpts...)

	fordelConsumer, err := kafka.NewConsumer(
		cfg.KafkaBrokers, cfg.ConsumerGroup, cfg.FordelTopic,
		journalpostconsumer.New(mottaker, log.With("component", "fordel-consumer")).HandleRecord,
		log.With("component", "fordel-consumer"),
	)
	if err != nil {
		log.Error("kafka consumer unavailable", "error", err)
		os.Exit(1)
	}

	// Søknad drafts.
	soknadSvc := soknadservice.New(
		soknader, sakClient, journalposter,
		&validering.PsbValidator{}, &validering.OmsValidator{},
		log.With("component", "soknad"),
	)

	// Letter orders.
	formidlingSvc := formidling.NewService(
		pdlClient, producer, cfg.FormidlingTopic, log.With("component", "formidling"))

	// Scheduled metrics refresh.
	metrikkJobb := metrikker.NyJobb(journalposter, jpMetrics, log.With("component", "metrikker"))

	health := map[string]httpapi.HealthChecker{
		"database": db.PingContext,
	}
	if redisClient != nil {
		health["redis"] = redisClient.Health
	}

	router := httpapi.NewRouter(log, health,
		soknadhandler.New(soknadSvc, log.With("component", "soknad-api")),
		journalposthandler.New(journalposter, log.With("component", "journalpost-api")),
		formidling.NewHandler(formidlingSvc, log.With("component", "formidling-api")),
	)
	srv := httpserver.New(cfg.Addr, router)

	if err := metrikkJobb.Start(cfg.MetrikkCron); err != nil {
		log.Error("could not schedule metrics job", "error", err)
		os.Exit(1)
	}
	defer metrikkJobb.Stopp()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("starting punsj", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		err := fordelConsumer.Run(groupCtx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("punsj stopped")
}
