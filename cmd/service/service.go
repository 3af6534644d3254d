// Package service implements the long-running polling service command.
package service

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/tphakala/vocalization-go/internal/api"
	"github.com/tphakala/vocalization-go/internal/conf"
	"github.com/tphakala/vocalization-go/internal/datastore"
	"github.com/tphakala/vocalization-go/internal/logger"
	"github.com/tphakala/vocalization-go/internal/observability"
	"github.com/tphakala/vocalization-go/internal/poller"
	"github.com/tphakala/vocalization-go/internal/vocalization"
)

const shutdownTimeout = 10 * time.Second

// Command creates the service command running the polling loop and the
// reporting API.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Run the detection polling service",
		Long:  `Continuously polls the BirdNET-Pi database for new detections and classifies their vocalization type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runService(settings)
		},
	}

	cmd.Flags().IntVar(&settings.Poller.Interval, "interval", settings.Poller.Interval, "Seconds between polls")
	cmd.Flags().Float64Var(&settings.Poller.MinConfidence, "min-confidence", settings.Poller.MinConfidence, "Minimum confidence to store a result")
	cmd.Flags().BoolVar(&settings.Web.Enabled, "web", settings.Web.Enabled, "Serve the reporting HTTP API")
	cmd.Flags().StringVar(&settings.Web.Address, "address", settings.Web.Address, "HTTP listen address")

	return cmd
}

func runService(settings *conf.Settings) error {
	log := logger.Global().Module("service")

	registry := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(registry)
	if err != nil {
		return err
	}

	store := datastore.NewSQLiteStore(settings.DatabasePath())
	if err := store.Open(); err != nil {
		return err
	}
	defer store.Close()

	birdnetDB := datastore.NewBirdNETDB(settings.BirdNETDBPath())
	if err := birdnetDB.Open(); err != nil {
		return err
	}
	defer birdnetDB.Close()

	classifier := vocalization.New(settings, metrics)
	defer classifier.Close()

	log.Info("Service starting",
		logger.String("birdnet_db", settings.BirdNETDBPath()),
		logger.String("result_db", settings.DatabasePath()),
		logger.Int("models", classifier.ModelCount()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := poller.New(settings, classifier, birdnetDB, store, metrics)

	errCh := make(chan error, 2)

	var server *api.Server
	if settings.Web.Enabled {
		server = api.New(settings, store, classifier, registry)
		go func() {
			if err := server.Start(); err != nil {
				errCh <- err
			}
		}()
	}

	go func() {
		if err := p.Run(ctx); err != nil && err != context.Canceled {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-errCh:
		log.Error("Service component failed", logger.Error(err))
		stop()
	}

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn("HTTP server shutdown failed", logger.Error(err))
		}
	}

	log.Info("Service stopped")
	return nil
}
