package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/eappleew/Chat-Cheappt/internal/config"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/logger"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/observability"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver"
)

// Application bundles the wired top level components.
type Application struct {
	HTTPServer *httpserver.HTTPServer
	Config     *config.Config
	Logger     zerolog.Logger
}

// Start runs the API server and the metrics listener until either fails.
func (application *Application) Start() {
	var eg errgroup.Group
	eg.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		return http.ListenAndServe(fmt.Sprintf(":%d", application.Config.MetricsPort), mux)
	})
	eg.Go(func() error {
		return application.HTTPServer.Run()
	})

	if err := eg.Wait(); err != nil {
		application.Logger.Fatal().Err(err).Msg("server exited")
	}
}

func main() {
	ctx := context.Background()
	log := logger.GetLogger()

	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	otelShutdown, err := observability.Setup(ctx, application.Config, application.Logger)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	application.Start()
}
