package mode

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mdobak/go-xerrors"

	"github.com/ameya-jarvis-07/Potholes-Detection/api"
	"github.com/ameya-jarvis-07/Potholes-Detection/model"
	"github.com/ameya-jarvis-07/Potholes-Detection/pipeline"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/lgr"
)

// Server serves the prediction API until the context is cancelled or the
// listener fails.
func Server(canxCtx context.Context, svcs pipeline.ServicesFactory) error {
	// Create error and stats streams. They are never closed: the collector
	// may still be selecting on them while it observes cancellation.
	errorStream := make(chan interface{})
	statsStream := make(chan interface{})

	// The collector outlives the root context so that requests finishing
	// during shutdown are still tallied
	collectorCtx, collectorCanxFn := context.WithCancel(context.WithoutCancel(canxCtx))
	defer collectorCanxFn()

	tally := pipeline.NewTally("simpleCollector")
	events := pipeline.SimpleCollector(collectorCtx, svcs, tally, errorStream, statsStream)

	router, err := api.NewRouter(api.Options{
		CfgSvc:       svcs.CfgSvc,
		InferenceSvc: svcs.InferenceSvc,
		Tally:        tally,
		Events:       events,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              svcs.CfgSvc.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveResult := make(chan error, 1)
	go func() {
		lgr.Logger.Info(
			"prediction server listening",
			slog.String("address", srv.Addr),
		)
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveResult <- err
	}()

	var serveErr error

	// Wait for cancellation, server failure, stats or error
	for {
		select {
		case <-canxCtx.Done():
			lgr.Logger.Info(
				"prediction server context cancelled",
			)
			goto resume

		case err := <-serveResult:
			if err != nil {
				serveErr = xerrors.Newf("prediction server failed: %w", err)
				procError(svcs.DataSvc, model.GenError("server_mode",
					err,
					map[string]interface{}{"address": srv.Addr},
					"error serving http"))
			}
			goto resume

		case s := <-statsStream:
			procStats(svcs.DataSvc, s)

		case e := <-errorStream:
			procError(svcs.DataSvc, e)
		}
	}

	// Wait in a non-blocking way for the shutdown period so in-flight
	// requests can finish and the collector can report what it has
resume:
	lgr.Logger.Info(
		"prediction server is shutting down",
	)

	period := time.Duration(svcs.CfgSvc.GetModeMaxShutdownTime()) * time.Second
	shutdownCtx, shutdownCanxFn := context.WithTimeout(context.Background(), period)
	defer shutdownCanxFn()

	shutdownDone := make(chan error, 1)
	go func() {
		shutdownDone <- srv.Shutdown(shutdownCtx)
	}()

	for {
		select {
		case <-shutdownCtx.Done():
			lgr.Logger.Info(
				"prediction server shutdown waiting period expired. Exiting now",
				slog.Duration("period", period),
			)
			collectorCanxFn()
			return serveErr

		case err := <-shutdownDone:
			if err != nil {
				lgr.Logger.Error(
					"prediction server shutdown failed",
					slog.Any("error", xerrors.New(err.Error())),
				)
			}
			// Final snapshot before the collector goes away
			procStats(svcs.DataSvc, tally.Snapshot())
			collectorCanxFn()
			return serveErr

		case s := <-statsStream:
			procStats(svcs.DataSvc, s)

		case e := <-errorStream:
			procError(svcs.DataSvc, e)
		}
	}
}
