package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mdobak/go-xerrors"

	"github.com/ameya-jarvis-07/Potholes-Detection/mode"
	"github.com/ameya-jarvis-07/Potholes-Detection/pipeline"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/config"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/data"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/inference"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/lgr"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/webhook"
)

const (
	// WARNING: this has to be bigger that the mode processor shutdown time
	waitOnShutdown = 8 * time.Second
)

var modeProcessors = map[string]mode.Processor{
	"server": mode.Server,
	"sample": mode.Sample,
}

func main() {
	rootCtx := context.Background()
	canxCtx, canxFn := context.WithCancel(rootCtx)
	defer canxFn()

	// Hook up a signal handler to cancel the context
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		lgr.Logger.Info(
			"received kill signal",
			slog.Any("signal", sig),
		)
		canxFn()
	}()

	// Load env vars if we are in DEV mode. A missing .env is fine.
	if os.Getenv("RUN_TIME_ENV") == "dev" || os.Getenv("RUN_TIME_ENV") == "" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			lgr.Logger.Error("error loading .env file", slog.Any("error", xerrors.New(err.Error())))
			panic("error loading .env file")
		}
	}

	modeType := "server"
	args := os.Args[1:]
	if len(args) > 0 {
		modeType = args[0]
	}

	modeProc, ok := modeProcessors[modeType]
	if !ok {
		lgr.Logger.Error("invalid mode", slog.String("mode", modeType))
		panic("invalid mode")
	}

	// Create the services needed for the mode processor
	// Config service
	cfgSvc := config.NewEnv()
	lgr.Setup(cfgSvc.GetLogLevel(), cfgSvc.GetLogFile())
	// Data service
	dataSvc := data.NewFilesDB(cfgSvc)
	// inference service
	inferenceSvc := inference.NewFake()
	// webhook service
	webhookSvc := webhook.New(cfgSvc)

	svcs := pipeline.ServicesFactory{
		CfgSvc:       cfgSvc,
		DataSvc:      dataSvc,
		InferenceSvc: inferenceSvc,
		WebhookSvc:   webhookSvc,
	}

	// Create mode processor result
	modeProcResult := make(chan error, 1)

	// Start the mode processor
	go func() {
		modeProcResult <- modeProc(canxCtx, svcs)
	}()

	// Wait for cancellation or mode proc
	var exitErr error
	select {
	case <-canxCtx.Done():
		lgr.Logger.Info(
			"potholes context cancelled",
			slog.String("mode", modeType),
		)

	case exitErr = <-modeProcResult:
		if exitErr != nil {
			lgr.Logger.Error(
				"potholes mode processor exited",
				slog.String("mode", modeType),
				slog.Any("error", exitErr),
			)
		}
		canxFn()
		exitWith(exitErr)
		return
	}

	lgr.Logger.Info(
		"potholes is waiting for the mode processor to exit",
	)

	// Give the mode processor up to `waitOnShutdown` to finish its own
	// shutdown before exiting
	timer := time.NewTimer(waitOnShutdown)
	defer timer.Stop()

	select {
	case <-timer.C:
		lgr.Logger.Info(
			"potholes shutdown waiting period expired. Exiting now",
			slog.Duration("period", waitOnShutdown),
		)

	case exitErr = <-modeProcResult:
		if exitErr != nil {
			lgr.Logger.Error(
				"potholes mode processor exited",
				slog.Any("error", exitErr),
			)
		}
	}

	exitWith(exitErr)
}

func exitWith(err error) {
	if err != nil {
		os.Exit(1)
	}
}
