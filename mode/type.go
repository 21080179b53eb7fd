package mode

import (
	"context"
	"log/slog"

	"github.com/ameya-jarvis-07/Potholes-Detection/model"
	"github.com/ameya-jarvis-07/Potholes-Detection/pipeline"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/data"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/lgr"
)

type Processor func(canxCtx context.Context, svcs pipeline.ServicesFactory) error

func procStats(datasvc data.IService, stats interface{}) {
	switch stats := stats.(type) {
	case model.PredictorStats:
		procPredictorStats(datasvc, stats)
	default:
		lgr.Logger.Error(
			"unknown stats type",
			slog.Any("stats", stats),
		)
	}
}

func procPredictorStats(datasvc data.IService, stats model.PredictorStats) {
	lgr.Logger.Debug(
		"predictor stats",
		slog.Any("stats", stats),
	)

	err := datasvc.NewPredictorStats(stats)
	if err != nil {
		lgr.Logger.Error(
			"failed to store predictor stats",
			slog.Any("stats", stats),
			slog.Any("error", err),
		)
	}
}

func procError(datasvc data.IService, err interface{}) {
	lgr.Logger.Error(
		"processor error",
		slog.Any("error", err),
	)

	errTemp := datasvc.NewError(err)
	if errTemp != nil {
		lgr.Logger.Error(
			"failed to store error",
			slog.Any("error", errTemp),
		)
	}
}
