package mode

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/ameya-jarvis-07/Potholes-Detection/model"
	"github.com/ameya-jarvis-07/Potholes-Detection/pipeline"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/lgr"
)

// Sample prints a batch of predictions for an empty request as JSON lines.
func Sample(canxCtx context.Context, svcs pipeline.ServicesFactory) error {
	return writeSamples(canxCtx, svcs, os.Stdout)
}

func writeSamples(canxCtx context.Context, svcs pipeline.ServicesFactory, w io.Writer) error {
	enc := json.NewEncoder(w)
	tally := pipeline.NewTally("sample")

	for i := 0; i < svcs.CfgSvc.GetSampleCount(); i++ {
		p, err := svcs.InferenceSvc.Invoke(canxCtx, model.PredictRequest{})
		if err != nil {
			return err
		}
		tally.Add(p)

		if err := enc.Encode(p); err != nil {
			return err
		}
	}

	lgr.Logger.Info(
		"samples generated",
		slog.Any("stats", tally.Snapshot()),
	)
	return nil
}
