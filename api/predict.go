package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mdobak/go-xerrors"

	"github.com/ameya-jarvis-07/Potholes-Detection/model"
	"github.com/ameya-jarvis-07/Potholes-Detection/pipeline"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/inference"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/lgr"
)

// HandlePredict answers POST /predict. The body is never rejected: anything
// that is not a JSON object counts as an empty request.
func HandlePredict(inferenceSvc inference.IService, events chan<- pipeline.PredictionEvent, maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		requestID := c.GetString(requestIDKey)

		body, err := readBody(c, maxBodyBytes)
		if err != nil {
			lgr.Logger.Warn(
				"unreadable predict body, treating as empty",
				slog.String(requestIDKey, requestID),
				slog.Any("error", xerrors.New(err.Error())),
			)
			body = nil
		}

		req := model.ParsePredictRequest(body)
		prediction, err := inferenceSvc.Invoke(ctx, req)
		if err != nil {
			// Only reachable when the caller went away mid-request
			lgr.Logger.Warn(
				"prediction abandoned",
				slog.String(requestIDKey, requestID),
				slog.Any("error", xerrors.New(err.Error())),
			)
			writeMessage(c, "prediction unavailable", http.StatusServiceUnavailable)
			return
		}

		c.JSON(http.StatusOK, prediction)

		pipeline.Offer(events, pipeline.PredictionEvent{
			RequestID:  requestID,
			Prediction: prediction,
			Timestamp:  time.Now(),
		})
	}
}

func HandleStats(tally *pipeline.Tally) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, tally.Snapshot())
	}
}

func handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
