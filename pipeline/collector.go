package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/ameya-jarvis-07/Potholes-Detection/model"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/lgr"
)

// SimpleCollector tallies every prediction event, forwards high severity
// predictions to the webhook service and publishes a stats snapshot on the
// stats stream every stats period.
//
// The returned channel is never closed. Producers must use Offer so that a
// slow or stopped collector never holds up a request.
func SimpleCollector(canx context.Context, svcs ServicesFactory, tally *Tally, errorStream chan interface{}, statsStream chan interface{}) chan PredictionEvent {
	in := make(chan PredictionEvent, svcs.CfgSvc.GetEventQueueSize())
	period := time.Duration(svcs.CfgSvc.GetStatsPeriodicTimeout()) * time.Second

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-canx.Done():
				lgr.Logger.Info(
					"collector context cancelled",
				)
				return

			case <-ticker.C:
				if !publish(canx, statsStream, tally.Snapshot()) {
					return
				}

			case ev := <-in:
				tally.Add(ev.Prediction)
				if ev.Prediction.Severity != model.SeverityHigh {
					continue
				}

				payload := map[string]interface{}{
					"requestId":  ev.RequestID,
					"source":     ev.Prediction.Source(),
					"label":      string(ev.Prediction.Severity),
					"count":      ev.Prediction.Count,
					"confidence": ev.Prediction.Confidence,
					"timestamp":  ev.Timestamp.Format(time.RFC3339),
				}
				lgr.Logger.Info(
					"high severity prediction",
					slog.Any("payload", payload),
				)

				if err := svcs.WebhookSvc.Post(canx, payload); err != nil {
					tally.AddError()
					if !publish(canx, errorStream, model.GenError("simple_collector",
						err,
						map[string]interface{}{"requestId": ev.RequestID},
						"error posting alert for %s",
						ev.Prediction.Source())) {
						return
					}
					continue
				}
				tally.AddAlert()
			}
		}
	}()

	return in
}

// Offer hands an event to a collector without blocking. It reports whether
// the event was queued.
func Offer(events chan<- PredictionEvent, ev PredictionEvent) bool {
	if events == nil {
		return false
	}

	select {
	case events <- ev:
		return true
	default:
		lgr.Logger.Debug(
			"collector queue full, dropping prediction event",
			slog.String("requestId", ev.RequestID),
		)
		return false
	}
}

// The mode processor stops reading the streams once it exits, so a send
// must give up when the context is cancelled.
func publish(canx context.Context, stream chan interface{}, v interface{}) bool {
	select {
	case stream <- v:
		return true
	case <-canx.Done():
		return false
	}
}
