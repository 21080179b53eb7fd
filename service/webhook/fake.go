package webhook

import (
	"context"
	"log/slog"

	"github.com/ameya-jarvis-07/Potholes-Detection/service/config"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/lgr"
)

// webhookService only logs the payload. Used when no webhook URL is configured.
type webhookService struct {
	CfgSvc config.IService
}

func NewFake(cfgsvc config.IService) IService {
	return &webhookService{
		CfgSvc: cfgsvc,
	}
}

func (svc *webhookService) Post(_ context.Context, payload map[string]interface{}) error {
	lgr.Logger.Debug(
		"webhook payload (not sent)",
		slog.Any("payload", payload),
	)
	return nil
}
