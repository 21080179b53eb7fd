package webhook

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/xerrors"

	"github.com/ameya-jarvis-07/Potholes-Detection/service/config"
)

type httpService struct {
	CfgSvc config.IService
	client *resty.Client
	url    string
}

// NewHTTP posts payloads as JSON to the configured webhook URL. There is no
// retry: a failed post is reported to the caller once.
func NewHTTP(cfgsvc config.IService) IService {
	client := resty.New().
		SetTimeout(time.Duration(cfgsvc.GetWebhookTimeout()) * time.Second).
		SetHeader("Content-Type", "application/json")

	return &httpService{
		CfgSvc: cfgsvc,
		client: client,
		url:    cfgsvc.GetWebhookURL(),
	}
}

// New picks the HTTP webhook when a URL is configured, the fake otherwise.
func New(cfgsvc config.IService) IService {
	if cfgsvc.GetWebhookURL() == "" {
		return NewFake(cfgsvc)
	}
	return NewHTTP(cfgsvc)
}

func (svc *httpService) Post(ctx context.Context, payload map[string]interface{}) error {
	resp, err := svc.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(svc.url)
	if err != nil {
		return xerrors.Errorf("posting webhook: %w", err)
	}

	if resp.IsError() {
		return xerrors.Errorf("webhook responded %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
