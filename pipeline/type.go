package pipeline

import (
	"context"
	"time"

	"github.com/ameya-jarvis-07/Potholes-Detection/model"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/config"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/data"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/inference"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/webhook"
)

type ServicesFactory struct {
	CfgSvc       config.IService
	DataSvc      data.IService
	InferenceSvc inference.IService
	WebhookSvc   webhook.IService
}

type PredictionEvent struct {
	RequestID  string
	Prediction model.Prediction
	Timestamp  time.Time
}

// Signature of collector function
type Collector func(canx context.Context, svcs ServicesFactory, tally *Tally, errorStream chan interface{}, statsStream chan interface{}) chan PredictionEvent
