package inference

import (
	"context"

	"github.com/ameya-jarvis-07/Potholes-Detection/model"
)

// Inclusive bounds of the generated values
const (
	MinCount      = 0
	MaxCount      = 5
	MinConfidence = 60
	MaxConfidence = 99
)

type IService interface {
	Invoke(ctx context.Context, req model.PredictRequest) (model.Prediction, error)
}
