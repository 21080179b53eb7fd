package data

import "github.com/ameya-jarvis-07/Potholes-Detection/model"

// IService stores operational records only. Prediction results are never
// written anywhere.
type IService interface {
	NewError(err interface{}) error
	NewPredictorStats(stats model.PredictorStats) error
	RetrievePredictorStats() ([]model.PredictorStats, error)
}
