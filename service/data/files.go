package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/xerrors"

	"github.com/ameya-jarvis-07/Potholes-Detection/model"
	"github.com/ameya-jarvis-07/Potholes-Detection/service/config"
)

const (
	errorsFile         = "errors"
	predictorStatsFile = "predictor-stats"
)

type filesDBService struct {
	CfgSvc config.IService
	mu     sync.Mutex
}

func NewFilesDB(cfgsvc config.IService) IService {
	return &filesDBService{
		CfgSvc: cfgsvc,
	}
}

func (svc *filesDBService) NewError(err interface{}) error {
	// Determine if the error is custom
	var customErr model.CustomError
	switch e := err.(type) {
	case model.CustomError:
		customErr = e
	case error:
		customErr.Processor = "N/A"
		customErr.Inner = e
		customErr.Message = e.Error()
		customErr.StackTrace = "N/A"
	default:
		return xerrors.Errorf("unsupported error value %T", err)
	}

	inner := ""
	if customErr.Inner != nil {
		inner = customErr.Inner.Error()
	}

	// Create an error object to persist
	errorData := struct {
		Timestamp  int64                  `json:"timestamp"`
		Processor  string                 `json:"processor"`
		Inner      string                 `json:"innerError"`
		Message    string                 `json:"message"`
		StackTrace string                 `json:"stackTrace"`
		Misc       map[string]interface{} `json:"misc"`
	}{
		Timestamp:  time.Now().Unix(),
		Processor:  customErr.Processor,
		Inner:      inner,
		Message:    customErr.Message,
		StackTrace: customErr.StackTrace,
		Misc:       customErr.Misc,
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	return newEntity(errorData, errorsFile, svc.CfgSvc)
}

func (svc *filesDBService) NewPredictorStats(stats model.PredictorStats) error {
	if stats.Timestamp == 0 {
		stats.Timestamp = time.Now().Unix()
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	return newEntity(stats, predictorStatsFile, svc.CfgSvc)
}

func (svc *filesDBService) RetrievePredictorStats() ([]model.PredictorStats, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return retrieveEntites[model.PredictorStats](predictorStatsFile, svc.CfgSvc)
}

func entityPath(filename string, cfgsvc config.IService) string {
	return filepath.Join(cfgsvc.GetDataFolder(), fmt.Sprintf("%s.json", filename))
}

func newEntity[T any](entity T, filename string, cfgsvc config.IService) error {
	entities, err := retrieveEntites[T](filename, cfgsvc)
	if err != nil {
		return err
	}

	entities = append(entities, entity)

	data, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return xerrors.Errorf("marshalling %s: %w", filename, err)
	}

	if err := os.MkdirAll(cfgsvc.GetDataFolder(), 0755); err != nil {
		return xerrors.Errorf("creating data folder: %w", err)
	}

	// Rewrite the whole file (with truncation)
	err = os.WriteFile(entityPath(filename, cfgsvc), data, 0644)
	if err != nil {
		return xerrors.Errorf("writing %s: %w", filename, err)
	}

	return nil
}

func retrieveEntites[T any](filename string, cfgsvc config.IService) ([]T, error) {
	entities := []T{}

	data, err := os.ReadFile(entityPath(filename, cfgsvc))
	if errors.Is(err, os.ErrNotExist) {
		// WARNING: File not found, return empty slice
		return entities, nil
	}
	if err != nil {
		return nil, xerrors.Errorf("reading %s: %w", filename, err)
	}

	if len(data) == 0 {
		return entities, nil
	}

	err = json.Unmarshal(data, &entities)
	if err != nil {
		return nil, xerrors.Errorf("unmarshalling %s: %w", filename, err)
	}

	return entities, nil
}
