package config

import (
	"fmt"
)

type hardcodedService struct {
}

func NewHardCoded() IService {
	return &hardcodedService{}
}

func (svc *hardcodedService) GetModeMaxShutdownTime() int {
	return 5
}

func (svc *hardcodedService) GetServerHost() string {
	// Bind to all interfaces
	return "0.0.0.0"
}

func (svc *hardcodedService) GetServerPort() int {
	return 5001
}

func (svc *hardcodedService) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", svc.GetServerHost(), svc.GetServerPort())
}

func (svc *hardcodedService) GetGinMode() string {
	return "release"
}

func (svc *hardcodedService) GetCorsOrigins() []string {
	return []string{"*"}
}

func (svc *hardcodedService) GetMaxBodyBytes() int64 {
	// Same ceiling the report API puts on uploaded images
	return 50 << 20
}

func (svc *hardcodedService) GetLogLevel() string {
	return "info"
}

func (svc *hardcodedService) GetLogFile() string {
	// Empty means console only
	return ""
}

func (svc *hardcodedService) GetDataFolder() string {
	return "./settings"
}

func (svc *hardcodedService) GetStatsPeriodicTimeout() int {
	return 60
}

func (svc *hardcodedService) GetEventQueueSize() int {
	return 100
}

func (svc *hardcodedService) GetWebhookURL() string {
	return ""
}

func (svc *hardcodedService) GetWebhookTimeout() int {
	return 10
}

func (svc *hardcodedService) GetSampleCount() int {
	return 10
}
