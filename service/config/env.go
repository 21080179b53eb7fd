package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// envService reads the process environment and falls back to the hardcoded
// values for anything unset or unparsable. The .env file, if any, is loaded
// by main before this service is created.
type envService struct {
	defaults IService
}

func NewEnv() IService {
	return &envService{
		defaults: NewHardCoded(),
	}
}

func (svc *envService) GetModeMaxShutdownTime() int {
	return getEnvInt("MODE_MAX_SHUTDOWN_SECONDS", svc.defaults.GetModeMaxShutdownTime())
}

func (svc *envService) GetServerHost() string {
	return getEnv("HOST", svc.defaults.GetServerHost())
}

func (svc *envService) GetServerPort() int {
	return getEnvInt("PORT", svc.defaults.GetServerPort())
}

func (svc *envService) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", svc.GetServerHost(), svc.GetServerPort())
}

func (svc *envService) GetGinMode() string {
	return getEnv("GIN_MODE", svc.defaults.GetGinMode())
}

func (svc *envService) GetCorsOrigins() []string {
	v := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if v == "" {
		return svc.defaults.GetCorsOrigins()
	}

	origins := []string{}
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return svc.defaults.GetCorsOrigins()
	}
	return origins
}

func (svc *envService) GetMaxBodyBytes() int64 {
	v := strings.TrimSpace(os.Getenv("MAX_BODY_BYTES"))
	if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
		return n
	}
	return svc.defaults.GetMaxBodyBytes()
}

func (svc *envService) GetLogLevel() string {
	return getEnv("LOG_LEVEL", svc.defaults.GetLogLevel())
}

func (svc *envService) GetLogFile() string {
	return getEnv("LOG_FILE", svc.defaults.GetLogFile())
}

func (svc *envService) GetDataFolder() string {
	return getEnv("DATA_FOLDER", svc.defaults.GetDataFolder())
}

func (svc *envService) GetStatsPeriodicTimeout() int {
	return getEnvInt("STATS_PERIOD_SECONDS", svc.defaults.GetStatsPeriodicTimeout())
}

func (svc *envService) GetEventQueueSize() int {
	return getEnvInt("EVENT_QUEUE_SIZE", svc.defaults.GetEventQueueSize())
}

func (svc *envService) GetWebhookURL() string {
	return getEnv("WEBHOOK_URL", svc.defaults.GetWebhookURL())
}

func (svc *envService) GetWebhookTimeout() int {
	return getEnvInt("WEBHOOK_TIMEOUT_SECONDS", svc.defaults.GetWebhookTimeout())
}

func (svc *envService) GetSampleCount() int {
	return getEnvInt("SAMPLE_COUNT", svc.defaults.GetSampleCount())
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// Only positive integers are accepted
func getEnvInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return n
	}
	return def
}
