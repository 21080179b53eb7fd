package config

type IService interface {
	GetModeMaxShutdownTime() int
	GetServerHost() string
	GetServerPort() int
	GetServerAddress() string
	GetGinMode() string
	GetCorsOrigins() []string
	GetMaxBodyBytes() int64
	GetLogLevel() string
	GetLogFile() string
	GetDataFolder() string
	GetStatsPeriodicTimeout() int
	GetEventQueueSize() int
	GetWebhookURL() string
	GetWebhookTimeout() int
	GetSampleCount() int
}
