package config

import (
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "ccsed.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "ccsed_error.log"),
		},
		SessionStore: SessionStore{
			Driver:   utils.GetEnvString("SESSION_STORE_DRIVER", constvars.SessionStoreDriverFile),
			FilePath: utils.GetEnvString("SESSION_STORE_FILE_PATH", ""),
			Key:      utils.GetEnvString("SESSION_STORE_KEY", constvars.DefaultSessionStoreKey),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	backendBaseUrl := strings.TrimRight(utils.GetEnvString("BACKEND_BASE_URL", "https://api.dataweb.tech"), "/")
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "America/La_Paz"),
		},
		Backend: AppBackend{
			BaseUrl:                 backendBaseUrl,
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 15),
			MaxRequestsPerSecond:    utils.GetEnvInt("BACKEND_MAX_REQUESTS_PER_SECOND", 5),
		},
		Realtime: AppRealtime{
			Url:                       strings.TrimRight(utils.GetEnvString("REALTIME_URL", backendBaseUrl), "/"),
			HandshakeTimeoutInSeconds: utils.GetEnvInt("REALTIME_HANDSHAKE_TIMEOUT_IN_SECONDS", 10),
			PingTimeoutInSeconds:      utils.GetEnvInt("REALTIME_PING_TIMEOUT_IN_SECONDS", 20),
		},
		Session: AppSession{
			AutoLoginAfterRegister: utils.GetEnvBool("SESSION_AUTO_LOGIN_AFTER_REGISTER", false),
		},
	}
}
