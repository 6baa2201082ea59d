package config

type (
	DriverConfig struct {
		Redis        Redis
		Logger       Logger
		SessionStore SessionStore
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	// SessionStore selects where the credential is persisted. An empty
	// FilePath means the per-user config directory.
	SessionStore struct {
		Driver   string
		FilePath string
		Key      string
	}
)
