package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Backend  AppBackend  `mapstructure:"backend"`
	Realtime AppRealtime `mapstructure:"realtime"`
	Session  AppSession  `mapstructure:"session"`
}

type App struct {
	Env      string `mapstructure:"env"`
	Version  string `mapstructure:"version"`
	Timezone string `mapstructure:"timezone"`
}

type AppBackend struct {
	BaseUrl                 string `mapstructure:"base_url"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds"`
	// MaxRequestsPerSecond paces outbound calls; zero or less disables pacing
	MaxRequestsPerSecond int `mapstructure:"max_requests_per_second"`
}

type AppRealtime struct {
	Url                       string `mapstructure:"url"`
	HandshakeTimeoutInSeconds int    `mapstructure:"handshake_timeout_in_seconds"`
	PingTimeoutInSeconds      int    `mapstructure:"ping_timeout_in_seconds"`
}

type AppSession struct {
	AutoLoginAfterRegister bool `mapstructure:"auto_login_after_register"`
}
