package config

import "time"

type Config struct {
	HTTPAddr         string        `env:"HTTP_ADDR" envDefault:":8080"`
	APIURL           string        `env:"API_URL" envDefault:"http://localhost:5000/api"`
	APITimeout       time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	PostgresEndpoint string        `env:"POSTGRES_ENDPOINT"`
	MongoEndpoint    string        `env:"MONGO_ENDPOINT"`
	AuthCheckWait    time.Duration `env:"AUTH_CHECK_WAIT" envDefault:"1500ms"`
	AssistantDelay   time.Duration `env:"ASSISTANT_DELAY" envDefault:"1s"`
	CookieSecure     bool          `env:"COOKIE_SECURE" envDefault:"false"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON          bool          `env:"LOG_JSON" envDefault:"false"`
	Telegram         Telegram

	// SessionCleanInterval is how often sessions older than their token are purged.
	SessionCleanInterval time.Duration `env:"SESSION_CLEAN_INTERVAL" envDefault:"1h"`
}

type Telegram struct {
	Token   string `env:"TG_TOKEN"`
	Timeout int    `env:"TG_TIMEOUT" envDefault:"60"`
}
