package configuration

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

var Config *AppConfig

func init() {
	Config = loadFromEnv()
}

type AppConfig struct {
	AppName        string
	AppVersion     string
	AppRevision    string
	AppBuiltAt     string
	Env            string
	LogLevel       string
	RestConfig     *RestConfig
	DatabaseConfig *DatabaseConfig
}

type RestConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
	TrustedProxies  []string
}

// DatabaseConfig is only used by the readiness database check.
type DatabaseConfig struct {
	Name     string
	Host     string
	Port     int
	Username string
	Password string
	SSL      string // disable | require | verify-ca | verify-full
	Addr     string
}

// IsLocal reports whether the service runs on a developer machine.
func (c *AppConfig) IsLocal() bool {
	return c.Env == "" || c.Env == "local"
}

func loadFromEnv() *AppConfig {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "greeter")
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("APP_REVISION", "unknown")
	v.SetDefault("APP_BUILT_AT", "unknown")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_LOG_LEVEL", "info")
	v.SetDefault("APP_REST_HOST", "0.0.0.0")
	v.SetDefault("APP_REST_PORT", 8080)
	v.SetDefault("APP_REST_SHUTDOWN_TIMEOUT", "10s")

	return &AppConfig{
		AppName:     v.GetString("APP_NAME"),
		AppVersion:  v.GetString("APP_VERSION"),
		AppRevision: v.GetString("APP_REVISION"),
		AppBuiltAt:  v.GetString("APP_BUILT_AT"),
		Env:         v.GetString("APP_ENV"),
		LogLevel:    v.GetString("APP_LOG_LEVEL"),
		RestConfig: &RestConfig{
			Host:            v.GetString("APP_REST_HOST"),
			Port:            v.GetInt("APP_REST_PORT"),
			ShutdownTimeout: v.GetDuration("APP_REST_SHUTDOWN_TIMEOUT"),
			TrustedProxies:  splitList(v.GetString("APP_REST_TRUSTED_PROXIES")),
		},
		DatabaseConfig: &DatabaseConfig{
			Name:     v.GetString("APP_DB__NAME"),
			Host:     v.GetString("APP_DB__HOST"),
			Port:     v.GetInt("APP_DB__PORT"),
			Username: v.GetString("APP_DB__USERNAME"),
			Password: v.GetString("APP_DB__PASSWORD"),
			SSL:      v.GetString("APP_DB_SSL"),
			Addr:     v.GetString("APP_DB_ADDR"),
		},
	}
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
