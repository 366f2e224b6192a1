package configuration

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"crosscast/infrastructure/logger"
)

type App struct {
	Port        string `mapstructure:"port" json:"port"`
	SecretKey   string `mapstructure:"secretKey" json:"secretKey"`
	FrontendURL string `mapstructure:"frontendUrl" json:"frontendUrl"`
}

type Psql struct {
	Host     string `mapstructure:"host" json:"host"`
	Port     string `mapstructure:"port" json:"port"`
	User     string `mapstructure:"user" json:"user"`
	Password string `mapstructure:"password" json:"password"`
	DBName   string `mapstructure:"dbName" json:"dbName"`
	SSLMode  string `mapstructure:"sslMode" json:"sslMode"`
}

type Database struct {
	Psql Psql `mapstructure:"psql" json:"psql"`
}

type RedisClient struct {
	Host     string `mapstructure:"host" json:"host"`
	Port     string `mapstructure:"port" json:"port"`
	Password string `mapstructure:"password" json:"password"`
	DB       int    `mapstructure:"db" json:"db"`
}

type YouTube struct {
	ClientID     string   `mapstructure:"clientId" json:"clientId"`
	ClientSecret string   `mapstructure:"clientSecret" json:"clientSecret"`
	RedirectURI  string   `mapstructure:"redirectUri" json:"redirectUri"`
	Scopes       []string `mapstructure:"scopes" json:"scopes"`
}

type Gemini struct {
	APIKey string `mapstructure:"apiKey" json:"apiKey"`
	Model  string `mapstructure:"model" json:"model"`
}

type Publish struct {
	AdapterTimeoutSeconds int     `mapstructure:"adapterTimeoutSeconds" json:"adapterTimeoutSeconds"`
	SimulatedMinDelayMs   int     `mapstructure:"simulatedMinDelayMs" json:"simulatedMinDelayMs"`
	SimulatedMaxDelayMs   int     `mapstructure:"simulatedMaxDelayMs" json:"simulatedMaxDelayMs"`
	SimulatedSuccessRate  float64 `mapstructure:"simulatedSuccessRate" json:"simulatedSuccessRate"`
}

type Config struct {
	App         App         `mapstructure:"app" json:"app"`
	Database    Database    `mapstructure:"database" json:"database"`
	RedisClient RedisClient `mapstructure:"redisClient" json:"redisClient"`
	YouTube     YouTube     `mapstructure:"youtube" json:"youtube"`
	Gemini      Gemini      `mapstructure:"gemini" json:"gemini"`
	Publish     Publish     `mapstructure:"publish" json:"publish"`
}

var C Config

func init() {
	LoadConfig()
}

// LoadConfig reads config.<env>.json when present and then lets
// environment variables override every field, so containerized deploys
// can run without a config file at all.
func LoadConfig() {
	env := os.Getenv("ENV")
	viper.SetConfigName("config" + env)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		logger.GetLogger().WithField("error", err).Info("No config file found, relying on environment variables")
	} else if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to unmarshal configuration")
	}

	applyEnvOverrides(&C)
	applyDefaults(&C)
}

func applyEnvOverrides(c *Config) {
	setString(&c.App.Port, "PORT")
	setString(&c.App.SecretKey, "SECRET_KEY")
	setString(&c.App.FrontendURL, "FRONTEND_URL")

	setString(&c.Database.Psql.Host, "PG_HOST")
	setString(&c.Database.Psql.Port, "PG_PORT")
	setString(&c.Database.Psql.User, "PG_USER")
	setString(&c.Database.Psql.Password, "PG_PASSWORD")
	setString(&c.Database.Psql.DBName, "PG_DATABASE")
	setString(&c.Database.Psql.SSLMode, "PG_SSLMODE")

	setString(&c.RedisClient.Host, "REDIS_HOST")
	setString(&c.RedisClient.Port, "REDIS_PORT")
	setString(&c.RedisClient.Password, "REDIS_PASSWORD")
	setInt(&c.RedisClient.DB, "REDIS_DB")

	setString(&c.YouTube.ClientID, "YOUTUBE_CLIENT_ID")
	setString(&c.YouTube.ClientSecret, "YOUTUBE_CLIENT_SECRET")
	setString(&c.YouTube.RedirectURI, "YOUTUBE_REDIRECT_URI")
	if v := os.Getenv("YOUTUBE_SCOPES"); v != "" {
		c.YouTube.Scopes = strings.Split(v, ",")
	}

	setString(&c.Gemini.APIKey, "GEMINI_API_KEY")
	setString(&c.Gemini.Model, "GEMINI_MODEL")

	setInt(&c.Publish.AdapterTimeoutSeconds, "PUBLISH_ADAPTER_TIMEOUT_SECONDS")
	setInt(&c.Publish.SimulatedMinDelayMs, "PUBLISH_SIMULATED_MIN_DELAY_MS")
	setInt(&c.Publish.SimulatedMaxDelayMs, "PUBLISH_SIMULATED_MAX_DELAY_MS")
	setFloat(&c.Publish.SimulatedSuccessRate, "PUBLISH_SIMULATED_SUCCESS_RATE")
}

func applyDefaults(c *Config) {
	if c.App.Port == "" {
		c.App.Port = "10001"
	}
	if c.Database.Psql.Port == "" {
		c.Database.Psql.Port = "5432"
	}
	if c.Database.Psql.SSLMode == "" {
		c.Database.Psql.SSLMode = "disable"
	}
	if len(c.YouTube.Scopes) == 0 {
		c.YouTube.Scopes = []string{
			"https://www.googleapis.com/auth/youtube.upload",
			"https://www.googleapis.com/auth/youtube.readonly",
		}
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Publish.AdapterTimeoutSeconds <= 0 {
		c.Publish.AdapterTimeoutSeconds = 120
	}
	// Zero is a valid setting for the simulated tunables (no delay,
	// always-fail); default only when neither file nor env provided a value.
	if unset("publish.simulatedMinDelayMs", "PUBLISH_SIMULATED_MIN_DELAY_MS") {
		c.Publish.SimulatedMinDelayMs = 3000
	}
	if unset("publish.simulatedMaxDelayMs", "PUBLISH_SIMULATED_MAX_DELAY_MS") {
		c.Publish.SimulatedMaxDelayMs = 5000
	}
	if unset("publish.simulatedSuccessRate", "PUBLISH_SIMULATED_SUCCESS_RATE") {
		c.Publish.SimulatedSuccessRate = 0.9
	}
}

func unset(configKey, envKey string) bool {
	if _, ok := os.LookupEnv(envKey); ok {
		return false
	}
	return !viper.IsSet(configKey)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
