package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Log     LogConfig
	Metrics MetricsConfig
	Tracing TracingConfig
	HTTP    HTTPConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ServiceName     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// MongoDBConfig describes the comment store. An empty URI selects the
// in-memory store.
type MongoDBConfig struct {
	URI             string
	Database        string
	Collection      string
	Timeout         time.Duration
	ConnectAttempts int
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

type TracingConfig struct {
	Enabled    bool
	Endpoint   string
	Insecure   bool
	SampleRate float64
}

type HTTPConfig struct {
	RequestIDHeader string
	AllowOrigin     string
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(envFile())

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "5020")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)
	v.SetDefault("SERVICE_NAME", "go-comments")
	v.SetDefault("MONGODB_DATABASE", "comments")
	v.SetDefault("MONGODB_COLLECTION", "comments")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("MONGODB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PATH", "/metrics")
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_INSECURE", true)
	v.SetDefault("TRACING_SAMPLE_RATE", 1.0)
	v.SetDefault("REQUEST_ID_HEADER", "X-Request-ID")
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("SERVER_PORT"),
			Host:            v.GetString("SERVER_HOST"),
			Environment:     v.GetString("SERVER_ENVIRONMENT"),
			ServiceName:     v.GetString("SERVICE_NAME"),
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: time.Duration(v.GetInt("SERVER_SHUTDOWN_TIMEOUT")) * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:             v.GetString("MONGODB_URI"),
			Database:        v.GetString("MONGODB_DATABASE"),
			Collection:      v.GetString("MONGODB_COLLECTION"),
			Timeout:         time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
			ConnectAttempts: v.GetInt("MONGODB_CONNECT_ATTEMPTS"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
			Path:    v.GetString("METRICS_PATH"),
		},
		Tracing: TracingConfig{
			Enabled:    v.GetBool("TRACING_ENABLED"),
			Endpoint:   v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Insecure:   v.GetBool("TRACING_INSECURE"),
			SampleRate: v.GetFloat64("TRACING_SAMPLE_RATE"),
		},
		HTTP: HTTPConfig{
			RequestIDHeader: v.GetString("REQUEST_ID_HEADER"),
			AllowOrigin:     v.GetString("CORS_ALLOW_ORIGIN"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	if c.MongoDB.URI != "" && c.MongoDB.Database == "" {
		return fmt.Errorf("MONGODB_DATABASE is required when MONGODB_URI is set")
	}
	if c.MongoDB.ConnectAttempts < 1 {
		c.MongoDB.ConnectAttempts = 1
	}
	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		return fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT is required when TRACING_ENABLED=true")
	}
	return nil
}

// envFile lets deployments point at a specific dotenv file; the default is
// a .env in the working directory.
func envFile() string {
	if p := os.Getenv("COMMENTS_ENV_FILE"); p != "" {
		return p
	}
	return ".env"
}
