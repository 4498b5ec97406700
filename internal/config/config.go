package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Generator GeneratorConfig
	Upload    UploadConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// GeneratorConfig holds text-generation provider settings.
type GeneratorConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxTokens    int    `mapstructure:"max_tokens"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// UploadConfig holds transient upload storage settings.
type UploadConfig struct {
	Dir           string `mapstructure:"dir"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// CORSConfig holds CORS settings. AllowedSuffixes admits any https origin
// under a recognized hosting domain (e.g. GitHub Pages).
type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowedSuffixes []string `mapstructure:"allowed_suffixes"`
	FrontendURL     string   `mapstructure:"frontend_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the LEGIBRIEF_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LEGIBRIEF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":10000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Generator defaults
	v.SetDefault("generator.provider", "openai")
	v.SetDefault("generator.api_key", "")
	v.SetDefault("generator.default_model", "")
	v.SetDefault("generator.max_tokens", 4000)
	v.SetDefault("generator.timeout_secs", 120)

	// Upload defaults
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_file_size_mb", 10)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5000,http://127.0.0.1:5000")
	v.SetDefault("cors.allowed_suffixes", ".github.io")
	v.SetDefault("cors.frontend_url", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "LEGIBRIEF_SERVER_PORT",
		"server.read_timeout":     "LEGIBRIEF_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "LEGIBRIEF_SERVER_WRITE_TIMEOUT",
		"server.environment":      "LEGIBRIEF_SERVER_ENVIRONMENT",
		"generator.provider":      "LEGIBRIEF_GENERATOR_PROVIDER",
		"generator.api_key":       "LEGIBRIEF_GENERATOR_API_KEY",
		"generator.default_model": "LEGIBRIEF_GENERATOR_DEFAULT_MODEL",
		"generator.max_tokens":    "LEGIBRIEF_GENERATOR_MAX_TOKENS",
		"generator.timeout_secs":  "LEGIBRIEF_GENERATOR_TIMEOUT_SECS",
		"upload.dir":              "LEGIBRIEF_UPLOAD_DIR",
		"upload.max_file_size_mb": "LEGIBRIEF_UPLOAD_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":    "LEGIBRIEF_CORS_ALLOWED_ORIGINS",
		"cors.allowed_suffixes":   "LEGIBRIEF_CORS_ALLOWED_SUFFIXES",
		"cors.frontend_url":       "LEGIBRIEF_CORS_FRONTEND_URL",
		"log.level":               "LEGIBRIEF_LOG_LEVEL",
		"log.format":              "LEGIBRIEF_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Render/Railway/Heroku set a PORT env var. Use it if LEGIBRIEF_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LEGIBRIEF_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Generator = GeneratorConfig{
		Provider:     v.GetString("generator.provider"),
		APIKey:       v.GetString("generator.api_key"),
		DefaultModel: v.GetString("generator.default_model"),
		MaxTokens:    v.GetInt("generator.max_tokens"),
		TimeoutSecs:  v.GetInt("generator.timeout_secs"),
	}
	cfg.Upload = UploadConfig{
		Dir:           v.GetString("upload.dir"),
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins:  splitList(v.GetString("cors.allowed_origins")),
		AllowedSuffixes: splitList(v.GetString("cors.allowed_suffixes")),
		FrontendURL:     v.GetString("cors.frontend_url"),
	}
	if cfg.CORS.FrontendURL != "" {
		cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, cfg.CORS.FrontendURL)
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}

// splitList parses a comma-separated config value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
