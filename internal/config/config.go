package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"

	// DefaultDbParams mirrors the MYSQL_PARAMS env-default.
	DefaultDbParams = "parseTime=true&multiStatements=true"
)

type Config struct {
	AppName           string `env:"APP_NAME" env-default:"easytask"`
	AppEnv            string `env:"APP_ENV" env-default:"dev"`
	AppPort           string `env:"APP_PORT" env-default:"8080"`
	RepositoryDriver  string `env:"REPOSITORY_DRIVER" env-default:"memory"`
	DbHost            string `env:"MYSQL_HOST" env-default:"db"`
	DbPort            string `env:"MYSQL_PORT" env-default:"3306"`
	DbUser            string `env:"MYSQL_USER" env-default:"easytask"`
	DbPassword        string `env:"MYSQL_PASSWORD" env-default:"easytask"`
	DbName            string `env:"MYSQL_DATABASE" env-default:"easytask"`
	DbParams          string `env:"MYSQL_PARAMS" env-default:"parseTime=true&multiStatements=true"`
	RedisAddr         string `env:"REDIS_ADDR" env-default:""`
	RedisPassword     string `env:"REDIS_PASSWORD" env-default:""`
	RedisDB           int    `env:"REDIS_DB" env-default:"0"`
	DefaultTheme      string `env:"DEFAULT_THEME" env-default:"theme-purple"`
	TranslationFolder string `env:"TRANSLATION_FOLDER" env-default:"pkg/translator/translation"`
	LogLevel          string `env:"LOG_LEVEL" env-default:"info"`
	LogFile           string `env:"LOG_FILE" env-default:""`
	TrustedProxiesRaw string `env:"TRUSTED_PROXIES" env-default:""`
	CorsOriginsRaw    string `env:"CORS_ALLOW_ORIGINS" env-default:"*"`
	TrustedProxies    []string
	CorsOrigins       []string
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	switch cfg.RepositoryDriver {
	case "":
		cfg.RepositoryDriver = DriverMemory
	case DriverMemory, DriverMySQL:
	default:
		return nil, fmt.Errorf("REPOSITORY_DRIVER must be %q or %q, got %q", DriverMemory, DriverMySQL, cfg.RepositoryDriver)
	}

	cfg.TrustedProxies = splitList(cfg.TrustedProxiesRaw)
	cfg.CorsOrigins = splitList(cfg.CorsOriginsRaw)
	return &cfg, nil
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
