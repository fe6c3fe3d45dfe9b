package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Engine   EngineConfig
	Catalog  CatalogConfig
	OpenAI   OpenAIConfig
	JWT      JWTConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTLSec   int
}

// EngineConfig carries the serving knobs of the ranking engine. Weight
// profiles themselves live in the preset table, not here.
type EngineConfig struct {
	TopK int
}

// CatalogConfig selects where catalog items come from.
// Source "file" reads JSON files from Dir (demo mode), "postgres" reads
// the catalog_items table, optionally cached in Redis.
type CatalogConfig struct {
	Source     string
	Dir        string
	SeedDir    string
	CacheItems bool
}

type OpenAIConfig struct {
	APIKey string
	URL    string
	Model  string
}

type JWTConfig struct {
	SecretKey string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "WhyEngine API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "why_engine"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			CacheTTLSec:   getEnvInt("REDIS_CACHE_TTL_SEC", 300),
		},
		Engine: EngineConfig{
			TopK: getEnvInt("ENGINE_TOP_K", 5),
		},
		Catalog: CatalogConfig{
			Source:     getEnv("CATALOG_SOURCE", "file"),
			Dir:        getEnv("CATALOG_DIR", "./data"),
			SeedDir:    getEnv("CATALOG_SEED_DIR", ""),
			CacheItems: getEnv("CATALOG_CACHE", "false") == "true",
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
			URL:    getEnv("OPENAI_URL", "https://api.openai.com/v1/chat/completions"),
			Model:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
	}

	if cfg.Engine.TopK <= 0 {
		return nil, errors.New("ENGINE_TOP_K must be greater than 0")
	}

	switch cfg.Catalog.Source {
	case "file":
		if cfg.Catalog.Dir == "" {
			return nil, errors.New("missing catalog dir")
		}
	case "postgres":
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	default:
		return nil, errors.New("catalog source must be file or postgres")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return n
}
