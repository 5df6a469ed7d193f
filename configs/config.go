package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs at startup. It is loaded once
// in main and handed to constructors; nothing reads the environment after
// Load returns.
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Consul ConsulConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type ConsulConfig struct {
	Address     string
	ServiceName string
	ServiceHost string
}

type CORSConfig struct {
	AllowOrigins string
}

// Enabled reports whether the canvas cache should be wired at all.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c ConsulConfig) Enabled() bool {
	return c.Address != ""
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "4000"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "whiteboard"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: getEnvDuration("CANVAS_CACHE_TTL", 30*time.Second),
		},
		Consul: ConsulConfig{
			Address:     getEnv("CONSUL_ADDRESS", ""),
			ServiceName: getEnv("CONSUL_SERVICE_NAME", "whiteboard-server"),
			ServiceHost: getEnv("CONSUL_SERVICE_HOST", "localhost"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid integer for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using default %s", key, fallback)
	}
	return fallback
}
