package infra

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerName           string
	ServerPort           string
	Environment          string
	ApiBaseURL           string
	PollInterval         time.Duration
	NotificationInterval time.Duration
	HttpTimeout          time.Duration
	SearchPlate          string
	RedisUrl             string
	RedisAlertChannel    string
}

func NewConfig() Config {
	if os.Getenv("ENVIRONMENT") == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Arquivo .env não encontrado, usando variáveis de ambiente")
		}
	}

	return Config{
		ServerName:           getEnv("SERVER_NAME", "simai-painel"),
		ServerPort:           getEnv("SERVER_PORT", ":8090"),
		Environment:          os.Getenv("ENVIRONMENT"),
		ApiBaseURL:           getEnv("SIMAI_API_URL", "http://localhost:5000"),
		PollInterval:         getDuration("POLL_INTERVAL", 5*time.Second),
		NotificationInterval: getDuration("NOTIFICATION_INTERVAL", 5*time.Second),
		HttpTimeout:          getDuration("HTTP_TIMEOUT", 30*time.Second),
		SearchPlate:          os.Getenv("SEARCH_PLATE"),
		RedisUrl:             os.Getenv("REDIS_URL"),
		RedisAlertChannel:    getEnv("REDIS_ALERT_CHANNEL", "simai:alertas"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Valor inválido para %s (%q), usando %v", key, v, def)
		return def
	}
	return d
}
