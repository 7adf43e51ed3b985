package app

import (
	"fmt"
	"os"
	"strconv"
)

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// Config dibaca sekali saat startup; secret tidak pernah dibaca ulang dari env
// oleh komponen lain.
type Config struct {
	Port        string
	JWTSecret   string
	RedisAddr   string
	KafkaBroker string
	SharePrice  float64
	DB          DBConfig
}

func LoadConfig() (Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	sharePrice := 50.0
	if raw := os.Getenv("SHARE_PRICE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHARE_PRICE: %w", err)
		}
		sharePrice = parsed
	}

	return Config{
		Port:        port,
		JWTSecret:   secret,
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		SharePrice:  sharePrice,
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     os.Getenv("DB_PORT"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
	}, nil
}
