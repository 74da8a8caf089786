package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"formCalc/internal/api/http"
	"formCalc/internal/infrastructure/click"
	"formCalc/internal/infrastructure/kafka"
	"formCalc/internal/infrastructure/mongo"
	"formCalc/internal/infrastructure/pg"
	"formCalc/internal/infrastructure/redis"
)

const AppName = "CALCULATOR"

// StorageConfig — выбор бэкенда журнала вычислений. Переменная: CALCULATOR_STORAGE_DRIVER.
type StorageConfig struct {
	Driver string `envconfig:"DRIVER" default:"postgres"` // postgres | mongo
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	Storage    StorageConfig     `envconfig:"STORAGE"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
