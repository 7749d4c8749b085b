package cmd

import (
	"errors"
	"io/fs"
	"os"

	"shop/internal/adapters/out/postgres"
	"shop/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	DefaultCurrency        string
	KafkaHost              string
	KafkaOrderChangedTopic string
}

// LoadConfig reads the configuration from the environment after loading
// envFile into it. A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	return Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", ""),
		DBPassword:             getEnv("DB_PASSWORD", ""),
		DBName:                 getEnv("DB_NAME", ""),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		DefaultCurrency:        getEnv("DEFAULT_CURRENCY", "KRW"),
		KafkaHost:              getEnv("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func (c Config) Connection() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// Currency returns the currency items are priced in when none is given.
func (c Config) Currency() (currency.Unit, error) {
	return kernel.ParseCurrency(c.DefaultCurrency)
}
