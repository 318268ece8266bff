package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Logger     LoggerConfig
	Files      FilesConfig
	RestockQty int
}

type LoggerConfig struct {
	Env string
	// Output is a zap output path: "stderr", "stdout" or a file.
	Output string
}

type FilesConfig struct {
	Tasks    string
	Stock    string
	Reports  string
	Settings string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	restockQty := getEnvInt("MRO_RESTOCK_QTY", 5)
	if restockQty <= 0 {
		return nil, fmt.Errorf("MRO_RESTOCK_QTY must be positive, got %d", restockQty)
	}

	return &Config{
		Logger: LoggerConfig{
			Env:    getEnv("LOGGER_ENV", "development"),
			Output: getEnv("LOGGER_OUTPUT", "stderr"),
		},
		Files: FilesConfig{
			Tasks:    getEnv("MRO_TASKS_FILE", "tasks.txt"),
			Stock:    getEnv("MRO_STOCK_FILE", "stock.txt"),
			Reports:  getEnv("MRO_REPORT_FILE", "maintenance_reports.txt"),
			Settings: getEnv("MRO_SETTINGS_FILE", ".mro/settings.yaml"),
		},
		RestockQty: restockQty,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
