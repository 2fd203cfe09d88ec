// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/IvanLyVodka11/hotel-management/internal/logger"
)

// Defaults used when the environment does not say otherwise.
const (
	DefaultDataDir         = "data"
	DefaultLogsDir         = "logs"
	DefaultTaxRate         = 0.10
	DefaultTimeZone        = "Asia/Ho_Chi_Minh"
	DefaultRetentionDays   = 14
	DefaultArchiveFileName = "archive.db"
)

// Helper: get a setting based on ENVIRONMENT (dev or prod)
func GetEnvBasedSetting(base string) string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}
	return os.Getenv(fmt.Sprintf("%s_%s", base, strings.ToUpper(env)))
}

// Helper: log which environment is running
func LogCurrentEnvironment() {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	if env == "dev" {
		logger.LogInfo("Running in development environment")
	} else {
		logger.LogInfo("Running in production environment")
	}
}

// LoadEnv reads the .env file if one is present.
func LoadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("Could not determine working directory: %v", err)
	}

	err = godotenv.Load(".env")
	if err != nil {
		log.Printf("No .env file found in %s. Using system environment variables.", wd)
	} else {
		log.Printf("Loaded environment variables from .env file in %s", wd)
	}
}

// DataDirectory is where rooms.json, customers.json, bookings.json and
// invoices.json live.
func DataDirectory() string {
	if dir := os.Getenv("HOTEL_DATA_DIR"); dir != "" {
		return dir
	}
	return DefaultDataDir
}

// LogsDirectory is where the daily log files are written.
func LogsDirectory() string {
	if dir := os.Getenv("HOTEL_LOGS_DIR"); dir != "" {
		return dir
	}
	return DefaultLogsDir
}

// TimeZone used for log timestamps and backup names.
func TimeZone() string {
	if tz := os.Getenv("HOTEL_TIMEZONE"); tz != "" {
		return tz
	}
	return DefaultTimeZone
}

// TaxRate is the default invoice tax rate, as a fraction.
func TaxRate() float64 {
	raw := os.Getenv("HOTEL_TAX_RATE")
	if raw == "" {
		return DefaultTaxRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 {
		logger.LogWarn("Invalid HOTEL_TAX_RATE '%s', using default %.2f", raw, DefaultTaxRate)
		return DefaultTaxRate
	}
	return rate
}

// ArchiveDBPath is the sqlite file holding audit snapshots.
func ArchiveDBPath() string {
	if p := os.Getenv("HOTEL_ARCHIVE_DB"); p != "" {
		return p
	}
	return filepath.Join(DataDirectory(), DefaultArchiveFileName)
}

// BackupRetentionDays controls how long storage backups are kept.
func BackupRetentionDays() int {
	raw := os.Getenv("HOTEL_BACKUP_RETENTION_DAYS")
	if raw == "" {
		return DefaultRetentionDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		logger.LogWarn("Invalid HOTEL_BACKUP_RETENTION_DAYS '%s', using default %d", raw, DefaultRetentionDays)
		return DefaultRetentionDays
	}
	return days
}

// UsersFilePath is the credentials file consumed by the login collaborator.
func UsersFilePath() string {
	if p := os.Getenv("HOTEL_USERS_FILE"); p != "" {
		return p
	}
	return filepath.Join(DataDirectory(), "users.json")
}

// LoggerConfig returns a logger.Config struct populated from environment
func LoggerConfig() logger.Config {
	level := logger.LevelInfo
	if strings.EqualFold(os.Getenv("HOTEL_LOG_LEVEL"), "debug") {
		level = logger.LevelDebug
	}
	return logger.Config{
		LogsDirectory: LogsDirectory(),
		LogFileFormat: "hotel_%s.log",
		TimeZone:      TimeZone(),
		MinLevel:      level,
	}
}
