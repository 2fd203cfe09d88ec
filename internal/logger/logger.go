// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Level controls which messages get written.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger configuration
type Config struct {
	LogsDirectory string
	LogFileFormat string
	TimeZone      string
	MinLevel      Level
}

var (
	initialized  int32 // 0 = not initialized, 1 = initialized
	minLevel     int32
	logger       *log.Logger
	loggerOutput io.Writer
	timeZone     *time.Location
	logFilePath  string
	mu           sync.Mutex // protect against concurrent initialization
)

// SetupLogger initializes the logger with file and console output.
func SetupLogger(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	if atomic.LoadInt32(&initialized) == 1 {
		return fmt.Errorf("logger already initialized")
	}

	if config.TimeZone == "" {
		config.TimeZone = "Asia/Ho_Chi_Minh"
	}
	if config.LogFileFormat == "" {
		config.LogFileFormat = "hotel_%s.log"
	}

	loc, err := time.LoadLocation(config.TimeZone)
	if err != nil {
		return fmt.Errorf("failed to load time zone '%s': %w", config.TimeZone, err)
	}
	timeZone = loc

	if err := os.MkdirAll(config.LogsDirectory, 0775); err != nil {
		return fmt.Errorf("failed to create logs directory '%s': %w", config.LogsDirectory, err)
	}

	currentTime := time.Now().In(loc)
	logFileName := fmt.Sprintf(config.LogFileFormat, currentTime.Format("2006-01-02"))

	// Respect whether LogFileFormat is an absolute path or not
	if filepath.IsAbs(logFileName) {
		logFilePath = logFileName
	} else {
		logFilePath = filepath.Join(config.LogsDirectory, logFileName)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0664)
	if err != nil {
		return fmt.Errorf("failed to open log file '%s': %w", logFilePath, err)
	}

	multi := io.MultiWriter(os.Stdout, logFile)
	loggerOutput = multi
	logger = log.New(multi, "", 0)

	atomic.StoreInt32(&minLevel, int32(config.MinLevel))
	atomic.StoreInt32(&initialized, 1)
	LogInfo("Logger initialized, writing to %s", logFilePath)
	return nil
}

func GetLogFilePath() string {
	return logFilePath
}

func IsInitialized() bool {
	return atomic.LoadInt32(&initialized) == 1
}

// SetLevel changes the minimum level written after setup.
func SetLevel(l Level) {
	atomic.StoreInt32(&minLevel, int32(l))
}

func logMessage(level Level, message string, v ...interface{}) {
	if level < Level(atomic.LoadInt32(&minLevel)) {
		return
	}
	formattedMsg := fmt.Sprintf(message, v...)
	if !IsInitialized() {
		log.Printf("[%s] %s", level, formattedMsg)
		return
	}

	_, file, line, _ := runtime.Caller(2)
	fileName := filepath.Base(file)
	timestamp := time.Now().In(timeZone).Format("2006-01-02 15:04:05 MST")

	logger.Printf("[%s] %s %s:%d - %s", level, timestamp, fileName, line, formattedMsg)
}

func LogDebug(message string, v ...interface{}) { logMessage(LevelDebug, message, v...) }
func LogInfo(message string, v ...interface{})  { logMessage(LevelInfo, message, v...) }
func LogWarn(message string, v ...interface{})  { logMessage(LevelWarn, message, v...) }
func LogError(message string, v ...interface{}) { logMessage(LevelError, message, v...) }

// LogFatal logs at ERROR level and exits the process.
func LogFatal(message string, v ...interface{}) {
	logMessage(LevelError, message, v...)
	os.Exit(1)
}
