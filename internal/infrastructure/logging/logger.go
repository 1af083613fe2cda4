package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the structured logger used across the host shell
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// Level is the minimum severity a logger writes
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the token written into log entries
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a config value such as "debug" or "WARN" to a Level
func ParseLevel(value string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug", "trace":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "fatal":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", value)
	}
}

// DefaultLogger writes JSON lines through the standard log package
type DefaultLogger struct {
	minLevel Level
}

// NewDefaultLogger creates a logger that writes every level
func NewDefaultLogger() Logger {
	return &DefaultLogger{minLevel: LevelDebug}
}

// NewLogger creates a logger that drops entries below minLevel
func NewLogger(minLevel Level) Logger {
	return &DefaultLogger{minLevel: minLevel}
}

// logEntry represents a structured log entry
type logEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields"`
}

// fieldsToMap converts the variadic fields slice to a map
// Expected format: key1, value1, key2, value2, ...
func fieldsToMap(fields []interface{}) map[string]interface{} {
	result := make(map[string]interface{})

	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			if key, ok := fields[i].(string); ok {
				result[key] = fields[i+1]
			} else {
				result[fmt.Sprintf("field_%d", i/2)] = fields[i]
				result[fmt.Sprintf("field_%d_value", i/2)] = fields[i+1]
			}
		} else {
			// Odd number of fields, add the last one with an index key
			result[fmt.Sprintf("field_%d", i/2)] = fields[i]
		}
	}

	return result
}

func (l *DefaultLogger) logStructured(level Level, msg string, fields []interface{}) {
	if level < l.minLevel {
		return
	}

	entry := logEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
		Fields:    fieldsToMap(fields),
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		fallbackFields := fmt.Sprintf("%v", fields)
		fallbackEntry := logEntry{
			Timestamp: entry.Timestamp,
			Level:     entry.Level,
			Message:   msg,
			Fields: map[string]interface{}{
				"original_fields": fallbackFields,
				"marshal_error":   err.Error(),
			},
		}

		if jsonBytes, err = json.Marshal(fallbackEntry); err != nil {
			// Last resort - simple text log
			log.Printf("[%s] %s %s", entry.Level, msg, fallbackFields)
			return
		}
	}

	log.Println(string(jsonBytes))
}

func (l *DefaultLogger) Debug(msg string, fields ...interface{}) {
	l.logStructured(LevelDebug, msg, fields)
}

func (l *DefaultLogger) Info(msg string, fields ...interface{}) {
	l.logStructured(LevelInfo, msg, fields)
}

func (l *DefaultLogger) Warn(msg string, fields ...interface{}) {
	l.logStructured(LevelWarn, msg, fields)
}

func (l *DefaultLogger) Error(msg string, fields ...interface{}) {
	l.logStructured(LevelError, msg, fields)
}

// ClassifiedError is implemented by errors carrying a code and context
// (kept as an interface to avoid importing the errors package).
type ClassifiedError interface {
	Error() string
	GetCode() string
	GetContext() map[string]string
	GetTimestamp() time.Time
}

// LogHostError logs a failed startup step or host call with its classification
func LogHostError(logger Logger, err error, operation string, context map[string]interface{}) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	if hostErr, ok := err.(ClassifiedError); ok {
		fields := []interface{}{
			"operation", operation,
			"error_code", hostErr.GetCode(),
			"timestamp", hostErr.GetTimestamp(),
		}

		for k, v := range hostErr.GetContext() {
			fields = append(fields, k, v)
		}

		for k, v := range context {
			fields = append(fields, k, v)
		}

		logger.Error(fmt.Sprintf("Host error: %s", err.Error()), fields...)
	} else {
		fields := []interface{}{
			"operation", operation,
			"error_type", fmt.Sprintf("%T", err),
		}

		for k, v := range context {
			fields = append(fields, k, v)
		}

		logger.Error(fmt.Sprintf("Unexpected error: %s", err.Error()), fields...)
	}
}

// LogOperation logs a completed host call or startup step
func LogOperation(logger Logger, operation string, duration time.Duration, context map[string]interface{}) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	fields := []interface{}{
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
	}

	for k, v := range context {
		fields = append(fields, k, v)
	}

	logger.Debug(fmt.Sprintf("Operation completed: %s", operation), fields...)
}
