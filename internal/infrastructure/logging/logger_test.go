package logging

import (
	"encoding/json"
	"errors"
	"sageflow/internal/testutils"
	"strings"
	"testing"
	"time"
)

// Mock ClassifiedError for testing
type mockClassifiedError struct {
	message   string
	code      string
	context   map[string]string
	timestamp time.Time
}

func (m *mockClassifiedError) Error() string {
	return m.message
}

func (m *mockClassifiedError) GetCode() string {
	return m.code
}

func (m *mockClassifiedError) GetContext() map[string]string {
	return m.context
}

func (m *mockClassifiedError) GetTimestamp() time.Time {
	return m.timestamp
}

// Mock Logger for testing
type mockLogger struct {
	debugCalls []logCall
	infoCalls  []logCall
	warnCalls  []logCall
	errorCalls []logCall
}

type logCall struct {
	msg    string
	fields []interface{}
}

func (m *mockLogger) Debug(msg string, fields ...interface{}) {
	m.debugCalls = append(m.debugCalls, logCall{msg: msg, fields: fields})
}

func (m *mockLogger) Info(msg string, fields ...interface{}) {
	m.infoCalls = append(m.infoCalls, logCall{msg: msg, fields: fields})
}

func (m *mockLogger) Warn(msg string, fields ...interface{}) {
	m.warnCalls = append(m.warnCalls, logCall{msg: msg, fields: fields})
}

func (m *mockLogger) Error(msg string, fields ...interface{}) {
	m.errorCalls = append(m.errorCalls, logCall{msg: msg, fields: fields})
}

// parseEntry extracts the JSON entry from a captured log line
func parseEntry(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	output = strings.TrimSpace(output)
	jsonStart := strings.Index(output, "{")
	if jsonStart == -1 {
		t.Fatalf("Expected JSON output, got: %q", output)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(output[jsonStart:]), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log entry: %v, output: %q", err, output)
	}
	return entry
}

func TestNewDefaultLogger(t *testing.T) {
	logger := NewDefaultLogger()
	if logger == nil {
		t.Fatal("NewDefaultLogger() returned nil")
	}

	if _, ok := logger.(*DefaultLogger); !ok {
		t.Errorf("NewDefaultLogger() returned %T, expected *DefaultLogger", logger)
	}
}

func TestDefaultLogger_LogLevels(t *testing.T) {
	buf := testutils.CaptureStdLog(t)
	logger := &DefaultLogger{}

	tests := []struct {
		name           string
		logFunc        func(string, ...interface{})
		message        string
		fields         []interface{}
		levelToken     string
		expectedFields map[string]interface{}
	}{
		{
			name:           "Debug",
			logFunc:        logger.Debug,
			message:        "debug message",
			fields:         []interface{}{"key", "value"},
			levelToken:     "DEBUG",
			expectedFields: map[string]interface{}{"key": "value"},
		},
		{
			name:           "Info",
			logFunc:        logger.Info,
			message:        "info message",
			fields:         []interface{}{"count", 42},
			levelToken:     "INFO",
			expectedFields: map[string]interface{}{"count": float64(42)}, // JSON numbers are float64
		},
		{
			name:           "Warn",
			logFunc:        logger.Warn,
			message:        "warn message",
			fields:         []interface{}{},
			levelToken:     "WARN",
			expectedFields: map[string]interface{}{},
		},
		{
			name:           "Error",
			logFunc:        logger.Error,
			message:        "error message",
			fields:         []interface{}{"error", "test error"},
			levelToken:     "ERROR",
			expectedFields: map[string]interface{}{"error": "test error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(tt.message, tt.fields...)

			entry := parseEntry(t, buf.String())

			if entry["timestamp"] == nil {
				t.Error("Expected log entry to have timestamp field")
			}
			if entry["level"] != tt.levelToken {
				t.Errorf("Expected level %q, got %q", tt.levelToken, entry["level"])
			}
			if entry["message"] != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, entry["message"])
			}

			fields, ok := entry["fields"].(map[string]interface{})
			if !ok {
				t.Fatalf("Expected fields to be a map, got %T", entry["fields"])
			}

			for key, expectedValue := range tt.expectedFields {
				actualValue, exists := fields[key]
				if !exists {
					t.Errorf("Expected field %q to exist", key)
					continue
				}
				if actualValue != expectedValue {
					t.Errorf("Expected field %q to be %v, got %v", key, expectedValue, actualValue)
				}
			}
		})
	}
}

func TestDefaultLogger_MinLevel(t *testing.T) {
	buf := testutils.CaptureStdLog(t)
	logger := NewLogger(LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("Expected entries below WARN to be dropped, got %q", buf.String())
	}

	logger.Warn("kept")
	entry := parseEntry(t, buf.String())
	if entry["level"] != "WARN" {
		t.Errorf("Expected level WARN, got %v", entry["level"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"TRACE", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"Warning", LevelWarn, false},
		{"error", LevelError, false},
		{" fatal ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFieldsToMap_OddAndNonStringKeys(t *testing.T) {
	result := fieldsToMap([]interface{}{42, "value", "dangling"})

	if result["field_0"] != 42 {
		t.Errorf("Expected field_0 to be 42, got %v", result["field_0"])
	}
	if result["field_0_value"] != "value" {
		t.Errorf("Expected field_0_value to be 'value', got %v", result["field_0_value"])
	}
	if result["field_1"] != "dangling" {
		t.Errorf("Expected field_1 to be 'dangling', got %v", result["field_1"])
	}
}

func TestLogHostError_WithClassifiedError(t *testing.T) {
	mockLog := &mockLogger{}

	hostErr := &mockClassifiedError{
		message:   "window not registered",
		code:      "WINDOW_NOT_FOUND",
		context:   map[string]string{"window": "main"},
		timestamp: time.Now(),
	}

	context := map[string]interface{}{
		"stage": "lookup",
	}

	LogHostError(mockLog, hostErr, "startup", context)

	if len(mockLog.errorCalls) != 1 {
		t.Fatalf("Expected 1 error call, got %d", len(mockLog.errorCalls))
	}

	call := mockLog.errorCalls[0]
	if !strings.Contains(call.msg, "Host error: window not registered") {
		t.Errorf("Expected error message to contain host error, got %q", call.msg)
	}

	fieldsMap := testutils.FieldsToMap(t, call.fields)

	expectedFields := map[string]interface{}{
		"operation":  "startup",
		"error_code": "WINDOW_NOT_FOUND",
		"window":     "main",
		"stage":      "lookup",
	}

	for key, expected := range expectedFields {
		if actual, exists := fieldsMap[key]; !exists {
			t.Errorf("Expected field %q not found in log call", key)
		} else if actual != expected {
			t.Errorf("Field %q: expected %v, got %v", key, expected, actual)
		}
	}
}

func TestLogHostError_WithRegularError(t *testing.T) {
	mockLog := &mockLogger{}

	LogHostError(mockLog, errors.New("regular error"), "show_about_dialog", nil)

	if len(mockLog.errorCalls) != 1 {
		t.Fatalf("Expected 1 error call, got %d", len(mockLog.errorCalls))
	}

	call := mockLog.errorCalls[0]
	if !strings.Contains(call.msg, "Unexpected error: regular error") {
		t.Errorf("Expected error message to contain unexpected error, got %q", call.msg)
	}

	fieldsMap := testutils.FieldsToMap(t, call.fields)
	if fieldsMap["operation"] != "show_about_dialog" {
		t.Errorf("Expected operation field to be 'show_about_dialog', got %v", fieldsMap["operation"])
	}
	if fieldsMap["error_type"] != "*errors.errorString" {
		t.Errorf("Expected error_type field, got %v", fieldsMap["error_type"])
	}
}

func TestLogHostError_WithNilLogger(t *testing.T) {
	buf := testutils.CaptureStdLog(t)

	LogHostError(nil, errors.New("test error"), "startup", nil)

	entry := parseEntry(t, buf.String())
	if entry["level"] != "ERROR" {
		t.Errorf("Expected level ERROR, got %q", entry["level"])
	}

	fields, ok := entry["fields"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected fields to be a map, got %T", entry["fields"])
	}
	if fields["operation"] != "startup" {
		t.Errorf("Expected operation field to be 'startup', got %v", fields["operation"])
	}
}

func TestLogOperation(t *testing.T) {
	mockLog := &mockLogger{}

	LogOperation(mockLog, "get_app_version", 150*time.Millisecond, map[string]interface{}{
		"window": "main",
	})

	if len(mockLog.debugCalls) != 1 {
		t.Fatalf("Expected 1 debug call, got %d", len(mockLog.debugCalls))
	}

	call := mockLog.debugCalls[0]
	if !strings.Contains(call.msg, "Operation completed: get_app_version") {
		t.Errorf("Expected message to contain operation completion, got %q", call.msg)
	}

	fieldsMap := testutils.FieldsToMap(t, call.fields)

	expectedFields := map[string]interface{}{
		"operation":   "get_app_version",
		"duration_ms": int64(150),
		"window":      "main",
	}

	for key, expected := range expectedFields {
		if actual, exists := fieldsMap[key]; !exists {
			t.Errorf("Expected field %q not found in log call", key)
		} else if actual != expected {
			t.Errorf("Field %q: expected %v, got %v", key, expected, actual)
		}
	}
}

func TestLogOperation_WithNilLogger(t *testing.T) {
	buf := testutils.CaptureStdLog(t)

	LogOperation(nil, "startup", time.Millisecond, nil)

	entry := parseEntry(t, buf.String())
	if entry["level"] != "DEBUG" {
		t.Errorf("Expected level DEBUG, got %q", entry["level"])
	}
}
