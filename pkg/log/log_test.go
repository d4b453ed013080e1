package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"
)

// mockLogger records events for testing
type mockLogger struct {
	events []Event
}

func (m *mockLogger) Log(event Event) {
	m.events = append(m.events, event)
}

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		Category:  CategoryCreate,
		TypeName:  "LampDriver",
	}
	logger.Log(event)

	event.Err = errors.New("boom")
	event.Category = CategoryError
	logger.Log(event)
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryDiscover, "DISCOVER"},
		{CategoryCreate, "CREATE"},
		{CategoryEncode, "ENCODE"},
		{CategoryDecode, "DECODE"},
		{CategoryInvoke, "INVOKE"},
		{CategoryScan, "SCAN"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestNewEventSetsTimestamp(t *testing.T) {
	event := NewEvent(CategoryInvoke)
	if event.Category != CategoryInvoke {
		t.Errorf("category: got %v, want %v", event.Category, CategoryInvoke)
	}
	if event.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestMultiLoggerCallsAll(t *testing.T) {
	mock1 := &mockLogger{}
	mock2 := &mockLogger{}
	mock3 := &mockLogger{}

	multi := NewMultiLogger(mock1, mock2, mock3)

	event := Event{
		Timestamp: time.Now(),
		Category:  CategoryEncode,
		TypeName:  "LampDriver",
	}

	multi.Log(event)

	// All loggers should have received the event
	for i, mock := range []*mockLogger{mock1, mock2, mock3} {
		if len(mock.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(mock.events))
			continue
		}
		if mock.events[0].TypeName != "LampDriver" {
			t.Errorf("logger %d: type_name not propagated", i)
		}
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	multi := NewMultiLogger()
	multi.Log(Event{Category: CategoryDiscover})
}

func TestSlogAdapterLogsInvokeEvent(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	slogger := slog.New(handler)

	adapter := NewSlogAdapter(slogger)

	adapter.Log(Event{
		Timestamp:  time.Now(),
		Category:   CategoryInvoke,
		TypeName:   "LampDriver",
		Method:     "setColorTemperature",
		HandleSize: 64,
	})

	output := buf.String()
	if output == "" {
		t.Fatal("no output produced")
	}

	// Parse JSON log entry
	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	// Verify key fields
	if logEntry["category"] != "INVOKE" {
		t.Errorf("category: got %v, want %q", logEntry["category"], "INVOKE")
	}
	if logEntry["type_name"] != "LampDriver" {
		t.Errorf("type_name: got %v, want %q", logEntry["type_name"], "LampDriver")
	}
	if logEntry["method"] != "setColorTemperature" {
		t.Errorf("method: got %v, want %q", logEntry["method"], "setColorTemperature")
	}
	if logEntry["handle_size"] != float64(64) {
		t.Errorf("handle_size: got %v, want %v", logEntry["handle_size"], 64)
	}
}

func TestSlogAdapterLogsError(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Event{
		Timestamp: time.Now(),
		Category:  CategoryError,
		Err:       errors.New("handle decode failed"),
	})

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if logEntry["error"] != "handle decode failed" {
		t.Errorf("error: got %v, want %q", logEntry["error"], "handle decode failed")
	}
}
