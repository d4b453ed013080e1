package log

import (
	"time"
)

// Event represents a bridge log event.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time

	// Category classifies the event type.
	Category Category

	// TypeName is the device type involved, if any.
	TypeName string

	// Method is the invoked method name (CategoryInvoke only).
	Method string

	// HandleSize is the encoded handle size in bytes (encode/decode events).
	HandleSize int

	// Message is free-form event detail.
	Message string

	// Err is the failure that triggered the event (CategoryError, or a
	// swallowed loader failure on CategoryDiscover).
	Err error
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryDiscover indicates a registry discovery pass.
	CategoryDiscover Category = 0
	// CategoryCreate indicates a driver instance construction.
	CategoryCreate Category = 1
	// CategoryEncode indicates a handle encode.
	CategoryEncode Category = 2
	// CategoryDecode indicates a handle decode.
	CategoryDecode Category = 3
	// CategoryInvoke indicates a method invocation.
	CategoryInvoke Category = 4
	// CategoryScan indicates a network scan event.
	CategoryScan Category = 5
	// CategoryError indicates a hard failure of a bridge operation.
	CategoryError Category = 6
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryDiscover:
		return "DISCOVER"
	case CategoryCreate:
		return "CREATE"
	case CategoryEncode:
		return "ENCODE"
	case CategoryDecode:
		return "DECODE"
	case CategoryInvoke:
		return "INVOKE"
	case CategoryScan:
		return "SCAN"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// NewEvent creates an event of the given category with the current time.
func NewEvent(category Category) Event {
	return Event{
		Timestamp: time.Now(),
		Category:  category,
	}
}
