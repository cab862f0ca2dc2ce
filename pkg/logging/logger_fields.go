package logging

import (
	"strings"
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Component field helpers for common component names
func Component(name string) Field {
	return String("component", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

// Domain field helpers

func RunID(id string) Field {
	return String("run_id", id)
}

func Phase(name string) Field {
	return String("phase", name)
}

func BlockTypeName(name string) Field {
	return String("block_type", name)
}

func ModeName(name string) Field {
	return String("mode", name)
}

func PortName(name string) Field {
	return String("port", name)
}

// TypePath renders a block-type path as a slash-joined string
func TypePath(names []string) Field {
	return String("path", strings.Join(names, "/"))
}
