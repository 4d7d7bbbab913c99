package logger

import "testing"

func TestInitAndGet(t *testing.T) {
	if err := Init("debug"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Get() == nil {
		t.Fatal("Get returned nil after Init")
	}
	// A second Init keeps the existing logger and reports no error.
	if err := Init("warn"); err != nil {
		t.Fatalf("repeated Init: %v", err)
	}
}

func TestGetNeverNil(t *testing.T) {
	mu.Lock()
	globalLogger = nil
	mu.Unlock()

	if Get() == nil {
		t.Fatal("Get returned nil without prior Init")
	}
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	l, err := newLogger("not-a-level")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if l == nil {
		t.Fatal("newLogger returned nil logger")
	}
}
