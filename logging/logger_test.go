package logging

import "testing"

func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{true, false} {
		logger, err := NewLogger(debug)
		if err != nil {
			t.Fatalf("NewLogger(%v) error: %v", debug, err)
		}
		if logger == nil {
			t.Fatalf("NewLogger(%v) returned nil", debug)
		}
		if got := logger.Core().Enabled(-1); got != debug {
			t.Errorf("NewLogger(%v): debug level enabled = %v", debug, got)
		}
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}
	logger, _ := NewLogger(false)
	if OrNop(logger) != logger {
		t.Error("OrNop should return the given logger")
	}
}
