package log

import (
	"context"
	"sync"
	"testing"

	"github.com/go-logr/logr/funcr"
)

func TestGetLoggerFromContextWithName(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix)
	}, funcr.Options{})

	ctx := ContextWithLogger(context.Background(), logger)
	GetLoggerFromContextWithName(ctx, "sender").Info("hello")

	if len(lines) != 1 || lines[0] != "sender" {
		t.Fatalf("want one line logged by sender, got %v", lines)
	}
}

func TestGetLoggerFromEmptyContext(t *testing.T) {
	logger := GetLoggerFromContextWithName(context.Background(), "")
	if logger.GetSink() == nil {
		t.Fatal("expected a default logger")
	}
}

func TestGetLoggerBoundsVerbosity(t *testing.T) {
	// reset for other tests
	defer GetLogger(0)

	tests := []struct {
		v       int
		enabled int // highest enabled level
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 0},
	}

	for _, tt := range tests {
		logger := GetLogger(tt.v)
		if !logger.V(tt.enabled).Enabled() {
			t.Fatalf("v=%d: level %d should be enabled", tt.v, tt.enabled)
		}
		if logger.V(tt.enabled + 1).Enabled() {
			t.Fatalf("v=%d: level %d should be disabled", tt.v, tt.enabled+1)
		}
	}
}

func TestFallbackKeepsVerbosity(t *testing.T) {
	defer GetLogger(0)

	GetLogger(2)
	logger := GetLoggerFromContextWithName(context.Background(), "transfer")
	if !logger.V(2).Enabled() {
		t.Fatal("the fallback logger reset the configured verbosity")
	}
}

// run with -race
func TestGetLoggerFromContextConcurrently(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger := GetLoggerFromContextWithName(context.Background(), "transfer")
			logger.V(2).Info("concurrent")
		}()
	}
	wg.Wait()
}
