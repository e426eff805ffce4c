package server

import (
	"context"
	"testing"

	"github.com/mareurs/thunderbird-mcp/internal/bridge"
)

func TestNewServerContext_Defaults(t *testing.T) {
	client := bridge.New("test-token")

	sc, err := NewServerContext(context.Background(), client)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if sc.Bridge() != client {
		t.Error("expected bridge client to be the one provided")
	}

	if sc.MaxResultsCap() != DefaultMaxResultsCap {
		t.Errorf("expected default max results cap %d, got %d", DefaultMaxResultsCap, sc.MaxResultsCap())
	}

	if sc.Metrics() != nil {
		t.Error("expected nil metrics when not configured")
	}

	if sc.Audit() != nil {
		t.Error("expected nil audit logger when not configured")
	}

	if sc.IsShutdown() {
		t.Error("expected server context to not be shutdown")
	}
}

func TestNewServerContext_WithMaxResultsCap(t *testing.T) {
	tests := []struct {
		name string
		cap  int
		want int
	}{
		{name: "custom cap", cap: 25, want: 25},
		{name: "cap of one", cap: 1, want: 1},
		{name: "zero falls back to default", cap: 0, want: DefaultMaxResultsCap},
		{name: "negative falls back to default", cap: -5, want: DefaultMaxResultsCap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := NewServerContext(context.Background(), bridge.New("t"), WithMaxResultsCap(tt.cap))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got := sc.MaxResultsCap(); got != tt.want {
				t.Errorf("MaxResultsCap() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background(), bridge.New("t"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("expected no error on shutdown, got %v", err)
	}

	if !sc.IsShutdown() {
		t.Error("expected server context to be shutdown")
	}

	// Context should be cancelled after shutdown
	select {
	case <-sc.Context().Done():
	default:
		t.Error("expected context to be cancelled after shutdown")
	}

	// Second shutdown should be a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("expected no error on repeated shutdown, got %v", err)
	}
}

func TestServerContext_SetBridge(t *testing.T) {
	sc, err := NewServerContext(context.Background(), bridge.New("first"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	replacement := bridge.New("second")
	sc.SetBridge(replacement)

	if sc.Bridge() != replacement {
		t.Error("expected bridge client to be replaced")
	}
}
