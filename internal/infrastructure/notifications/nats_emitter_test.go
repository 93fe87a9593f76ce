package notifications

import (
	"context"
	"testing"
)

func TestNewNATSEmitter_EmptyURLDisablesEmitter(t *testing.T) {
	e, err := NewNATSEmitter("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e == nil {
		t.Fatal("expected a disabled emitter, got nil")
	}

	// Emit and Close must be safe without a connection.
	e.Emit(context.Background(), "job.created", map[string]interface{}{"job_id": "job-1"})
	e.Close()
}
