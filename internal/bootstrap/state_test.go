package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	tests := []struct {
		state    State
		name     string
		terminal bool
	}{
		{StateNotBound, "not_bound", false},
		{StateBound, "bound", false},
		{StateServing, "serving", false},
		{StateStopped, "stopped", true},
		{StateFailed, "failed", true},
		{State(42), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.state.String())
			assert.Equal(t, tt.terminal, tt.state.Terminal())
		})
	}
}
