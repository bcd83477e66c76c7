package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/build-status/internal/core"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"normal close", nil, 0, ""},
		{"no display", fmt.Errorf("%w: wayland: no display", core.ErrPlatformUnavailable), 1, "cannot open a window"},
		{"other failure", errors.New("invalid window options"), 1, "failed: invalid window options"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, exitCode(tt.err))
			if tt.err != nil {
				assert.Contains(t, exitMessage(tt.err), tt.message)
			}
		})
	}
}
