package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/build-status/internal/logger"
)

func TestLogViewerCommandTargetsPath(t *testing.T) {
	cmd := logViewerCommand("/tmp/build-status.log")
	assert.Equal(t, "/tmp/build-status.log", cmd.Args[len(cmd.Args)-1])
}

func TestOpenLogFileWithoutLogger(t *testing.T) {
	logger.Close()
	if logger.GetLogPath() != "" {
		t.Skip("logger initialized by another test")
	}
	assert.Error(t, openLogFile())
}
