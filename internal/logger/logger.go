// Package logger provides centralized logging for the build status window
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"
)

// FileName is the log file created in the log directory.
const FileName = "build-status.log"

var (
	logFile  *os.File
	logMutex sync.Mutex
	logPath  string
)

// Init opens the log file in the platform log directory
func Init() error {
	return InitAt(getLogDir())
}

// InitAt opens (truncating) the log file inside dir
func InitAt(dir string) error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logPath = path
	return nil
}

// CaptureStderr redirects stderr to the log file so panics are captured.
func CaptureStderr() error {
	logMutex.Lock()
	defer logMutex.Unlock()
	if logFile == nil {
		return fmt.Errorf("logger not initialized")
	}
	return redirectStderr(logFile)
}

// Close closes the log file
func Close() {
	logMutex.Lock()
	defer logMutex.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Log writes a log message
func Log(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	line := fmt.Sprintf("[%s] %s", timestamp, message)

	logMutex.Lock()
	if logFile != nil {
		logFile.WriteString(line + "\n")
	}
	logMutex.Unlock()
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	Log("INFO: "+format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	Log("ERROR: "+format, args...)
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	Log("DEBUG: "+format, args...)
}

// Warning logs a warning message
func Warning(format string, args ...interface{}) {
	Log("WARN: "+format, args...)
}

// Event logs a window state transition
func Event(format string, args ...interface{}) {
	Log("EVENT: "+format, args...)
}

// GetLogPath returns the path to the log file
func GetLogPath() string {
	logMutex.Lock()
	defer logMutex.Unlock()
	return logPath
}

// Recover should be deferred at the top of every goroutine to catch panics.
// Usage: go func() { defer logger.Recover("myGoroutine"); ... }()
func Recover(name string) {
	if r := recover(); r != nil {
		Error("PANIC in %s: %v\n%s", name, r, debug.Stack())
	}
}

// SafeGo launches a goroutine with panic recovery.
func SafeGo(name string, fn func()) {
	go func() {
		defer Recover(name)
		fn()
	}()
}
