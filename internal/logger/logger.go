package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelSuccess
	LevelError
	LevelFatal
)

var levelNames = map[LogLevel]string{
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarn:    "WARN",
	LevelError:   "ERROR",
	LevelFatal:   "FATAL",
	LevelSuccess: "SUCCESS",
}

var levelColors = map[LogLevel]string{
	LevelDebug:   "\033[36m",   // Cyan
	LevelInfo:    "\033[32m",   // Green
	LevelWarn:    "\033[33m",   // Yellow
	LevelError:   "\033[31m",   // Red
	LevelFatal:   "\033[31;1m", // Bright Red
	LevelSuccess: "\033[32;1m", // Bright Green
}

var levelEmojis = map[LogLevel]string{
	LevelDebug:   "🐛",
	LevelInfo:    "ℹ️",
	LevelWarn:    "⚠️",
	LevelError:   "❌",
	LevelFatal:   "💀",
	LevelSuccess: "✅",
}

// Logger is the main logger struct
type Logger struct {
	mu       sync.Mutex
	minLevel LogLevel
	logger   *log.Logger
	display  string
}

// New creates a new Logger instance
func New(out io.Writer, minLevel LogLevel) *Logger {
	return &Logger{
		minLevel: minLevel,
		logger:   log.New(out, "", log.Ldate|log.Ltime),
	}
}

// DefaultLogger creates a logger with default settings
func DefaultLogger() *Logger {
	level := LevelInfo
	if os.Getenv("LAUNCHPAD_DEBUG") != "" {
		level = LevelDebug
	}
	return New(os.Stderr, level)
}

// PackageLogger creates a logger tagged with a package display name,
// e.g. logger.PackageLogger("ports", "🔌 PORTS").
func PackageLogger(pkg string, displayName string) *Logger {
	l := DefaultLogger()
	l.display = displayName
	return l
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// SetOutput sets the output destination
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

// Log logs a message at a specific level
func (l *Logger) Log(level LogLevel, msg string, args ...interface{}) {
	if level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	display := ""
	if l.display != "" {
		display = l.display + " "
	}

	logLine := fmt.Sprintf("%s%s\033[0m %s %s%s",
		levelColors[level], levelNames[level],
		levelEmojis[level],
		display,
		fmt.Sprintf(msg, args...))

	l.logger.Println(logLine)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.Log(LevelDebug, msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.Log(LevelInfo, msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.Log(LevelWarn, msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	l.Log(LevelError, msg, args...)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.Log(LevelFatal, msg, args...)
	os.Exit(1)
}

// Success logs a success message
func (l *Logger) Success(msg string, args ...interface{}) {
	l.Log(LevelSuccess, msg, args...)
}

// Timed logs the duration of a function execution
func (l *Logger) Timed(label string, fn func()) {
	start := time.Now()
	l.Info("⏳ Starting %s...", label)
	fn()
	l.Info("✅ Completed %s in %v", label, time.Since(start))
}
