// Package audit keeps an append-only JSONL trail of hub operations under
// the config root.
package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/triad369/launchpad/internal/logger"
)

var auditLogs = logger.PackageLogger("audit", "🧾 AUDIT")

// Event is one audit line.
type Event struct {
	TS      string         `json:"ts"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// Log appends events to <root>/audit.jsonl.
type Log struct {
	path string
}

// New returns a log rooted at the config directory.
func New(root string) *Log {
	return &Log{path: filepath.Join(root, "audit.jsonl")}
}

// Path returns the audit file location.
func (l *Log) Path() string {
	return l.path
}

// Write appends one event. Audit failures are logged, never fatal: the
// trail is a convenience, not a ledger the commands depend on.
func (l *Log) Write(eventType string, payload map[string]any) {
	evt := Event{
		TS:      time.Now().UTC().Format(time.RFC3339),
		Type:    eventType,
		Payload: payload,
	}
	data, err := json.Marshal(evt)
	if err != nil {
		auditLogs.Warn("Failed to encode audit event %q: %v", eventType, err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		auditLogs.Warn("Failed to create audit directory: %v", err)
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		auditLogs.Warn("Failed to open audit log: %v", err)
		return
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		auditLogs.Warn("Failed to append audit event: %v", err)
	}
}
