// Package orchestrator composes the registry, port allocator, process
// launcher and runtime state store into the hub's sync/install/run/stop/
// status operations. Batch operations never let one app's failure skip the
// rest of the batch.
package orchestrator

import (
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/triad369/launchpad/internal/audit"
	"github.com/triad369/launchpad/internal/config"
	"github.com/triad369/launchpad/internal/logger"
	"github.com/triad369/launchpad/internal/registry"
	"github.com/triad369/launchpad/internal/state"
)

var (
	orchLogs = logger.PackageLogger("orchestrator", "🎛️ HUB")

	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// Outcome classifies what happened to one app in a batch.
type Outcome int

const (
	OK Outcome = iota
	Skipped
	Failed
)

// Result is one app's outcome within a batch operation.
type Result struct {
	App     string
	Outcome Outcome
	Detail  string
	Err     error
}

// AnyFailed reports whether a batch had at least one failure, for the
// command exit code.
func AnyFailed(results []Result) bool {
	for _, r := range results {
		if r.Outcome == Failed {
			return true
		}
	}
	return false
}

// Orchestrator drives hub operations over a set of registered apps. All
// collaborators are injected; nothing here reaches for globals.
type Orchestrator struct {
	Hub   config.Hub
	Store *state.Store
	Audit *audit.Log
}

// New wires an orchestrator from the hub config.
func New(hub config.Hub) *Orchestrator {
	return &Orchestrator{
		Hub:   hub,
		Store: state.NewStore(hub.RuntimePath()),
		Audit: audit.New(hub.Root),
	}
}

// repoRoot is where an app's repository is cloned: the first segment of
// its registry path under the workspace (several apps can share one repo).
func (o *Orchestrator) repoRoot(app registry.AppDescriptor) string {
	p := app.Path
	if p == "" {
		p = app.Name
	}
	first := strings.Split(filepath.ToSlash(p), "/")[0]
	return filepath.Join(o.Hub.Workspace, first)
}

// appDir is the app's working directory: its full registry path under the
// workspace.
func (o *Orchestrator) appDir(app registry.AppDescriptor) string {
	p := app.Path
	if p == "" {
		p = app.Name
	}
	return filepath.Join(o.Hub.Workspace, filepath.FromSlash(p))
}
