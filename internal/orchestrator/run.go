package orchestrator

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/triad369/launchpad/internal/ports"
	"github.com/triad369/launchpad/internal/proc"
	"github.com/triad369/launchpad/internal/registry"
	"github.com/triad369/launchpad/internal/state"
)

// Run launches each app in order. Ports claimed earlier in the same batch
// are excluded from later allocations, so two apps sharing a range never
// collide within one invocation. A failed launch is reported for that app
// only; the batch continues.
func (o *Orchestrator) Run(apps []registry.AppDescriptor) []Result {
	// Ephemeral per-batch claim set; nothing about it persists.
	claimed := make(map[int]bool)

	results := make([]Result, 0, len(apps))
	for _, app := range apps {
		results = append(results, o.runOne(app, claimed))
	}
	o.Audit.Write("run", map[string]any{"apps": len(apps), "failed": countFailed(results)})
	return results
}

func (o *Orchestrator) runOne(app registry.AppDescriptor, claimed map[int]bool) Result {
	if app.StartCommand == "" {
		warnColor.Printf("! %s: no start command yet (wip), skipping\n", app.Name)
		return Result{App: app.Name, Outcome: Skipped, Detail: "no start command"}
	}
	dir := o.appDir(app)
	if _, err := os.Stat(dir); err != nil {
		warnColor.Printf("! %s: directory %s missing, run sync first\n", app.Name, dir)
		return Result{App: app.Name, Outcome: Skipped, Detail: "directory missing"}
	}

	port, err := ports.Allocate(app.DefaultPort, app.PortMax, claimed)
	if err != nil {
		errorColor.Printf("✗ %s: %v\n", app.Name, err)
		return Result{App: app.Name, Outcome: Failed, Err: err}
	}
	claimed[port] = true

	cmd, err := proc.ParseCommand(app.StartCommand)
	if err != nil {
		return Result{App: app.Name, Outcome: Failed, Err: err}
	}
	cmd = cmd.WithVar("PORT", strconv.Itoa(port))

	logPath := o.Hub.LogPath(app.Name)
	infoColor.Printf("→ Starting %s on port %d\n", app.Name, port)
	handle, err := proc.Start(cmd, dir, logPath, map[string]string{"PORT": strconv.Itoa(port)})
	if err != nil {
		errorColor.Printf("✗ %s: %v\n", app.Name, err)
		return Result{App: app.Name, Outcome: Failed, Err: err}
	}

	err = o.Store.Update(app.Name, func(state.RuntimeRecord) state.RuntimeRecord {
		return state.RuntimeRecord{
			PID:       handle.PID,
			Port:      port,
			Running:   true,
			LogPath:   logPath,
			WorkDir:   dir,
			StartedAt: time.Now().UTC(),
		}
	})
	if err != nil {
		// The child is up; a state write failure must not hide that.
		errorColor.Printf("✗ %s: started (pid %d) but state not recorded: %v\n", app.Name, handle.PID, err)
		return Result{App: app.Name, Outcome: Failed, Err: fmt.Errorf("state not recorded: %w", err)}
	}

	successColor.Printf("✓ %s running (pid %d, port %d, log %s)\n", app.Name, handle.PID, port, logPath)
	return Result{App: app.Name, Outcome: OK, Detail: fmt.Sprintf("pid %d port %d", handle.PID, port)}
}
