package orchestrator

import (
	"fmt"
	"os"

	"github.com/triad369/launchpad/internal/proc"
	"github.com/triad369/launchpad/internal/registry"
)

// Install runs each app's install command in its resolved directory. Apps
// with no install command or a missing directory are skipped with a
// warning, not an error.
func (o *Orchestrator) Install(apps []registry.AppDescriptor) []Result {
	results := make([]Result, 0, len(apps))
	for _, app := range apps {
		results = append(results, o.installOne(app))
	}
	o.Audit.Write("install", map[string]any{"apps": len(apps), "failed": countFailed(results)})
	return results
}

func (o *Orchestrator) installOne(app registry.AppDescriptor) Result {
	if app.InstallCommand == "" {
		warnColor.Printf("! %s: no install command, skipping\n", app.Name)
		return Result{App: app.Name, Outcome: Skipped, Detail: "no install command"}
	}
	dir := o.appDir(app)
	if _, err := os.Stat(dir); err != nil {
		warnColor.Printf("! %s: directory %s missing, run sync first\n", app.Name, dir)
		return Result{App: app.Name, Outcome: Skipped, Detail: "directory missing"}
	}

	cmd, err := proc.ParseCommand(app.InstallCommand)
	if err != nil {
		return Result{App: app.Name, Outcome: Failed, Err: err}
	}

	infoColor.Printf("→ Installing %s (%s)\n", app.Name, app.InstallCommand)
	if err := proc.Run(cmd, dir, o.Hub.LogPath(app.Name)); err != nil {
		errorColor.Printf("✗ %s: install failed: %v\n", app.Name, err)
		return Result{App: app.Name, Outcome: Failed, Err: fmt.Errorf("install failed: %w", err)}
	}
	successColor.Printf("✓ %s installed\n", app.Name)
	return Result{App: app.Name, Outcome: OK, Detail: "installed"}
}
