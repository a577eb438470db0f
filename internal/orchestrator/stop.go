package orchestrator

import (
	"time"

	"github.com/triad369/launchpad/internal/proc"
	"github.com/triad369/launchpad/internal/registry"
	"github.com/triad369/launchpad/internal/state"
)

// Stop signals each app's recorded pid and marks its record stopped.
// Signal delivery is best-effort: a process that died on its own or a
// permission error never blocks the record from being flipped.
func (o *Orchestrator) Stop(apps []registry.AppDescriptor) []Result {
	results := make([]Result, 0, len(apps))
	for _, app := range apps {
		results = append(results, o.stopOne(app.Name))
	}
	o.Audit.Write("stop", map[string]any{"apps": len(apps)})
	return results
}

// StopAll stops every app present in the runtime state file, whether or
// not it is still in the registry.
func (o *Orchestrator) StopAll() []Result {
	apps := o.Store.Load()
	results := make([]Result, 0, len(apps))
	for name := range apps {
		results = append(results, o.stopOne(name))
	}
	o.Audit.Write("stop", map[string]any{"apps": len(apps), "all": true})
	return results
}

func (o *Orchestrator) stopOne(name string) Result {
	records := o.Store.Load()
	rec, ok := records[name]

	detail := "no recorded pid"
	if ok && rec.PID > 0 {
		if err := proc.Terminate(rec.PID); err != nil {
			// Delivery failed against a live process; still mark stopped.
			warnColor.Printf("! %s: %v\n", name, err)
			detail = "signal delivery failed"
		} else {
			detail = "signalled"
		}
	}

	err := o.Store.Update(name, func(rec state.RuntimeRecord) state.RuntimeRecord {
		rec.Running = false
		rec.StoppedAt = time.Now().UTC()
		return rec
	})
	if err != nil {
		errorColor.Printf("✗ %s: %v\n", name, err)
		return Result{App: name, Outcome: Failed, Err: err}
	}

	successColor.Printf("✓ %s stopped (%s)\n", name, detail)
	return Result{App: name, Outcome: OK, Detail: detail}
}
