package orchestrator

import (
	"fmt"
	"net/http"
	"time"

	"github.com/triad369/launchpad/internal/detect"
	"github.com/triad369/launchpad/internal/proc"
	"github.com/triad369/launchpad/internal/registry"
)

const healthTimeout = 2 * time.Second

// AppStatus is one app's reported state: the runtime record reconciled
// against actual OS process liveness, plus an optional health probe.
type AppStatus struct {
	App      string `json:"app" yaml:"app"`
	Stack    string `json:"stack" yaml:"stack"`
	Running  bool   `json:"running" yaml:"running"`
	PID      int    `json:"pid" yaml:"pid"`
	Port     int    `json:"port" yaml:"port"`
	Liveness string `json:"liveness" yaml:"liveness"`
	Health   string `json:"health,omitempty" yaml:"health,omitempty"`
	LogPath  string `json:"log_path,omitempty" yaml:"log_path,omitempty"`
}

// Status reports each app's recorded state. The health probe only runs
// when the app declares a health path and the record says it is running;
// any network error is the string "down", never a raised error.
func (o *Orchestrator) Status(apps []registry.AppDescriptor) []AppStatus {
	records := o.Store.Load()

	out := make([]AppStatus, 0, len(apps))
	for _, app := range apps {
		rec := records[app.Name]
		st := AppStatus{
			App:     app.Name,
			Stack:   detect.Stack(o.appDir(app)),
			Running: rec.Running,
			PID:     rec.PID,
			Port:    rec.Port,
			LogPath: rec.LogPath,
		}
		if rec.PID > 0 {
			st.Liveness = liveness(rec.PID)
		}
		if app.HealthPath != "" && rec.Running && rec.Port > 0 {
			st.Health = probeHealth(rec.Port, app.HealthPath)
		}
		out = append(out, st)
	}
	return out
}

func liveness(pid int) string {
	return proc.Liveness(pid).String()
}

func probeHealth(port int, healthPath string) string {
	client := http.Client{Timeout: healthTimeout}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d%s", port, healthPath))
	if err != nil {
		return "down"
	}
	defer resp.Body.Close()
	return fmt.Sprintf("up (%d)", resp.StatusCode)
}
