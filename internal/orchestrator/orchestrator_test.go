package orchestrator

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triad369/launchpad/internal/config"
	"github.com/triad369/launchpad/internal/registry"
	"github.com/triad369/launchpad/internal/state"
)

func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	base := t.TempDir()
	hub := config.Hub{
		Root:      filepath.Join(base, ".launchpad"),
		Workspace: filepath.Join(base, "workspace"),
	}
	require.NoError(t, os.MkdirAll(hub.Workspace, 0755))
	return New(hub)
}

func mkAppDir(t *testing.T, o *Orchestrator, app registry.AppDescriptor) {
	t.Helper()
	require.NoError(t, os.MkdirAll(o.appDir(app), 0755))
}

func TestRunSkipsWipAndMissingDir(t *testing.T) {
	o := newTestOrchestrator(t)
	apps := []registry.AppDescriptor{
		{Name: "wip", Path: "wip", DefaultPort: 9000, PortMax: 9002},
		{Name: "ghost", Path: "ghost", StartCommand: "sleep 30", DefaultPort: 9000, PortMax: 9002},
	}

	results := o.Run(apps)
	require.Len(t, results, 2)
	assert.Equal(t, Skipped, results[0].Outcome)
	assert.Equal(t, Skipped, results[1].Outcome)
	assert.False(t, AnyFailed(results))
}

func TestRunBatchAllocatesDistinctPorts(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sleep")
	}
	o := newTestOrchestrator(t)
	apps := []registry.AppDescriptor{
		{Name: "a", Path: "a", StartCommand: "sleep 30", DefaultPort: 19500, PortMax: 19502},
		{Name: "b", Path: "b", StartCommand: "sleep 30", DefaultPort: 19500, PortMax: 19502},
	}
	for _, app := range apps {
		mkAppDir(t, o, app)
	}

	results := o.Run(apps)
	require.Len(t, results, 2)
	assert.Equal(t, OK, results[0].Outcome)
	assert.Equal(t, OK, results[1].Outcome)

	records := o.Store.Load()
	defer func() {
		o.StopAll()
	}()

	require.Contains(t, records, "a")
	require.Contains(t, records, "b")
	assert.NotEqual(t, records["a"].Port, records["b"].Port,
		"two apps sharing a range must get distinct ports in one batch")
	assert.True(t, records["a"].Running)
	assert.Greater(t, records["a"].PID, 0)
	assert.False(t, records["a"].StartedAt.IsZero())
}

func TestRunSubstitutesPortPlaceholder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	o := newTestOrchestrator(t)
	app := registry.AppDescriptor{
		Name: "echo-port", Path: "echo-port",
		StartCommand: `sh -c "echo port={PORT}"`,
		DefaultPort:  19510, PortMax: 19512,
	}
	mkAppDir(t, o, app)

	results := o.Run([]registry.AppDescriptor{app})
	require.Equal(t, OK, results[0].Outcome)

	rec := o.Store.Load()["echo-port"]
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(rec.LogPath)
		return err == nil && len(data) > 0
	}, 3*time.Second, 50*time.Millisecond)

	data, err := os.ReadFile(rec.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "port="+strconv.Itoa(rec.Port))
}

func TestStopWithoutRecordedPid(t *testing.T) {
	o := newTestOrchestrator(t)
	require.NoError(t, o.Store.Save(map[string]state.RuntimeRecord{
		"idle": {PID: 0, Running: true},
	}))

	results := o.Stop([]registry.AppDescriptor{{Name: "idle"}})
	require.Len(t, results, 1)
	assert.Equal(t, OK, results[0].Outcome)
	assert.Equal(t, "no recorded pid", results[0].Detail)

	rec := o.Store.Load()["idle"]
	assert.False(t, rec.Running)
	assert.False(t, rec.StoppedAt.IsZero())
}

func TestStopTerminatesLaunchedProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sleep")
	}
	o := newTestOrchestrator(t)
	app := registry.AppDescriptor{
		Name: "sleeper", Path: "sleeper",
		StartCommand: "sleep 60", DefaultPort: 19520, PortMax: 19522,
	}
	mkAppDir(t, o, app)

	results := o.Run([]registry.AppDescriptor{app})
	require.Equal(t, OK, results[0].Outcome)
	pid := o.Store.Load()["sleeper"].PID
	require.Greater(t, pid, 0)

	stopResults := o.Stop([]registry.AppDescriptor{app})
	require.Equal(t, OK, stopResults[0].Outcome)
	assert.False(t, o.Store.Load()["sleeper"].Running)

	require.Eventually(t, func() bool {
		return liveness(pid) != "alive"
	}, 3*time.Second, 50*time.Millisecond)
}

func TestStatusReportsRecordAndHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	o := newTestOrchestrator(t)
	app := registry.AppDescriptor{Name: "api", Path: "api", HealthPath: "/health"}
	mkAppDir(t, o, app)
	require.NoError(t, os.WriteFile(filepath.Join(o.appDir(app), "requirements.txt"), nil, 0644))
	require.NoError(t, o.Store.Save(map[string]state.RuntimeRecord{
		"api": {PID: os.Getpid(), Port: port, Running: true},
	}))

	statuses := o.Status([]registry.AppDescriptor{app})
	require.Len(t, statuses, 1)
	st := statuses[0]
	assert.Equal(t, "python", st.Stack)
	assert.True(t, st.Running)
	assert.Equal(t, "alive", st.Liveness)
	assert.Equal(t, "up (200)", st.Health)
}

func TestStatusHealthDownOnNetworkError(t *testing.T) {
	o := newTestOrchestrator(t)
	app := registry.AppDescriptor{Name: "api", Path: "api", HealthPath: "/health"}
	require.NoError(t, o.Store.Save(map[string]state.RuntimeRecord{
		// A port nothing listens on.
		"api": {PID: 0, Port: 19599, Running: true},
	}))

	statuses := o.Status([]registry.AppDescriptor{app})
	require.Len(t, statuses, 1)
	assert.Equal(t, "down", statuses[0].Health)
}

func TestStatusSkipsProbeWhenNotRunning(t *testing.T) {
	o := newTestOrchestrator(t)
	app := registry.AppDescriptor{Name: "api", Path: "api", HealthPath: "/health"}
	require.NoError(t, o.Store.Save(map[string]state.RuntimeRecord{
		"api": {PID: 0, Port: 19599, Running: false},
	}))

	statuses := o.Status([]registry.AppDescriptor{app})
	require.Len(t, statuses, 1)
	assert.Empty(t, statuses[0].Health)
}

func TestInstallSkipsWithoutCommandOrDir(t *testing.T) {
	o := newTestOrchestrator(t)
	results := o.Install([]registry.AppDescriptor{
		{Name: "bare", Path: "bare"},
		{Name: "ghost", Path: "ghost", InstallCommand: "true"},
	})
	require.Len(t, results, 2)
	assert.Equal(t, Skipped, results[0].Outcome)
	assert.Equal(t, Skipped, results[1].Outcome)
}

func TestInstallRunsCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	o := newTestOrchestrator(t)
	app := registry.AppDescriptor{
		Name: "pkg", Path: "pkg",
		InstallCommand: `sh -c "echo installed > marker.txt"`,
	}
	mkAppDir(t, o, app)

	results := o.Install([]registry.AppDescriptor{app})
	require.Equal(t, OK, results[0].Outcome)
	assert.FileExists(t, filepath.Join(o.appDir(app), "marker.txt"))
}

func TestSyncFailureDoesNotAbortBatch(t *testing.T) {
	o := newTestOrchestrator(t)
	// An existing directory that is not a git repo forces a pull failure.
	broken := registry.AppDescriptor{Name: "broken", Path: "broken", RepoURL: "https://example.invalid/x.git"}
	mkAppDir(t, o, broken)
	skipped := registry.AppDescriptor{Name: "nourl", Path: "nourl"}

	results := o.Sync([]registry.AppDescriptor{broken, skipped})
	require.Len(t, results, 2)
	assert.Equal(t, Failed, results[0].Outcome)
	assert.Equal(t, Skipped, results[1].Outcome)
	assert.True(t, AnyFailed(results))
}
