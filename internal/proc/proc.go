// Package proc launches managed app processes detached from the CLI and
// reconciles recorded pids against actual OS process liveness.
package proc

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/triad369/launchpad/internal/logger"
)

var procLogs = logger.PackageLogger("proc", "⚙️ PROC")

// Handle identifies a launched process.
type Handle struct {
	PID     int
	LogPath string
}

// Aliveness is the tri-state outcome of a liveness probe. A probe that
// cannot be completed (e.g. permission denied) is Unknown, not Dead.
type Aliveness int

const (
	Unknown Aliveness = iota
	Alive
	Dead
)

func (a Aliveness) String() string {
	switch a {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Start launches the resolved command in workDir with stdout and stderr
// appended to logPath. The child is not waited on; control returns as soon
// as the process has been spawned. extraEnv entries are appended to the
// inherited environment.
func Start(command Command, workDir, logPath string, extraEnv map[string]string) (*Handle, error) {
	argv := command.Resolve()

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = workDir
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.Env = os.Environ()
	for key, value := range extraEnv {
		cmd.Env = append(cmd.Env, key+"="+value)
	}

	if err := cmd.Start(); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to start %q: %w", argv[0], err)
	}
	pid := cmd.Process.Pid
	procLogs.Debug("Started %s (pid %d), logging to %s", argv[0], pid, logPath)

	// Reap the child if it exits while this CLI is still alive; otherwise
	// it is intentionally orphaned when the CLI returns.
	go func() {
		_ = cmd.Wait()
		logFile.Close()
	}()

	return &Handle{PID: pid, LogPath: logPath}, nil
}

// Run executes the resolved command in workDir and blocks until it exits,
// streaming output to logPath. Used for install/build commands.
func Run(command Command, workDir, logPath string) error {
	argv := command.Resolve()

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}
	defer logFile.Close()

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = workDir
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", command.String(), err)
	}
	return nil
}

// Liveness probes whether the process with the given pid exists.
func Liveness(pid int) Aliveness {
	if pid <= 0 {
		return Dead
	}
	exists, err := process.PidExists(int32(pid))
	if err != nil {
		return Unknown
	}
	if exists {
		return Alive
	}
	return Dead
}

// Terminate sends a termination signal to pid. A process that is already
// gone is not an error; only a delivery failure against a live process is
// reported.
func Terminate(pid int) error {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		// Already gone.
		procLogs.Debug("Process %d not found, nothing to signal", pid)
		return nil
	}
	if err := p.Terminate(); err != nil {
		return fmt.Errorf("failed to signal pid %d: %w", pid, err)
	}
	return nil
}
