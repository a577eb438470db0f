// Package ports picks free local TCP ports for managed apps.
package ports

import (
	"errors"
	"fmt"
	"net"
)

// ErrNoFreePort is returned when a whole port range is exhausted.
var ErrNoFreePort = errors.New("no free port in range")

// Free reports whether port is currently bindable on the loopback
// interface. The listener is opened and released immediately, so there is
// a window between the probe and the real launch; this is a best-effort
// check, not a lock.
func Free(port int) bool {
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return false
	}
	_ = l.Close()
	return true
}

// Allocate scans start..end inclusive and returns the lowest port that is
// not in excluded and is bindable right now. Lowest free port wins, so
// repeated runs are predictable.
func Allocate(start, end int, excluded map[int]bool) (int, error) {
	for p := start; p <= end; p++ {
		if excluded[p] {
			continue
		}
		if Free(p) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w %d-%d", ErrNoFreePort, start, end)
}
