// Package doctor reports whether the host has the tools the managed apps
// need.
package doctor

import (
	"os/exec"

	"github.com/shirou/gopsutil/v4/mem"
)

var tools = []string{"git", "gh", "node", "npm", "pnpm", "python3"}

// Report maps tool name → present-on-PATH.
func Report() map[string]bool {
	out := make(map[string]bool, len(tools))
	for _, tool := range tools {
		_, err := exec.LookPath(tool)
		out[tool] = err == nil
	}
	return out
}

// HostMemory returns total and available bytes, zeros when the probe
// fails (the doctor output degrades, nothing else cares).
func HostMemory() (total, available uint64) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0
	}
	return vm.Total, vm.Available
}
