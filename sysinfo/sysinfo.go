// Package sysinfo captures a snapshot of the host running the benchmark so
// reported numbers carry their environment.
package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info describes the benchmark host. Fields left zero when probing fails.
type Info struct {
	CPUModel    string
	Cores       int
	ClockMHz    float64
	Arch        string
	MemoryTotal uint64
	OSName      string
	OSVersion   string
}

// Collect gathers host information. Best effort: probe failures leave the
// corresponding fields empty rather than failing the run.
func Collect() Info {
	info := Info{
		Cores: runtime.NumCPU(),
		Arch:  runtime.GOARCH,
	}

	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
		info.ClockMHz = cpuInfo[0].Mhz
	}
	if memInfo, err := mem.VirtualMemory(); err == nil {
		info.MemoryTotal = memInfo.Total
	}
	if hostInfo, err := host.Info(); err == nil {
		info.OSName = hostInfo.Platform
		info.OSVersion = hostInfo.PlatformVersion
	}

	return info
}

// String renders the snapshot as a single banner line.
func (i Info) String() string {
	cpuModel := i.CPUModel
	if cpuModel == "" {
		cpuModel = "unknown CPU"
	}
	osName := i.OSName
	if osName == "" {
		osName = "unknown OS"
	}
	return fmt.Sprintf("%s, %d cores (%s), %.0f MiB memory, %s %s",
		cpuModel, i.Cores, i.Arch, float64(i.MemoryTotal)/(1024*1024), osName, i.OSVersion)
}
