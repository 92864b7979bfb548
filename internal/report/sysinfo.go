package report

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/logger"
)

// SystemInfo describes the machine an experiment ran on
type SystemInfo struct {
	Hostname        string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Platform        string `json:"platform,omitempty" yaml:"platform,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty" yaml:"platform_version,omitempty"`
	KernelArch      string `json:"kernel_arch,omitempty" yaml:"kernel_arch,omitempty"`
	CPUModel        string `json:"cpu_model,omitempty" yaml:"cpu_model,omitempty"`
	CPUCores        int    `json:"cpu_cores" yaml:"cpu_cores"`
	TotalMemory     uint64 `json:"total_memory_bytes" yaml:"total_memory_bytes"`
	GoVersion       string `json:"go_version" yaml:"go_version"`
}

// CollectSystemInfo gathers host, CPU and memory details. Probes that fail
// leave their fields empty; the result is never nil.
func CollectSystemInfo() *SystemInfo {
	info := &SystemInfo{
		CPUCores:  runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}

	if hostStat, err := host.Info(); err == nil && hostStat != nil {
		info.Hostname = hostStat.Hostname
		info.Platform = hostStat.Platform
		info.PlatformVersion = hostStat.PlatformVersion
		info.KernelArch = hostStat.KernelArch
	} else if err != nil {
		logger.Debug("host info unavailable", "error", err)
	}

	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPUModel = cpuStat[0].ModelName
	} else if err != nil {
		logger.Debug("cpu info unavailable", "error", err)
	}
	if cores, err := cpu.Counts(true); err == nil && cores > 0 {
		info.CPUCores = cores
	}

	if vmStat, err := mem.VirtualMemory(); err == nil && vmStat != nil {
		info.TotalMemory = vmStat.Total
	} else if err != nil {
		logger.Debug("memory info unavailable", "error", err)
	}

	return info
}

// MemoryGB returns total memory in whole gigabytes
func (s *SystemInfo) MemoryGB() uint64 {
	return s.TotalMemory / 1024 / 1024 / 1024
}
