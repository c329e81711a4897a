package utils

import (
	"log"
	"runtime"
	"time"

	"main/model"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// GetCPUUsage returns the current CPU usage as a percentage
func GetCPUUsage() float64 {
	percentage, err := cpu.Percent(time.Second, false)
	if err != nil {
		log.Printf("Error getting CPU usage: %v", err)
		return 0
	}
	if len(percentage) > 0 {
		return percentage[0]
	}
	return 0
}

// GetSystemStats collects a point-in-time snapshot for the stats endpoint
func GetSystemStats() model.SystemStats {
	stats := model.SystemStats{
		CPUPercent: GetCPUUsage(),
		Goroutines: runtime.NumGoroutine(),
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("Error getting memory stats: %v", err)
		return stats
	}
	stats.MemoryUsed = vm.Used
	stats.MemoryTotal = vm.Total

	return stats
}
