package health

import (
	"context"
	"time"

	"loket-backend/internal/cache"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	db Pinger
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
	Redis    string         `json:"redis"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

type SystemStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsed    uint64  `json:"memory_used_bytes"`
	MemoryTotal   uint64  `json:"memory_total_bytes"`
	DiskPercent   float64 `json:"disk_percent"`
	DiskUsed      uint64  `json:"disk_used_bytes"`
	DiskTotal     uint64  `json:"disk_total_bytes"`
}

type DetailedStatus struct {
	HealthStatus
	System SystemStats `json:"system"`
}

// NewHealthChecker accepts a nil db when the service runs on the in-memory
// store.
func NewHealthChecker(db Pinger) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	dbHealth := h.checkDatabase()

	status := "healthy"
	if dbHealth.Status == "unhealthy" {
		status = "unhealthy"
	}

	// redis only backs the cache and lock, so losing it degrades but does
	// not fail readiness
	redisStatus := "disabled"
	if cache.GetClient() != nil {
		redisStatus = "healthy"
		if !cache.IsHealthy() {
			redisStatus = "unhealthy"
			if status == "healthy" {
				status = "degraded"
			}
		}
	}

	return HealthStatus{
		Status:   status,
		Database: dbHealth,
		Redis:    redisStatus,
	}
}

// CheckDetailed adds host resource usage to the basic check.
func (h *HealthChecker) CheckDetailed(ctx context.Context) DetailedStatus {
	status := DetailedStatus{HealthStatus: h.CheckBasic()}

	if percents, err := cpu.PercentWithContext(ctx, 200*time.Millisecond, false); err == nil && len(percents) > 0 {
		status.System.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		status.System.MemoryPercent = vm.UsedPercent
		status.System.MemoryUsed = vm.Used
		status.System.MemoryTotal = vm.Total
	}
	if du, err := disk.UsageWithContext(ctx, "/"); err == nil {
		status.System.DiskPercent = du.UsedPercent
		status.System.DiskUsed = du.Used
		status.System.DiskTotal = du.Total
	}

	return status
}

func (h *HealthChecker) checkDatabase() DatabaseHealth {
	if h.db == nil {
		return DatabaseHealth{Status: "memory"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return DatabaseHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return DatabaseHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}
