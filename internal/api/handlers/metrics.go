package handlers

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/Conceptual-Machines/rug-loom/internal/rug"
	"github.com/gin-gonic/gin"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	bytesToMB        = 1024 * 1024
)

type MetricsHandler struct {
	startTime time.Time
	version   string
	themes    ThemeProviderInfo
}

func NewMetricsHandler(version string, themes ThemeProviderInfo) *MetricsHandler {
	return &MetricsHandler{
		startTime: time.Now(),
		version:   version,
		themes:    themes,
	}
}

type MetricsResponse struct {
	Status    string        `json:"status"`
	Uptime    string        `json:"uptime"`
	Timestamp string        `json:"timestamp"`
	Version   string        `json:"version"`
	StartTime string        `json:"start_time"`
	System    SystemMetrics `json:"system"`
	Loom      LoomMetrics   `json:"loom"`
}

type SystemMetrics struct {
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAllocMB   uint64 `json:"mem_alloc_mb"`
	MemTotalMB   uint64 `json:"mem_total_mb"`
	NumGC        uint32 `json:"num_gc"`
}

// LoomMetrics describes what the loom can weave and who supplies its themes
type LoomMetrics struct {
	Styles        int    `json:"styles"`
	Palettes      int    `json:"palettes"`
	Motifs        int    `json:"motifs"`
	ThemeProvider string `json:"theme_provider"`
	ThemeModel    string `json:"theme_model"`
}

// formatUptime formats the uptime duration with seconds rounded to 2 decimal places
func formatUptime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % secondsPerMinute
	seconds := d.Seconds() - float64(hours*secondsPerHour) - float64(minutes*secondsPerMinute)

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm%.2fs", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm%.2fs", minutes, seconds)
	default:
		return fmt.Sprintf("%.2fs", seconds)
	}
}

// GetMetrics handles GET /api/metrics
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	c.JSON(http.StatusOK, MetricsResponse{
		Status:    "healthy",
		Uptime:    formatUptime(time.Since(h.startTime)),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		StartTime: h.startTime.UTC().Format(time.RFC3339),
		System: SystemMetrics{
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAllocMB:   m.Alloc / bytesToMB,
			MemTotalMB:   m.TotalAlloc / bytesToMB,
			NumGC:        m.NumGC,
		},
		Loom: LoomMetrics{
			Styles:        len(rug.Styles),
			Palettes:      len(rug.Palettes),
			Motifs:        len(rug.Motifs),
			ThemeProvider: h.themes.ProviderName(),
			ThemeModel:    h.themes.Model(),
		},
	})
}
