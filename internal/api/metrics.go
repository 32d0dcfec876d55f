package api

import (
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// slowRequestThreshold is the latency above which a request is logged.
const slowRequestThreshold = 200 * time.Millisecond

// recentWindow is how many recent samples feed the P95 estimate.
const recentWindow = 100

// PerformanceMetrics tracks request latency per endpoint.
type PerformanceMetrics struct {
	mu            sync.RWMutex
	requestCount  int64
	totalDuration time.Duration
	endpoints     map[string]*endpointMetrics
}

type endpointMetrics struct {
	count       int64
	totalTime   time.Duration
	minTime     time.Duration
	maxTime     time.Duration
	p95Time     time.Duration
	recentTimes []time.Duration
}

func newPerformanceMetrics() *PerformanceMetrics {
	return &PerformanceMetrics{endpoints: make(map[string]*endpointMetrics)}
}

// Record adds one request's latency to the endpoint's stats.
func (pm *PerformanceMetrics) Record(path string, duration time.Duration) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.requestCount++
	pm.totalDuration += duration

	m, ok := pm.endpoints[path]
	if !ok {
		m = &endpointMetrics{
			minTime:     duration,
			maxTime:     duration,
			recentTimes: make([]time.Duration, 0, recentWindow),
		}
		pm.endpoints[path] = m
	}

	m.count++
	m.totalTime += duration
	if duration < m.minTime {
		m.minTime = duration
	}
	if duration > m.maxTime {
		m.maxTime = duration
	}

	m.recentTimes = append(m.recentTimes, duration)
	if len(m.recentTimes) > recentWindow {
		m.recentTimes = m.recentTimes[1:]
	}
	sorted := make([]time.Duration, len(m.recentTimes))
	copy(sorted, m.recentTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	p95Index := int(float64(len(sorted)) * 0.95)
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}
	m.p95Time = sorted[p95Index]
}

// EndpointStats is one endpoint's latency summary.
type EndpointStats struct {
	Count int64 `json:"count"`
	AvgMs int64 `json:"avgMs"`
	MinMs int64 `json:"minMs"`
	MaxMs int64 `json:"maxMs"`
	P95Ms int64 `json:"p95Ms"`
}

// MetricsSnapshot is the aggregate view served by the metrics endpoint.
type MetricsSnapshot struct {
	TotalRequests int64                    `json:"totalRequests"`
	AvgDurationMs int64                    `json:"avgDurationMs"`
	Endpoints     map[string]EndpointStats `json:"endpoints"`
}

// Snapshot returns a copy of the current stats.
func (pm *PerformanceMetrics) Snapshot() MetricsSnapshot {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	endpoints := make(map[string]EndpointStats, len(pm.endpoints))
	for path, m := range pm.endpoints {
		avg := time.Duration(0)
		if m.count > 0 {
			avg = m.totalTime / time.Duration(m.count)
		}
		endpoints[path] = EndpointStats{
			Count: m.count,
			AvgMs: avg.Milliseconds(),
			MinMs: m.minTime.Milliseconds(),
			MaxMs: m.maxTime.Milliseconds(),
			P95Ms: m.p95Time.Milliseconds(),
		}
	}

	avg := time.Duration(0)
	if pm.requestCount > 0 {
		avg = pm.totalDuration / time.Duration(pm.requestCount)
	}
	return MetricsSnapshot{
		TotalRequests: pm.requestCount,
		AvgDurationMs: avg.Milliseconds(),
		Endpoints:     endpoints,
	}
}

// PerformanceMonitor middleware records request latency, flags slow requests,
// and echoes the duration in an X-Response-Time header. Health checks and
// websocket upgrades stay out of the stats.
func (s *Server) PerformanceMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start)
		c.Header("X-Response-Time", duration.String())

		if path == "/health" || strings.HasPrefix(path, "/ws/") {
			return
		}
		if duration > slowRequestThreshold {
			s.Logger.Warn("slow request",
				"method", c.Request.Method,
				"path", path,
				"duration", duration.String(),
				"status", c.Writer.Status(),
			)
		}
		s.metrics.Record(path, duration)
	}
}

// Metrics serves the aggregated latency stats.
func (s *Server) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.metrics.Snapshot())
}
