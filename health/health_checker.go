// Package health provides health checking functionality for the first-aid API.
package health

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/giygas/afyabuddy-api/interfaces"
)

const pingTimeout = 2 * time.Second

// pinger is implemented by cache backends that talk to a remote server
type pinger interface {
	Ping(ctx context.Context) error
}

// Options carries the optional parts of the health report
type Options struct {
	TranslatorBackend string
	SourceLanguage    string
	Cache             interfaces.TranslationCache
	StartTime         time.Time
}

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	catalog interfaces.ConditionCatalog
	opts    Options
}

// NewHealthChecker creates a new health checker with injected dependencies
func NewHealthChecker(catalog interfaces.ConditionCatalog, opts Options) interfaces.HealthChecker {
	if opts.StartTime.IsZero() {
		opts.StartTime = time.Now()
	}
	if opts.TranslatorBackend == "" {
		opts.TranslatorBackend = "none"
	}

	return &HealthCheckerImpl{
		catalog: catalog,
		opts:    opts,
	}
}

// HealthCheck reports unhealthy when there is nothing to serve and degraded
// when the translation cache cannot be reached. Translation problems never
// make the service unhealthy since every endpoint falls back to source text.
func (h *HealthCheckerImpl) HealthCheck(ctx context.Context) (status string, data map[string]any, httpStatus int) {
	conditions := 0
	if h.catalog != nil {
		conditions = h.catalog.Len()
	}

	cacheBackend := "none"
	cacheStatus := "disabled"
	if h.opts.Cache != nil {
		cacheBackend = h.opts.Cache.Backend()
		cacheStatus = "ok"
		if p, ok := h.opts.Cache.(pinger); ok {
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			err := p.Ping(pingCtx)
			cancel()
			if err != nil {
				cacheStatus = "unreachable"
			}
		}
	}

	switch {
	case conditions == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	case cacheStatus == "unreachable":
		status = "degraded"
		httpStatus = http.StatusOK
	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	uptime := time.Since(h.opts.StartTime)
	data = map[string]any{
		"conditions":      conditions,
		"source_language": h.opts.SourceLanguage,
		"translator":      h.opts.TranslatorBackend,
		"cache":           cacheBackend,
		"cache_status":    cacheStatus,
		"uptime_seconds":  math.Round(uptime.Seconds()),
		"uptime":          formatUptimeHuman(uptime),
	}

	return status, data, httpStatus
}

// formatUptimeHuman formats duration into a human-readable string
func formatUptimeHuman(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string

	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}
