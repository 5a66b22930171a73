package config

import (
	"os"
	"time"
)

// Timeouts holds the per-stage wait budgets. Every value can be overridden
// via environment variable for slow regions or constrained test runs.
type Timeouts struct {
	BootRunning    time.Duration // server reaching "running" status
	BootInterval   time.Duration // status poll cadence
	FirstEvent     time.Duration // first progress event on the notification stream
	Reachable      time.Duration // SSH reachability after the install reboot
	ReachInterval  time.Duration // reachability probe cadence
	HTTPHealth     time.Duration // web UI answering with the expected status
	ContentReady   time.Duration // model appearing in the inference API
	HealthInterval time.Duration // health/content poll cadence
	Delete         time.Duration // server deletion
}

// LoadTimeouts loads the stage timeouts from environment variables, falling
// back to the defaults when a variable is unset or unparseable.
//
// Environment variables:
//   - LLAMAUP_TIMEOUT_BOOT (default: 180s)
//   - LLAMAUP_INTERVAL_BOOT (default: 5s)
//   - LLAMAUP_TIMEOUT_FIRST_EVENT (default: 300s)
//   - LLAMAUP_TIMEOUT_REACHABLE (default: 120s)
//   - LLAMAUP_INTERVAL_REACHABLE (default: 2s)
//   - LLAMAUP_TIMEOUT_HTTP_HEALTH (default: 30s)
//   - LLAMAUP_TIMEOUT_CONTENT_READY (default: 600s)
//   - LLAMAUP_INTERVAL_HEALTH (default: 2s)
//   - LLAMAUP_TIMEOUT_DELETE (default: 5m)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		BootRunning:    parseDuration("LLAMAUP_TIMEOUT_BOOT", 180*time.Second),
		BootInterval:   parseDuration("LLAMAUP_INTERVAL_BOOT", 5*time.Second),
		FirstEvent:     parseDuration("LLAMAUP_TIMEOUT_FIRST_EVENT", 300*time.Second),
		Reachable:      parseDuration("LLAMAUP_TIMEOUT_REACHABLE", 120*time.Second),
		ReachInterval:  parseDuration("LLAMAUP_INTERVAL_REACHABLE", 2*time.Second),
		HTTPHealth:     parseDuration("LLAMAUP_TIMEOUT_HTTP_HEALTH", 30*time.Second),
		ContentReady:   parseDuration("LLAMAUP_TIMEOUT_CONTENT_READY", 600*time.Second),
		HealthInterval: parseDuration("LLAMAUP_INTERVAL_HEALTH", 2*time.Second),
		Delete:         parseDuration("LLAMAUP_TIMEOUT_DELETE", 5*time.Minute),
	}
}

// parseDuration parses a duration from an environment variable, returning
// the default when unset or invalid.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
