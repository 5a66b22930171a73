// Package benchmarks provides timing estimates for provisioning phases.
package benchmarks

import (
	"time"
)

// DefaultTimings are median phase durations observed on GPU server types in
// the fsn1 and nbg1 locations (seconds). The install phase dominates: it
// covers the driver download and the reboot.
var DefaultTimings = map[string]int{
	"Create server":           15,
	"Wait for boot":           45,
	"Install inference stack": 420,
	"Wait for SSH":            60,
	"Verify services":         240,
}

// PhaseOrder defines the sequence of phases for ETA calculation.
var PhaseOrder = []string{
	"Create server",
	"Wait for boot",
	"Install inference stack",
	"Wait for SSH",
	"Verify services",
}

// EstimateRemaining calculates the estimated time remaining from the current
// phase, its elapsed time, and the actual durations of completed phases.
func EstimateRemaining(currentPhase string, phaseElapsed time.Duration, completed map[string]time.Duration) time.Duration {
	return EstimateRemainingWithScale(currentPhase, phaseElapsed, completed,
		PerformanceScale(currentPhase, phaseElapsed, completed))
}

// EstimateRemainingWithScale calculates the ETA while applying a performance
// scale factor.
func EstimateRemainingWithScale(currentPhase string, phaseElapsed time.Duration, completed map[string]time.Duration, scale float64) time.Duration {
	currentIdx := -1
	for i, p := range PhaseOrder {
		if p == currentPhase {
			currentIdx = i
			break
		}
	}
	if currentIdx < 0 {
		return 0
	}

	var remaining time.Duration

	// Current phase: max(0, expected - elapsed).
	if expected, ok := DefaultTimings[currentPhase]; ok {
		expectedDur := time.Duration(float64(expected) * float64(time.Second) * scale)
		if expectedDur > phaseElapsed {
			remaining += expectedDur - phaseElapsed
		}
	}

	for i := currentIdx + 1; i < len(PhaseOrder); i++ {
		phase := PhaseOrder[i]
		if _, done := completed[phase]; done {
			continue
		}
		if expected, ok := DefaultTimings[phase]; ok {
			remaining += time.Duration(float64(expected) * float64(time.Second) * scale)
		}
	}

	return remaining
}

// PerformanceScale derives a speed multiplier from observed-vs-expected
// durations. Example: expected 3m, observed 4m30s => scale=1.5 (future ETAs
// are stretched by 50%).
func PerformanceScale(currentPhase string, phaseElapsed time.Duration, completed map[string]time.Duration) float64 {
	var expectedTotal time.Duration
	var actualTotal time.Duration

	for phase, actual := range completed {
		expectedSecs, ok := DefaultTimings[phase]
		if !ok {
			continue
		}
		expectedTotal += time.Duration(expectedSecs) * time.Second
		actualTotal += actual
	}

	// Fold in an overrunning current phase immediately so the ETA adapts
	// before the phase ends.
	if expectedSecs, ok := DefaultTimings[currentPhase]; ok && phaseElapsed > 0 {
		expectedCurrent := time.Duration(expectedSecs) * time.Second
		if phaseElapsed > expectedCurrent {
			expectedTotal += expectedCurrent
			actualTotal += phaseElapsed
		}
	}

	if expectedTotal == 0 || actualTotal == 0 {
		return 1.0
	}

	scale := float64(actualTotal) / float64(expectedTotal)
	if scale < 0.6 {
		return 0.6
	}
	if scale > 3.0 {
		return 3.0
	}
	return scale
}

// TotalEstimate returns the total estimated provisioning time.
func TotalEstimate() time.Duration {
	var total time.Duration
	for _, phase := range PhaseOrder {
		if secs, ok := DefaultTimings[phase]; ok {
			total += time.Duration(secs) * time.Second
		}
	}
	return total
}
