package service

import (
	"context"

	"trust-engine/internal/core/domain"
)

// Analyzer is one leaf-level policy unit. Each analyzer consumes the
// request plus Signal Store reads and contributes one bounded sub-score.
//
// Analyze never returns an error: any internal failure (store outage,
// malformed metadata) degrades to the configured fixed penalty plus a
// reason noting degraded analysis, so an analyzer outage never silently
// removes a risk signal.
type Analyzer interface {
	Factor() domain.Factor
	// Applies reports whether this analyzer runs for the given request,
	// based on action type and which fields are present.
	Applies(req *domain.CheckRequest) bool
	Analyze(ctx context.Context, req *domain.CheckRequest) (score int, reasons []string)
}

// degradedReason is the reason string attached when an analyzer fails.
func degradedReason(f domain.Factor) string {
	return string(f) + " analysis degraded"
}

// timeoutReason is the reason string attached when an analyzer times out.
func timeoutReason(f domain.Factor) string {
	return string(f) + " analysis timed out"
}

// Velocity counter keys. The velocity analyzer reads these and the audit
// writer increments them, so the current request is never counted
// against itself.

func userHourKey(userID string) string { return "user:" + userID + ":1h" }

func userBurstKey(userID string) string { return "user:" + userID + ":burst" }

func ipHourKey(ip string) string { return "ip:" + ip + ":1h" }
