package booking

import (
	"roamstay/config"
	"roamstay/models"
)

// Policy governs the booking engine's tunable rules: staleness threshold,
// companion limits, fee rate and how illegal status transitions are treated.
type Policy struct {
	// Strict rejects a transition whose source status does not allow it.
	// Permissive treats a transition into the already-reached target status
	// as an idempotent no-op and only rejects genuinely impossible moves
	// (for example completing a cancelled reservation).
	StrictTransitions bool
	StaleAfterHours   int
	MaxCompanions     int
	PlatformFeeRate   float64
}

// PolicyFromConfig builds the engine policy from loaded configuration.
func PolicyFromConfig() Policy {
	return Policy{
		StrictTransitions: config.AppConfig.StrictTransitions,
		StaleAfterHours:   config.AppConfig.StaleAfterHours,
		MaxCompanions:     config.AppConfig.MaxCompanions,
		PlatformFeeRate:   config.AppConfig.PlatformFeeRate,
	}
}

// legalSources maps a target status to the statuses allowed to move there.
// Reservations move monotonically; nothing ever returns to pending.
var legalSources = map[string][]string{
	models.StatusConfirmed: {models.StatusPending},
	models.StatusCancelled: {models.StatusPending, models.StatusConfirmed},
	models.StatusCompleted: {models.StatusConfirmed, models.StatusPending},
}

// TransitionSources returns the set of source statuses a guarded update may
// match when moving to target. Under the permissive policy the target itself
// is included so a repeated call matches zero line items and stays a no-op
// at the storage layer.
func (p Policy) TransitionSources(target string) []string {
	return legalSources[target]
}

// CanTransition reports whether a single reservation in status from may move
// to target under this policy. The second return distinguishes a permissive
// no-op (already at target) from an allowed real transition.
func (p Policy) CanTransition(from, target string) (allowed, noop bool) {
	if from == target {
		if p.StrictTransitions {
			return false, false
		}
		return true, true
	}
	for _, s := range legalSources[target] {
		if s == from {
			return true, false
		}
	}
	return false, false
}
