package jobs

import "clubhub-backend/internal/logger"

// PruneLoginThrottles drops throttle origins whose failures have all aged
// out, so one-off visitors do not accumulate for the life of the process.
func (jr *JobRunner) PruneLoginThrottles() {
	jr.runWithRecovery("PruneLoginThrottles", func() {
		removed := 0
		for _, t := range jr.throttles {
			removed += t.Prune()
		}
		if removed > 0 {
			logger.Info("pruned idle throttle origins", "removed", removed)
		}
	})
}
