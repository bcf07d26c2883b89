package jobs

import (
	"clubhub-backend/internal/clock"
	"clubhub-backend/internal/config"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/security"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store     repository.Store
	throttles []*security.LoginThrottle
	clk       clock.Clock
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies. throttles are
// the login throttle instances to prune periodically.
func NewJobRunner(store repository.Store, throttles []*security.LoginThrottle, clk clock.Clock, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:     store,
		throttles: throttles,
		clk:       clk,
		config:    cfg,
	}
}

// Config exposes the configuration for the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
