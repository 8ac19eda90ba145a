// Package job contains scheduled maintenance jobs run on the server cron.
package job

import (
	"devfolio/database"
	"devfolio/logger"
)

// CheckpointJob flushes the sqlite WAL into the main database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
