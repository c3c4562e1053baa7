// Package job contains the scheduled background jobs of the web server.
package job

import (
	"ad-hub/database"
	"ad-hub/logger"

	"gorm.io/gorm"
)

// CheckpointJob periodically flushes the SQLite write-ahead log so the
// main database file stays current between shutdowns.
type CheckpointJob struct {
	db *gorm.DB
}

func NewCheckpointJob(db *gorm.DB) *CheckpointJob {
	return &CheckpointJob{db: db}
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(j.db); err != nil {
		logger.Warning("wal checkpoint job err:", err)
	}
}
