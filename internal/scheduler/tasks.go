package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/doston9471/telegram-quote-bot/internal/database"
)

// TaskDeps contains the dependencies available to scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
}

// RegisterAllTasks returns the registry of all scheduled tasks. The map keys
// match the task names used in the scheduler section of the configuration.
func RegisterAllTasks(deps TaskDeps) map[string]TaskFunc {
	tasks := make(map[string]TaskFunc)

	tasks["sql_maintenance"] = newSQLMaintenanceTask(deps)

	deps.Logger.Info("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}

// newSQLMaintenanceTask creates the scheduled task for running database
// maintenance (ANALYZE, WAL checkpoint).
func newSQLMaintenanceTask(deps TaskDeps) TaskFunc {
	log := deps.Logger.With("task", "sql_maintenance")

	return func(ctx context.Context) error {
		log.InfoContext(ctx, "Starting SQL maintenance")
		start := time.Now()

		if err := deps.Store.RunSQLMaintenance(ctx); err != nil {
			log.ErrorContext(ctx, "SQL maintenance failed", "error", err, "duration", time.Since(start))
			return fmt.Errorf("sql maintenance failed: %w", err)
		}

		log.InfoContext(ctx, "SQL maintenance completed", "duration", time.Since(start))
		return nil
	}
}
