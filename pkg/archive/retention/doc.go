// Package retention provides retention policy enforcement for
// archived runs.
//
// # Retention Policy
//
// The retention package prunes old runs from the archive based on age:
//
//   - Configurable retention period (days)
//   - Scheduled pruning (cron expression) for watch mode
//   - Manual pruning with an explicit cutoff
//
// # Basic Usage
//
//	// Create retention pruner
//	pruner := retention.NewPruner(store, &retention.Config{
//	    RetentionDays: 90,
//	    PruneSchedule: "0 3 * * *", // Daily at 3 AM
//	})
//
//	// Start background pruning (watch mode)
//	if err := pruner.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer pruner.Stop()
//
// # Manual Pruning
//
// Pruning can also run on demand:
//
//	// Prune runs older than the retention period
//	deleted, err := pruner.Prune(ctx)
//
//	// Prune runs older than an explicit cutoff
//	deleted, err := pruner.PruneBefore(ctx, time.Now().AddDate(0, 0, -30))
//
// # Retention Period
//
// The retention period is specified in days:
//
//   - 0 days: Keep runs forever (no pruning)
//   - 30 days: Delete runs older than 30 days
//   - 90 days: Delete runs older than 90 days (default)
//
// # Scheduling
//
// The pruner runs on a standard cron schedule:
//
//   - "0 3 * * *": Daily at 3 AM (default)
//   - "0 0 * * 0": Weekly on Sunday at midnight
//   - "0 */6 * * *": Every 6 hours
//
// If no schedule is configured (empty PruneSchedule), the scheduler
// does nothing and Start() returns immediately without error. The
// scheduler shuts down gracefully, waiting for a running prune to
// finish, and stops automatically when its context is cancelled.
package retention
