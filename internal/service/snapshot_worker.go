package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultSnapshotSchedule runs at 03:00 UTC on the first day of every month
const DefaultSnapshotSchedule = "0 3 1 * *"

// SnapshotWorker runs the monthly housekeeping on a cron schedule: it records the net worth
// snapshot, generates due savings-goal transfers and, when configured, backs up the data directory.
type SnapshotWorker struct {
	netWorthService *NetWorthService
	goalService     *SavingsGoalService
	backupService   *BackupService
	logger          zerolog.Logger
	schedule        cron.Schedule
	scheduleExpr    string
	now             func() time.Time
	stopCh          chan struct{}
	doneCh          chan struct{}
	mu              sync.Mutex
	running         bool
}

// SnapshotWorkerConfig holds configuration for the snapshot worker
type SnapshotWorkerConfig struct {
	Schedule string // Standard five-field cron expression, evaluated in UTC
}

// DefaultSnapshotWorkerConfig returns the default configuration
func DefaultSnapshotWorkerConfig() SnapshotWorkerConfig {
	return SnapshotWorkerConfig{Schedule: DefaultSnapshotSchedule}
}

// SnapshotRunResult summarizes one run
type SnapshotRunResult struct {
	Snapshot         *domain.NetWorthSnapshot
	TransfersCreated int
	TransfersFailed  int
	Backup           *BackupResult
}

// NewSnapshotWorker creates a new snapshot worker. backupService may be nil.
func NewSnapshotWorker(
	netWorthService *NetWorthService,
	goalService *SavingsGoalService,
	backupService *BackupService,
	logger zerolog.Logger,
	config SnapshotWorkerConfig,
) (*SnapshotWorker, error) {
	if config.Schedule == "" {
		config.Schedule = DefaultSnapshotSchedule
	}
	schedule, err := cron.ParseStandard(config.Schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot schedule %q: %w", config.Schedule, err)
	}

	return &SnapshotWorker{
		netWorthService: netWorthService,
		goalService:     goalService,
		backupService:   backupService,
		logger:          logger.With().Str("component", "snapshot_worker").Logger(),
		schedule:        schedule,
		scheduleExpr:    config.Schedule,
		now:             time.Now,
		stopCh:          make(chan struct{}),
		doneCh:          make(chan struct{}),
	}, nil
}

// Start begins running on the schedule
func (w *SnapshotWorker) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info().
		Str("schedule", w.scheduleExpr).
		Time("next_run", w.schedule.Next(w.now().UTC())).
		Msg("Starting snapshot worker")

	go w.run(ctx)
}

// Stop gracefully stops the worker, waiting for a run in progress
func (w *SnapshotWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	w.logger.Info().Msg("Stopping snapshot worker")
	close(w.stopCh)
	<-w.doneCh
	w.logger.Info().Msg("Snapshot worker stopped")
}

// IsRunning returns whether the worker is currently running
func (w *SnapshotWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *SnapshotWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	c := cron.New(cron.WithLocation(time.UTC))
	c.Schedule(w.schedule, cron.FuncJob(func() {
		if _, err := w.RunOnce(ctx); err != nil {
			w.logger.Error().Err(err).Msg("Snapshot run failed")
		}
	}))
	c.Start()

	select {
	case <-ctx.Done():
	case <-w.stopCh:
	}

	// Wait for a job in progress to finish
	<-c.Stop().Done()

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()
}

// RunOnce performs one run immediately. The net worth snapshot is required; transfer and
// backup failures are logged and reported but do not fail the run.
func (w *SnapshotWorker) RunOnce(ctx context.Context) (*SnapshotRunResult, error) {
	started := w.now()
	result := &SnapshotRunResult{}

	snapshot, err := w.netWorthService.RecordSnapshot(started)
	if err != nil {
		return nil, fmt.Errorf("failed to record net worth snapshot: %w", err)
	}
	result.Snapshot = snapshot

	if w.goalService != nil {
		created, failed, err := w.goalService.GenerateDueTransfers(started)
		if err != nil {
			w.logger.Error().Err(err).Msg("Failed to generate savings transfers")
		}
		result.TransfersCreated = created
		result.TransfersFailed = failed
	}

	if w.backupService != nil && w.backupService.Enabled() {
		backup, err := w.backupService.Run(ctx)
		switch {
		case errors.Is(err, domain.ErrBackupNotConfigured):
		case err != nil:
			w.logger.Error().Err(err).Msg("Backup failed")
		default:
			result.Backup = backup
		}
	}

	w.logger.Info().
		Str("month", snapshot.Month.Format("2006-01")).
		Float64("net_worth", snapshot.NetWorth).
		Int("transfers_created", result.TransfersCreated).
		Int("transfers_failed", result.TransfersFailed).
		Bool("backed_up", result.Backup != nil).
		Dur("elapsed", time.Since(started)).
		Msg("Completed snapshot run")

	return result, nil
}
