// Package worker runs the DB-backed background job loop.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/jobs"
	"github.com/crmrapid/portal/internal/repository"
	"github.com/crmrapid/portal/internal/telemetry"
)

// jobTimeout bounds a single job execution.
const jobTimeout = 30 * time.Second

// scanInterval is how often the due-soon scan runs.
const scanInterval = 1 * time.Hour

// Config holds worker configuration.
type Config struct {
	// WorkerID uniquely identifies this worker instance
	WorkerID string

	// PollInterval is how often to check for new jobs
	PollInterval time.Duration

	// MaxConcurrency is the maximum number of jobs to process concurrently
	MaxConcurrency int
}

// Worker claims and processes background jobs, and periodically scans for
// invoices that need reminders.
type Worker struct {
	config    Config
	repo      repository.Querier
	scheduler *jobs.ReminderScheduler
	reminders *jobs.ReminderProcessor
	logger    *slog.Logger
}

// NewWorker creates a new background job worker.
func NewWorker(
	repo repository.Querier,
	scheduler *jobs.ReminderScheduler,
	reminders *jobs.ReminderProcessor,
	config Config,
	logger *slog.Logger,
) *Worker {
	if config.WorkerID == "" {
		config.WorkerID = fmt.Sprintf("worker-%s", uuid.New().String()[:8])
	}
	if config.PollInterval == 0 {
		config.PollInterval = 1 * time.Second
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 5
	}

	return &Worker{
		config:    config,
		repo:      repo,
		scheduler: scheduler,
		reminders: reminders,
		logger:    logger,
	}
}

// Start begins processing jobs until the context is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("worker starting",
		"worker_id", w.config.WorkerID,
		"poll_interval", w.config.PollInterval,
		"max_concurrency", w.config.MaxConcurrency,
	)

	// Scan once at startup so a restart never waits an hour for reminders.
	w.scan(ctx)

	poll := time.NewTicker(w.config.PollInterval)
	defer poll.Stop()
	scan := time.NewTicker(scanInterval)
	defer scan.Stop()

	// Semaphore for concurrency control
	sem := make(chan struct{}, w.config.MaxConcurrency)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("worker shutting down", "worker_id", w.config.WorkerID)
			// Drain the semaphore so in-flight jobs finish before return.
			for i := 0; i < w.config.MaxConcurrency; i++ {
				sem <- struct{}{}
			}
			return ctx.Err()

		case <-scan.C:
			w.scan(ctx)

		case <-poll.C:
			select {
			case sem <- struct{}{}:
				go func() {
					defer func() { <-sem }()
					w.claimAndProcess(ctx)
				}()
			default:
				// At max concurrency, skip this poll
			}
		}
	}
}

// scan queues reminder jobs for invoices entering the due-soon window.
func (w *Worker) scan(ctx context.Context) {
	if _, err := w.scheduler.EnqueueDueSoonReminders(ctx); err != nil {
		w.logger.Error("due-soon scan failed", "error", err)
	}
}

// claimAndProcess claims and processes a single job.
func (w *Worker) claimAndProcess(ctx context.Context) {
	job, err := w.repo.ClaimNextJob(ctx, pgtype.Text{String: w.config.WorkerID, Valid: true})
	if err != nil {
		// No job available or database error
		return
	}

	w.logger.Info("processing job",
		"job_id", uuidString(job.ID),
		"job_type", job.JobType,
		"retry_count", job.RetryCount,
	)

	err = w.processJob(ctx, &job)
	if err != nil {
		w.logger.Error("job failed",
			"job_id", uuidString(job.ID),
			"job_type", job.JobType,
			"error", err,
		)
		telemetry.RecordJobProcessed(job.JobType, "failed")
		// FailJob either schedules a backoff retry or marks the job failed,
		// depending on the retry budget.
		_, _ = w.repo.FailJob(ctx, repository.FailJobParams{
			ID:        job.ID,
			LastError: pgtype.Text{String: err.Error(), Valid: true},
		})
		return
	}

	telemetry.RecordJobProcessed(job.JobType, "completed")
	_ = w.repo.CompleteJob(ctx, job.ID)
}

// processJob dispatches a claimed job to its processor.
func (w *Worker) processJob(ctx context.Context, job *repository.Job) error {
	jobCtx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	switch job.JobType {
	case jobs.JobTypeInvoiceReminder:
		return w.reminders.Process(jobCtx, job)
	default:
		return fmt.Errorf("unknown job type: %s", job.JobType)
	}
}

func uuidString(u pgtype.UUID) string {
	if !u.Valid {
		return ""
	}
	b := u.Bytes
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
