package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"trust-engine/config"
	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

const auditWriteTimeout = 5 * time.Second

// AuditWriterImpl implements ports.AuditWriter. It is the single
// mutation path of the pipeline: one background worker drains a buffered
// job queue and persists the audit record, tracking upserts, the session
// log row and the velocity counter bumps for each finished session.
//
// Counters are incremented here, after the decision, so the current
// request is never counted against itself.
type AuditWriterImpl struct {
	audits   ports.AuditRepository
	tracking ports.TrackingRepository
	sessions ports.SessionLogRepository
	counters ports.VelocityCounter
	cfg      config.AuditConfig
	velocity config.VelocityHeuristics

	jobs chan ports.AuditJob
	done chan struct{}
	once sync.Once
	log  zerolog.Logger

	// onFailure and onRetry are metrics hooks; nil is fine.
	onRetry   func()
	onFailure func()
}

// NewAuditWriter creates the writer and starts its worker goroutine.
func NewAuditWriter(
	audits ports.AuditRepository,
	tracking ports.TrackingRepository,
	sessions ports.SessionLogRepository,
	counters ports.VelocityCounter,
	cfg config.FraudConfig,
	log zerolog.Logger,
) *AuditWriterImpl {
	w := &AuditWriterImpl{
		audits:   audits,
		tracking: tracking,
		sessions: sessions,
		counters: counters,
		cfg:      cfg.Audit,
		velocity: cfg.Velocity,
		jobs:     make(chan ports.AuditJob, cfg.Audit.QueueSize),
		done:     make(chan struct{}),
		log:      log,
	}
	go w.work()
	return w
}

// SetMetricsHooks registers callbacks fired on write retries and on
// exhausted retries.
func (w *AuditWriterImpl) SetMetricsHooks(onRetry, onFailure func()) {
	w.onRetry = onRetry
	w.onFailure = onFailure
}

// Enqueue hands a job to the worker without blocking the request path.
// A full queue drops the job and logs it as an operational error.
func (w *AuditWriterImpl) Enqueue(job ports.AuditJob) {
	select {
	case w.jobs <- job:
	default:
		w.log.Error().
			Str("session_id", job.Record.SessionID.String()).
			Msg("audit queue full, record dropped")
		if w.onFailure != nil {
			w.onFailure()
		}
	}
}

// Close stops accepting jobs and drains the queue. It returns early if
// ctx expires first.
func (w *AuditWriterImpl) Close(ctx context.Context) error {
	w.once.Do(func() { close(w.jobs) })
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("audit writer shutdown: %w", ctx.Err())
	}
}

func (w *AuditWriterImpl) work() {
	defer close(w.done)
	for job := range w.jobs {
		w.process(job)
	}
}

// process persists one session with bounded retries. Every write inside
// is idempotent on session id, so a retry after a partial failure never
// duplicates rows.
func (w *AuditWriterImpl) process(job ports.AuditJob) {
	var lastErr error
	for attempt := 0; attempt <= w.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(w.cfg.RetryBackoff * time.Duration(attempt))
			if w.onRetry != nil {
				w.onRetry()
			}
		}
		if lastErr = w.writeOnce(job); lastErr == nil {
			return
		}
		w.log.Warn().Err(lastErr).
			Str("session_id", job.Record.SessionID.String()).
			Int("attempt", attempt+1).
			Msg("audit write failed")
	}
	w.log.Error().Err(lastErr).
		Str("session_id", job.Record.SessionID.String()).
		Msg("audit write abandoned after retries")
	if w.onFailure != nil {
		w.onFailure()
	}
}

func (w *AuditWriterImpl) writeOnce(job ports.AuditJob) error {
	ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
	defer cancel()

	rec := job.Record
	if err := w.audits.Create(ctx, rec); err != nil {
		return fmt.Errorf("audit record: %w", err)
	}

	if err := w.sessions.Append(ctx, &domain.SessionLog{
		SessionID:  rec.SessionID,
		UserID:     rec.UserID,
		IPAddress:  rec.IPAddress,
		UserAgent:  job.UserAgent,
		ActionType: rec.ActionType,
		CreatedAt:  rec.CreatedAt,
	}); err != nil {
		return fmt.Errorf("session log: %w", err)
	}

	now := rec.CreatedAt
	if rec.IPAddress != "" {
		if err := w.tracking.UpsertIP(ctx, rec.IPAddress, rec.UserID, now); err != nil {
			return fmt.Errorf("ip tracking: %w", err)
		}
	}
	if job.DeviceFingerprint != "" {
		if err := w.tracking.UpsertDevice(ctx, job.DeviceFingerprint, rec.UserID, now); err != nil {
			return fmt.Errorf("device tracking: %w", err)
		}
	}

	// Counter bumps are best effort: the session log is the fallback
	// source for velocity reads, so a missed bump only costs latency.
	w.bumpCounters(ctx, job)
	return nil
}

func (w *AuditWriterImpl) bumpCounters(ctx context.Context, job ports.AuditJob) {
	rec := job.Record
	if rec.UserID != nil {
		if _, err := w.counters.Incr(ctx, userHourKey(rec.UserID.String()), time.Hour); err != nil {
			w.log.Warn().Err(err).Msg("user hourly counter increment failed")
		}
		if _, err := w.counters.Incr(ctx, userBurstKey(rec.UserID.String()), w.velocity.BurstWindow); err != nil {
			w.log.Warn().Err(err).Msg("user burst counter increment failed")
		}
	}
	if rec.IPAddress != "" {
		if _, err := w.counters.Incr(ctx, ipHourKey(rec.IPAddress), time.Hour); err != nil {
			w.log.Warn().Err(err).Msg("ip counter increment failed")
		}
	}
}
