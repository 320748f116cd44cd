package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports"
	"trust-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testAuditJob(userID *uuid.UUID) ports.AuditJob {
	return ports.AuditJob{
		Record: &domain.AuditRecord{
			ID:         uuid.New(),
			SessionID:  uuid.New(),
			ActionType: domain.ActionBooking,
			UserID:     userID,
			IPAddress:  "203.0.113.4",
			RiskScore:  15,
			Action:     domain.ActionAllow,
			CreatedAt:  time.Now(),
		},
		UserAgent:         "Mozilla/5.0",
		DeviceFingerprint: "fp-1",
	}
}

func expectCounterBumps(counters *mocks.MockVelocityCounter, times int) {
	counters.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(times)
}

func TestAuditWriter_PersistsFullSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	job := testAuditJob(&userID)

	audits := mocks.NewMockAuditRepository(ctrl)
	audits.EXPECT().Create(gomock.Any(), job.Record).Return(nil)
	sessions := mocks.NewMockSessionLogRepository(ctrl)
	sessions.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *domain.SessionLog) error {
			assert.Equal(t, job.Record.SessionID, log.SessionID)
			assert.Equal(t, "Mozilla/5.0", log.UserAgent)
			return nil
		})
	tracking := mocks.NewMockTrackingRepository(ctrl)
	tracking.EXPECT().UpsertIP(gomock.Any(), "203.0.113.4", &userID, gomock.Any()).Return(nil)
	tracking.EXPECT().UpsertDevice(gomock.Any(), "fp-1", &userID, gomock.Any()).Return(nil)
	counters := mocks.NewMockVelocityCounter(ctrl)
	expectCounterBumps(counters, 3) // user hour, user burst, ip hour

	w := NewAuditWriter(audits, tracking, sessions, counters, testFraudConfig(), zerolog.Nop())
	w.Enqueue(job)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Close(ctx))
}

func TestAuditWriter_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := testAuditJob(nil)
	job.DeviceFingerprint = ""

	audits := mocks.NewMockAuditRepository(ctrl)
	gomock.InOrder(
		audits.EXPECT().Create(gomock.Any(), job.Record).Return(errors.New("deadlock")),
		audits.EXPECT().Create(gomock.Any(), job.Record).Return(nil),
	)
	sessions := mocks.NewMockSessionLogRepository(ctrl)
	sessions.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	tracking := mocks.NewMockTrackingRepository(ctrl)
	tracking.EXPECT().UpsertIP(gomock.Any(), "203.0.113.4", gomock.Nil(), gomock.Any()).Return(nil)
	counters := mocks.NewMockVelocityCounter(ctrl)
	expectCounterBumps(counters, 1) // ip hour only, no user id

	retries := 0
	w := NewAuditWriter(audits, tracking, sessions, counters, testFraudConfig(), zerolog.Nop())
	w.SetMetricsHooks(func() { retries++ }, nil)
	w.Enqueue(job)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Close(ctx))
	assert.Equal(t, 1, retries)
}

func TestAuditWriter_GivesUpAfterMaxRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := testAuditJob(nil)

	audits := mocks.NewMockAuditRepository(ctrl)
	audits.EXPECT().Create(gomock.Any(), job.Record).Return(errors.New("down")).Times(3) // 1 + 2 retries

	failures := 0
	w := NewAuditWriter(audits, mocks.NewMockTrackingRepository(ctrl), mocks.NewMockSessionLogRepository(ctrl),
		mocks.NewMockVelocityCounter(ctrl), testFraudConfig(), zerolog.Nop())
	w.SetMetricsHooks(nil, func() { failures++ })
	w.Enqueue(job)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Close(ctx))
	assert.Equal(t, 1, failures)
}

func TestAuditWriter_CounterFailureIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	job := testAuditJob(&userID)

	audits := mocks.NewMockAuditRepository(ctrl)
	audits.EXPECT().Create(gomock.Any(), job.Record).Return(nil)
	sessions := mocks.NewMockSessionLogRepository(ctrl)
	sessions.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	tracking := mocks.NewMockTrackingRepository(ctrl)
	tracking.EXPECT().UpsertIP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	tracking.EXPECT().UpsertDevice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	counters := mocks.NewMockVelocityCounter(ctrl)
	counters.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down")).Times(3)

	w := NewAuditWriter(audits, tracking, sessions, counters, testFraudConfig(), zerolog.Nop())
	w.Enqueue(job)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Close(ctx), "counter failures never fail the job")
}

func TestAuditWriter_FullQueueDropsAndReports(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := testFraudConfig()
	cfg.Audit.QueueSize = 1

	started := make(chan struct{})
	release := make(chan struct{})
	first := true

	audits := mocks.NewMockAuditRepository(ctrl)
	audits.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *domain.AuditRecord) error {
			if first {
				first = false
				close(started)
				<-release
			}
			return nil
		}).Times(2)
	sessions := mocks.NewMockSessionLogRepository(ctrl)
	sessions.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	tracking := mocks.NewMockTrackingRepository(ctrl)
	tracking.EXPECT().UpsertIP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	tracking.EXPECT().UpsertDevice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	counters := mocks.NewMockVelocityCounter(ctrl)
	counters.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()

	failures := 0
	w := NewAuditWriter(audits, tracking, sessions, counters, cfg, zerolog.Nop())
	w.SetMetricsHooks(nil, func() { failures++ })

	userID := uuid.New()
	w.Enqueue(testAuditJob(&userID)) // worker picks this up and blocks
	<-started
	w.Enqueue(testAuditJob(&userID)) // fills the one-slot queue
	w.Enqueue(testAuditJob(&userID)) // dropped
	close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Close(ctx))
	assert.Equal(t, 1, failures)
}
