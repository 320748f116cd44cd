package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports"
	"trust-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureWriter records enqueued jobs for assertions.
type captureWriter struct {
	mu   sync.Mutex
	jobs []ports.AuditJob
}

func (w *captureWriter) Enqueue(job ports.AuditJob) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.jobs = append(w.jobs, job)
}

func (w *captureWriter) Close(context.Context) error { return nil }

func (w *captureWriter) all() []ports.AuditJob {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]ports.AuditJob(nil), w.jobs...)
}

func TestFraudCheckService_WeightedDecision(t *testing.T) {
	analyzers := []Analyzer{
		&stubAnalyzer{factor: domain.FactorUserBehavior, score: 40, reasons: []string{"young account"}, applies: true},
		&stubAnalyzer{factor: domain.FactorDeviceRisk, score: 20, applies: true},
		&stubAnalyzer{factor: domain.FactorIPRisk, score: 10, applies: true},
		&stubAnalyzer{factor: domain.FactorPaymentRisk, score: 0, applies: true},
		&stubAnalyzer{factor: domain.FactorContentRisk, score: 0, applies: true},
		&stubAnalyzer{factor: domain.FactorVelocityRisk, score: 30, reasons: []string{"busy hour"}, applies: true},
	}
	writer := &captureWriter{}
	svc := NewFraudCheckService(analyzers, writer, testFraudConfig(), nil, zerolog.Nop())

	userID := uuid.New()
	result, err := svc.Check(context.Background(), &domain.CheckRequest{
		ActionType: domain.ActionBooking,
		UserID:     &userID,
		IPAddress:  "203.0.113.4",
	})
	require.NoError(t, err)

	assert.Equal(t, 18, result.RiskScore) // 17.5 rounds up
	assert.Equal(t, domain.ActionAllow, result.Action)
	assert.NotEqual(t, uuid.Nil, result.SessionID)
	assert.Equal(t, []string{"young account", "busy hour"}, result.Reasons)
	assert.False(t, result.EvaluatedAt.IsZero())

	jobs := writer.all()
	require.Len(t, jobs, 1)
	rec := jobs[0].Record
	assert.Equal(t, result.SessionID, rec.SessionID)
	assert.Equal(t, result.RiskScore, rec.RiskScore)
	assert.Equal(t, result.Action, rec.Action)
	assert.Equal(t, result.RiskFactors, rec.RiskFactors)
}

func TestFraudCheckService_RejectsUnknownActionType(t *testing.T) {
	writer := &captureWriter{}
	ran := false
	analyzers := []Analyzer{
		&analyzerFunc{factor: domain.FactorUserBehavior, fn: func() (int, []string) {
			ran = true
			return 50, nil
		}},
	}
	svc := NewFraudCheckService(analyzers, writer, testFraudConfig(), nil, zerolog.Nop())

	result, err := svc.Check(context.Background(), &domain.CheckRequest{ActionType: "transfer"})

	require.Error(t, err)
	assert.Nil(t, result)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FRD_001", appErr.Code)
	assert.False(t, ran, "no analyzer runs for a rejected request")
	assert.Empty(t, writer.all(), "no audit record for a rejected request")
}

func TestFraudCheckService_CancelledRequest(t *testing.T) {
	writer := &captureWriter{}
	analyzers := []Analyzer{
		&stubAnalyzer{factor: domain.FactorUserBehavior, score: 50, delay: time.Second, applies: true},
	}
	cfg := testFraudConfig()
	cfg.AnalyzerTimeout = 2 * time.Second
	cfg.OverallDeadline = 2 * time.Second
	svc := NewFraudCheckService(analyzers, writer, cfg, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	userID := uuid.New()
	result, err := svc.Check(ctx, &domain.CheckRequest{
		ActionType: domain.ActionPayment,
		UserID:     &userID,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, writer.all(), "no audit record for a cancelled request")
}

func TestFraudCheckService_BlockDecision(t *testing.T) {
	analyzers := []Analyzer{
		&stubAnalyzer{factor: domain.FactorUserBehavior, score: 100, applies: true},
		&stubAnalyzer{factor: domain.FactorDeviceRisk, score: 100, applies: true},
		&stubAnalyzer{factor: domain.FactorIPRisk, score: 100, applies: true},
		&stubAnalyzer{factor: domain.FactorPaymentRisk, score: 100, applies: true},
		&stubAnalyzer{factor: domain.FactorContentRisk, score: 100, applies: true},
		&stubAnalyzer{factor: domain.FactorVelocityRisk, score: 100, applies: true},
	}
	writer := &captureWriter{}
	svc := NewFraudCheckService(analyzers, writer, testFraudConfig(), nil, zerolog.Nop())

	result, err := svc.Check(context.Background(), &domain.CheckRequest{ActionType: domain.ActionPayment})
	require.NoError(t, err)

	assert.Equal(t, 100, result.RiskScore)
	assert.Equal(t, domain.ActionBlock, result.Action)
}

func TestFraudCheckService_ReasonsCapped(t *testing.T) {
	many := []string{"r1", "r2", "r3", "r4", "r5", "r6"}
	analyzers := []Analyzer{
		&stubAnalyzer{factor: domain.FactorUserBehavior, score: 10, reasons: many, applies: true},
		&stubAnalyzer{factor: domain.FactorDeviceRisk, score: 10, reasons: many, applies: true},
	}
	writer := &captureWriter{}
	svc := NewFraudCheckService(analyzers, writer, testFraudConfig(), nil, zerolog.Nop())

	result, err := svc.Check(context.Background(), &domain.CheckRequest{ActionType: domain.ActionLogin})
	require.NoError(t, err)

	assert.Len(t, result.Reasons, domain.MaxReasons)
}

// analyzerFunc adapts a closure into an always-applicable Analyzer.
type analyzerFunc struct {
	factor domain.Factor
	fn     func() (int, []string)
}

func (a *analyzerFunc) Factor() domain.Factor             { return a.factor }
func (a *analyzerFunc) Applies(*domain.CheckRequest) bool { return true }
func (a *analyzerFunc) Analyze(context.Context, *domain.CheckRequest) (int, []string) {
	return a.fn()
}
