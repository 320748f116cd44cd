package service

import (
	"context"
	"errors"
	"testing"

	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDeviceRiskAnalyzer_SharedDevice(t *testing.T) {
	ctrl := gomock.NewController(t)

	tracking := mocks.NewMockTrackingRepository(ctrl)
	tracking.EXPECT().GetDeviceTracking(gomock.Any(), "fp-1").Return(&domain.DeviceTracking{
		Fingerprint: "fp-1",
		UserIDs:     []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()},
	}, nil)

	a := NewDeviceRiskAnalyzer(tracking, mocks.NewMockSessionLogRepository(ctrl), testFraudConfig(), zerolog.Nop())

	score, reasons := a.Analyze(context.Background(), &domain.CheckRequest{
		ActionType:        domain.ActionLogin,
		DeviceFingerprint: "fp-1",
	})

	assert.Equal(t, 40, score)
	assert.Equal(t, []string{"device shared by 4 accounts"}, reasons)
}

func TestDeviceRiskAnalyzer_BotUserAgent(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewDeviceRiskAnalyzer(mocks.NewMockTrackingRepository(ctrl), mocks.NewMockSessionLogRepository(ctrl), testFraudConfig(), zerolog.Nop())

	score, reasons := a.Analyze(context.Background(), &domain.CheckRequest{
		ActionType: domain.ActionRegistration,
		UserAgent:  "python-requests/2.31",
	})

	assert.Equal(t, 50, score)
	assert.Equal(t, []string{"automated user agent detected"}, reasons)
}

func TestDeviceRiskAnalyzer_PlatformSwitch(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	sessions := mocks.NewMockSessionLogRepository(ctrl)
	sessions.EXPECT().RecentUserAgents(gomock.Any(), userID, 10).Return([]string{
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) Mobile Safari",
	}, nil)

	a := NewDeviceRiskAnalyzer(mocks.NewMockTrackingRepository(ctrl), sessions, testFraudConfig(), zerolog.Nop())

	score, reasons := a.Analyze(context.Background(), &domain.CheckRequest{
		ActionType: domain.ActionLogin,
		UserID:     &userID,
		UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/126",
	})

	assert.Equal(t, 15, score)
	assert.Equal(t, []string{"switching between mobile and desktop"}, reasons)
}

func TestDeviceRiskAnalyzer_CleanDevice(t *testing.T) {
	ctrl := gomock.NewController(t)

	tracking := mocks.NewMockTrackingRepository(ctrl)
	tracking.EXPECT().GetDeviceTracking(gomock.Any(), "fp-2").Return(nil, nil)

	a := NewDeviceRiskAnalyzer(tracking, mocks.NewMockSessionLogRepository(ctrl), testFraudConfig(), zerolog.Nop())

	score, reasons := a.Analyze(context.Background(), &domain.CheckRequest{
		ActionType:        domain.ActionBooking,
		DeviceFingerprint: "fp-2",
	})

	assert.Equal(t, 0, score)
	assert.Empty(t, reasons)
}

func TestDeviceRiskAnalyzer_TrackingFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)

	tracking := mocks.NewMockTrackingRepository(ctrl)
	tracking.EXPECT().GetDeviceTracking(gomock.Any(), "fp-3").Return(nil, errors.New("timeout"))

	a := NewDeviceRiskAnalyzer(tracking, mocks.NewMockSessionLogRepository(ctrl), testFraudConfig(), zerolog.Nop())

	score, reasons := a.Analyze(context.Background(), &domain.CheckRequest{
		ActionType:        domain.ActionLogin,
		DeviceFingerprint: "fp-3",
	})

	assert.Equal(t, 10, score)
	assert.Equal(t, []string{"device_risk analysis degraded"}, reasons)
}

func TestDeviceRiskAnalyzer_Applies(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewDeviceRiskAnalyzer(mocks.NewMockTrackingRepository(ctrl), mocks.NewMockSessionLogRepository(ctrl), testFraudConfig(), zerolog.Nop())

	assert.True(t, a.Applies(&domain.CheckRequest{DeviceFingerprint: "fp"}))
	assert.True(t, a.Applies(&domain.CheckRequest{UserAgent: "ua"}))
	assert.False(t, a.Applies(&domain.CheckRequest{}))
}
