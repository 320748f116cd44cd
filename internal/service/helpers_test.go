package service

import (
	"time"

	"trust-engine/config"
)

// testFraudConfig mirrors the shipped decision policy defaults.
func testFraudConfig() config.FraudConfig {
	return config.FraudConfig{
		Weights: config.WeightsConfig{
			UserBehavior: 0.25,
			DeviceRisk:   0.15,
			IPRisk:       0.15,
			PaymentRisk:  0.20,
			ContentRisk:  0.15,
			VelocityRisk: 0.10,
		},
		Thresholds: config.ThresholdsConfig{
			Review:        40,
			RequireVerify: 60,
			Block:         80,
		},
		AnalyzerTimeout: 150 * time.Millisecond,
		OverallDeadline: 400 * time.Millisecond,
		DegradedPenalty: 10,
		Behavior: config.BehaviorHeuristics{
			NewAccountAge:        24 * time.Hour,
			NewAccountPenalty:    30,
			YoungAccountAge:      7 * 24 * time.Hour,
			YoungAccountPenalty:  15,
			EmailUnverified:      20,
			PhoneUnverified:      10,
			MaxBookingsPerDay:    5,
			ExcessBookingPenalty: 20,
			CancellationRate:     0.5,
			CancellationPenalty:  15,
		},
		Device: config.DeviceHeuristics{
			SharedDeviceUsers:     3,
			SharedDevicePenalty:   40,
			BotAgentPenalty:       50,
			PlatformSwitchPenalty: 15,
		},
		IP: config.IPHeuristics{
			SharedIPUsers:    5,
			SharedIPPenalty:  35,
			MaxIPsPerHour:    3,
			IPChurnPenalty:   30,
			InvalidIPPenalty: 20,
			PrivateIPPenalty: 10,
		},
		Payment: config.PaymentHeuristics{
			MaxFailedPerWeek:   3,
			FailedPenalty:      35,
			HighAmount:         5000,
			HighAmountPenalty:  25,
			AvgAmountMultiple:  10,
			AvgMultiplePenalty: 30,
			MaxPaymentsPerHour: 5,
			FrequencyPenalty:   20,
		},
		Content: config.ContentHeuristics{
			SpamKeywords: []string{
				"free money", "guaranteed", "click here", "limited offer", "act now",
				"winner", "congratulations", "no risk", "100% free", "cash prize",
			},
			SpamKeywordHits:   3,
			SpamPenalty:       40,
			ContactPenalty:    25,
			ProfanityWords:    []string{"damnword"},
			ProfanityPenalty:  20,
			MaxLength:         1000,
			LengthPenalty:     10,
			RepetitionRatio:   0.5,
			RepetitionPenalty: 15,
		},
		Velocity: config.VelocityHeuristics{
			MaxUserPerHour:  30,
			UserHourPenalty: 30,
			BurstWindow:     5 * time.Minute,
			MaxUserPerBurst: 10,
			BurstPenalty:    25,
			MaxIPPerHour:    100,
			IPHourPenalty:   35,
		},
		Audit: config.AuditConfig{
			QueueSize:    16,
			MaxRetries:   2,
			RetryBackoff: time.Millisecond,
			RecentLimit:  100,
		},
	}
}
