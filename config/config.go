package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Fraud    FraudConfig    `mapstructure:"fraud"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// FraudConfig holds the decision policy: factor weights, action thresholds,
// orchestration timeouts and per-analyzer heuristic sub-thresholds.
// Everything here is tuning surface; none of it is compiled in.
type FraudConfig struct {
	Weights    WeightsConfig    `mapstructure:"weights"`
	Thresholds ThresholdsConfig `mapstructure:"thresholds"`

	AnalyzerTimeout time.Duration `mapstructure:"analyzer_timeout"`
	OverallDeadline time.Duration `mapstructure:"overall_deadline"`

	// DegradedPenalty is the fixed sub-score assigned when an analyzer
	// fails or times out, so an outage never silently removes a signal.
	DegradedPenalty int `mapstructure:"degraded_penalty"`

	Behavior BehaviorHeuristics `mapstructure:"behavior"`
	Device   DeviceHeuristics   `mapstructure:"device"`
	IP       IPHeuristics       `mapstructure:"ip"`
	Payment  PaymentHeuristics  `mapstructure:"payment"`
	Content  ContentHeuristics  `mapstructure:"content"`
	Velocity VelocityHeuristics `mapstructure:"velocity"`

	Audit AuditConfig `mapstructure:"audit"`
}

// WeightsConfig holds per-factor weights. They must sum to 1.0.
type WeightsConfig struct {
	UserBehavior float64 `mapstructure:"user_behavior"`
	DeviceRisk   float64 `mapstructure:"device_risk"`
	IPRisk       float64 `mapstructure:"ip_risk"`
	PaymentRisk  float64 `mapstructure:"payment_risk"`
	ContentRisk  float64 `mapstructure:"content_risk"`
	VelocityRisk float64 `mapstructure:"velocity_risk"`
}

// Sum returns the total weight.
func (w WeightsConfig) Sum() float64 {
	return w.UserBehavior + w.DeviceRisk + w.IPRisk + w.PaymentRisk + w.ContentRisk + w.VelocityRisk
}

// ThresholdsConfig maps the risk score to an enforcement action.
// Evaluated highest-first; must be strictly increasing.
type ThresholdsConfig struct {
	Review        int `mapstructure:"review"`
	RequireVerify int `mapstructure:"require_verification"`
	Block         int `mapstructure:"block"`
}

type BehaviorHeuristics struct {
	NewAccountAge        time.Duration `mapstructure:"new_account_age"` // "<1 day" window
	NewAccountPenalty    int           `mapstructure:"new_account_penalty"`
	YoungAccountAge      time.Duration `mapstructure:"young_account_age"` // "<7 days" window
	YoungAccountPenalty  int           `mapstructure:"young_account_penalty"`
	EmailUnverified      int           `mapstructure:"email_unverified_penalty"`
	PhoneUnverified      int           `mapstructure:"phone_unverified_penalty"`
	MaxBookingsPerDay    int           `mapstructure:"max_bookings_per_day"`
	ExcessBookingPenalty int           `mapstructure:"excess_booking_penalty"`
	CancellationRate     float64       `mapstructure:"cancellation_rate"` // fraction over trailing 7d
	CancellationPenalty  int           `mapstructure:"cancellation_penalty"`
}

type DeviceHeuristics struct {
	SharedDeviceUsers     int `mapstructure:"shared_device_users"`
	SharedDevicePenalty   int `mapstructure:"shared_device_penalty"`
	BotAgentPenalty       int `mapstructure:"bot_agent_penalty"`
	PlatformSwitchPenalty int `mapstructure:"platform_switch_penalty"`
}

type IPHeuristics struct {
	SharedIPUsers    int `mapstructure:"shared_ip_users"`
	SharedIPPenalty  int `mapstructure:"shared_ip_penalty"`
	MaxIPsPerHour    int `mapstructure:"max_ips_per_hour"`
	IPChurnPenalty   int `mapstructure:"ip_churn_penalty"`
	InvalidIPPenalty int `mapstructure:"invalid_ip_penalty"`
	PrivateIPPenalty int `mapstructure:"private_ip_penalty"`
}

type PaymentHeuristics struct {
	MaxFailedPerWeek   int     `mapstructure:"max_failed_per_week"`
	FailedPenalty      int     `mapstructure:"failed_penalty"`
	HighAmount         float64 `mapstructure:"high_amount"`
	HighAmountPenalty  int     `mapstructure:"high_amount_penalty"`
	AvgAmountMultiple  float64 `mapstructure:"avg_amount_multiple"`
	AvgMultiplePenalty int     `mapstructure:"avg_multiple_penalty"`
	MaxPaymentsPerHour int     `mapstructure:"max_payments_per_hour"`
	FrequencyPenalty   int     `mapstructure:"frequency_penalty"`
}

type ContentHeuristics struct {
	SpamKeywords      []string `mapstructure:"spam_keywords"`
	SpamKeywordHits   int      `mapstructure:"spam_keyword_hits"`
	SpamPenalty       int      `mapstructure:"spam_penalty"`
	ContactPenalty    int      `mapstructure:"contact_penalty"`
	ProfanityWords    []string `mapstructure:"profanity_words"`
	ProfanityPenalty  int      `mapstructure:"profanity_penalty"`
	MaxLength         int      `mapstructure:"max_length"`
	LengthPenalty     int      `mapstructure:"length_penalty"`
	RepetitionRatio   float64  `mapstructure:"repetition_ratio"`
	RepetitionPenalty int      `mapstructure:"repetition_penalty"`
}

type VelocityHeuristics struct {
	MaxUserPerHour  int           `mapstructure:"max_user_per_hour"`
	UserHourPenalty int           `mapstructure:"user_hour_penalty"`
	BurstWindow     time.Duration `mapstructure:"burst_window"`
	MaxUserPerBurst int           `mapstructure:"max_user_per_burst"`
	BurstPenalty    int           `mapstructure:"burst_penalty"`
	MaxIPPerHour    int           `mapstructure:"max_ip_per_hour"`
	IPHourPenalty   int           `mapstructure:"ip_hour_penalty"`
}

// AuditConfig controls the audit write path.
type AuditConfig struct {
	QueueSize    int           `mapstructure:"queue_size"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
	RecentLimit  int           `mapstructure:"recent_limit"` // rows returned by the reporting endpoint
}

// Validate enforces the startup-time policy invariants: weights sum to 1.0
// and thresholds strictly increasing within (0,100].
func (f FraudConfig) Validate() error {
	if sum := f.Weights.Sum(); math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("fraud weights must sum to 1.0, got %v", sum)
	}
	t := f.Thresholds
	if t.Review <= 0 || t.Review >= t.RequireVerify || t.RequireVerify >= t.Block || t.Block > 100 {
		return fmt.Errorf("fraud thresholds must satisfy 0 < review < require_verification < block <= 100, got %d/%d/%d",
			t.Review, t.RequireVerify, t.Block)
	}
	if f.AnalyzerTimeout <= 0 || f.OverallDeadline <= 0 {
		return fmt.Errorf("analyzer_timeout and overall_deadline must be positive")
	}
	if f.AnalyzerTimeout > f.OverallDeadline {
		return fmt.Errorf("analyzer_timeout (%v) must not exceed overall_deadline (%v)",
			f.AnalyzerTimeout, f.OverallDeadline)
	}
	if f.DegradedPenalty < 0 || f.DegradedPenalty > 100 {
		return fmt.Errorf("degraded_penalty must be in [0,100], got %d", f.DegradedPenalty)
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TRUST_.
// Nested keys use underscore: TRUST_DATABASE_HOST, TRUST_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "trust_engine")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "trust-engine")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Decision policy defaults. Baseline tuning values; every one of them
	// is overridable without a code change.
	v.SetDefault("fraud.weights.user_behavior", 0.25)
	v.SetDefault("fraud.weights.device_risk", 0.15)
	v.SetDefault("fraud.weights.ip_risk", 0.15)
	v.SetDefault("fraud.weights.payment_risk", 0.20)
	v.SetDefault("fraud.weights.content_risk", 0.15)
	v.SetDefault("fraud.weights.velocity_risk", 0.10)
	v.SetDefault("fraud.thresholds.review", 40)
	v.SetDefault("fraud.thresholds.require_verification", 60)
	v.SetDefault("fraud.thresholds.block", 80)
	v.SetDefault("fraud.analyzer_timeout", "150ms")
	v.SetDefault("fraud.overall_deadline", "400ms")
	v.SetDefault("fraud.degraded_penalty", 10)

	v.SetDefault("fraud.behavior.new_account_age", "24h")
	v.SetDefault("fraud.behavior.new_account_penalty", 30)
	v.SetDefault("fraud.behavior.young_account_age", "168h")
	v.SetDefault("fraud.behavior.young_account_penalty", 15)
	v.SetDefault("fraud.behavior.email_unverified_penalty", 20)
	v.SetDefault("fraud.behavior.phone_unverified_penalty", 10)
	v.SetDefault("fraud.behavior.max_bookings_per_day", 5)
	v.SetDefault("fraud.behavior.excess_booking_penalty", 20)
	v.SetDefault("fraud.behavior.cancellation_rate", 0.5)
	v.SetDefault("fraud.behavior.cancellation_penalty", 15)

	v.SetDefault("fraud.device.shared_device_users", 3)
	v.SetDefault("fraud.device.shared_device_penalty", 40)
	v.SetDefault("fraud.device.bot_agent_penalty", 50)
	v.SetDefault("fraud.device.platform_switch_penalty", 15)

	v.SetDefault("fraud.ip.shared_ip_users", 5)
	v.SetDefault("fraud.ip.shared_ip_penalty", 35)
	v.SetDefault("fraud.ip.max_ips_per_hour", 3)
	v.SetDefault("fraud.ip.ip_churn_penalty", 30)
	v.SetDefault("fraud.ip.invalid_ip_penalty", 20)
	v.SetDefault("fraud.ip.private_ip_penalty", 10)

	v.SetDefault("fraud.payment.max_failed_per_week", 3)
	v.SetDefault("fraud.payment.failed_penalty", 35)
	v.SetDefault("fraud.payment.high_amount", 5000)
	v.SetDefault("fraud.payment.high_amount_penalty", 25)
	v.SetDefault("fraud.payment.avg_amount_multiple", 10)
	v.SetDefault("fraud.payment.avg_multiple_penalty", 30)
	v.SetDefault("fraud.payment.max_payments_per_hour", 5)
	v.SetDefault("fraud.payment.frequency_penalty", 20)

	v.SetDefault("fraud.content.spam_keywords", []string{
		"free money", "guaranteed", "click here", "limited offer", "act now",
		"winner", "congratulations", "no risk", "100% free", "cash prize",
	})
	v.SetDefault("fraud.content.spam_keyword_hits", 3)
	v.SetDefault("fraud.content.spam_penalty", 40)
	v.SetDefault("fraud.content.contact_penalty", 25)
	v.SetDefault("fraud.content.profanity_words", []string{})
	v.SetDefault("fraud.content.profanity_penalty", 20)
	v.SetDefault("fraud.content.max_length", 1000)
	v.SetDefault("fraud.content.length_penalty", 10)
	v.SetDefault("fraud.content.repetition_ratio", 0.5)
	v.SetDefault("fraud.content.repetition_penalty", 15)

	v.SetDefault("fraud.velocity.max_user_per_hour", 30)
	v.SetDefault("fraud.velocity.user_hour_penalty", 30)
	v.SetDefault("fraud.velocity.burst_window", "5m")
	v.SetDefault("fraud.velocity.max_user_per_burst", 10)
	v.SetDefault("fraud.velocity.burst_penalty", 25)
	v.SetDefault("fraud.velocity.max_ip_per_hour", 100)
	v.SetDefault("fraud.velocity.ip_hour_penalty", 35)

	v.SetDefault("fraud.audit.queue_size", 1024)
	v.SetDefault("fraud.audit.max_retries", 5)
	v.SetDefault("fraud.audit.retry_backoff", "250ms")
	v.SetDefault("fraud.audit.recent_limit", 100)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TRUST_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TRUST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Fraud.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fraud config: %w", err)
	}

	return &cfg, nil
}
