package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the account signals the behavior analyzer reads.
type UserProfile struct {
	ID            uuid.UUID `json:"id"`
	EmailVerified bool      `json:"email_verified"`
	PhoneVerified bool      `json:"phone_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// AccountAge returns how long the account has existed as of now.
func (p *UserProfile) AccountAge(now time.Time) time.Duration {
	return now.Sub(p.CreatedAt)
}

// SessionLog is one append-only row per fraud-check session, consumed by
// the velocity and device analyzers for historical lookups.
type SessionLog struct {
	SessionID  uuid.UUID  `json:"session_id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	IPAddress  string     `json:"ip_address,omitempty"`
	UserAgent  string     `json:"user_agent,omitempty"`
	ActionType ActionType `json:"action_type"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IPTracking maps an IP address to the set of accounts observed using it.
// Mutated only by the audit writer after a decision is finalized.
type IPTracking struct {
	IPAddress string      `json:"ip_address"`
	UserIDs   []uuid.UUID `json:"user_ids"`
	LastSeen  time.Time   `json:"last_seen"`
}

// DeviceTracking maps a device fingerprint to the set of accounts
// observed using it.
type DeviceTracking struct {
	Fingerprint string      `json:"fingerprint"`
	UserIDs     []uuid.UUID `json:"user_ids"`
	LastSeen    time.Time   `json:"last_seen"`
}
