package domain

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

// ActionType is the kind of user-initiated action being risk-checked.
type ActionType string

const (
	ActionRegistration ActionType = "registration"
	ActionBooking      ActionType = "booking"
	ActionPayment      ActionType = "payment"
	ActionMessaging    ActionType = "messaging"
	ActionLogin        ActionType = "login"
)

// Valid reports whether the action type is one of the known values.
// Requests with an unknown action type are rejected before any analyzer runs.
func (a ActionType) Valid() bool {
	switch a {
	case ActionRegistration, ActionBooking, ActionPayment, ActionMessaging, ActionLogin:
		return true
	}
	return false
}

// Metadata is the open key/value payload attached to a check request.
// Different analyzers read different optional keys; the typed accessors
// tolerate absent keys and mismatched types so an analyzer never panics
// on caller-supplied data.
type Metadata map[string]any

// String returns the string value for key, if present and a string.
func (m Metadata) String(key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Float returns the numeric value for key. JSON decoding may deliver
// numbers as float64, json.Number or a numeric string; all are accepted.
func (m Metadata) Float(key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// CheckRequest is one fraud-check invocation. It is transient: created
// for a single call and never persisted as-is.
type CheckRequest struct {
	ActionType        ActionType `json:"action_type"`
	UserID            *uuid.UUID `json:"user_id,omitempty"` // present for authenticated actions
	IPAddress         string     `json:"ip_address,omitempty"`
	UserAgent         string     `json:"user_agent,omitempty"`
	DeviceFingerprint string     `json:"device_fingerprint,omitempty"`
	Metadata          Metadata   `json:"metadata,omitempty"`
}
