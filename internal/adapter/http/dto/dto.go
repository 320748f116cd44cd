package dto

// CheckRequest is the request body for a fraud check.
type CheckRequest struct {
	ActionType        string         `json:"action_type" binding:"required"`
	UserID            *string        `json:"user_id,omitempty" binding:"omitempty,uuid"`
	IPAddress         string         `json:"ip_address,omitempty"`
	UserAgent         string         `json:"user_agent,omitempty"`
	DeviceFingerprint string         `json:"device_fingerprint,omitempty" binding:"omitempty,safe_id"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// CheckResponse is the response body for a fraud check decision.
type CheckResponse struct {
	SessionID   string          `json:"session_id"`
	RiskScore   int             `json:"risk_score"`
	Action      string          `json:"action"`
	RiskFactors RiskFactorsBody `json:"risk_factors"`
	Reasons     []string        `json:"reasons"`
	EvaluatedAt string          `json:"evaluated_at"`
}

// RiskFactorsBody carries the six sub-scores in API responses.
type RiskFactorsBody struct {
	UserBehavior int `json:"user_behavior"`
	DeviceRisk   int `json:"device_risk"`
	IPRisk       int `json:"ip_risk"`
	PaymentRisk  int `json:"payment_risk"`
	ContentRisk  int `json:"content_risk"`
	VelocityRisk int `json:"velocity_risk"`
}

// AuditRecordResponse is one decision row from the reporting endpoint.
type AuditRecordResponse struct {
	SessionID   string          `json:"session_id"`
	ActionType  string          `json:"action_type"`
	UserID      *string         `json:"user_id,omitempty"`
	IPAddress   string          `json:"ip_address,omitempty"`
	RiskScore   int             `json:"risk_score"`
	Action      string          `json:"action"`
	RiskFactors RiskFactorsBody `json:"risk_factors"`
	Reasons     []string        `json:"reasons"`
	CreatedAt   string          `json:"created_at"`
}

// AuditListResponse wraps the recent-decisions list.
type AuditListResponse struct {
	Items []AuditRecordResponse `json:"items"`
	Count int                   `json:"count"`
}
