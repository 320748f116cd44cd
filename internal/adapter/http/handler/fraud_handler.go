package handler

import (
	"time"

	"trust-engine/internal/adapter/http/dto"
	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports"
	"trust-engine/pkg/apperror"
	"trust-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FraudHandler handles fraud-check endpoints.
type FraudHandler struct {
	fraudSvc ports.FraudCheckService
}

// NewFraudHandler creates a new FraudHandler.
func NewFraudHandler(fraudSvc ports.FraudCheckService) *FraudHandler {
	return &FraudHandler{fraudSvc: fraudSvc}
}

// Check handles POST /api/v1/fraud/check.
func (h *FraudHandler) Check(c *gin.Context) {
	var req dto.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	var userID *uuid.UUID
	if req.UserID != nil {
		id, err := uuid.Parse(*req.UserID)
		if err != nil {
			response.Error(c, apperror.Validation("user_id must be a valid UUID"))
			return
		}
		userID = &id
	}

	ip := req.IPAddress
	if ip == "" {
		ip = c.ClientIP()
	}
	ua := req.UserAgent
	if ua == "" {
		ua = c.Request.UserAgent()
	}

	result, err := h.fraudSvc.Check(c.Request.Context(), &domain.CheckRequest{
		ActionType:        domain.ActionType(req.ActionType),
		UserID:            userID,
		IPAddress:         ip,
		UserAgent:         ua,
		DeviceFingerprint: req.DeviceFingerprint,
		Metadata:          req.Metadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toCheckResponse(result))
}

func toCheckResponse(r *domain.CheckResult) dto.CheckResponse {
	return dto.CheckResponse{
		SessionID:   r.SessionID.String(),
		RiskScore:   r.RiskScore,
		Action:      string(r.Action),
		RiskFactors: toRiskFactorsBody(r.RiskFactors),
		Reasons:     r.Reasons,
		EvaluatedAt: r.EvaluatedAt.UTC().Format(time.RFC3339),
	}
}

func toRiskFactorsBody(f domain.RiskFactors) dto.RiskFactorsBody {
	return dto.RiskFactorsBody{
		UserBehavior: f.UserBehavior,
		DeviceRisk:   f.DeviceRisk,
		IPRisk:       f.IPRisk,
		PaymentRisk:  f.PaymentRisk,
		ContentRisk:  f.ContentRisk,
		VelocityRisk: f.VelocityRisk,
	}
}
