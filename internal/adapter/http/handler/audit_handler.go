package handler

import (
	"strconv"
	"time"

	"trust-engine/internal/adapter/http/dto"
	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports"
	"trust-engine/pkg/apperror"
	"trust-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditHandler handles decision reporting endpoints.
type AuditHandler struct {
	reportingSvc ports.ReportingService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(reportingSvc ports.ReportingService) *AuditHandler {
	return &AuditHandler{reportingSvc: reportingSvc}
}

// ListRecent handles GET /api/v1/audits/recent.
func (h *AuditHandler) ListRecent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Error(c, apperror.Validation("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	recs, err := h.reportingSvc.RecentDecisions(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AuditRecordResponse, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toAuditRecordResponse(rec))
	}
	response.OK(c, dto.AuditListResponse{Items: items, Count: len(items)})
}

func toAuditRecordResponse(rec domain.AuditRecord) dto.AuditRecordResponse {
	var userID *string
	if rec.UserID != nil {
		s := rec.UserID.String()
		userID = &s
	}
	return dto.AuditRecordResponse{
		SessionID:   rec.SessionID.String(),
		ActionType:  string(rec.ActionType),
		UserID:      userID,
		IPAddress:   rec.IPAddress,
		RiskScore:   rec.RiskScore,
		Action:      string(rec.Action),
		RiskFactors: toRiskFactorsBody(rec.RiskFactors),
		Reasons:     rec.Reasons,
		CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}
