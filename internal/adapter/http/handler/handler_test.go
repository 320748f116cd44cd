package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trust-engine/internal/adapter/http/dto"
	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports"
	"trust-engine/internal/core/ports/mocks"
	"trust-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sampleResult() *domain.CheckResult {
	return &domain.CheckResult{
		SessionID: uuid.New(),
		RiskScore: 18,
		Action:    domain.ActionAllow,
		RiskFactors: domain.RiskFactors{
			UserBehavior: 40,
			DeviceRisk:   20,
			IPRisk:       10,
			VelocityRisk: 30,
		},
		Reasons:     []string{"account created less than 24h ago"},
		EvaluatedAt: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
	}
}

// --- Fraud Handler Tests ---

func TestCheck_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockFraudCheckService(ctrl)
	h := NewFraudHandler(mockSvc)

	userID := uuid.New()
	result := sampleResult()
	mockSvc.EXPECT().Check(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *domain.CheckRequest) (*domain.CheckResult, error) {
			assert.Equal(t, domain.ActionBooking, req.ActionType)
			require.NotNil(t, req.UserID)
			assert.Equal(t, userID, *req.UserID)
			assert.Equal(t, "203.0.113.7", req.IPAddress)
			return result, nil
		})

	idStr := userID.String()
	body, _ := json.Marshal(dto.CheckRequest{
		ActionType: "booking",
		UserID:     &idStr,
		IPAddress:  "203.0.113.7",
		UserAgent:  "Mozilla/5.0",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/fraud/check", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Check(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, result.SessionID.String(), data["session_id"])
	assert.Equal(t, float64(18), data["risk_score"])
	assert.Equal(t, "allow", data["action"])
	factors := data["risk_factors"].(map[string]interface{})
	assert.Equal(t, float64(40), factors["user_behavior"])
	assert.Equal(t, float64(30), factors["velocity_risk"])
	assert.Equal(t, "2026-02-10T12:00:00Z", data["evaluated_at"])
}

func TestCheck_MissingActionType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockFraudCheckService(ctrl)
	h := NewFraudHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/fraud/check", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Check(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VAL_001", resp["error_code"])
}

func TestCheck_InvalidUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockFraudCheckService(ctrl)
	h := NewFraudHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/fraud/check",
		bytes.NewReader([]byte(`{"action_type":"login","user_id":"not-a-uuid"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Check(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheck_UnknownActionType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockFraudCheckService(ctrl)
	h := NewFraudHandler(mockSvc)

	mockSvc.EXPECT().Check(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrUnknownActionType("transfer"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/fraud/check",
		bytes.NewReader([]byte(`{"action_type":"transfer"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Check(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FRD_001", resp["error_code"])
}

func TestCheck_FallsBackToClientIPAndUserAgent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockFraudCheckService(ctrl)
	h := NewFraudHandler(mockSvc)

	mockSvc.EXPECT().Check(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *domain.CheckRequest) (*domain.CheckResult, error) {
			assert.Equal(t, "192.0.2.9", req.IPAddress)
			assert.Equal(t, "curl/8.5", req.UserAgent)
			return sampleResult(), nil
		})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/fraud/check",
		bytes.NewReader([]byte(`{"action_type":"login"}`)))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Header.Set("User-Agent", "curl/8.5")
	c.Request.RemoteAddr = "192.0.2.9:54321"

	h.Check(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Audit Handler Tests ---

func TestListRecent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockReportingService(ctrl)
	h := NewAuditHandler(mockSvc)

	userID := uuid.New()
	recs := []domain.AuditRecord{
		{
			ID:         uuid.New(),
			SessionID:  uuid.New(),
			ActionType: domain.ActionPayment,
			UserID:     &userID,
			IPAddress:  "203.0.113.7",
			RiskScore:  85,
			Action:     domain.ActionBlock,
			Reasons:    []string{"more than 3 failed payments in 7d"},
			CreatedAt:  time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
		},
	}
	mockSvc.EXPECT().RecentDecisions(gomock.Any(), 25).Return(recs, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/audits/recent?limit=25", nil)

	h.ListRecent(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
	items := data["items"].([]interface{})
	item := items[0].(map[string]interface{})
	assert.Equal(t, "block", item["action"])
	assert.Equal(t, userID.String(), item["user_id"])
}

func TestListRecent_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockReportingService(ctrl)
	h := NewAuditHandler(mockSvc)

	// No limit query param => 0, the service applies its default.
	mockSvc.EXPECT().RecentDecisions(gomock.Any(), 0).Return([]domain.AuditRecord{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/audits/recent", nil)

	h.ListRecent(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["count"])
}

func TestListRecent_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockReportingService(ctrl)
	h := NewAuditHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/audits/recent?limit=-1", nil)

	h.ListRecent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRecent_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockReportingService(ctrl)
	h := NewAuditHandler(mockSvc)

	mockSvc.EXPECT().RecentDecisions(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrDatabaseError(errors.New("connection refused")))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/audits/recent", nil)

	h.ListRecent(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Health Handler Tests ---

type staticChecker struct {
	name string
	err  error
}

func (s staticChecker) Ping(context.Context) error { return s.err }

func (s staticChecker) Name() string { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(staticChecker{name: "postgresql"}, staticChecker{name: "redis"})(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	pg := deps["postgresql"].(map[string]interface{})
	assert.Equal(t, "healthy", pg["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(
		staticChecker{name: "postgresql"},
		staticChecker{name: "redis", err: errors.New("connection refused")},
	)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	rd := deps["redis"].(map[string]interface{})
	assert.Equal(t, "unhealthy", rd["status"])
	assert.Equal(t, "connection refused", rd["error"])
}

// --- Router Tests ---

func routerDeps(ctrl *gomock.Controller) (RouterDeps, *mocks.MockFraudCheckService, *mocks.MockTokenService) {
	mockFraud := mocks.NewMockFraudCheckService(ctrl)
	mockReporting := mocks.NewMockReportingService(ctrl)
	mockToken := mocks.NewMockTokenService(ctrl)
	deps := RouterDeps{
		FraudSvc:     mockFraud,
		ReportingSvc: mockReporting,
		TokenSvc:     mockToken,
	}
	return deps, mockFraud, mockToken
}

func TestRouter_CheckRequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _, _ := routerDeps(ctrl)
	r := SetupRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fraud/check",
		bytes.NewReader([]byte(`{"action_type":"login"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_CheckWithValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, mockFraud, mockToken := routerDeps(ctrl)
	mockToken.EXPECT().Validate("tok123").Return(&ports.TokenClaims{Caller: "booking-service"}, nil)
	mockFraud.EXPECT().Check(gomock.Any(), gomock.Any()).Return(sampleResult(), nil)

	r := SetupRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fraud/check",
		bytes.NewReader([]byte(`{"action_type":"login"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RejectsMissingCallerClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _, mockToken := routerDeps(ctrl)
	mockToken.EXPECT().Validate("tok123").Return(&ports.TokenClaims{}, nil)

	r := SetupRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fraud/check", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AUTH_002", resp["error_code"])
}

func TestRouter_HealthIsPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _, _ := routerDeps(ctrl)
	r := SetupRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RateLimitHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, mockFraud, mockToken := routerDeps(ctrl)
	mockCounters := mocks.NewMockVelocityCounter(ctrl)
	deps.Counters = mockCounters

	mockToken.EXPECT().Validate("tok123").Return(&ports.TokenClaims{Caller: "booking-service"}, nil)
	mockCounters.EXPECT().Incr(gomock.Any(), "ratelimit:booking-service:fraud_check", time.Minute).Return(int64(1), nil)
	mockFraud.EXPECT().Check(gomock.Any(), gomock.Any()).Return(sampleResult(), nil)

	r := SetupRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fraud/check",
		bytes.NewReader([]byte(`{"action_type":"login"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "600", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "599", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRouter_RateLimitExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _, mockToken := routerDeps(ctrl)
	mockCounters := mocks.NewMockVelocityCounter(ctrl)
	deps.Counters = mockCounters

	mockToken.EXPECT().Validate("tok123").Return(&ports.TokenClaims{Caller: "booking-service"}, nil)
	mockCounters.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(601), nil)

	r := SetupRouter(deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fraud/check",
		bytes.NewReader([]byte(`{"action_type":"login"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
