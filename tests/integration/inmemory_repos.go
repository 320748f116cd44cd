package integration

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"trust-engine/internal/core/domain"

	"github.com/google/uuid"
)

// --- In-Memory Profile Repo ---

type inMemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*domain.UserProfile
}

func newInMemoryProfileRepo() *inMemoryProfileRepo {
	return &inMemoryProfileRepo{profiles: make(map[uuid.UUID]*domain.UserProfile)}
}

func (r *inMemoryProfileRepo) add(p *domain.UserProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
}

func (r *inMemoryProfileRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	return p, nil
}

// --- In-Memory Booking Repo ---

type bookingRow struct {
	userID    uuid.UUID
	cancelled bool
	createdAt time.Time
}

type inMemoryBookingRepo struct {
	mu   sync.RWMutex
	rows []bookingRow
}

func newInMemoryBookingRepo() *inMemoryBookingRepo {
	return &inMemoryBookingRepo{}
}

func (r *inMemoryBookingRepo) add(userID uuid.UUID, cancelled bool, createdAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, bookingRow{userID: userID, cancelled: cancelled, createdAt: createdAt})
}

func (r *inMemoryBookingRepo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, row := range r.rows {
		if row.userID == userID && row.createdAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (r *inMemoryBookingRepo) CancellationStats(ctx context.Context, userID uuid.UUID, since time.Time) (int, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total, cancelled := 0, 0
	for _, row := range r.rows {
		if row.userID == userID && row.createdAt.After(since) {
			total++
			if row.cancelled {
				cancelled++
			}
		}
	}
	return total, cancelled, nil
}

// --- In-Memory Payment Repo ---

type paymentRow struct {
	userID    uuid.UUID
	amount    float64
	failed    bool
	createdAt time.Time
}

type inMemoryPaymentRepo struct {
	mu   sync.RWMutex
	rows []paymentRow
}

func newInMemoryPaymentRepo() *inMemoryPaymentRepo {
	return &inMemoryPaymentRepo{}
}

func (r *inMemoryPaymentRepo) add(userID uuid.UUID, amount float64, failed bool, createdAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, paymentRow{userID: userID, amount: amount, failed: failed, createdAt: createdAt})
}

func (r *inMemoryPaymentRepo) FailedCountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, row := range r.rows {
		if row.userID == userID && row.failed && row.createdAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (r *inMemoryPaymentRepo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, row := range r.rows {
		if row.userID == userID && row.createdAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (r *inMemoryPaymentRepo) AverageAmount(ctx context.Context, userID uuid.UUID) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sum, n := 0.0, 0
	for _, row := range r.rows {
		if row.userID == userID && !row.failed {
			sum += row.amount
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}

// --- In-Memory Session Log Repo ---

type inMemorySessionLogRepo struct {
	mu   sync.RWMutex
	logs []domain.SessionLog
	seen map[uuid.UUID]bool
}

func newInMemorySessionLogRepo() *inMemorySessionLogRepo {
	return &inMemorySessionLogRepo{seen: make(map[uuid.UUID]bool)}
}

func (r *inMemorySessionLogRepo) Append(ctx context.Context, log *domain.SessionLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seen[log.SessionID] {
		return nil
	}
	r.seen[log.SessionID] = true
	r.logs = append(r.logs, *log)
	return nil
}

func (r *inMemorySessionLogRepo) CountByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, l := range r.logs {
		if l.UserID != nil && *l.UserID == userID && l.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (r *inMemorySessionLogRepo) CountByIPSince(ctx context.Context, ip string, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, l := range r.logs {
		if l.IPAddress == ip && l.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (r *inMemorySessionLogRepo) DistinctIPsByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ips := make(map[string]bool)
	for _, l := range r.logs {
		if l.UserID != nil && *l.UserID == userID && l.IPAddress != "" && l.CreatedAt.After(since) {
			ips[l.IPAddress] = true
		}
	}
	return len(ips), nil
}

func (r *inMemorySessionLogRepo) RecentUserAgents(ctx context.Context, userID uuid.UUID, limit int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var logs []domain.SessionLog
	for _, l := range r.logs {
		if l.UserID != nil && *l.UserID == userID && strings.TrimSpace(l.UserAgent) != "" {
			logs = append(logs, l)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })
	agents := make([]string, 0, limit)
	for _, l := range logs {
		if len(agents) == limit {
			break
		}
		agents = append(agents, l.UserAgent)
	}
	return agents, nil
}

func (r *inMemorySessionLogRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.logs)
}

// --- In-Memory Tracking Repo ---

type inMemoryTrackingRepo struct {
	mu      sync.RWMutex
	ips     map[string]*domain.IPTracking
	devices map[string]*domain.DeviceTracking
}

func newInMemoryTrackingRepo() *inMemoryTrackingRepo {
	return &inMemoryTrackingRepo{
		ips:     make(map[string]*domain.IPTracking),
		devices: make(map[string]*domain.DeviceTracking),
	}
}

func (r *inMemoryTrackingRepo) seedDevice(fingerprint string, userIDs []uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices[fingerprint] = &domain.DeviceTracking{Fingerprint: fingerprint, UserIDs: userIDs, LastSeen: time.Now()}
}

func (r *inMemoryTrackingRepo) GetIPTracking(ctx context.Context, ip string) (*domain.IPTracking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.ips[ip]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (r *inMemoryTrackingRepo) GetDeviceTracking(ctx context.Context, fingerprint string) (*domain.DeviceTracking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.devices[fingerprint]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (r *inMemoryTrackingRepo) UpsertIP(ctx context.Context, ip string, userID *uuid.UUID, seenAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.ips[ip]
	if !ok {
		t = &domain.IPTracking{IPAddress: ip}
		r.ips[ip] = t
	}
	if userID != nil && !containsID(t.UserIDs, *userID) {
		t.UserIDs = append(t.UserIDs, *userID)
	}
	t.LastSeen = seenAt
	return nil
}

func (r *inMemoryTrackingRepo) UpsertDevice(ctx context.Context, fingerprint string, userID *uuid.UUID, seenAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.devices[fingerprint]
	if !ok {
		t = &domain.DeviceTracking{Fingerprint: fingerprint}
		r.devices[fingerprint] = t
	}
	if userID != nil && !containsID(t.UserIDs, *userID) {
		t.UserIDs = append(t.UserIDs, *userID)
	}
	t.LastSeen = seenAt
	return nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]domain.AuditRecord
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{records: make(map[uuid.UUID]domain.AuditRecord)}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, rec *domain.AuditRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.SessionID]; ok {
		return nil
	}
	r.records[rec.SessionID] = *rec
	return nil
}

func (r *inMemoryAuditRepo) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.AuditRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[sessionID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *inMemoryAuditRepo) ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := make([]domain.AuditRecord, 0, len(r.records))
	for _, rec := range r.records {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].CreatedAt.After(recs[j].CreatedAt) })
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func (r *inMemoryAuditRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
