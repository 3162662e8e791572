package reportcache

import (
	"context"
	"sync"
	"time"

	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
)

type cachedReport struct {
	payload   surfreport.Report
	expiresAt time.Time
}

// MemoryStore is an in-memory report cache for tests and single-instance
// deployments.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]cachedReport
}

// NewMemoryStore constructs a cache backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]cachedReport)}
}

// GetReport implements surfreport.ReportCache.
func (s *MemoryStore) GetReport(_ context.Context, spotID string) (surfreport.Report, bool, error) {
	if spotID == "" {
		return surfreport.Report{}, false, nil
	}
	s.mu.RLock()
	entry, ok := s.reports[spotID]
	s.mu.RUnlock()
	if !ok {
		return surfreport.Report{}, false, nil
	}
	if hasExpired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.reports, spotID)
		s.mu.Unlock()
		return surfreport.Report{}, false, nil
	}
	return entry.payload, true, nil
}

// SaveReport caches the report with optional TTL.
func (s *MemoryStore) SaveReport(_ context.Context, report surfreport.Report, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.reports[report.Spot.ID] = cachedReport{payload: report, expiresAt: exp}
	return nil
}

func hasExpired(expiresAt time.Time) bool {
	return !expiresAt.IsZero() && time.Now().After(expiresAt)
}
