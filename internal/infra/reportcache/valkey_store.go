package reportcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
)

// ValkeyStore caches reports in a Valkey-compatible database so multiple
// instances share one cache and LLM calls are not repeated per replica.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "report"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// GetReport implements surfreport.ReportCache.
func (s *ValkeyStore) GetReport(ctx context.Context, spotID string) (surfreport.Report, bool, error) {
	if spotID == "" {
		return surfreport.Report{}, false, nil
	}
	cmd := s.client.B().Get().Key(s.key(spotID)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return surfreport.Report{}, false, nil
		}
		return surfreport.Report{}, false, err
	}
	var report surfreport.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return surfreport.Report{}, false, err
	}
	return report, true, nil
}

// SaveReport implements surfreport.ReportCache.
func (s *ValkeyStore) SaveReport(ctx context.Context, report surfreport.Report, ttl time.Duration) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	key := s.key(report.Spot.ID)
	if ttl > 0 {
		return s.client.Do(ctx, s.client.B().Set().Key(key).Value(string(payload)).Ex(ttl).Build()).Error()
	}
	return s.client.Do(ctx, s.client.B().Set().Key(key).Value(string(payload)).Build()).Error()
}

func (s *ValkeyStore) key(spotID string) string {
	return fmt.Sprintf("%s:spot:%s", s.prefix, spotID)
}
