package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suwandre/fundity/internal/models"
)

// MockProvider for scheduler tests
type MockProvider struct {
	Snap  *models.Snapshot
	Err   error
	Calls int
}

func (m *MockProvider) GetFundingRates(ctx context.Context) (*models.Snapshot, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Snap, nil
}

func testSnapshot(ts string) *models.Snapshot {
	return &models.Snapshot{
		Symbols: []string{"BTC"},
		FundingRates: map[string]map[string]int{
			"binance_1_perp": {"BTC": 8},
			"bybit_1_perp":   {"BTC": 12},
		},
		Timestamp: ts,
	}
}

func TestLatest_EmptyBeforeFirstRefresh(t *testing.T) {
	s := NewScheduler(&MockProvider{Snap: testSnapshot("t1")}, nil, 0, time.Hour)

	_, _, ok := s.Latest()
	assert.False(t, ok)
}

func TestStart_WarmsCacheImmediately(t *testing.T) {
	provider := &MockProvider{Snap: testSnapshot("t1")}
	s := NewScheduler(provider, []string{"BTC"}, 0, time.Hour)

	s.Start(context.Background())
	defer s.Stop()

	snap, fetchedAt, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "t1", snap.Timestamp)
	assert.WithinDuration(t, time.Now(), fetchedAt, time.Minute)
	assert.Equal(t, 1, provider.Calls)
}

func TestRefresh_ReplacesSnapshot(t *testing.T) {
	provider := &MockProvider{Snap: testSnapshot("t1")}
	s := NewScheduler(provider, nil, 0, time.Hour)

	s.refresh(context.Background())
	provider.Snap = testSnapshot("t2")
	s.refresh(context.Background())

	snap, _, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "t2", snap.Timestamp)
}

func TestRefresh_KeepsPreviousSnapshotOnFailure(t *testing.T) {
	provider := &MockProvider{Snap: testSnapshot("t1")}
	s := NewScheduler(provider, nil, 0, time.Hour)

	s.refresh(context.Background())
	provider.Err = errors.New("upstream down")
	s.refresh(context.Background())

	snap, _, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "t1", snap.Timestamp)
}

func TestRefresh_FailureBeforeFirstSnapshotLeavesCacheEmpty(t *testing.T) {
	provider := &MockProvider{Err: errors.New("upstream down")}
	s := NewScheduler(provider, nil, 0, time.Hour)

	s.refresh(context.Background())

	_, _, ok := s.Latest()
	assert.False(t, ok)
}
