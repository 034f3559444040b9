package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/suwandre/fundity/internal/models"
	"github.com/suwandre/fundity/internal/onlyfunding"
	"github.com/suwandre/fundity/internal/scanner"
)

type Scheduler struct {
	provider  onlyfunding.Provider
	symbols   []string
	minSpread float64
	interval  time.Duration
	mu        sync.RWMutex
	snapshot  *models.Snapshot
	fetchedAt time.Time
	stopCh    chan struct{}
}

func NewScheduler(provider onlyfunding.Provider, symbols []string, minSpread float64, interval time.Duration) *Scheduler {
	return &Scheduler{
		provider:  provider,
		symbols:   symbols,
		minSpread: minSpread,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Begins the polling loop in a background goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	// Run once immediately so the cache isn't empty on first request
	s.refresh(ctx)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.refresh(ctx)
			case <-ctx.Done():
				log.Info().Msg("scheduler stopped")
				return
			case <-s.stopCh:
				log.Info().Msg("scheduler stopped")
				return
			}
		}
	}()

	log.Info().
		Stringer("interval", s.interval).
		Strs("symbols", s.symbols).
		Msg("scheduler started")
}

// Signals the background goroutine to exit cleanly.
func (s *Scheduler) Stop() {
	close(s.stopCh)
}

// Returns the latest cached snapshot and when it was fetched.
func (s *Scheduler) Latest() (*models.Snapshot, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, time.Time{}, false
	}
	return s.snapshot, s.fetchedAt, true
}

// Fetches a fresh snapshot and updates the cache. On failure the previous
// snapshot is kept so the API degrades to stale data instead of nothing.
func (s *Scheduler) refresh(ctx context.Context) {
	snap, err := s.provider.GetFundingRates(ctx)
	if err != nil {
		log.Error().Err(err).Msg("scheduler refresh failed, keeping previous snapshot")
		return
	}

	s.mu.Lock()
	s.snapshot = snap
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	log.Info().
		Int("symbols", len(snap.Symbols)).
		Int("exchanges", len(snap.Exchanges.Exchanges)).
		Msg("snapshot refreshed")

	for _, symbol := range s.symbols {
		opportunities := scanner.FindOpportunities(snap, symbol, s.minSpread)
		if len(opportunities) == 0 {
			continue
		}

		best := opportunities[0]
		log.Info().
			Str("symbol", symbol).
			Float64("spread", best.Spread).
			Str("long", best.LongExchange).
			Str("short", best.ShortExchange).
			Int("opportunities", len(opportunities)).
			Msg("arbitrage opportunities found")
	}
}
