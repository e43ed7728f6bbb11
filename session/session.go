// Package session owns the mutable state of one journaling session: the
// trade journal, the initial balance and the entry form draft. Derived
// figures are recomputed from the full trade list on every Snapshot.
package session

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/stats"
)

type Session struct {
	mu sync.RWMutex

	journal        journal.Journal
	initialBalance float64
	draft          journal.Draft

	now func() time.Time
	log *zap.Logger
}

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now, used for draft defaults and trade IDs.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

func New(j journal.Journal, initialBalance float64, opts ...Option) *Session {
	s := &Session{
		journal:        j,
		initialBalance: initialBalance,
		now:            time.Now,
		log:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.draft = journal.NewDraft(s.now())
	return s
}

// Draft returns the current entry form state.
func (s *Session) Draft() journal.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// UpdateDraft sets one draft field. Nothing is validated until Submit.
func (s *Session) UpdateDraft(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Set(field, value)
}

// ResetDraft restores the form defaults.
func (s *Session) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = journal.NewDraft(s.now())
}

// Submit records the current draft and resets it to defaults. A rejected
// draft is left untouched so it can be corrected.
func (s *Session) Submit() (journal.TradeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.record(s.draft)
	if err != nil {
		return journal.TradeRecord{}, err
	}
	s.draft = journal.NewDraft(s.now())
	return rec, nil
}

// AddTrade records d without touching the session draft.
func (s *Session) AddTrade(d journal.Draft) (journal.TradeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(d)
}

func (s *Session) record(d journal.Draft) (journal.TradeRecord, error) {
	rec, err := d.Trade(s.now())
	if err != nil {
		s.log.Warn("trade rejected",
			zap.String("pair", d.Pair),
			zap.String("result", d.Result),
			zap.Error(err))
		return journal.TradeRecord{}, err
	}

	if err := s.journal.RecordTrade(rec); err != nil {
		return journal.TradeRecord{}, fmt.Errorf("record trade: %w", err)
	}

	s.log.Info("trade recorded",
		zap.String("id", rec.ID),
		zap.String("date", rec.Day()),
		zap.String("pair", rec.Pair),
		zap.Stringer("direction", rec.Direction),
		zap.Float64("result", rec.Result))
	return rec, nil
}

// Trades returns the session's trades in entry order.
func (s *Session) Trades() ([]journal.TradeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.journal.Trades()
}

func (s *Session) GetTrade(tradeID string) (journal.TradeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, err := s.journal.GetTrade(tradeID)
	if !errors.Is(err, journal.ErrTradeNotFound) {
		return rec, err
	}
	return s.findBySuffix(tradeID)
}

// findBySuffix resolves the short display form of an ID, which is the
// tail of the full ID. It must match exactly one trade.
func (s *Session) findBySuffix(ref string) (journal.TradeRecord, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	if ref == "" {
		return journal.TradeRecord{}, fmt.Errorf("%w: empty id", journal.ErrTradeNotFound)
	}

	trades, err := s.journal.Trades()
	if err != nil {
		return journal.TradeRecord{}, err
	}

	var (
		found journal.TradeRecord
		n     int
	)
	for _, t := range trades {
		if strings.HasSuffix(t.ID, ref) {
			found = t
			n++
		}
	}
	switch n {
	case 0:
		return journal.TradeRecord{}, fmt.Errorf("%w: %q", journal.ErrTradeNotFound, ref)
	case 1:
		return found, nil
	}
	return journal.TradeRecord{}, fmt.Errorf("%w: %q matches %d trades", journal.ErrAmbiguousTradeID, ref, n)
}

// TradesOn returns the trades dated on the given calendar day.
func (s *Session) TradesOn(day time.Time) ([]journal.TradeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return s.journal.ListTradesBetween(start, start.AddDate(0, 0, 1))
}

func (s *Session) InitialBalance() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialBalance
}

// SetInitialBalance changes the starting balance the equity curve is
// built from. Only finite values are accepted.
func (s *Session) SetInitialBalance(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("initial balance must be finite")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialBalance = v
	s.log.Info("initial balance set", zap.Float64("balance", v))
	return nil
}

// Snapshot derives statistics and the equity curve from the full trade
// list as it stands now.
func (s *Session) Snapshot() (stats.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trades, err := s.journal.Trades()
	if err != nil {
		return stats.Snapshot{}, fmt.Errorf("load trades: %w", err)
	}
	return stats.Derive(trades, s.initialBalance), nil
}

// Close releases the journal. Trades are gone afterwards.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journal.Close()
}
