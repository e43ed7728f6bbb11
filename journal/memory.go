package journal

import (
	"fmt"
	"sync"
	"time"
)

// Memory keeps trades in a slice. It is the default session journal.
type Memory struct {
	mu     sync.RWMutex
	trades []TradeRecord
	byID   map[string]int
}

func NewMemory() *Memory {
	return &Memory{byID: make(map[string]int)}
}

func (m *Memory) RecordTrade(t TradeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[t.ID]; ok {
		return fmt.Errorf("trade %q already recorded", t.ID)
	}
	m.byID[t.ID] = len(m.trades)
	m.trades = append(m.trades, t)
	return nil
}

// Trades returns a copy of the recorded trades in entry order.
func (m *Memory) Trades() ([]TradeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]TradeRecord, len(m.trades))
	copy(out, m.trades)
	return out, nil
}

func (m *Memory) GetTrade(tradeID string) (TradeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byID[tradeID]
	if !ok {
		return TradeRecord{}, fmt.Errorf("%w: %q", ErrTradeNotFound, tradeID)
	}
	return m.trades[i], nil
}

// ListTradesBetween returns trades whose calendar date is within
// [start, end), in entry order.
func (m *Memory) ListTradesBetween(start, end time.Time) ([]TradeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	from, to := start.Format(DateLayout), end.Format(DateLayout)

	var out []TradeRecord
	for _, t := range m.trades {
		if day := t.Day(); day >= from && day < to {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *Memory) Close() error {
	return nil
}
