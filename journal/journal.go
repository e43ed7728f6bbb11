package journal

import "time"

// Journal is the append-only store of a session's trades. Trades returns
// records in the order they were recorded.
type Journal interface {
	RecordTrade(TradeRecord) error
	Trades() ([]TradeRecord, error)
	GetTrade(id string) (TradeRecord, error)
	ListTradesBetween(start, end time.Time) ([]TradeRecord, error)
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Open returns a journal for the named backend. dsn is only used by the
// sqlite backend; empty means an in-memory database.
func Open(backend, dsn string) (Journal, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendSQLite:
		if dsn == "" {
			dsn = MemoryDSN
		}
		return NewSQLite(dsn)
	}
	return nil, &UnknownBackendError{Backend: backend}
}

// UnknownBackendError is returned by Open for an unsupported backend name.
type UnknownBackendError struct {
	Backend string
}

func (e *UnknownBackendError) Error() string {
	return "unknown journal backend: " + e.Backend
}
