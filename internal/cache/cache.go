package cache

import (
	"context"
	"sync"
	"time"

	"github.com/salestrace/salestrace/internal/logger"
	"github.com/salestrace/salestrace/internal/transaction"
)

// Fetcher is the upstream the cache refreshes from.
type Fetcher interface {
	Transactions(ctx context.Context) ([]transaction.Transaction, error)
}

// call is one in-flight upstream request that concurrent callers coalesce
// onto.
type call struct {
	done         chan struct{}
	transactions []transaction.Transaction
	err          error
}

// Cache keeps the last fetched transaction list. Within the staleness
// window it serves the cached copy; past it, a refetch is triggered, with
// the stale copy served on refetch failure until the expiry window passes.
// At most one upstream request is outstanding at a time.
//
// Every issued fetch carries a sequence number and a completion only
// commits when no newer sequence has been issued, so a superseded in-flight
// response can never overwrite fresher state.
type Cache struct {
	fetcher     Fetcher
	logger      *logger.Logger
	staleAfter  time.Duration
	expireAfter time.Duration

	mu           sync.Mutex
	transactions []transaction.Transaction
	fetchedAt    time.Time
	pending      *call
	seq          uint64

	now func() time.Time
}

func New(fetcher Fetcher, staleAfter, expireAfter time.Duration, logger *logger.Logger) *Cache {
	return &Cache{
		fetcher:     fetcher,
		logger:      logger,
		staleAfter:  staleAfter,
		expireAfter: expireAfter,
		now:         time.Now,
	}
}

// Transactions returns the cached list, refreshing it first when stale.
func (c *Cache) Transactions(ctx context.Context) ([]transaction.Transaction, error) {
	c.mu.Lock()

	age := c.now().Sub(c.fetchedAt)
	if !c.fetchedAt.IsZero() && age < c.staleAfter {
		cached := copyTransactions(c.transactions)
		c.mu.Unlock()
		return cached, nil
	}

	if c.pending != nil {
		pending := c.pending
		c.mu.Unlock()
		<-pending.done
		return copyTransactions(pending.transactions), pending.err
	}

	pending := &call{done: make(chan struct{})}
	c.pending = pending
	c.seq++
	seq := c.seq

	var stale []transaction.Transaction
	if !c.fetchedAt.IsZero() && age < c.expireAfter {
		stale = copyTransactions(c.transactions)
	}
	c.mu.Unlock()

	transactions, err := c.fetcher.Transactions(ctx)

	c.mu.Lock()
	switch {
	case err == nil:
		if seq == c.seq {
			c.transactions = transactions
			c.fetchedAt = c.now()
		}
		pending.transactions = transactions
	case stale != nil:
		// serve the stale copy until the expiry window closes; recorded on
		// the shared call so coalesced callers resolve the same way
		c.logger.Warn("refresh failed, serving stale transactions", "error", err.Error())
		pending.transactions = stale
	default:
		pending.err = err
	}
	c.pending = nil
	close(pending.done)
	c.mu.Unlock()

	return copyTransactions(pending.transactions), pending.err
}

// Invalidate discards the cached list. A fetch already in flight still
// resolves for its callers but its result is not committed.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.transactions = nil
	c.fetchedAt = time.Time{}
	c.seq++
}

func copyTransactions(transactions []transaction.Transaction) []transaction.Transaction {
	return append([]transaction.Transaction(nil), transactions...)
}
