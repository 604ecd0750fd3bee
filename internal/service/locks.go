package service

import (
	"sync"
	"time"

	"github.com/talabi-dev/StayBooker/internal/domain"
)

// propertyLocks serializes hold mutations per property inside one process.
// The Postgres advisory lock in the repository is the cross-instance guard;
// this layer keeps in-process contention off the database and turns a long
// wait into a fast ErrPropertyBusy.
type propertyLocks struct {
	timeout time.Duration

	mu    sync.Mutex
	slots map[string]*lockSlot
}

type lockSlot struct {
	ch   chan struct{}
	refs int
}

func newPropertyLocks(timeout time.Duration) *propertyLocks {
	return &propertyLocks{
		timeout: timeout,
		slots:   map[string]*lockSlot{},
	}
}

// Acquire blocks until the property's lock is free or the timeout passes.
// The returned release func must be called exactly once.
func (l *propertyLocks) Acquire(propertyID string) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[propertyID]
	if !ok {
		s = &lockSlot{ch: make(chan struct{}, 1)}
		l.slots[propertyID] = s
	}
	s.refs++
	l.mu.Unlock()

	timer := time.NewTimer(l.timeout)
	defer timer.Stop()

	select {
	case s.ch <- struct{}{}:
		return func() {
			<-s.ch
			l.put(propertyID, s)
		}, nil
	case <-timer.C:
		l.put(propertyID, s)
		return nil, domain.ErrPropertyBusy
	}
}

// put drops one reference and frees the slot once nobody holds or waits on
// it, so the map does not grow with every property ever seen.
func (l *propertyLocks) put(propertyID string, s *lockSlot) {
	l.mu.Lock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, propertyID)
	}
	l.mu.Unlock()
}
