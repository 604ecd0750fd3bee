package service

import (
	"testing"
	"time"

	"github.com/talabi-dev/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyLocks_HeldLockTimesOut(t *testing.T) {
	locks := newPropertyLocks(20 * time.Millisecond)

	release, err := locks.Acquire("p1")
	require.NoError(t, err)

	_, err = locks.Acquire("p1")
	assert.ErrorIs(t, err, domain.ErrPropertyBusy)

	release()

	release2, err := locks.Acquire("p1")
	require.NoError(t, err)
	release2()
}

func TestPropertyLocks_DistinctPropertiesIndependent(t *testing.T) {
	locks := newPropertyLocks(20 * time.Millisecond)

	release1, err := locks.Acquire("p1")
	require.NoError(t, err)
	defer release1()

	release2, err := locks.Acquire("p2")
	require.NoError(t, err)
	release2()
}

func TestPropertyLocks_SlotsFreedAfterRelease(t *testing.T) {
	locks := newPropertyLocks(20 * time.Millisecond)

	release, err := locks.Acquire("p1")
	require.NoError(t, err)
	release()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.slots)
}
