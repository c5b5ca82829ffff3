package platform

import (
	"errors"
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInhibitor struct {
	inhibits   int
	releases   int
	inhibitErr error
	reason     string
}

func (fake *fakeInhibitor) Inhibit(reason string) error {
	if fake.inhibitErr != nil {
		return fake.inhibitErr
	}
	fake.inhibits++
	fake.reason = reason
	return nil
}

func (fake *fakeInhibitor) Release() error {
	fake.releases++
	return nil
}

func TestKeepAwakeIsIdempotent(t *testing.T) {
	fake := &fakeInhibitor{}
	keep := NewKeepAwake(fake, "desk clock")

	require.NoError(t, keep.Set(true))
	require.NoError(t, keep.Set(true))
	assert.True(t, keep.Active())
	assert.Equal(t, 1, fake.inhibits)
	assert.Equal(t, "desk clock", fake.reason)

	require.NoError(t, keep.Set(false))
	require.NoError(t, keep.Close())
	assert.False(t, keep.Active())
	assert.Equal(t, 1, fake.releases)
}

func TestKeepAwakeReportsUnsupported(t *testing.T) {
	fake := &fakeInhibitor{inhibitErr: ErrKeepAwakeUnsupported}
	keep := NewKeepAwake(fake, "desk clock")

	err := keep.Set(true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrKeepAwakeUnsupported))
	assert.False(t, keep.Active())
}

func TestLockAddressIsStable(t *testing.T) {
	first := LockAddress("MinuteClock")
	assert.Equal(t, first, LockAddress("MinuteClock"))

	host, portText, err := net.SplitHostPort(first)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)

	port, err := strconv.Atoi(portText)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, port, lockPortMin)
	assert.LessOrEqual(t, port, lockPortMax)
}

func TestInstanceLockExcludesSecondHolder(t *testing.T) {
	name := "MinuteClock-test-" + t.Name()

	lock, err := AcquireInstanceLock(name)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}

	_, err = AcquireInstanceLock(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, lock.Release())
	require.NoError(t, lock.Release())

	again, err := AcquireInstanceLock(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestNilInstanceLockRelease(t *testing.T) {
	var lock *InstanceLock
	assert.NoError(t, lock.Release())
}
