package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strconv"
)

// ErrAlreadyRunning indicates another clock already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	lockPortMin = 20000
	lockPortMax = 39999
)

// InstanceLock keeps a loopback port bound for the life of the process so a
// second launch can detect the first.
type InstanceLock struct {
	listener net.Listener
}

// AcquireInstanceLock binds the port derived from appName.
func AcquireInstanceLock(appName string) (*InstanceLock, error) {
	address := LockAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, address)
	}
	return &InstanceLock{listener: listener}, nil
}

// Release frees the lock. It is safe on a nil lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// LockAddress returns the loopback address used for appName.
func LockAddress(appName string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	span := uint32(lockPortMax - lockPortMin + 1)
	port := lockPortMin + int(hash.Sum32()%span)
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
}
