// Package platform holds OS integration helpers.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"os"
	"os/user"
)

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// ErrAlreadyRunning indicates another timer already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard keeps one timer per user alive at a time.
type InstanceGuard struct {
	listener net.Listener
	key      string
	address  string
}

// LockKey scopes appName to the current user, so two accounts on one machine
// can each run a timer.
func LockKey(appName string) string {
	name := os.Getenv("USER")
	if current, err := user.Current(); err == nil && current.Username != "" {
		name = current.Username
	}
	if name == "" {
		return appName
	}
	return appName + "/" + name
}

// AcquireSingleInstance binds the loopback port derived from key.
// A second holder of the same key gets ErrAlreadyRunning.
func AcquireSingleInstance(key string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", PortFor(key))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s holds %s", ErrAlreadyRunning, key, address)
	}
	return &InstanceGuard{listener: listener, key: key, address: address}, nil
}

// Release frees the lock. Calling it twice is harmless.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// Key returns the lock key the guard was acquired with.
func (guard *InstanceGuard) Key() string {
	if guard == nil {
		return ""
	}
	return guard.key
}

// Address returns the bound loopback address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

// PortFor hashes key into the lock port range.
func PortFor(key string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	return minLockPort + int(hash.Sum32()%uint32(maxLockPort-minLockPort+1))
}
