package platform

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFor_StableAndInRange(t *testing.T) {
	t.Parallel()

	port := PortFor("StoicFocus")
	assert.Equal(t, port, PortFor("StoicFocus"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestAcquireSingleInstance_SecondAcquireFails(t *testing.T) {
	t.Parallel()

	name := fmt.Sprintf("stoicfocus-test-%d", time.Now().UnixNano())
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("127.0.0.1:%d", PortFor(name)), guard.Address())
	assert.Equal(t, name, guard.Key())

	_, err = AcquireSingleInstance(name)
	require.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Contains(t, err.Error(), guard.Address())

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestInstanceGuard_NilSafe(t *testing.T) {
	t.Parallel()

	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
	assert.Empty(t, guard.Key())
}

func TestLockKey_ScopesToUser(t *testing.T) {
	t.Setenv("USER", "epictetus")

	key := LockKey("StoicFocus")

	assert.True(t, strings.HasPrefix(key, "StoicFocus/"), key)
}
