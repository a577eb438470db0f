package ports

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateSkipsExcluded(t *testing.T) {
	port, err := Allocate(19000, 19005, map[int]bool{19000: true, 19001: true})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, port, 19002)
	assert.LessOrEqual(t, port, 19005)
	assert.True(t, Free(port))
}

func TestAllocateLowestWins(t *testing.T) {
	first, err := Allocate(19100, 19110, nil)
	require.NoError(t, err)

	again, err := Allocate(19100, 19110, nil)
	require.NoError(t, err)
	assert.Equal(t, first, again, "allocation is deterministic when nothing binds")
}

func TestAllocateSkipsBoundPort(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:19200")
	require.NoError(t, err)
	defer l.Close()

	port, err := Allocate(19200, 19205, nil)
	require.NoError(t, err)
	assert.NotEqual(t, 19200, port)
}

func TestAllocateExhausted(t *testing.T) {
	_, err := Allocate(19300, 19301, map[int]bool{19300: true, 19301: true})
	require.ErrorIs(t, err, ErrNoFreePort)
}

func TestAllocateEmptyRange(t *testing.T) {
	_, err := Allocate(19400, 19399, nil)
	require.ErrorIs(t, err, ErrNoFreePort)
}
