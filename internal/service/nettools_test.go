package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotX12/ipcalc/internal/ipv4"
)

func TestPingReproducibleWithSeed(t *testing.T) {
	first := NewNetTools(zerolog.Nop(), 42)
	second := NewNetTools(zerolog.Nop(), 42)

	a, err := first.Ping("192.168.1.1", 10)
	require.NoError(t, err)
	b, err := second.Ping("192.168.1.1", 10)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPingResultBounds(t *testing.T) {
	tools := NewNetTools(zerolog.Nop(), 1)

	results, err := tools.Ping("10.0.0.1", 50)
	require.NoError(t, err)
	require.Len(t, results, 50)

	for i, r := range results {
		assert.Equal(t, i+1, r.Seq)
		assert.Equal(t, "10.0.0.1", r.Target)
		if r.Reachable {
			assert.GreaterOrEqual(t, r.TTL, 48)
			assert.Less(t, r.TTL, 128)
			assert.GreaterOrEqual(t, r.LatencyMs, 1.0)
			assert.Less(t, r.LatencyMs, 80.0)
		} else {
			assert.Zero(t, r.TTL)
			assert.Zero(t, r.LatencyMs)
		}
	}
}

func TestPingInvalidTarget(t *testing.T) {
	tools := NewNetTools(zerolog.Nop(), 1)

	_, err := tools.Ping("10.0.0", 1)
	assert.ErrorIs(t, err, ipv4.ErrInvalidAddress)
}

func TestSweep(t *testing.T) {
	tools := NewNetTools(zerolog.Nop(), 7)

	results, err := tools.Sweep("192.168.1.0", 29, 0)
	require.NoError(t, err)
	require.Len(t, results, 6)

	assert.Equal(t, "192.168.1.1", results[0].Target)
	assert.Equal(t, "192.168.1.6", results[5].Target)

	_, err = tools.Sweep("192.168.1.0", 33, 0)
	assert.ErrorIs(t, err, ipv4.ErrInvalidPrefix)
}

func TestScanPorts(t *testing.T) {
	tools := NewNetTools(zerolog.Nop(), 3)

	ports := []int{22, 80, 443, 31337}
	results, err := tools.ScanPorts("10.1.2.3", ports)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, r := range results {
		assert.Equal(t, ports[i], r.Port)
		assert.Equal(t, "10.1.2.3", r.Target)
	}
	assert.Equal(t, "ssh", results[0].Service)
	assert.Equal(t, "https", results[2].Service)
	assert.Empty(t, results[3].Service)
}

func TestScanPortsValidation(t *testing.T) {
	tools := NewNetTools(zerolog.Nop(), 3)

	_, err := tools.ScanPorts("10.1.2", []int{80})
	assert.ErrorIs(t, err, ipv4.ErrInvalidAddress)

	_, err = tools.ScanPorts("10.1.2.3", []int{0})
	assert.Error(t, err)

	_, err = tools.ScanPorts("10.1.2.3", []int{70000})
	assert.Error(t, err)
}
