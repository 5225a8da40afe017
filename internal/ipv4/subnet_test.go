package ipv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSubnetsQuarterSplit(t *testing.T) {
	subnets, err := GenerateSubnets("192.168.0.0", 24, 4)
	require.NoError(t, err)
	require.Len(t, subnets, 4)

	wantNetworks := []string{"192.168.0.0", "192.168.0.64", "192.168.0.128", "192.168.0.192"}
	for i, s := range subnets {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, wantNetworks[i], s.Network)
		assert.Equal(t, 26, s.Prefix)
		assert.Equal(t, uint64(62), s.UsableHosts)
	}

	assert.Equal(t, "192.168.0.63", subnets[0].Broadcast)
	assert.Equal(t, "192.168.0.1", subnets[0].FirstHost)
	assert.Equal(t, "192.168.0.62", subnets[0].LastHost)
	assert.Equal(t, "192.168.0.255", subnets[3].Broadcast)
}

func TestGenerateSubnetsNonPowerOfTwo(t *testing.T) {
	// 5 subnets need 3 extra bits; only 5 of the 8 possible /27s are emitted
	subnets, err := GenerateSubnets("10.0.0.0", 24, 5)
	require.NoError(t, err)
	require.Len(t, subnets, 5)

	for _, s := range subnets {
		assert.Equal(t, 27, s.Prefix)
		assert.Equal(t, uint64(30), s.UsableHosts)
	}
	assert.Equal(t, "10.0.0.128", subnets[4].Network)
}

func TestGenerateSubnetsContiguity(t *testing.T) {
	cases := []struct {
		address  string
		baseCIDR int
		count    int
	}{
		{"192.168.0.0", 24, 4},
		{"10.0.0.0", 8, 16},
		{"172.16.0.0", 16, 7},
		{"192.168.1.37", 24, 2},
	}

	for _, tc := range cases {
		subnets, err := GenerateSubnets(tc.address, tc.baseCIDR, tc.count)
		require.NoError(t, err)
		require.NotEmpty(t, subnets)

		for i := 1; i < len(subnets); i++ {
			prev := AddressToInt(subnets[i-1].Broadcast)
			next := AddressToInt(subnets[i].Network)
			assert.Equal(t, prev+1, next,
				"%s/%d count %d: subnet %d not contiguous with %d",
				tc.address, tc.baseCIDR, tc.count, i, i+1)
			assert.Equal(t, subnets[i-1].Prefix, subnets[i].Prefix)
		}
	}
}

func TestGenerateSubnetsClampedPrefix(t *testing.T) {
	// /28 split into 8 would need /31 children; the /30 clamp leaves room
	// for only 4
	subnets, err := GenerateSubnets("192.168.1.0", 28, 8)
	require.NoError(t, err)
	require.Len(t, subnets, 4)

	for _, s := range subnets {
		assert.Equal(t, 30, s.Prefix)
		assert.Equal(t, uint64(2), s.UsableHosts)
	}
}

func TestGenerateSubnetsNarrowBase(t *testing.T) {
	// /30 cannot be split any further; a single /30 comes back
	subnets, err := GenerateSubnets("192.168.1.0", 30, 2)
	require.NoError(t, err)
	require.Len(t, subnets, 1)
	assert.Equal(t, 30, subnets[0].Prefix)

	// /32 base: the clamp makes the split impossible entirely
	subnets, err = GenerateSubnets("192.168.1.0", 32, 2)
	require.NoError(t, err)
	assert.Empty(t, subnets)
}

func TestGenerateSubnetsBaseNotOnBoundary(t *testing.T) {
	// The host part of the input address is discarded before splitting
	subnets, err := GenerateSubnets("192.168.0.77", 24, 2)
	require.NoError(t, err)
	require.Len(t, subnets, 2)
	assert.Equal(t, "192.168.0.0", subnets[0].Network)
	assert.Equal(t, "192.168.0.128", subnets[1].Network)
}

func TestGenerateSubnetsErrors(t *testing.T) {
	_, err := GenerateSubnets("192.168.0.0", 24, 1)
	assert.ErrorIs(t, err, ErrInvalidSubnetCount)

	_, err = GenerateSubnets("192.168.0.0", 24, 1025)
	assert.ErrorIs(t, err, ErrInvalidSubnetCount)

	_, err = GenerateSubnets("300.168.0.0", 24, 4)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = GenerateSubnets("192.168.0.0", 40, 4)
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}
