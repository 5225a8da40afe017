package ipv4

import (
	"fmt"
	"math/bits"

	"github.com/dotX12/ipcalc/internal/domain"
)

// Subnet count bounds accepted by GenerateSubnets
const (
	MinSubnetCount = 2
	MaxSubnetCount = 1024
)

// maxSubnetPrefix caps the child prefix so every subnet keeps at least two
// usable hosts.
const maxSubnetPrefix = 30

// GenerateSubnets partitions the network containing address into equally
// sized child subnets. The child prefix is the smallest extension of
// baseCIDR that fits count subnets, clamped to /30; when the clamp reduces
// the achievable count below the request, fewer subnets are returned
// rather than an error. Children are contiguous, non-overlapping and
// ordered by increasing address, with 1-based IDs.
func GenerateSubnets(address string, baseCIDR, count int) ([]domain.Subnet, error) {
	if count < MinSubnetCount || count > MaxSubnetCount {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSubnetCount, count)
	}

	info, err := ComputeNetworkInfo(address, baseCIDR)
	if err != nil {
		return nil, err
	}

	bitsNeeded := bits.Len(uint(count - 1)) // ceil(log2(count))
	newCIDR := baseCIDR + bitsNeeded
	if newCIDR > maxSubnetPrefix {
		newCIDR = maxSubnetPrefix
	}

	// A base network narrower than /30 cannot be split at all
	actual := 0
	if newCIDR >= baseCIDR {
		actual = 1 << (newCIDR - baseCIDR)
	}
	if actual > count {
		actual = count
	}

	networkInt := AddressToInt(info.Network)
	size := uint32(1) << (32 - newCIDR)

	subnets := make([]domain.Subnet, 0, actual)
	for i := 0; i < actual; i++ {
		network := networkInt + uint32(i)*size
		broadcast := network + size - 1
		subnets = append(subnets, domain.Subnet{
			ID:          i + 1,
			Network:     IntToAddress(network),
			Broadcast:   IntToAddress(broadcast),
			FirstHost:   IntToAddress(network + 1),
			LastHost:    IntToAddress(broadcast - 1),
			Prefix:      newCIDR,
			UsableHosts: uint64(size) - 2,
		})
	}

	return subnets, nil
}
