package ipv4

import (
	"fmt"

	"github.com/dotX12/ipcalc/internal/domain"
)

// ComputeNetworkInfo derives the complete set of network facts for an
// address and a prefix length. The result is a fresh value on every call;
// identical inputs always produce identical output.
//
// No special case is applied for /31 and /32: the first/last host fields
// follow plain wraparound arithmetic and may come out inverted
// (firstHost > lastHost). RFC 3021 point-to-point semantics are
// deliberately not applied; UsableHosts is 0 for those prefixes.
func ComputeNetworkInfo(address string, prefix int) (*domain.NetworkInfo, error) {
	if !IsValidAddress(address) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	if prefix < 0 || prefix > 32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrefix, prefix)
	}

	mask := PrefixToMask(prefix)
	addr := AddressToInt(address)
	network := addr & mask
	broadcast := network | ^mask

	totalHosts := uint64(1) << (32 - prefix)
	var usableHosts uint64
	if totalHosts > 2 {
		usableHosts = totalHosts - 2
	}

	netmask := IntToAddress(mask)
	networkAddr := IntToAddress(network)

	return &domain.NetworkInfo{
		Address:       address,
		Prefix:        prefix,
		Netmask:       netmask,
		Wildcard:      IntToAddress(^mask),
		Network:       networkAddr,
		Broadcast:     IntToAddress(broadcast),
		FirstHost:     IntToAddress(network + 1),
		LastHost:      IntToAddress(broadcast - 1),
		TotalHosts:    totalHosts,
		UsableHosts:   usableHosts,
		SubnetBits:    prefix - classfulBoundary(prefix),
		HostBits:      32 - prefix,
		AddressBinary: AddressToBinary(address),
		NetmaskBinary: AddressToBinary(netmask),
		NetworkBinary: AddressToBinary(networkAddr),
	}, nil
}

// classfulBoundary returns the nearest classful octet boundary at or below
// the prefix.
func classfulBoundary(prefix int) int {
	switch {
	case prefix >= 24:
		return 24
	case prefix >= 16:
		return 16
	case prefix >= 8:
		return 8
	default:
		return 0
	}
}
