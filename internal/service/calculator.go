package service

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dotX12/ipcalc/internal/domain"
	"github.com/dotX12/ipcalc/internal/ipv4"
)

// Calculator wraps the addressing engine with input parsing and logging.
// The engine itself stays pure; everything user-facing lives here.
type Calculator struct {
	logger zerolog.Logger
}

// NewCalculator creates a new calculator service
func NewCalculator(logger zerolog.Logger) *Calculator {
	return &Calculator{
		logger: logger,
	}
}

// Info computes the full network facts for an address and a prefix
// argument. The prefix may be given as "24", "/24", a dotted mask
// ("255.255.255.0") or a wildcard mask ("0.0.0.255").
func (c *Calculator) Info(address, prefixArg string) (*domain.NetworkInfo, error) {
	prefix, err := ParsePrefix(prefixArg)
	if err != nil {
		c.logger.Debug().
			Str("prefix_arg", prefixArg).
			Err(err).
			Msg("Prefix argument rejected")
		return nil, err
	}

	info, err := ipv4.ComputeNetworkInfo(address, prefix)
	if err != nil {
		c.logger.Debug().
			Str("address", address).
			Int("prefix", prefix).
			Err(err).
			Msg("Network computation rejected")
		return nil, err
	}

	c.logger.Debug().
		Str("address", address).
		Int("prefix", prefix).
		Str("network", info.Network).
		Str("broadcast", info.Broadcast).
		Uint64("usable_hosts", info.UsableHosts).
		Msg("Computed network info")

	return info, nil
}

// Split partitions the network containing address into count child subnets
func (c *Calculator) Split(address, prefixArg string, count int) ([]domain.Subnet, error) {
	prefix, err := ParsePrefix(prefixArg)
	if err != nil {
		return nil, err
	}

	subnets, err := ipv4.GenerateSubnets(address, prefix, count)
	if err != nil {
		c.logger.Debug().
			Str("address", address).
			Int("prefix", prefix).
			Int("count", count).
			Err(err).
			Msg("Subnet split rejected")
		return nil, err
	}

	if len(subnets) < count {
		c.logger.Warn().
			Int("requested", count).
			Int("produced", len(subnets)).
			Msg("Fewer subnets than requested (child prefix clamped to /30)")
	}

	c.logger.Debug().
		Str("address", address).
		Int("base_prefix", prefix).
		Int("count", len(subnets)).
		Msg("Generated subnets")

	return subnets, nil
}

// Hosts enumerates usable host addresses of a network, capped at limit
func (c *Calculator) Hosts(address, prefixArg string, limit int) ([]string, error) {
	prefix, err := ParsePrefix(prefixArg)
	if err != nil {
		return nil, err
	}

	hosts, err := ipv4.HostRange(address, prefix, limit)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("address", address).
		Int("prefix", prefix).
		Int("count", len(hosts)).
		Msg("Enumerated host range")

	return hosts, nil
}

// ParsePrefix parses a prefix argument: bare CIDR ("24"), slash CIDR
// ("/24"), dotted mask ("255.255.255.0") or wildcard mask ("0.0.0.255").
// Unlike the engine's MaskToPrefix, mask contiguity is enforced here.
func ParsePrefix(arg string) (int, error) {
	s := strings.TrimPrefix(strings.TrimSpace(arg), "/")

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 32 {
			return 0, fmt.Errorf("%w: %d", ipv4.ErrInvalidPrefix, n)
		}
		return n, nil
	}

	if ipv4.IsValidAddress(s) {
		mask := ipv4.AddressToInt(s)
		if isContiguousMask(mask) {
			return bits.OnesCount32(mask), nil
		}
		// Wildcard form: 0.0.0.255 means /24
		if isContiguousMask(^mask) {
			return bits.OnesCount32(^mask), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ipv4.ErrInvalidPrefix, arg)
}

// isContiguousMask reports whether mask is leading ones followed by zeros
func isContiguousMask(mask uint32) bool {
	return mask == ipv4.PrefixToMask(bits.OnesCount32(mask))
}
