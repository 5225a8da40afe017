// Package ipv4 implements the IPv4 addressing engine: conversions between
// dotted-decimal text, 32-bit integers, prefix lengths, masks and binary
// renderings, plus network derivation and subnet partitioning built on top
// of them. Every function is pure; all arithmetic is unsigned uint32, so
// addresses at or above 128.0.0.0 never pick up a sign bit.
package ipv4

import (
	"fmt"
	"math/bits"
	"strings"
)

// IsValidAddress reports whether s is exactly four dot-separated decimal
// octets, each in [0,255], with no extra characters. Malformed input
// returns false rather than an error.
func IsValidAddress(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		if len(part) == 0 || len(part) > 3 {
			return false
		}
		n := 0
		for _, c := range part {
			if c < '0' || c > '9' {
				return false
			}
			n = n*10 + int(c-'0')
		}
		if n > 255 {
			return false
		}
	}
	return true
}

// AddressToInt packs a dotted-decimal address into a uint32, most
// significant octet first. The caller must have validated s; the result
// for malformed input is unspecified.
func AddressToInt(s string) uint32 {
	var v uint32
	for _, part := range strings.Split(s, ".") {
		n := 0
		for _, c := range part {
			if c < '0' || c > '9' {
				break
			}
			n = n*10 + int(c-'0')
		}
		v = v<<8 | uint32(n&0xFF)
	}
	return v
}

// IntToAddress renders a uint32 as dotted-decimal. Total inverse of
// AddressToInt for any 32-bit value.
func IntToAddress(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// PrefixToMask derives the subnet mask for a prefix length. Prefix 0 is
// special-cased: a 32-bit shift by 32 is undefined, and the mask is all
// zeros by definition.
func PrefixToMask(prefix int) uint32 {
	if prefix <= 0 {
		return 0
	}
	if prefix >= 32 {
		return 0xFFFFFFFF
	}
	return ^uint32(0) << (32 - prefix)
}

// MaskToPrefix counts the set bits of a dotted-decimal mask. A valid mask
// is contiguous ones followed by zeros, so the population count equals the
// prefix length; contiguity is not validated here.
func MaskToPrefix(mask string) int {
	return bits.OnesCount32(AddressToInt(mask))
}

// ToBinaryOctet renders v as a zero-padded binary string of the given width
func ToBinaryOctet(v uint32, width int) string {
	return fmt.Sprintf("%0*b", width, v)
}

// AddressToBinary renders a dotted-decimal address as four 8-bit binary
// groups joined by dots, e.g. "11000000.10101000.00000001.00001010".
func AddressToBinary(s string) string {
	v := AddressToInt(s)
	groups := []string{
		ToBinaryOctet(v>>24&0xFF, 8),
		ToBinaryOctet(v>>16&0xFF, 8),
		ToBinaryOctet(v>>8&0xFF, 8),
		ToBinaryOctet(v&0xFF, 8),
	}
	return strings.Join(groups, ".")
}
