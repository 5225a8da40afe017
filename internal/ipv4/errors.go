package ipv4

import "errors"

var (
	// ErrInvalidAddress is returned when text is not four dot-separated
	// decimal octets in [0,255].
	ErrInvalidAddress = errors.New("invalid IPv4 address")

	// ErrInvalidPrefix is returned when a prefix length is outside [0,32]
	ErrInvalidPrefix = errors.New("prefix length out of range")

	// ErrInvalidSubnetCount is returned when a requested subnet count is
	// outside [2,1024].
	ErrInvalidSubnetCount = errors.New("subnet count out of range")
)
