package ipv4

// DefaultHostLimit caps host enumeration when the caller passes no limit.
// A /0 network has over four billion usable hosts; enumerating them all is
// never what a caller wants.
const DefaultHostLimit = 256

// HostRange lists the usable host addresses of the network containing
// address, in increasing order, at most limit entries. A limit of zero or
// less falls back to DefaultHostLimit. Networks with no usable hosts
// (/31, /32) yield an empty slice.
func HostRange(address string, prefix, limit int) ([]string, error) {
	info, err := ComputeNetworkInfo(address, prefix)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultHostLimit
	}

	count := info.UsableHosts
	if uint64(limit) < count {
		count = uint64(limit)
	}

	first := AddressToInt(info.FirstHost)
	hosts := make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		hosts = append(hosts, IntToAddress(first+uint32(i)))
	}
	return hosts, nil
}
