package domain

import "fmt"

// NetworkInfo holds the full set of facts derived from an address and a
// prefix length. It is computed in one shot and never mutated afterwards.
type NetworkInfo struct {
	Address       string `json:"address"`
	Prefix        int    `json:"prefix"`
	Netmask       string `json:"netmask"`
	Wildcard      string `json:"wildcard"`
	Network       string `json:"network_address"`
	Broadcast     string `json:"broadcast_address"`
	FirstHost     string `json:"first_host"`
	LastHost      string `json:"last_host"`
	TotalHosts    uint64 `json:"total_hosts"`
	UsableHosts   uint64 `json:"usable_hosts"`
	SubnetBits    int    `json:"subnet_bits"`
	HostBits      int    `json:"host_bits"`
	AddressBinary string `json:"address_binary"`
	NetmaskBinary string `json:"netmask_binary"`
	NetworkBinary string `json:"network_binary"`
}

// CIDR returns the network in slash notation
func (n *NetworkInfo) CIDR() string {
	return fmt.Sprintf("%s/%d", n.Network, n.Prefix)
}

// Subnet is one child network produced by partitioning a parent network.
// Subnets in one batch share the same prefix and are contiguous: the
// broadcast of subnet i plus one is the network address of subnet i+1.
type Subnet struct {
	ID          int    `json:"id"`
	Network     string `json:"network_address"`
	Broadcast   string `json:"broadcast_address"`
	FirstHost   string `json:"first_host"`
	LastHost    string `json:"last_host"`
	Prefix      int    `json:"prefix"`
	UsableHosts uint64 `json:"usable_hosts"`
}

// CIDR returns the subnet in slash notation
func (s Subnet) CIDR() string {
	return fmt.Sprintf("%s/%d", s.Network, s.Prefix)
}

// PingResult is the outcome of a single simulated echo probe.
// Reachability, TTL and latency are randomized, never measured.
type PingResult struct {
	Target    string  `json:"target"`
	Seq       int     `json:"seq"`
	Reachable bool    `json:"reachable"`
	TTL       int     `json:"ttl,omitempty"`
	LatencyMs float64 `json:"latency_ms,omitempty"`
}

// PortResult is the outcome of a single simulated port probe
type PortResult struct {
	Target  string `json:"target"`
	Port    int    `json:"port"`
	Open    bool   `json:"open"`
	Service string `json:"service,omitempty"`
}
