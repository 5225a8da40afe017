package service

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/dotX12/ipcalc/internal/domain"
	"github.com/dotX12/ipcalc/internal/ipv4"
)

// Probe outcome tuning. Reachability and latency are drawn from these, not
// measured; this service never opens a socket.
const (
	pingReachableChance = 0.85
	pingMinLatencyMs    = 1.0
	pingMaxLatencyMs    = 80.0
	wellKnownOpenChance = 0.35
	obscureOpenChance   = 0.05
)

// wellKnownServices maps the ports the scanner weights as likely open
var wellKnownServices = map[int]string{
	21:   "ftp",
	22:   "ssh",
	23:   "telnet",
	25:   "smtp",
	53:   "dns",
	80:   "http",
	110:  "pop3",
	143:  "imap",
	443:  "https",
	445:  "smb",
	3306: "mysql",
	3389: "rdp",
	5432: "postgresql",
	8080: "http-alt",
}

// NetTools simulates ping and port-scan behavior with randomized outcomes.
// Targets are prepared through the addressing engine; no real network I/O
// ever happens here.
type NetTools struct {
	logger zerolog.Logger
	rng    *rand.Rand
}

// NewNetTools creates a new simulated network-tools service. The seed fixes
// the probe outcomes, which keeps tests reproducible.
func NewNetTools(logger zerolog.Logger, seed int64) *NetTools {
	return &NetTools{
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Ping emits count simulated echo probes against a single address
func (t *NetTools) Ping(address string, count int) ([]domain.PingResult, error) {
	if !ipv4.IsValidAddress(address) {
		return nil, fmt.Errorf("%w: %q", ipv4.ErrInvalidAddress, address)
	}
	if count < 1 {
		count = 1
	}

	t.logger.Debug().
		Str("target", address).
		Int("count", count).
		Msg("Starting simulated ping")

	results := make([]domain.PingResult, 0, count)
	for seq := 1; seq <= count; seq++ {
		results = append(results, t.probe(address, seq))
	}

	return results, nil
}

// Sweep pings every usable host of a network once, capped at limit hosts
func (t *NetTools) Sweep(address string, prefix, limit int) ([]domain.PingResult, error) {
	hosts, err := ipv4.HostRange(address, prefix, limit)
	if err != nil {
		return nil, err
	}

	t.logger.Debug().
		Str("network", address).
		Int("prefix", prefix).
		Int("hosts", len(hosts)).
		Msg("Starting simulated ping sweep")

	results := make([]domain.PingResult, 0, len(hosts))
	for _, host := range hosts {
		results = append(results, t.probe(host, 1))
	}

	return results, nil
}

// ScanPorts emits one simulated probe per port against an address.
// Well-known ports come up open far more often than obscure ones.
func (t *NetTools) ScanPorts(address string, ports []int) ([]domain.PortResult, error) {
	if !ipv4.IsValidAddress(address) {
		return nil, fmt.Errorf("%w: %q", ipv4.ErrInvalidAddress, address)
	}
	for _, port := range ports {
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("port out of range: %d", port)
		}
	}

	t.logger.Debug().
		Str("target", address).
		Int("ports", len(ports)).
		Msg("Starting simulated port scan")

	results := make([]domain.PortResult, 0, len(ports))
	for _, port := range ports {
		service, wellKnown := wellKnownServices[port]
		chance := obscureOpenChance
		if wellKnown {
			chance = wellKnownOpenChance
		}

		results = append(results, domain.PortResult{
			Target:  address,
			Port:    port,
			Open:    t.rng.Float64() < chance,
			Service: service,
		})
	}

	return results, nil
}

// probe draws one randomized echo outcome
func (t *NetTools) probe(target string, seq int) domain.PingResult {
	result := domain.PingResult{
		Target:    target,
		Seq:       seq,
		Reachable: t.rng.Float64() < pingReachableChance,
	}

	if result.Reachable {
		result.TTL = 48 + t.rng.Intn(80)
		result.LatencyMs = pingMinLatencyMs + t.rng.Float64()*(pingMaxLatencyMs-pingMinLatencyMs)
	}

	return result
}
