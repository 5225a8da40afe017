package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dotX12/ipcalc/internal/domain"
)

// FormatNetworkInfo renders a NetworkInfo as an aligned text block with the
// binary column next to the dotted-decimal one.
func FormatNetworkInfo(info *domain.NetworkInfo) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Address:     %-20s %s\n", info.Address, info.AddressBinary)
	fmt.Fprintf(&sb, "Netmask:     %-20s %s\n",
		fmt.Sprintf("%s = %d", info.Netmask, info.Prefix), info.NetmaskBinary)
	fmt.Fprintf(&sb, "Wildcard:    %s\n", info.Wildcard)
	fmt.Fprintf(&sb, "Network:     %-20s %s\n", info.CIDR(), info.NetworkBinary)
	fmt.Fprintf(&sb, "Broadcast:   %s\n", info.Broadcast)
	fmt.Fprintf(&sb, "HostMin:     %s\n", info.FirstHost)
	fmt.Fprintf(&sb, "HostMax:     %s\n", info.LastHost)
	fmt.Fprintf(&sb, "Hosts/Net:   %d usable of %d\n", info.UsableHosts, info.TotalHosts)
	fmt.Fprintf(&sb, "Bits:        %d subnet, %d host\n", info.SubnetBits, info.HostBits)

	return sb.String()
}

// FormatSubnets renders a subnet batch as one line per subnet
func FormatSubnets(subnets []domain.Subnet) string {
	var sb strings.Builder

	for _, s := range subnets {
		fmt.Fprintf(&sb, "%3d. %-20s %-15s - %-15s (%d usable hosts)\n",
			s.ID, s.CIDR(), s.FirstHost, s.LastHost, s.UsableHosts)
	}

	return sb.String()
}

// FormatPingResults renders simulated echo probes in the familiar ping
// output shape, followed by a summary line.
func FormatPingResults(results []domain.PingResult) string {
	var sb strings.Builder

	received := 0
	for _, r := range results {
		if r.Reachable {
			received++
			fmt.Fprintf(&sb, "Reply from %s: seq=%d ttl=%d time=%.1f ms (simulated)\n",
				r.Target, r.Seq, r.TTL, r.LatencyMs)
		} else {
			fmt.Fprintf(&sb, "Request timed out: seq=%d (simulated)\n", r.Seq)
		}
	}

	if len(results) > 0 {
		loss := 100 * (len(results) - received) / len(results)
		fmt.Fprintf(&sb, "--- %s: %d sent, %d received, %d%% loss ---\n",
			results[0].Target, len(results), received, loss)
	}

	return sb.String()
}

// FormatPortResults renders simulated port probes, open ports first
func FormatPortResults(results []domain.PortResult) string {
	var sb strings.Builder

	open := 0
	for _, r := range results {
		if !r.Open {
			continue
		}
		open++
		service := r.Service
		if service == "" {
			service = "unknown"
		}
		fmt.Fprintf(&sb, "%5d/tcp open   %s (simulated)\n", r.Port, service)
	}

	fmt.Fprintf(&sb, "%d of %d ports open\n", open, len(results))
	return sb.String()
}

// ToJSON renders any result value as indented JSON
func ToJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
