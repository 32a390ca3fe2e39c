package sysinfo

import (
	"context"
	"net/netip"
	"strings"

	"github.com/shirou/gopsutil/v4/net"
)

// Networks maps each interface name to its IPv4 address. When an interface
// carries several IPv4 addresses the last one enumerated wins. Enumeration
// failure is logged and yields an empty map.
func (p *Prober) Networks(ctx context.Context) map[string]string {
	ifaces, err := p.sensors.Interfaces(ctx)
	if err != nil {
		p.log.Error("network interface enumeration failed", "error", err)
		return map[string]string{}
	}
	return siIPv4Map(ifaces)
}

// siIPv4Map keeps only IPv4 address records. Interfaces without one are
// left out of the result.
func siIPv4Map(ifaces net.InterfaceStatList) map[string]string {
	out := make(map[string]string, len(ifaces))
	for _, iface := range ifaces {
		for _, a := range iface.Addrs {
			addr, ok := siParseAddr(a.Addr)
			if !ok || !addr.Is4() {
				continue
			}
			out[iface.Name] = addr.String()
		}
	}
	return out
}

// siParseAddr accepts either a CIDR ("192.168.1.1/24") or a bare address.
func siParseAddr(s string) (netip.Addr, bool) {
	s = strings.TrimSpace(s)
	if strings.IndexByte(s, '/') >= 0 {
		prefix, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Addr{}, false
		}
		return prefix.Addr(), true
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr, true
}
