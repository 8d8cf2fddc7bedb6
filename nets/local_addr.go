package nets

import (
	"net"
	"net/netip"
)

// IsLocalAddr reports whether addr, with or without a port, resolves to a
// loopback or private address. Unresolvable hosts are not local.
type IsLocalAddr func(addr string) bool

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) bool {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		if host == "localhost" {
			return true
		}
		if ip, err := netip.ParseAddr(host); err == nil {
			return isLocalIP(ip)
		}
		ips, err := net.LookupIP(host)
		if err != nil {
			return false
		}
		for _, ip := range ips {
			if ip.IsLoopback() || ip.IsPrivate() {
				return true
			}
		}
		return false
	}
}

func isLocalIP(ip netip.Addr) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified()
}
