// Package clientip resolves the client address of a request.
//
// X-Forwarded-For is client-controlled, so it is honoured only when the
// direct peer is a configured trusted proxy (TRUSTED_PROXIES). The header is
// then walked right to left and the first address that is not itself a
// trusted proxy is the client.
package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"

	"github.com/shashiranjanraj/orderdesk/config"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
)

const forwardedFor = "X-Forwarded-For"

// Resolver extracts client IPs given a set of trusted proxies.
type Resolver struct {
	trusted []netip.Prefix
}

// New builds a Resolver. Entries are single IPs or CIDRs; invalid
// entries are logged and skipped.
func New(proxies []string) *Resolver {
	r := &Resolver{}
	for _, p := range proxies {
		if prefix, err := netip.ParsePrefix(p); err == nil {
			r.trusted = append(r.trusted, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(p)
		if err != nil {
			logger.Warn("clientip: ignoring invalid trusted proxy", "value", p)
			continue
		}
		addr = addr.Unmap()
		r.trusted = append(r.trusted, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return r
}

var fromConfig = sync.OnceValue(func() *Resolver {
	return New(config.TrustedProxies())
})

// FromConfig returns the process-wide Resolver built from TRUSTED_PROXIES.
func FromConfig() *Resolver { return fromConfig() }

// IP returns the client IP of req.
func (r *Resolver) IP(req *http.Request) string {
	peer := peerIP(req.RemoteAddr)
	if !r.isTrusted(peer) {
		return peer
	}

	hops := strings.Split(req.Header.Get(forwardedFor), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !r.isTrusted(hop) {
			return hop
		}
	}
	return peer
}

func (r *Resolver) isTrusted(ip string) bool {
	if len(r.trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range r.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func peerIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
