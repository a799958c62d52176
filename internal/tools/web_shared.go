package tools

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	webCacheTTL     = 15 * time.Minute
	webCacheEntries = 100
	webUserAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_7_2) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	webTimeout      = 30 * time.Second
)

func newWebCache() *expirable.LRU[string, string] {
	return expirable.NewLRU[string, string](webCacheEntries, nil, webCacheTTL)
}

func normalizeCacheKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// --- SSRF protection ---

var blockedHostnames = map[string]bool{
	"localhost":                true,
	"metadata.google.internal": true,
}

func isBlockedHostname(hostname string) bool {
	hostname = strings.ToLower(hostname)
	if blockedHostnames[hostname] {
		return true
	}
	return strings.HasSuffix(hostname, ".localhost") ||
		strings.HasSuffix(hostname, ".local") ||
		strings.HasSuffix(hostname, ".internal")
}

var privateCIDRs = func() []*net.IPNet {
	ranges := []string{
		"0.0.0.0/8",      // current network
		"10.0.0.0/8",     // private
		"127.0.0.0/8",    // loopback
		"169.254.0.0/16", // link-local
		"172.16.0.0/12",  // private
		"192.168.0.0/16", // private
		"100.64.0.0/10",  // carrier-grade NAT
		"::1/128",        // loopback
		"fe80::/10",      // link-local
		"fc00::/7",       // unique local
	}
	nets := make([]*net.IPNet, 0, len(ranges))
	for _, r := range ranges {
		_, cidr, err := net.ParseCIDR(r)
		if err == nil {
			nets = append(nets, cidr)
		}
	}
	return nets
}()

func isPrivateIP(ipStr string) bool {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return false
	}
	for _, cidr := range privateCIDRs {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// checkSSRF rejects URLs that target private or blocked hosts,
// resolving hostnames so DNS tricks cannot bypass the check.
func checkSSRF(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	hostname := parsed.Hostname()
	if hostname == "" {
		return fmt.Errorf("missing hostname")
	}
	if isBlockedHostname(hostname) {
		return fmt.Errorf("blocked hostname: %s", hostname)
	}

	if ip := net.ParseIP(hostname); ip != nil {
		if isPrivateIP(hostname) {
			return fmt.Errorf("private IP address not allowed: %s", hostname)
		}
		return nil
	}

	addrs, err := net.LookupHost(hostname)
	if err != nil {
		return fmt.Errorf("DNS resolution failed for %s: %w", hostname, err)
	}
	for _, addr := range addrs {
		if isPrivateIP(addr) {
			return fmt.Errorf("hostname %s resolves to private IP %s", hostname, addr)
		}
	}
	return nil
}

func truncateStr(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
