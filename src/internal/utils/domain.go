package utils

import (
	"strings"

	"github.com/miekg/dns"
)

// PatternHost extracts the host part of a list entry.
//
// Entries are either bare domains ("example.com"), sender wildcards
// ("*@example.com"), full addresses ("user@example.com") or host wildcards
// ("*.example.com"). The host is what follows the last '@', without a
// leading "*." label.
func PatternHost(pattern string) string {
	host := pattern
	if at := strings.LastIndexByte(host, '@'); at >= 0 {
		host = host[at+1:]
	}
	host = strings.TrimPrefix(host, "*.")
	return strings.TrimSuffix(host, ".")
}

// IsDomainPattern reports whether the host part of pattern is a syntactically
// valid domain name with at least two labels.
func IsDomainPattern(pattern string) bool {
	host := PatternHost(pattern)
	if host == "" || strings.ContainsAny(host, "*@ \t") {
		return false
	}
	labels, ok := dns.IsDomainName(host)
	return ok && labels >= 2
}
