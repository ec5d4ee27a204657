package domain

import (
	"net/netip"
	"strconv"
	"strings"
)

// Matches reports whether address is covered by a whitelist entry.
//
// An entry without "/" must equal the address exactly (after trimming). An
// entry in CIDR form matches when both share the top prefix bits. Anything
// that fails to parse is a non-match.
func Matches(address, entry string) bool {
	address = strings.TrimSpace(address)
	entry = strings.TrimSpace(entry)
	if address == "" || entry == "" {
		return false
	}

	rangePart, bitsPart, isCIDR := strings.Cut(entry, "/")
	if !isCIDR {
		return address == entry
	}

	addr, err := netip.ParseAddr(address)
	if err != nil {
		return false
	}
	base, err := netip.ParseAddr(strings.TrimSpace(rangePart))
	if err != nil {
		return false
	}
	bits, err := strconv.Atoi(strings.TrimSpace(bitsPart))
	if err != nil {
		return false
	}

	// "::ffff:10.0.0.5" arrives from dual-stack proxies
	addr = addr.Unmap()
	base = base.Unmap()
	if addr.BitLen() != base.BitLen() {
		return false
	}

	prefix, err := base.Prefix(bits)
	if err != nil {
		return false
	}
	return prefix.Contains(addr)
}

// MatchesAny reports whether address matches at least one entry
func MatchesAny(address string, entries []string) bool {
	for _, entry := range entries {
		if Matches(address, entry) {
			return true
		}
	}
	return false
}
