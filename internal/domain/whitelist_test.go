package domain

import (
	"fmt"
	"testing"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		address string
		entry   string
		want    bool
	}{
		{"exact bare match", "203.0.113.7", "203.0.113.7", true},
		{"bare mismatch", "203.0.113.7", "203.0.113.8", false},
		{"whitespace around address", " 10.0.0.5 ", "10.0.0.5", true},
		{"whitespace around entry", "10.0.0.5", "\t10.0.0.5  ", true},
		{"cidr contains", "10.0.0.5", "10.0.0.0/24", true},
		{"cidr excludes", "10.0.1.5", "10.0.0.0/24", false},
		{"cidr with inner whitespace", "10.0.0.5", "10.0.0.0 / 24", true},
		{"non canonical range", "10.0.0.200", "10.0.0.77/24", true},
		{"slash zero matches everything", "192.168.1.1", "0.0.0.0/0", true},
		{"slash 32 exact", "192.168.1.1", "192.168.1.1/32", true},
		{"slash 32 neighbour", "192.168.1.2", "192.168.1.1/32", false},
		{"slash 16", "172.16.200.3", "172.16.0.0/16", true},
		{"not an ip", "not-an-ip", "10.0.0.0/24", false},
		{"empty address", "", "10.0.0.0/24", false},
		{"empty entry", "10.0.0.5", "", false},
		{"non numeric octet in range", "10.0.0.5", "10.0.x.0/24", false},
		{"non numeric prefix", "10.0.0.5", "10.0.0.0/abc", false},
		{"prefix too large", "10.0.0.5", "10.0.0.0/33", false},
		{"negative prefix", "10.0.0.5", "10.0.0.0/-1", false},
		{"missing prefix", "10.0.0.5", "10.0.0.0/", false},
		{"octet out of range", "10.0.0.5", "10.0.0.256/24", false},
		{"mapped ipv6 client", "::ffff:10.0.0.5", "10.0.0.0/24", true},
		{"ipv6 prefix", "2001:db8::1", "2001:db8::/32", true},
		{"mixed families", "10.0.0.5", "2001:db8::/32", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.address, tt.entry); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.address, tt.entry, got, tt.want)
			}
		})
	}
}

func TestMatchesSlash32AlwaysMatchesItself(t *testing.T) {
	for _, a := range []string{"0.0.0.0", "1.2.3.4", "127.0.0.1", "255.255.255.255", "100.64.12.9"} {
		if !Matches(a, a+"/32") {
			t.Errorf("Expected %s to match %s/32", a, a)
		}
	}
}

func TestMatchesBareEntryRequiresEquality(t *testing.T) {
	for i := 0; i < 16; i++ {
		a := fmt.Sprintf("10.1.%d.%d", i, i+1)
		b := fmt.Sprintf("10.1.%d.%d", i, i+2)
		if Matches(a, b) {
			t.Errorf("Expected %s not to match bare entry %s", a, b)
		}
	}
}

func TestMatchesAny(t *testing.T) {
	// Arrange
	whitelist := []string{"garbage", "192.168.0.0/16", "  ", "203.0.113.7"}

	// Act & Assert
	if !MatchesAny("192.168.44.2", whitelist) {
		t.Errorf("Expected 192.168.44.2 to be whitelisted")
	}
	if !MatchesAny("203.0.113.7", whitelist) {
		t.Errorf("Expected 203.0.113.7 to be whitelisted")
	}
	if MatchesAny("8.8.8.8", whitelist) {
		t.Errorf("Expected 8.8.8.8 not to be whitelisted")
	}
	if MatchesAny("8.8.8.8", nil) {
		t.Errorf("Expected empty whitelist to match nothing")
	}
}
