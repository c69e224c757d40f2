package contact

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

var idnaProfile = idna.Lookup

// NormalizeEmailDomain returns the ASCII form of the domain part of an
// email address. Internationalized domains come back punycoded so they
// can go straight into a DNS query.
func NormalizeEmailDomain(email string) (string, error) {
	email = strings.TrimSpace(email)
	_, domain, ok := strings.Cut(email, "@")
	if !ok || domain == "" {
		return "", fmt.Errorf("email %q: no domain part", email)
	}
	domain = strings.ToLower(domain)
	if !validDomainShape(domain) {
		return "", fmt.Errorf("email %q: malformed domain", email)
	}
	ascii, err := idnaProfile.ToASCII(domain)
	if err != nil {
		return "", fmt.Errorf("email %q: punycode domain: %w", email, err)
	}
	return ascii, nil
}

func validDomainShape(domain string) bool {
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, label := range strings.Split(domain, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}
