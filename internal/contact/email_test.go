package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmailDomainLowercasesAndTrims(t *testing.T) {
	domain, err := NormalizeEmailDomain("  User@Example.COM  ")
	require.NoError(t, err)
	assert.Equal(t, "example.com", domain)
}

func TestNormalizeEmailDomainPunycodesIDN(t *testing.T) {
	domain, err := NormalizeEmailDomain("info@münchen.de")
	require.NoError(t, err)
	assert.Equal(t, "xn--mnchen-3ya.de", domain)
}

func TestNormalizeEmailDomainRejectsMalformed(t *testing.T) {
	for _, email := range []string{
		"no-at-sign",
		"user@",
		"user@nodot",
		"user@-bad.com",
		"user@bad-.com",
		"user@double..dot.com",
		"",
	} {
		_, err := NormalizeEmailDomain(email)
		assert.Error(t, err, "email %q", email)
	}
}
