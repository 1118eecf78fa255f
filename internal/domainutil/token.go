package domainutil

import (
	"math/rand/v2"
	"strings"
)

const (
	TokenPrefix        = "dbc-"
	RecordNamePrefix   = "_dbc-verify."
	tokenRandomLength  = 16
	tokenAlphabet      = "abcdefghijklmnopqrstuvwxyz0123456789"
	verificationLength = len(TokenPrefix) + tokenRandomLength
)

// GenerateVerificationToken returns "dbc-" followed by 16 random [a-z0-9]
// characters. The token proves DNS control, so a non-cryptographic source
// is enough.
func GenerateVerificationToken() string {
	var b strings.Builder
	b.Grow(verificationLength)
	b.WriteString(TokenPrefix)
	for i := 0; i < tokenRandomLength; i++ {
		b.WriteByte(tokenAlphabet[rand.IntN(len(tokenAlphabet))])
	}
	return b.String()
}

// IsVerificationToken reports whether s has the shape of a generated token.
func IsVerificationToken(s string) bool {
	if len(s) != verificationLength || !strings.HasPrefix(s, TokenPrefix) {
		return false
	}
	for i := len(TokenPrefix); i < len(s); i++ {
		if !strings.ContainsRune(tokenAlphabet, rune(s[i])) {
			return false
		}
	}
	return true
}

// GetVerificationRecordName returns the TXT record name for domain.
func GetVerificationRecordName(domain string) string {
	return RecordNamePrefix + domain
}
