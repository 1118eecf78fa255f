package domainutil_test

import (
	"testing"

	"dbc/backend/internal/domainutil"

	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationToken(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		token := domainutil.GenerateVerificationToken()
		require.Len(t, token, 20)
		require.Equal(t, "dbc-", token[:4])
		require.Regexp(t, `^dbc-[a-z0-9]{16}$`, token)
		require.True(t, domainutil.IsVerificationToken(token))
		seen[token] = struct{}{}
	}
	require.Greater(t, len(seen), 490)
}

func TestIsVerificationToken(t *testing.T) {
	require.False(t, domainutil.IsVerificationToken(""))
	require.False(t, domainutil.IsVerificationToken("dbc-short"))
	require.False(t, domainutil.IsVerificationToken("xyz-abcdefghijklmnop"))
	require.False(t, domainutil.IsVerificationToken("dbc-ABCDEFGHIJKLMNOP"))
	require.True(t, domainutil.IsVerificationToken("dbc-abcdefgh12345678"))
}

func TestGetVerificationRecordName(t *testing.T) {
	require.Equal(t, "_dbc-verify.example.com", domainutil.GetVerificationRecordName("example.com"))
	require.Equal(t, "_dbc-verify.www.example.com", domainutil.GetVerificationRecordName("www.example.com"))
}
