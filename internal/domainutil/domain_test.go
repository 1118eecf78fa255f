package domainutil_test

import (
	"strings"
	"testing"

	"dbc/backend/internal/domainutil"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"example.com", "example.com"},
		{"  Example.COM  ", "example.com"},
		{"https://example.com", "example.com"},
		{"HTTP://www.Example.com/path?q=1#frag", "www.example.com"},
		{"example.com:8080", "example.com"},
		{"example.com.", "example.com"},
		{"example.com...", "example.com"},
		{"example.com?x=y", "example.com"},
		{"example.com#top", "example.com"},
		{"http:// example.com", "example.com"},
		{"example.com. .", "example.com"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.want, domainutil.NormalizeDomain(tc.input))
		})
	}
}

func TestNormalizeDomain_Idempotent(t *testing.T) {
	inputs := []string{
		"example.com",
		" HTTPS://Shop.Example.com:443/a/b ",
		"https://https://example.com",
		"http:// example.com",
		"example.com. .",
		"ftp://files.example.com",
		"a..b.com",
		"  ",
		"sub.domain.co.uk.",
	}
	for _, in := range inputs {
		once := domainutil.NormalizeDomain(in)
		require.Equal(t, once, domainutil.NormalizeDomain(once), "input %q", in)
	}
}

func TestValidateDomainFormat(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		valid      bool
		message    string
		normalized string
	}{
		{name: "plain", input: "example.com", valid: true, normalized: "example.com"},
		{name: "subdomain", input: "www.example.com", valid: true, normalized: "www.example.com"},
		{name: "uppercase and trailing dot", input: "Shop.Example.COM.", valid: true, normalized: "shop.example.com"},
		{name: "with port", input: "example.com:3000", valid: true, normalized: "example.com"},
		{name: "min length", input: "a.co", valid: true, normalized: "a.co"},
		{name: "hyphen inside label", input: "my-site.example.com", valid: true, normalized: "my-site.example.com"},
		{name: "empty", input: "", message: domainutil.MsgDomainRequired},
		{name: "whitespace", input: "   ", message: domainutil.MsgDomainRequired},
		{name: "only dots", input: "...", message: domainutil.MsgDomainRequired},
		{name: "https", input: "https://example.com", message: domainutil.MsgIncludesProtocol, normalized: "example.com"},
		{name: "http with path", input: "http://example.com/about", message: domainutil.MsgIncludesProtocol, normalized: "example.com"},
		{name: "space", input: "exa mple.com", message: domainutil.MsgContainsSpaces, normalized: "exa mple.com"},
		{name: "too short", input: "a.c", message: domainutil.MsgInvalidLength, normalized: "a.c"},
		{name: "no dot", input: "localhostname", message: domainutil.MsgInvalidFormat, normalized: "localhostname"},
		{name: "underscore", input: "bad_host.com", message: domainutil.MsgInvalidFormat, normalized: "bad_host.com"},
		{name: "leading hyphen", input: "-foo.com", message: domainutil.MsgInvalidFormat, normalized: "-foo.com"},
		{name: "trailing hyphen label", input: "foo-.com", message: domainutil.MsgInvalidFormat, normalized: "foo-.com"},
		{name: "consecutive dots", input: "foo..bar.com", message: domainutil.MsgInvalidFormat, normalized: "foo..bar.com"},
		{name: "blocked suffix", input: "sub.localhost", message: domainutil.MsgBlockedDomain, normalized: "sub.localhost"},
		{name: "vercel app", input: "my-site.vercel.app", message: domainutil.MsgBlockedDomain, normalized: "my-site.vercel.app"},
		{name: "supabase", input: "supabase.co", message: domainutil.MsgBlockedDomain, normalized: "supabase.co"},
		{name: "platform", input: "john." + domainutil.PlatformDomain, message: domainutil.MsgBlockedDomain, normalized: "john." + domainutil.PlatformDomain},
		{name: "suffix lookalike allowed", input: "notvercel.app.io", valid: true, normalized: "notvercel.app.io"},
		{name: "blocked tld test", input: "mysite.test", message: domainutil.MsgBlockedTLD, normalized: "mysite.test"},
		{name: "blocked tld local", input: "printer.local", message: domainutil.MsgBlockedTLD, normalized: "printer.local"},
		{name: "blocked tld example", input: "foo.example", message: domainutil.MsgBlockedTLD, normalized: "foo.example"},
		{name: "label too long", input: strings.Repeat("a", 64) + ".com", message: domainutil.MsgLabelTooLong, normalized: strings.Repeat("a", 64) + ".com"},
		{name: "too long", input: strings.Repeat("a.", 127) + "com", message: domainutil.MsgInvalidLength, normalized: strings.Repeat("a.", 127) + "com"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domainutil.ValidateDomainFormat(tc.input)
			require.Equal(t, tc.valid, got.Valid)
			require.Equal(t, tc.message, got.Message)
			require.Equal(t, tc.normalized, got.Normalized)
		})
	}
}

func TestValidateDomainFormat_ProtocolAlwaysRejected(t *testing.T) {
	inputs := []string{
		"https://example.com",
		"http://shop.example.com/",
		"ftp://example.com",
		"example.com/://",
		"HTTPS://EXAMPLE.COM",
		"ws://socket.example.com",
	}
	for _, in := range inputs {
		got := domainutil.ValidateDomainFormat(in)
		require.False(t, got.Valid, "input %q", in)
		require.Equal(t, domainutil.MsgIncludesProtocol, got.Message, "input %q", in)
	}
}

func TestValidator_CustomPlatformDomain(t *testing.T) {
	v := domainutil.NewValidator("Cards.Example.org")

	got := v.Validate("me.cards.example.org")
	require.False(t, got.Valid)
	require.Equal(t, domainutil.MsgBlockedDomain, got.Message)

	got = v.Validate("me." + domainutil.PlatformDomain)
	require.True(t, got.Valid, "only the configured platform domain is blocked")

	got = v.Validate("vercel.com")
	require.False(t, got.Valid)
}

func TestApexHelpers(t *testing.T) {
	apex, err := domainutil.ApexDomain("shop.example.co.uk")
	require.NoError(t, err)
	require.Equal(t, "example.co.uk", apex)

	require.True(t, domainutil.IsApex("example.com"))
	require.False(t, domainutil.IsApex("www.example.com"))

	require.Equal(t, "@", domainutil.SubdomainLabel("example.com"))
	require.Equal(t, "www", domainutil.SubdomainLabel("www.example.com"))
	require.Equal(t, "a.b", domainutil.SubdomainLabel("a.b.example.com"))
}
