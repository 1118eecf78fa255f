package network

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/http/httptrace"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClientFactory_NewHTTPClient(t *testing.T) {
	factory := NewClientFactory(nil)
	ctx := context.Background()

	client := factory.NewHTTPClient(ctx, 5*time.Second)
	require.NotNil(t, client)
	require.Equal(t, 5*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.Nil(t, transport.Proxy)
}

func TestClientFactory_NewClientFactoryForTest(t *testing.T) {
	expected := &http.Client{}
	factory := NewClientFactoryForTest(expected)

	client := factory.NewHTTPClient(context.Background(), 5*time.Second)
	require.Same(t, expected, client)
}

func TestClientFactory_Proxy(t *testing.T) {
	factory := NewClientFactory(StaticProxy("http://proxy.internal:3128"))
	ctx := context.Background()
	require.Equal(t, "http://proxy.internal:3128", factory.GetProxyURL(ctx))

	transport := factory.NewHTTPTransport(ctx)
	require.NotNil(t, transport.Proxy)

	req := httptest.NewRequest(http.MethodGet, "https://api.vercel.com/v9/projects", nil)
	proxyURL, err := transport.Proxy(req)
	require.NoError(t, err)
	require.Equal(t, "proxy.internal:3128", proxyURL.Host)
}

func TestClientFactory_InvalidProxyIgnored(t *testing.T) {
	factory := NewClientFactory(StaticProxy("://bad"))
	transport := factory.NewHTTPTransport(context.Background())
	require.Nil(t, transport.Proxy)
}

func TestClientFactory_Roundtrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClientFactory(nil).NewHTTPClient(context.Background(), time.Second)
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestClientFactory_ReusesTransport(t *testing.T) {
	factory := NewClientFactory(nil)
	ctx := context.Background()

	require.Same(t, factory.NewHTTPTransport(ctx), factory.NewHTTPTransport(ctx))
	require.Same(t,
		factory.NewHTTPClient(ctx, time.Second).Transport,
		factory.NewHTTPClient(ctx, 2*time.Second).Transport,
	)

	proxied := NewClientFactory(StaticProxy("http://proxy.internal:3128"))
	require.NotSame(t, factory.NewHTTPTransport(ctx), proxied.NewHTTPTransport(ctx))
}

func TestClientFactory_ReusesConnections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	defer server.Close()

	factory := NewClientFactory(nil)

	var reused int
	trace := &httptrace.ClientTrace{
		GotConn: func(info httptrace.GotConnInfo) {
			if info.Reused {
				reused++
			}
		},
	}

	const calls = 10
	for i := 0; i < calls; i++ {
		ctx := httptrace.WithClientTrace(context.Background(), trace)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		resp, err := factory.NewHTTPClient(ctx, time.Second).Do(req)
		require.NoError(t, err)
		_, _ = io.Copy(io.Discard, resp.Body)
		require.NoError(t, resp.Body.Close())
	}

	require.Equal(t, calls-1, reused)
}
