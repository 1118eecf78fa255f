// Package network builds outbound HTTP clients with a shared proxy setting.
package network

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// ProxyProvider provides proxy configuration.
type ProxyProvider interface {
	GetProxyURL(ctx context.Context) string
}

// StaticProxy is a ProxyProvider with a fixed URL. Empty means direct.
type StaticProxy string

func (p StaticProxy) GetProxyURL(context.Context) string {
	return string(p)
}

// ClientFactory creates HTTP clients with proxy configuration. Clients built
// for the same proxy URL share one transport and its connection pool.
type ClientFactory struct {
	proxyProvider  ProxyProvider
	testHTTPClient *http.Client

	mu         sync.Mutex
	transports map[string]*http.Transport // keyed by proxy URL
}

// NewClientFactory creates a new client factory. A nil provider means direct
// connections.
func NewClientFactory(proxyProvider ProxyProvider) *ClientFactory {
	if proxyProvider == nil {
		proxyProvider = StaticProxy("")
	}
	return &ClientFactory{
		proxyProvider: proxyProvider,
		transports:    make(map[string]*http.Transport),
	}
}

// NewClientFactoryForTest creates a client factory that always returns client.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{
		proxyProvider:  StaticProxy(""),
		testHTTPClient: client,
	}
}

// NewHTTPClient creates an http.Client with proxy configuration.
func (f *ClientFactory) NewHTTPClient(ctx context.Context, timeout time.Duration) *http.Client {
	if f.testHTTPClient != nil {
		return f.testHTTPClient
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: f.NewHTTPTransport(ctx),
	}
}

// NewHTTPTransport returns the http.Transport for the current proxy URL,
// creating it on first use.
func (f *ClientFactory) NewHTTPTransport(ctx context.Context) *http.Transport {
	proxyURL := f.proxyProvider.GetProxyURL(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if transport, ok := f.transports[proxyURL]; ok {
		return transport
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	if proxyURL != "" {
		if parsed, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(parsed)
		}
	}
	if f.transports == nil {
		f.transports = make(map[string]*http.Transport)
	}
	f.transports[proxyURL] = transport
	return transport
}

// GetProxyURL returns the current proxy URL.
func (f *ClientFactory) GetProxyURL(ctx context.Context) string {
	return f.proxyProvider.GetProxyURL(ctx)
}
