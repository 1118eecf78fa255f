// Package dnsresolver performs TXT lookups against explicit upstream servers.
package dnsresolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

var (
	// ErrNotFound is returned when the name does not exist (NXDOMAIN).
	ErrNotFound = errors.New("dns: name not found")
	// ErrNoData is returned when the name exists but has no TXT records.
	ErrNoData = errors.New("dns: no TXT records")
	// ErrTimeout is returned when every server timed out.
	ErrTimeout = errors.New("dns: lookup timed out")
)

var defaultServers = []string{"8.8.8.8:53", "1.1.1.1:53"}

// Config holds resolver settings.
type Config struct {
	Servers []string
	Timeout time.Duration
}

// Resolver queries servers in order until one answers. Truncated UDP
// answers are retried over TCP against the same server.
type Resolver struct {
	servers   []string
	timeout   time.Duration
	client    *dns.Client
	tcpClient *dns.Client
}

func NewResolver(cfg Config) *Resolver {
	if len(cfg.Servers) == 0 {
		cfg.Servers = defaultServers
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Resolver{
		servers:   cfg.Servers,
		timeout:   cfg.Timeout,
		client:    &dns.Client{Net: "udp", Timeout: cfg.Timeout},
		tcpClient: &dns.Client{Net: "tcp", Timeout: cfg.Timeout},
	}
}

// LookupTXT returns the TXT strings published at name. Multi-string records
// are joined into a single value.
func (r *Resolver) LookupTXT(ctx context.Context, name string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), dns.TypeTXT)
	msg.RecursionDesired = true
	msg.SetEdns0(4096, false)

	var lastErr error
	timeouts := 0
	for _, server := range r.servers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := r.exchange(ctx, r.client, msg, server)
		if err == nil && resp.Truncated {
			resp, err = r.exchange(ctx, r.tcpClient, msg, server)
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if isTimeout(err) {
				timeouts++
			}
			lastErr = fmt.Errorf("%s: %w", server, err)
			continue
		}

		switch resp.Rcode {
		case dns.RcodeSuccess:
		case dns.RcodeNameError:
			return nil, ErrNotFound
		default:
			lastErr = fmt.Errorf("%s: rcode %s", server, dns.RcodeToString[resp.Rcode])
			continue
		}

		var values []string
		for _, rr := range resp.Answer {
			if txt, ok := rr.(*dns.TXT); ok {
				values = append(values, strings.Join(txt.Txt, ""))
			}
		}
		if len(values) == 0 {
			return nil, ErrNoData
		}
		return values, nil
	}

	if timeouts == len(r.servers) {
		return nil, ErrTimeout
	}
	return nil, fmt.Errorf("lookup TXT %s: %w", name, lastErr)
}

func (r *Resolver) exchange(ctx context.Context, client *dns.Client, msg *dns.Msg, server string) (*dns.Msg, error) {
	qctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	resp, _, err := client.ExchangeContext(qctx, msg, server)
	return resp, err
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
