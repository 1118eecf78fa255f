// Package vercel is a minimal client for the Vercel project domains API.
package vercel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"dbc/backend/internal/config"
	"dbc/backend/pkg/logger"
	"dbc/backend/pkg/network"
)

const (
	maxErrorBody = 64 << 10

	CodeDomainInUse        = "domain_already_in_use"
	CodeDomainTaken        = "domain_taken"
	CodeVerificationFailed = "verification_failed"
)

// ErrNotConfigured is returned when no token or project is set.
var ErrNotConfigured = errors.New("vercel: client not configured")

// Verification is a challenge the domain owner has to publish.
type Verification struct {
	Type   string `json:"type"`
	Domain string `json:"domain"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// Domain is a domain attached to the project.
type Domain struct {
	Name         string         `json:"name"`
	ApexName     string         `json:"apexName"`
	ProjectID    string         `json:"projectId"`
	Verified     bool           `json:"verified"`
	Verification []Verification `json:"verification,omitempty"`
	CreatedAt    int64          `json:"createdAt,omitempty"`
	UpdatedAt    int64          `json:"updatedAt,omitempty"`
}

// DomainConfig is the DNS configuration state reported for a domain.
type DomainConfig struct {
	Misconfigured      bool     `json:"misconfigured"`
	ConfiguredBy       string   `json:"configuredBy,omitempty"`
	AcceptedChallenges []string `json:"acceptedChallenges,omitempty"`
}

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("vercel: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("vercel: %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsDomainInUse reports whether the domain is attached to another project.
func IsDomainInUse(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusConflict || apiErr.Code == CodeDomainInUse || apiErr.Code == CodeDomainTaken
}

// IsVerificationPending reports whether a verify call failed only because
// the challenge records are not visible yet.
func IsVerificationPending(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest && apiErr.Code == CodeVerificationFailed
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls the project domains endpoints. Calls are paced by a token
// bucket shared by every caller of the same Client.
type Client struct {
	cfg           config.VercelConfig
	clientFactory *network.ClientFactory
	limiter       *rate.Limiter
}

func NewClient(cfg config.VercelConfig, clientFactory *network.ClientFactory) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.vercel.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if clientFactory == nil {
		clientFactory = network.NewClientFactory(nil)
	}
	return &Client{
		cfg:           cfg,
		clientFactory: clientFactory,
		limiter:       rate.NewLimiter(limit, 1),
	}
}

// Configured reports whether a token and project are set.
func (c *Client) Configured() bool {
	return c.cfg.Token != "" && c.cfg.ProjectID != ""
}

func (c *Client) AddDomain(ctx context.Context, name string) (*Domain, error) {
	var out Domain
	path := "/v10/projects/" + url.PathEscape(c.cfg.ProjectID) + "/domains"
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"name": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveDomain(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, c.projectDomainPath(name), nil, nil)
}

func (c *Client) GetDomain(ctx context.Context, name string) (*Domain, error) {
	var out Domain
	if err := c.do(ctx, http.MethodGet, c.projectDomainPath(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyDomain asks the API to re-check the domain's challenges.
func (c *Client) VerifyDomain(ctx context.Context, name string) (*Domain, error) {
	var out Domain
	if err := c.do(ctx, http.MethodPost, c.projectDomainPath(name)+"/verify", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDomainConfig(ctx context.Context, name string) (*DomainConfig, error) {
	var out DomainConfig
	if err := c.do(ctx, http.MethodGet, "/v6/domains/"+url.PathEscape(name)+"/config", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) projectDomainPath(name string) string {
	return "/v9/projects/" + url.PathEscape(c.cfg.ProjectID) + "/domains/" + url.PathEscape(name)
}

func (c *Client) endpoint(path string) string {
	u := c.cfg.BaseURL + path
	if c.cfg.TeamID != "" {
		u += "?teamId=" + url.QueryEscape(c.cfg.TeamID)
	}
	return u
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.clientFactory.NewHTTPClient(ctx, c.cfg.Timeout).Do(req)
	if err != nil {
		return fmt.Errorf("vercel %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	logger.Debug("vercel request", "module", "vercel", "action", method, "resource", path, "status_code", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var env errorEnvelope
	if err := json.Unmarshal(data, &env); err == nil && (env.Error.Code != "" || env.Error.Message != "") {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
