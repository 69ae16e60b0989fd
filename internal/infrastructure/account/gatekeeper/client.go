// Package gatekeeper talks to the identity provider's token introspection
// endpoint and resolves bearer tokens to principals.
package gatekeeper

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/user"
	"github.com/dreamsquad/fantasy-cricket/internal/platform/logging"
	"github.com/dreamsquad/fantasy-cricket/internal/platform/resilience"
	"github.com/dreamsquad/fantasy-cricket/internal/usecase"
)

const (
	defaultTimeout       = 3 * time.Second
	defaultCacheTTL      = 30 * time.Second
	defaultCacheCapacity = 4096
)

var errGatekeeperTransient = crerr.New("gatekeeper transient failure")

type doer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

type ClientConfig struct {
	HTTPClient     doer
	BaseURL        string
	IntrospectPath string
	Timeout        time.Duration
	CacheTTL       time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     doer
	introspectURL  string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	cache          *principalCache
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	path := strings.TrimSpace(cfg.IntrospectPath)
	if path == "" {
		path = "/v1/auth/introspect"
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		introspectURL:  buildURL(cfg.BaseURL, path),
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		cache:          newPrincipalCache(cacheTTL, defaultCacheCapacity),
	}
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Introspect resolves a bearer token to a principal. Valid principals are
// cached briefly and concurrent lookups of the same token share one
// upstream call.
func (c *Client) Introspect(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: bearer token is required", usecase.ErrUnauthorized)
	}

	key := hashToken(token)
	if principal, ok := c.cache.Get(key); ok {
		return principal, nil
	}

	v, err, _ := c.flight.Do(key, func() (any, error) {
		return c.introspect(ctx, token)
	})
	if err != nil {
		return user.Principal{}, err
	}

	principal, _ := v.(user.Principal)
	c.cache.Set(key, principal)

	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			return user.Principal{}, fmt.Errorf("%w: auth provider circuit open", usecase.ErrDependencyUnavailable)
		}
	}

	principal, err := c.call(ctx, token)
	if c.circuitEnabled {
		if isCircuitFailure(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		if isCircuitFailure(err) {
			return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		return user.Principal{}, err
	}

	return principal, nil
}

func (c *Client) call(ctx context.Context, token string) (user.Principal, error) {
	if err := ctx.Err(); err != nil {
		return user.Principal{}, crerr.Wrap(errGatekeeperTransient, err.Error())
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.introspectURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
	req.Header.SetContentType("application/json")

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return user.Principal{}, crerr.Wrapf(errGatekeeperTransient, "introspect request: %v", err)
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusUnauthorized || status == fasthttp.StatusForbidden:
		return user.Principal{}, fmt.Errorf("%w: token rejected by auth provider", usecase.ErrUnauthorized)
	case status >= 500:
		return user.Principal{}, crerr.Wrapf(errGatekeeperTransient, "introspect status %d", status)
	case status != fasthttp.StatusOK:
		return user.Principal{}, fmt.Errorf("%w: unexpected introspect status %d", usecase.ErrUnauthorized, status)
	}

	var payload introspectResponse
	if err := sonic.Unmarshal(resp.Body(), &payload); err != nil {
		return user.Principal{}, crerr.Wrapf(errGatekeeperTransient, "decode introspect response: %v", err)
	}
	if !payload.Active {
		return user.Principal{}, fmt.Errorf("%w: token is not active", usecase.ErrUnauthorized)
	}

	principal := user.Principal{UserID: payload.UserID, Email: payload.Email}
	if err := principal.Validate(); err != nil {
		return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrUnauthorized, err)
	}

	return principal, nil
}
