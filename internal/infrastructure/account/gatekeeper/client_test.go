package gatekeeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/dreamsquad/fantasy-cricket/internal/platform/logging"
	"github.com/dreamsquad/fantasy-cricket/internal/platform/resilience"
	"github.com/dreamsquad/fantasy-cricket/internal/usecase"
)

type fakeDoer struct {
	status int
	body   string
	err    error
	calls  int
}

func (d *fakeDoer) DoTimeout(_ *fasthttp.Request, resp *fasthttp.Response, _ time.Duration) error {
	d.calls++
	if d.err != nil {
		return d.err
	}
	resp.SetStatusCode(d.status)
	resp.SetBodyString(d.body)
	return nil
}

func newTestClient(d doer) *Client {
	return NewClient(ClientConfig{
		HTTPClient:     d,
		BaseURL:        "http://auth.local",
		Logger:         logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1},
	})
}

func TestIntrospectResolvesPrincipal(t *testing.T) {
	d := &fakeDoer{status: fasthttp.StatusOK, body: `{"active":true,"user_id":"u-1","email":"fan@example.com"}`}
	c := newTestClient(d)

	principal, err := c.Introspect(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("Introspect: %v", err)
	}
	if principal.Email != "fan@example.com" || principal.UserID != "u-1" {
		t.Fatalf("principal = %+v", principal)
	}
}

func TestIntrospectCachesByToken(t *testing.T) {
	d := &fakeDoer{status: fasthttp.StatusOK, body: `{"active":true,"user_id":"u-1","email":"fan@example.com"}`}
	c := newTestClient(d)

	for i := 0; i < 3; i++ {
		if _, err := c.Introspect(context.Background(), "token-1"); err != nil {
			t.Fatalf("Introspect #%d: %v", i, err)
		}
	}
	if d.calls != 1 {
		t.Fatalf("upstream calls = %d, want 1", d.calls)
	}
}

func TestIntrospectRejections(t *testing.T) {
	cases := map[string]struct {
		doer    *fakeDoer
		token   string
		wantErr error
	}{
		"empty token":    {&fakeDoer{}, "", usecase.ErrUnauthorized},
		"rejected token": {&fakeDoer{status: fasthttp.StatusUnauthorized}, "bad", usecase.ErrUnauthorized},
		"inactive token": {&fakeDoer{status: fasthttp.StatusOK, body: `{"active":false}`}, "stale", usecase.ErrUnauthorized},
		"missing email":  {&fakeDoer{status: fasthttp.StatusOK, body: `{"active":true,"user_id":"u-1"}`}, "odd", usecase.ErrUnauthorized},
		"upstream error": {&fakeDoer{err: errors.New("dial timeout")}, "t", usecase.ErrDependencyUnavailable},
		"upstream 503":   {&fakeDoer{status: fasthttp.StatusServiceUnavailable}, "t2", usecase.ErrDependencyUnavailable},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(tc.doer)
			if _, err := c.Introspect(context.Background(), tc.token); !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestIntrospectOpensCircuitAfterFailures(t *testing.T) {
	d := &fakeDoer{err: errors.New("connection refused")}
	c := newTestClient(d)

	for i := 0; i < 2; i++ {
		if _, err := c.Introspect(context.Background(), "t"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("failure #%d err = %v", i, err)
		}
	}

	calls := d.calls
	if _, err := c.Introspect(context.Background(), "t"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("open-circuit err = %v", err)
	}
	if d.calls != calls {
		t.Fatal("open circuit still reached upstream")
	}
}
