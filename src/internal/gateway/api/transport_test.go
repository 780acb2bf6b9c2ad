package api

import (
	"context"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	httpError "rider-client/src/pkg/http-error"
	"rider-client/src/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seenRequest struct {
	method, path, contentType, tenant, auth, requestID, body string
}

// startOrderService runs a fiber app on a random port that records what it
// receives and answers with status and body.
func startOrderService(t *testing.T, status int, body string) (string, <-chan seenRequest) {
	t.Helper()
	seen := make(chan seenRequest, 4)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.All("/*", func(ctx *fiber.Ctx) error {
		seen <- seenRequest{
			method:      ctx.Method(),
			path:        ctx.Path(),
			contentType: ctx.Get(fiber.HeaderContentType),
			tenant:      ctx.Get(HeaderClientDB),
			auth:        ctx.Get(fiber.HeaderAuthorization),
			requestID:   ctx.Get(HeaderRequestID),
			body:        string(ctx.Body()),
		}
		return ctx.Status(status).SendString(body)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String(), seen
}

func staticTenant(id string) TenantResolver {
	return TenantResolverFunc(func(context.Context) (string, error) { return id, nil })
}

func staticToken(raw string) TokenSource {
	return func(context.Context) (string, error) { return raw, nil }
}

func TestHTTPTransportSendsHeaders(t *testing.T) {
	baseURL, seen := startOrderService(t, http.StatusOK, `[]`)
	transport := NewHTTPTransport(baseURL+"/", 2*time.Second, staticTenant("tenant-a"), staticToken("opaque-token"), log.NewDiscard())

	resp, err := transport.Do(context.Background(), Request{
		Method: http.MethodPut,
		Path:   "/order/1/status",
		Body:   map[string]string{"orderStatus": "Delivered"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(resp.Body))

	got := <-seen
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/order/1/status", got.path)
	assert.Equal(t, "application/json-patch+json", got.contentType)
	assert.Equal(t, "tenant-a", got.tenant)
	assert.Equal(t, "Bearer opaque-token", got.auth)
	assert.NotEmpty(t, got.requestID)
	assert.JSONEq(t, `{"orderStatus":"Delivered"}`, got.body)
}

func TestHTTPTransportPassesErrorStatusThrough(t *testing.T) {
	baseURL, _ := startOrderService(t, http.StatusNotFound, `{"message":"nope"}`)
	transport := NewHTTPTransport(baseURL, 2*time.Second, nil, nil, log.NewDiscard())

	resp, err := transport.Do(context.Background(), Request{Method: http.MethodGet, Path: "/order/9"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHTTPTransportRejectsOversizedBody(t *testing.T) {
	baseURL, _ := startOrderService(t, http.StatusOK, strings.Repeat("x", maxResponseSize+1))
	transport := NewHTTPTransport(baseURL, 5*time.Second, nil, nil, log.NewDiscard())

	_, err := transport.Do(context.Background(), Request{Method: http.MethodGet, Path: "/rider-orders/1"})
	assert.ErrorIs(t, err, httpError.ErrServer)
	assert.ErrorContains(t, err, "exceeds")

	baseURL, _ = startOrderService(t, http.StatusOK, strings.Repeat("x", maxResponseSize))
	transport = NewHTTPTransport(baseURL, 5*time.Second, nil, nil, log.NewDiscard())
	resp, err := transport.Do(context.Background(), Request{Method: http.MethodGet, Path: "/rider-orders/1"})
	require.NoError(t, err)
	assert.Len(t, resp.Body, maxResponseSize)
}

func TestHTTPTransportRejectsExpiredToken(t *testing.T) {
	baseURL, seen := startOrderService(t, http.StatusOK, `[]`)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	transport := NewHTTPTransport(baseURL, 2*time.Second, staticTenant("t"), staticToken(expired), log.NewDiscard())

	_, err = transport.Do(context.Background(), Request{Method: http.MethodGet, Path: "/rider-orders/1"})
	assert.ErrorIs(t, err, httpError.ErrAuth)
	assert.Empty(t, seen)
}

func TestHTTPTransportUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	transport := NewHTTPTransport("http://"+addr, time.Second, nil, nil, log.NewDiscard())
	_, err = transport.Do(context.Background(), Request{Method: http.MethodGet, Path: "/rider-orders/1"})
	assert.ErrorIs(t, err, httpError.ErrNetwork)
}
