package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	httpError "rider-client/src/pkg/http-error"
	"rider-client/src/pkg/log"
	"rider-client/src/pkg/token"

	"github.com/google/uuid"
)

const (
	HeaderClientDB  = "X-Client-Db"
	HeaderRequestID = "X-Request-Id"

	contentType     = "application/json-patch+json"
	maxResponseSize = 4 << 20
	slowCall        = 3 * time.Second
)

type Request struct {
	Method string
	Path   string
	Body   interface{}
}

type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs one authenticated call against the order service.
type Transport interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// TenantResolver returns the tenant identifier sent with every request. It
// is asked again before each call so a changed setting takes effect without
// rebuilding the transport.
type TenantResolver interface {
	ResolveTenant(ctx context.Context) (string, error)
}

type TenantResolverFunc func(ctx context.Context) (string, error)

func (f TenantResolverFunc) ResolveTenant(ctx context.Context) (string, error) {
	return f(ctx)
}

// TokenSource returns the bearer token of the current session, or "".
type TokenSource func(ctx context.Context) (string, error)

type HTTPTransport struct {
	httpClient *http.Client
	baseURL    string
	tenant     TenantResolver
	token      TokenSource
	log        log.Log
	now        func() time.Time
}

func NewHTTPTransport(baseURL string, timeout time.Duration, tenant TenantResolver, tokenSource TokenSource, logger log.Log) *HTTPTransport {
	return &HTTPTransport{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		tenant:  tenant,
		token:   tokenSource,
		log:     logger,
		now:     time.Now,
	}
}

func (t *HTTPTransport) Do(ctx context.Context, req Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, t.baseURL+req.Path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	httpReq.Header.Set(HeaderRequestID, requestID)

	if t.tenant != nil {
		tenantID, err := t.tenant.ResolveTenant(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve tenant: %w", err)
		}
		if tenantID != "" {
			httpReq.Header.Set(HeaderClientDB, tenantID)
		}
	}

	if t.token != nil {
		bearer, err := t.token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read session token: %w", err)
		}
		if bearer != "" {
			if token.Expired(bearer, t.now()) {
				errObj := httpError.NewUnauthorized()
				errObj.Message = "session token expired"
				return nil, errObj
			}
			httpReq.Header.Set("Authorization", "Bearer "+bearer)
		}
	}

	started := time.Now()
	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		t.log.Error("api-transport", err.Error(), req.Method+" "+req.Path, requestID)
		return nil, httpError.NewNetwork(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, httpError.NewNetwork(err)
	}
	if len(payload) > maxResponseSize {
		errObj := httpError.NewInternalServerError()
		errObj.Code = resp.StatusCode
		errObj.Message = fmt.Sprintf("response body of %s %s exceeds %d bytes", req.Method, req.Path, maxResponseSize)
		t.log.Error("api-transport", errObj.Message, "Do", requestID)
		return nil, errObj
	}
	if elapsed := time.Since(started); elapsed > slowCall {
		t.log.Slow("api-transport", fmt.Sprintf("%s %s took %s", req.Method, req.Path, elapsed), "Do", requestID)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       payload,
	}, nil
}
