package simai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"simai/pkg/metrics"
)

// ErrStatus is wrapped by callers that treat a non-2xx response as a failure.
var ErrStatus = errors.New("status http sem sucesso")

type Response struct {
	StatusCode int
	Body       []byte
}

// OK mirrors fetch's res.ok.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode parses the body as JSON into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("erro ao decodificar JSON: %w", err)
	}
	return nil
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Get issues a GET to path. Any HTTP status is returned as a Response;
// only transport failures produce an error.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}
	return c.do(req, path)
}

// PostJSON encodes payload as JSON and POSTs it to path.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao codificar JSON: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path)
}

func (c *Client) do(req *http.Request, endpoint string) (*Response, error) {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(endpoint, metrics.OutcomeTransportError).Inc()
		log.Printf("[SIMAI] %s %s (%s) falhou: %v", req.Method, endpoint, requestID, err)
		return nil, fmt.Errorf("erro ao enviar requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(endpoint, metrics.OutcomeTransportError).Inc()
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	out := &Response{StatusCode: resp.StatusCode, Body: body}
	outcome := metrics.OutcomeOK
	if !out.OK() {
		outcome = metrics.OutcomeHTTPError
	}
	metrics.RequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	log.Printf("[SIMAI] %s %s (%s) status=%d tempo=%v", req.Method, endpoint, requestID, resp.StatusCode, time.Since(start))

	return out, nil
}
