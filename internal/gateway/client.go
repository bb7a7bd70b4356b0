package gateway

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

	"github.com/rookgm/bobis/internal/logger"
	"github.com/rookgm/bobis/internal/models"
	"go.uber.org/zap"
)

// DefaultPerPage is page size used when caller does not set one
const DefaultPerPage = 10

// Client is the only component talking to BOBIS backend
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates new Client. Transport may be nil.
func NewClient(baseURL string, transport http.RoundTripper) *Client {
	return &Client{
		client: &http.Client{
			Timeout:   5 * time.Second,
			Transport: transport,
		},
		baseURL: baseURL,
	}
}

type pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// envelope is common backend response
type envelope struct {
	Success    *bool           `json:"success"`
	Data       json.RawMessage `json:"data"`
	Total      *int            `json:"total"`
	Pagination *pagination     `json:"pagination"`
	Error      string          `json:"error"`
	Message    string          `json:"message"`
}

func (e *envelope) failed() bool {
	return e.Success != nil && !*e.Success
}

func (e *envelope) errorMessage() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// total returns total count from total, then pagination.total, then fallback
func (e *envelope) total(fallback int) int {
	if e.Total != nil && *e.Total > 0 {
		return *e.Total
	}
	if e.Pagination != nil && e.Pagination.Total > 0 {
		return e.Pagination.Total
	}
	return fallback
}

// rows decodes data as list of records
func (e *envelope) rows() ([]record, error) {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return []record{}, nil
	}
	var rows []map[string]any
	if err := decode(e.Data, &rows); err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	out := make([]record, 0, len(rows))
	for _, r := range rows {
		out = append(out, record(r))
	}
	return out, nil
}

// object decodes data as single record
func (e *envelope) object() (record, error) {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return record{}, nil
	}
	var obj map[string]any
	if err := decode(e.Data, &obj); err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	return record(obj), nil
}

func decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// do performs request and returns decoded envelope.
// 2xx — solicitud procesada;
// otro estado o success=false — ServerError con mensaje del backend;
// fallo de transporte — ConnectionError.
func (c *Client) do(ctx context.Context, method string, query url.Values, body any, path ...string) (*envelope, error) {
	u, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		if errors.Is(err, models.ErrUnauthenticated) {
			return nil, err
		}
		logger.Log.Debug("backend unreachable", zap.String("url", u), zap.Error(err))
		return nil, &models.ConnectionError{Err: err}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.ConnectionError{Err: err}
	}

	env := envelope{}
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := env.errorMessage()
		if msg == "" {
			msg = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		logger.Log.Debug("backend error",
			zap.String("method", method),
			zap.String("url", u),
			zap.Int("status", resp.StatusCode),
			zap.String("error", msg))
		return nil, models.NewServerError(resp.StatusCode, msg)
	}

	if decodeErr != nil && len(bytes.TrimSpace(raw)) > 0 {
		return nil, models.NewServerError(resp.StatusCode, fmt.Sprintf("invalid backend response: %v", decodeErr))
	}
	if env.failed() {
		return nil, models.NewServerError(resp.StatusCode, env.errorMessage())
	}

	return &env, nil
}

// Ping probes backend connectivity. Probe endpoint may be missing on
// some deployments, so 404 also counts as connected.
func (c *Client) Ping(ctx context.Context) error {
	// GET /test-db
	_, err := c.do(ctx, http.MethodGet, nil, nil, "test-db")
	if err == nil {
		return nil
	}

	var se *models.ServerError
	if errors.As(err, &se) && se.Status == http.StatusNotFound {
		return nil
	}
	return err
}

func pages(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
