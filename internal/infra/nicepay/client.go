package nicepay

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"parkspace/internal/pkg/config"
)

const ResultCodeSuccess = "0000"

// resultCodeTransportFailure is synthesized when the gateway could not be
// reached at all, so callers handle one shape for every failure.
const resultCodeTransportFailure = "9999"

// Result is the gateway's verdict on an approval or cancellation attempt.
// AuthDate is only present on successful approvals.
type Result struct {
	ResultCode string     `json:"resultCode"`
	ResultMsg  string     `json:"resultMsg"`
	AuthDate   *time.Time `json:"authDate,omitempty"`
}

func (r *Result) Success() bool {
	return r.ResultCode == ResultCodeSuccess
}

type Gateway interface {
	Approve(ctx context.Context, tid, orderID string, amount int64) (*Result, error)
	Cancel(ctx context.Context, tid, reason string) (*Result, error)
}

type Client struct {
	baseURL    string
	authHeader string
	http       *http.Client
}

func NewClient(cfg config.NicePayConfig) *Client {
	credentials := base64.StdEncoding.EncodeToString([]byte(cfg.ClientKey + ":" + cfg.SecretKey))
	return &Client{
		baseURL:    cfg.BaseURL,
		authHeader: "Basic " + credentials,
		http:       &http.Client{Timeout: cfg.Timeout},
	}
}

// Approve settles the transaction identified by tid for exactly amount. The
// gateway rejects the call when the client-side authorization was for a
// different amount or order.
func (c *Client) Approve(ctx context.Context, tid, orderID string, amount int64) (*Result, error) {
	body := map[string]any{"amount": amount, "orderId": orderID}
	return c.post(ctx, "/payments/"+tid, body)
}

func (c *Client) Cancel(ctx context.Context, tid, reason string) (*Result, error) {
	body := map[string]any{"reason": reason}
	return c.post(ctx, "/payments/"+tid+"/cancel", body)
}

// post never returns a transport error to the caller: an unreachable gateway
// becomes a failed Result so the reservation flow degrades uniformly.
func (c *Client) post(ctx context.Context, path string, body any) (*Result, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.http.Do(req)
	if err != nil {
		return &Result{ResultCode: resultCodeTransportFailure, ResultMsg: err.Error()}, nil
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return &Result{ResultCode: resultCodeTransportFailure, ResultMsg: "malformed gateway response: " + err.Error()}, nil
	}
	return &result, nil
}
