package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Client handles JSON-RPC calls against a single Sui fullnode. Each Client
// is bound to exactly one endpoint; probing several endpoints means
// constructing one Client per endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	pageDelay  time.Duration
}

// NewClient creates a new API client bound to the given fullnode endpoint
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		pageDelay: DefaultPageDelay,
	}
}

// NewNetworkClient creates a client for the currently selected network's
// default fullnode. The selection is read from ~/.suikit/network.txt and
// falls back to mainnet when missing or invalid.
func NewNetworkClient() *Client {
	return NewClient(FullnodeForNetwork(CurrentNetwork()))
}

// CurrentNetwork returns the persisted network selection (mainnet when
// unset or unreadable).
func CurrentNetwork() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return NetworkMainnet
	}

	networkPath := filepath.Join(homeDir, ".suikit", "network.txt")
	data, err := os.ReadFile(networkPath)
	if err != nil {
		return NetworkMainnet
	}

	network := strings.TrimSpace(string(data))
	if network != NetworkMainnet && network != NetworkTestnet && network != NetworkDevnet {
		return NetworkMainnet
	}
	return network
}

// Endpoint returns the fullnode URL this client is bound to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SetPageDelay overrides the pause between page requests when draining a
// paginated listing
func (c *Client) SetPageDelay(d time.Duration) {
	c.pageDelay = d
}

// call sends one JSON-RPC request and returns the raw result payload
func (c *Client) call(ctx context.Context, method string, params []interface{}) (json.RawMessage, error) {
	payload := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var rpcResp RPCResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if rpcResp.Error != nil {
		return nil, fmt.Errorf("%s call failed: %w", method, rpcResp.Error)
	}

	if len(rpcResp.Result) == 0 || string(rpcResp.Result) == "null" {
		return nil, fmt.Errorf("no result in %s response", method)
	}

	return rpcResp.Result, nil
}
