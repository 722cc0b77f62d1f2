package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetLatestSuiSystemState fetches the current system state summary
func (c *Client) GetLatestSuiSystemState(ctx context.Context) (*SystemStateSummary, error) {
	result, err := c.call(ctx, "suix_getLatestSuiSystemState", []interface{}{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch system state: %w", err)
	}

	var state SystemStateSummary
	if err := json.Unmarshal(result, &state); err != nil {
		return nil, fmt.Errorf("failed to parse system state: %w", err)
	}
	return &state, nil
}

// GetAllBalances fetches the per-coin-type balance totals for an owner
func (c *Client) GetAllBalances(ctx context.Context, owner string) ([]Balance, error) {
	result, err := c.call(ctx, "suix_getAllBalances", []interface{}{owner})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balances: %w", err)
	}

	var balances []Balance
	if err := json.Unmarshal(result, &balances); err != nil {
		return nil, fmt.Errorf("failed to parse balances: %w", err)
	}
	return balances, nil
}

// GetAllCoins fetches one page of every coin object an owner holds,
// regardless of coin type. Pass a nil cursor for the first page and
// limit 0 for the server default page size.
func (c *Client) GetAllCoins(ctx context.Context, owner string, cursor *string, limit int) (*CoinPage, error) {
	result, err := c.call(ctx, "suix_getAllCoins", pageParams([]interface{}{owner}, cursor, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coins: %w", err)
	}

	var page CoinPage
	if err := json.Unmarshal(result, &page); err != nil {
		return nil, fmt.Errorf("failed to parse coin page: %w", err)
	}
	return &page, nil
}

// GetCoins fetches one page of an owner's coins of a single coin type
func (c *Client) GetCoins(ctx context.Context, owner, coinType string, cursor *string, limit int) (*CoinPage, error) {
	result, err := c.call(ctx, "suix_getCoins", pageParams([]interface{}{owner, coinType}, cursor, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s coins: %w", coinType, err)
	}

	var page CoinPage
	if err := json.Unmarshal(result, &page); err != nil {
		return nil, fmt.Errorf("failed to parse coin page: %w", err)
	}
	return &page, nil
}

// GetObject fetches a single object with type, owner, and content shown
func (c *Client) GetObject(ctx context.Context, objectID string) (*ObjectData, error) {
	options := map[string]interface{}{
		"showType":    true,
		"showOwner":   true,
		"showContent": true,
	}

	result, err := c.call(ctx, "sui_getObject", []interface{}{objectID, options})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch object: %w", err)
	}

	var resp ObjectResponse
	if err := json.Unmarshal(result, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse object: %w", err)
	}

	if resp.Data == nil {
		return nil, fmt.Errorf("object %s not available: %s", objectID, string(resp.Error))
	}
	return resp.Data, nil
}

// GetDynamicFields fetches one page of a parent object's dynamic fields
func (c *Client) GetDynamicFields(ctx context.Context, parentID string, cursor *string, limit int) (*DynamicFieldPage, error) {
	result, err := c.call(ctx, "suix_getDynamicFields", pageParams([]interface{}{parentID}, cursor, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dynamic fields: %w", err)
	}

	var page DynamicFieldPage
	if err := json.Unmarshal(result, &page); err != nil {
		return nil, fmt.Errorf("failed to parse dynamic field page: %w", err)
	}
	return &page, nil
}

// pageParams appends the optional cursor and limit positional parameters
// the paginated suix_ methods share
func pageParams(params []interface{}, cursor *string, limit int) []interface{} {
	if cursor != nil {
		params = append(params, *cursor)
	} else {
		params = append(params, nil)
	}
	if limit > 0 {
		params = append(params, limit)
	} else {
		params = append(params, nil)
	}
	return params
}
