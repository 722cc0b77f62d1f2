package api

import (
	"context"
	"time"
)

// collectPages drains a cursor-paginated listing into one slice, preserving
// page-then-item order. It requests pages strictly sequentially, pausing
// `delay` between requests to bound the request rate. The first failing
// page aborts the whole accumulation; no partial result is returned.
func collectPages[T any](ctx context.Context, delay time.Duration, fetch func(cursor *string) ([]T, *string, bool, error)) ([]T, error) {
	var all []T
	var cursor *string

	for {
		items, next, hasMore, err := fetch(cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		// A page claiming more data without a cursor would loop forever.
		if !hasMore || next == nil {
			return all, nil
		}
		cursor = next

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// GetAllCoinsOfType drains every page of an owner's coins of one type
func (c *Client) GetAllCoinsOfType(ctx context.Context, owner, coinType string) ([]Coin, error) {
	return collectPages(ctx, c.pageDelay, func(cursor *string) ([]Coin, *string, bool, error) {
		page, err := c.GetCoins(ctx, owner, coinType, cursor, 0)
		if err != nil {
			return nil, nil, false, err
		}
		return page.Data, page.NextCursor, page.HasNextPage, nil
	})
}

// GetAllCoinsPaged drains every page of every coin an owner holds
func (c *Client) GetAllCoinsPaged(ctx context.Context, owner string) ([]Coin, error) {
	return collectPages(ctx, c.pageDelay, func(cursor *string) ([]Coin, *string, bool, error) {
		page, err := c.GetAllCoins(ctx, owner, cursor, 0)
		if err != nil {
			return nil, nil, false, err
		}
		return page.Data, page.NextCursor, page.HasNextPage, nil
	})
}

// GetAllDynamicFields drains every page of a parent object's dynamic fields
func (c *Client) GetAllDynamicFields(ctx context.Context, parentID string) ([]DynamicFieldInfo, error) {
	return collectPages(ctx, c.pageDelay, func(cursor *string) ([]DynamicFieldInfo, *string, bool, error) {
		page, err := c.GetDynamicFields(ctx, parentID, cursor, 0)
		if err != nil {
			return nil, nil, false, err
		}
		return page.Data, page.NextCursor, page.HasNextPage, nil
	})
}
