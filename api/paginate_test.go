package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpcRequest is the envelope the fake fullnode decodes
type rpcRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// fakeFullnode serves suix_getCoins from a canned sequence of pages keyed
// by cursor. failOnPage, when positive, makes that request return an RPC
// error instead.
type fakeFullnode struct {
	pages      []CoinPage
	failOnPage int
	requests   int
}

func (f *fakeFullnode) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "suix_getCoins", req.Method)

		f.requests++
		if f.failOnPage > 0 && f.requests == f.failOnPage {
			fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"node overloaded"}}`)
			return
		}

		// Params are [owner, coinType, cursor, limit]; a null cursor means
		// the first page, otherwise the cursor is the page index.
		pageIndex := 0
		require.Len(t, req.Params, 4)
		if string(req.Params[2]) != "null" {
			var cursor string
			require.NoError(t, json.Unmarshal(req.Params[2], &cursor))
			require.NoError(t, json.Unmarshal([]byte(cursor), &pageIndex))
		}
		require.Less(t, pageIndex, len(f.pages))

		resp := RPCResponse{JSONRPC: "2.0", ID: 1}
		result, err := json.Marshal(f.pages[pageIndex])
		require.NoError(t, err)
		resp.Result = result
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}
}

// makePages builds n pages with the given item counts, chained by cursors
// that are just stringified page indexes
func makePages(counts ...int) []CoinPage {
	pages := make([]CoinPage, len(counts))
	serial := 0
	for i, count := range counts {
		coins := make([]Coin, count)
		for j := range coins {
			coins[j] = Coin{
				CoinType:     "0x2::sui::SUI",
				CoinObjectID: fmt.Sprintf("0x%02d", serial),
				Balance:      "1000",
			}
			serial++
		}
		pages[i].Data = coins
		if i < len(counts)-1 {
			cursor := fmt.Sprintf("%d", i+1)
			pages[i].NextCursor = &cursor
			pages[i].HasNextPage = true
		}
	}
	return pages
}

func TestGetAllCoinsOfTypeDrainsPagesInOrder(t *testing.T) {
	node := &fakeFullnode{pages: makePages(2, 2, 1)}
	server := httptest.NewServer(node.handler(t))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetPageDelay(time.Millisecond)

	coins, err := client.GetAllCoinsOfType(context.Background(), "0xabc", "0x2::sui::SUI")
	require.NoError(t, err)

	require.Len(t, coins, 5)
	for i, coin := range coins {
		assert.Equal(t, fmt.Sprintf("0x%02d", i), coin.CoinObjectID)
	}
	assert.Equal(t, 3, node.requests)
}

func TestGetAllCoinsOfTypeStopsOnLastPage(t *testing.T) {
	node := &fakeFullnode{pages: makePages(3)}
	server := httptest.NewServer(node.handler(t))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetPageDelay(time.Millisecond)

	coins, err := client.GetAllCoinsOfType(context.Background(), "0xabc", "0x2::sui::SUI")
	require.NoError(t, err)
	assert.Len(t, coins, 3)
	assert.Equal(t, 1, node.requests)
}

func TestGetAllCoinsOfTypePageFailureAbortsWithNoPartialResult(t *testing.T) {
	node := &fakeFullnode{pages: makePages(2, 2, 1), failOnPage: 2}
	server := httptest.NewServer(node.handler(t))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetPageDelay(time.Millisecond)

	coins, err := client.GetAllCoinsOfType(context.Background(), "0xabc", "0x2::sui::SUI")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node overloaded")
	assert.Nil(t, coins)
}

func TestCollectPagesAppliesInterPageDelay(t *testing.T) {
	node := &fakeFullnode{pages: makePages(1, 1, 1)}
	server := httptest.NewServer(node.handler(t))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetPageDelay(40 * time.Millisecond)

	start := time.Now()
	_, err := client.GetAllCoinsOfType(context.Background(), "0xabc", "0x2::sui::SUI")
	require.NoError(t, err)

	// Two page boundaries, one delay each.
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestCollectPagesHonorsCancellationDuringDelay(t *testing.T) {
	node := &fakeFullnode{pages: makePages(1, 1)}
	server := httptest.NewServer(node.handler(t))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetPageDelay(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.GetAllCoinsOfType(ctx, "0xabc", "0x2::sui::SUI")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCollectPagesStopsWhenCursorMissing(t *testing.T) {
	// A page claiming more data without a cursor must stop, not spin.
	pages := makePages(2)
	pages[0].HasNextPage = true
	pages[0].NextCursor = nil

	node := &fakeFullnode{pages: pages}
	server := httptest.NewServer(node.handler(t))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetPageDelay(time.Millisecond)

	coins, err := client.GetAllCoinsOfType(context.Background(), "0xabc", "0x2::sui::SUI")
	require.NoError(t, err)
	assert.Len(t, coins, 2)
	assert.Equal(t, 1, node.requests)
}

func TestCallSurfacesRPCError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"invalid params"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetAllBalances(context.Background(), "0xabc")
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32602, rpcErr.Code)
	assert.Contains(t, err.Error(), "invalid params")
}

func TestGetAllBalances(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "suix_getAllBalances", req.Method)
		fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"result":[
			{"coinType":"0x2::sui::SUI","coinObjectCount":3,"totalBalance":"1500000000"}
		]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	balances, err := client.GetAllBalances(context.Background(), "0xabc")
	require.NoError(t, err)

	require.Len(t, balances, 1)
	assert.Equal(t, "0x2::sui::SUI", balances[0].CoinType)
	assert.Equal(t, 3, balances[0].CoinObjectCount)
	assert.Equal(t, "1500000000", balances[0].TotalBalance)
}
