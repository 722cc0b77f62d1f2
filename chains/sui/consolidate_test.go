package sui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okmatt/suikit/api"
)

// fakeLister serves a canned coin page and records how it was called
type fakeLister struct {
	page     *api.CoinPage
	err      error
	calls    int
	owner    string
	coinType string
}

func (f *fakeLister) GetCoins(ctx context.Context, owner, coinType string, cursor *string, limit int) (*api.CoinPage, error) {
	f.calls++
	f.owner = owner
	f.coinType = coinType
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func coinPage(n int) *api.CoinPage {
	coins := make([]api.Coin, n)
	for i := range coins {
		coins[i] = api.Coin{
			CoinType:     "0xdba3::usdc::USDC",
			CoinObjectID: fmt.Sprintf("0xc%d", i),
			Version:      fmt.Sprintf("%d", 100+i),
			Digest:       fmt.Sprintf("digest%d", i),
			Balance:      "500000",
		}
	}
	return &api.CoinPage{Data: coins}
}

func TestConsolidateGasCoinSplitsFromGasWithoutLookup(t *testing.T) {
	lister := &fakeLister{}
	tx := NewTransaction("0xowner")

	result, err := Consolidate(context.Background(), lister, ConsolidationRequest{
		Owner:       "0xowner",
		TargetValue: 1_500_000_000,
	}, tx)
	require.NoError(t, err)

	assert.Zero(t, lister.calls, "gas consolidation must not fetch coins")

	commands := tx.Commands()
	require.Len(t, commands, 1)
	split, ok := commands[0].(SplitCoinsCommand)
	require.True(t, ok, "expected a split, got %T", commands[0])
	assert.Equal(t, ArgGasCoin, split.Coin.Kind)
	require.Len(t, split.Amounts, 1)

	inputs := tx.Inputs()
	require.Len(t, inputs, 1)
	assert.Equal(t, InputPure, inputs[0].Kind)
	assert.Equal(t, uint64(1_500_000_000), inputs[0].Pure)

	assert.Equal(t, Argument{Kind: ArgResult, Index: 0}, result)
}

func TestConsolidatePaddedGasTypeStillSkipsLookup(t *testing.T) {
	lister := &fakeLister{}
	tx := NewTransaction("0xowner")

	padded := "0x" + strings.Repeat("0", 63) + "2::sui::SUI"
	_, err := Consolidate(context.Background(), lister, ConsolidationRequest{
		Owner:       "0xowner",
		CoinType:    padded,
		TargetValue: 100,
	}, tx)
	require.NoError(t, err)
	assert.Zero(t, lister.calls)
}

func TestConsolidateSingleCoinSplitsWithoutMerge(t *testing.T) {
	lister := &fakeLister{page: coinPage(1)}
	tx := NewTransaction("0xowner")

	result, err := Consolidate(context.Background(), lister, ConsolidationRequest{
		Owner:       "0xowner",
		CoinType:    "0xdba3::usdc::USDC",
		TargetValue: 250_000,
	}, tx)
	require.NoError(t, err)

	assert.Equal(t, 1, lister.calls)
	assert.Equal(t, "0xowner", lister.owner)
	assert.Equal(t, "0xdba3::usdc::USDC", lister.coinType)

	commands := tx.Commands()
	require.Len(t, commands, 1)
	split, ok := commands[0].(SplitCoinsCommand)
	require.True(t, ok)
	assert.Equal(t, ArgInput, split.Coin.Kind)

	assert.Equal(t, Argument{Kind: ArgResult, Index: 0}, result)
}

func TestConsolidateMergesThenSplits(t *testing.T) {
	lister := &fakeLister{page: coinPage(3)}
	tx := NewTransaction("0xowner")

	result, err := Consolidate(context.Background(), lister, ConsolidationRequest{
		Owner:       "0xowner",
		CoinType:    "0xdba3::usdc::USDC",
		TargetValue: 250_000,
	}, tx)
	require.NoError(t, err)

	commands := tx.Commands()
	require.Len(t, commands, 2)

	merge, ok := commands[0].(MergeCoinsCommand)
	require.True(t, ok, "expected a merge first, got %T", commands[0])
	require.Len(t, merge.Sources, 2, "N coins merge N-1 sources into the first")

	split, ok := commands[1].(SplitCoinsCommand)
	require.True(t, ok, "expected a split second, got %T", commands[1])
	assert.Equal(t, merge.Target, split.Coin, "the split must come off the merge target")

	// The merge target is the first fetched coin.
	target := tx.Inputs()[merge.Target.Index]
	require.Equal(t, InputObject, target.Kind)
	assert.Equal(t, "0xc0", target.Object.ObjectID)

	assert.Equal(t, Argument{Kind: ArgResult, Index: 1}, result)
}

func TestConsolidateNormalizesCoinTypeForLookup(t *testing.T) {
	lister := &fakeLister{page: coinPage(1)}
	tx := NewTransaction("0xowner")

	_, err := Consolidate(context.Background(), lister, ConsolidationRequest{
		Owner:       "0xowner",
		CoinType:    "0x000dba3::usdc::USDC",
		TargetValue: 1,
	}, tx)
	require.NoError(t, err)
	assert.Equal(t, "0xdba3::usdc::USDC", lister.coinType)
}

func TestConsolidateNoCoinsFails(t *testing.T) {
	lister := &fakeLister{page: &api.CoinPage{}}
	tx := NewTransaction("0xowner")

	_, err := Consolidate(context.Background(), lister, ConsolidationRequest{
		Owner:       "0xowner",
		CoinType:    "0xdba3::usdc::USDC",
		TargetValue: 1,
	}, tx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no 0xdba3::usdc::USDC coins")
	assert.Empty(t, tx.Commands())
}

func TestConsolidateLookupFailurePropagates(t *testing.T) {
	lookupErr := errors.New("fullnode unreachable")
	lister := &fakeLister{err: lookupErr}
	tx := NewTransaction("0xowner")

	_, err := Consolidate(context.Background(), lister, ConsolidationRequest{
		Owner:       "0xowner",
		CoinType:    "0xdba3::usdc::USDC",
		TargetValue: 1,
	}, tx)
	require.ErrorIs(t, err, lookupErr)
	assert.Empty(t, tx.Commands())
}

func TestConsolidateRejectsMalformedCoinType(t *testing.T) {
	lister := &fakeLister{}
	tx := NewTransaction("0xowner")

	_, err := Consolidate(context.Background(), lister, ConsolidationRequest{
		Owner:       "0xowner",
		CoinType:    "0xzz::bad::TYPE",
		TargetValue: 1,
	}, tx)
	require.Error(t, err)
	assert.Zero(t, lister.calls)
}
