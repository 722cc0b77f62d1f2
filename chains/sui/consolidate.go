package sui

import (
	"context"
	"fmt"

	"github.com/okmatt/suikit/api"
)

// CoinLister is the slice of the RPC surface consolidation needs
type CoinLister interface {
	GetCoins(ctx context.Context, owner, coinType string, cursor *string, limit int) (*api.CoinPage, error)
}

// ConsolidationRequest asks for a single spendable coin of at least
// TargetValue base units, owned by Owner. An empty CoinType means the
// native gas coin.
type ConsolidationRequest struct {
	Owner       string
	CoinType    string
	TargetValue uint64
}

// Consolidate appends the commands that produce one coin of TargetValue to
// the transaction and returns the argument naming it. For the gas coin the
// value is split straight off the implicit gas input with no remote lookup.
// For any other coin type the owner's coins are fetched, merged into the
// first one when there is more than one, and the value split off the merged
// coin.
//
// Only the first page of coins is consulted. An owner whose coins of the
// requested type span more than one page will see the shortfall at
// execution time, not here; sufficiency is never pre-validated locally.
// The returned argument is only valid within tx and must not be reused in
// another transaction.
func Consolidate(ctx context.Context, client CoinLister, req ConsolidationRequest, tx *Transaction) (Argument, error) {
	coinType := req.CoinType
	if coinType == "" {
		coinType = GasCoinType
	}

	normalized, err := NormalizeTypeTag(coinType)
	if err != nil {
		return Argument{}, fmt.Errorf("invalid coin type: %w", err)
	}

	amount := tx.Pure(req.TargetValue)

	if normalized == GasCoinType {
		return tx.SplitCoins(tx.Gas(), []Argument{amount}), nil
	}

	page, err := client.GetCoins(ctx, req.Owner, normalized, nil, 0)
	if err != nil {
		return Argument{}, err
	}
	if len(page.Data) == 0 {
		return Argument{}, fmt.Errorf("no %s coins owned by %s", normalized, req.Owner)
	}

	target := tx.Object(coinRef(page.Data[0]))

	if len(page.Data) > 1 {
		sources := make([]Argument, 0, len(page.Data)-1)
		for _, coin := range page.Data[1:] {
			sources = append(sources, tx.Object(coinRef(coin)))
		}
		tx.MergeCoins(target, sources)
	}

	return tx.SplitCoins(target, []Argument{amount}), nil
}

func coinRef(coin api.Coin) ObjectRef {
	return ObjectRef{
		ObjectID: coin.CoinObjectID,
		Version:  coin.Version,
		Digest:   coin.Digest,
	}
}
