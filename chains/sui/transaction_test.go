package sui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionArgumentIndexing(t *testing.T) {
	tx := NewTransaction("0xsender")

	amount := tx.Pure(42)
	coin := tx.Object(ObjectRef{ObjectID: "0xc0", Version: "7", Digest: "d"})

	assert.Equal(t, Argument{Kind: ArgInput, Index: 0}, amount)
	assert.Equal(t, Argument{Kind: ArgInput, Index: 1}, coin)

	first := tx.SplitCoins(tx.Gas(), []Argument{amount})
	second := tx.SplitCoins(coin, []Argument{amount})

	assert.Equal(t, Argument{Kind: ArgResult, Index: 0}, first)
	assert.Equal(t, Argument{Kind: ArgResult, Index: 1}, second)
	require.Len(t, tx.Commands(), 2)
}

func TestTransactionString(t *testing.T) {
	tx := NewTransaction("0xsender")

	amount := tx.Pure(100)
	coin := tx.Object(ObjectRef{ObjectID: "0xc0", Version: "7", Digest: "d"})
	result := tx.SplitCoins(coin, []Argument{amount})
	tx.TransferObjects([]Argument{result}, "0xsender")

	plan := tx.String()
	assert.Contains(t, plan, "sender: 0xsender")
	assert.Contains(t, plan, "Pure(100)")
	assert.Contains(t, plan, "Object(0xc0 v7)")
	assert.Contains(t, plan, "SplitCoins(Input(1), [Input(0)])")
	assert.Contains(t, plan, "TransferObjects([Result(0)], 0xsender)")
}

func TestArgumentString(t *testing.T) {
	tx := NewTransaction("0xsender")
	assert.Equal(t, "GasCoin", tx.Gas().String())
	assert.Equal(t, "Input(0)", tx.Pure(1).String())
	assert.Equal(t, "Result(3)", Argument{Kind: ArgResult, Index: 3}.String())
}
