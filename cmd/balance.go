package cmd

import (
	"fmt"

	"github.com/okmatt/suikit/chains/sui"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "List an address's coin balances",
	Long: `List every coin type an address holds, with per-type totals and
object counts. SUI amounts are shown in whole SUI; other coin types in
their base units.

Examples:
  suikit balance 0x2a6f...
  suikit balance 0x2a6f... --endpoint https://fullnode.testnet.sui.io`,
	Args: cobra.ExactArgs(1),
	RunE: runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	address, err := sui.NormalizeAddress(args[0])
	if err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}

	client := rpcClient(cmd)
	balances, err := client.GetAllBalances(cmd.Context(), address)
	if err != nil {
		return fmt.Errorf("failed to fetch balances: %w", err)
	}

	fmt.Println("💰 Coin Balances")
	fmt.Printf("📍 Address: %s\n", address)
	fmt.Printf("🔗 Endpoint: %s\n", client.Endpoint())
	fmt.Println()

	if len(balances) == 0 {
		fmt.Println("   (no coins held by this address)")
		return nil
	}

	for _, balance := range balances {
		total, err := decimal.NewFromString(balance.TotalBalance)
		if err != nil {
			return fmt.Errorf("failed to parse balance %q: %w", balance.TotalBalance, err)
		}

		if sui.IsGasCoin(balance.CoinType) {
			fmt.Printf("💧 %s: %s SUI (%d objects)\n",
				sui.GasCoinType, total.Shift(-9), balance.CoinObjectCount)
		} else {
			fmt.Printf("🪙 %s: %s (%d objects)\n",
				balance.CoinType, total, balance.CoinObjectCount)
		}
	}

	return nil
}
