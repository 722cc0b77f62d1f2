package cmd

import (
	"fmt"

	"github.com/okmatt/suikit/api"
	"github.com/okmatt/suikit/chains/sui"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var coinsCmd = &cobra.Command{
	Use:   "coins <address>",
	Short: "List an address's individual coin objects",
	Long: `List every individual coin object an address owns, draining all
pages of the listing. A fixed pause is kept between page requests so large
holdings don't hammer the fullnode.

Examples:
  suikit coins 0x2a6f...
  suikit coins 0x2a6f... --type 0x2::sui::SUI`,
	Args: cobra.ExactArgs(1),
	RunE: runCoins,
}

func runCoins(cmd *cobra.Command, args []string) error {
	address, err := sui.NormalizeAddress(args[0])
	if err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}

	coinType, _ := cmd.Flags().GetString("type")
	client := rpcClient(cmd)

	var coins []api.Coin
	if coinType != "" {
		normalized, err := sui.NormalizeTypeTag(coinType)
		if err != nil {
			return fmt.Errorf("invalid coin type: %w", err)
		}
		coins, err = client.GetAllCoinsOfType(cmd.Context(), address, normalized)
		if err != nil {
			return err
		}
	} else {
		coins, err = client.GetAllCoinsPaged(cmd.Context(), address)
		if err != nil {
			return err
		}
	}

	fmt.Println("🪙 Coin Objects")
	fmt.Printf("📍 Address: %s\n", address)
	fmt.Printf("🔗 Endpoint: %s\n", client.Endpoint())
	fmt.Println()

	if len(coins) == 0 {
		fmt.Println("   (no matching coins)")
		return nil
	}

	total := decimal.Zero
	for _, coin := range coins {
		balance, err := decimal.NewFromString(coin.Balance)
		if err != nil {
			return fmt.Errorf("failed to parse coin balance %q: %w", coin.Balance, err)
		}
		total = total.Add(balance)
		fmt.Printf("   %s  %s  %s\n", coin.CoinObjectID, coin.CoinType, balance)
	}

	fmt.Println()
	fmt.Printf("📊 %d coin objects, total %s base units\n", len(coins), total)
	return nil
}

func init() {
	coinsCmd.Flags().String("type", "", "restrict the listing to one coin type")
}
