package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/okmatt/suikit/chains/sui"
	"github.com/spf13/cobra"
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate <owner> <amount>",
	Short: "Plan a coin consolidation transaction",
	Long: `Assemble the transaction commands that produce a single spendable
coin of at least the given amount, merging the owner's existing coins first
when needed. The plan is printed as a dry run and never submitted.

For the native gas coin the amount is given in SUI and split straight off
the gas input. For other coin types (--type) the amount is given in the
coin's base units and the owner's coins of that type are fetched, merged,
and split. Only the first page of coins is consulted, so holdings spread
over very many coin objects may come up short at execution time.

Examples:
  suikit consolidate 0x2a6f... 1.5
  suikit consolidate 0x2a6f... 250000 --type 0xdba3...::usdc::USDC`,
	Args: cobra.ExactArgs(2),
	RunE: runConsolidate,
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	owner, err := sui.NormalizeAddress(args[0])
	if err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}

	coinType, _ := cmd.Flags().GetString("type")

	var targetValue uint64
	if coinType == "" || sui.IsGasCoin(coinType) {
		targetValue, err = sui.SuiToMist(args[1])
		if err != nil {
			return err
		}
	} else {
		targetValue, err = strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: base units must be a whole number", args[1])
		}
	}

	client := rpcClient(cmd)
	tx := sui.NewTransaction(owner)

	result, err := sui.Consolidate(cmd.Context(), client, sui.ConsolidationRequest{
		Owner:       owner,
		CoinType:    coinType,
		TargetValue: targetValue,
	}, tx)
	if err != nil {
		return fmt.Errorf("failed to plan consolidation: %w", err)
	}

	fmt.Println("🧾 Consolidation Plan (dry run)")
	fmt.Printf("🔗 Endpoint: %s\n", client.Endpoint())
	fmt.Println()
	fmt.Print(tx.String())
	fmt.Println()
	fmt.Printf("✅ Result coin: %s\n", color.GreenString(result.String()))
	fmt.Println("💡 Append this plan to a signed transaction to execute it")

	return nil
}

func init() {
	consolidateCmd.Flags().String("type", "", "coin type to consolidate (default: the native gas coin)")
}
