package cmd

import (
	"fmt"

	"github.com/okmatt/suikit/api"
	"github.com/spf13/cobra"
)

var (
	version = "0.4.1"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "suikit",
	Aliases: []string{"sk"},
	Short:   "Sui RPC endpoint probing and coin utilities",
	Long: `Suikit is a command-line toolbox for working with Sui fullnode RPC
endpoints. It ranks public endpoints by response time, inspects balances,
coins, objects, and dynamic fields, and assembles coin-consolidation
transaction plans.

Features:
  • Concurrent endpoint latency probing with per-endpoint failure isolation
  • Balance and coin listing with full cursor pagination
  • Object and dynamic-field inspection
  • Coin consolidation planning (merge + split, dry run)
  • Mainnet, Testnet, and Devnet support

Examples:
  suikit latency                          # Rank the default public endpoints
  suikit latency --kind get-object url1 url2
  suikit balance 0x2a6f...                # List all coin balances
  suikit coins 0x2a6f... --type 0x2::sui::SUI
  suikit consolidate 0x2a6f... 1.5        # Plan a 1.5 SUI consolidation
  suikit network testnet                  # Switch to testnet mode`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().String("endpoint", "", "fullnode RPC endpoint (default: current network's fullnode)")

	// Add subcommands
	rootCmd.AddCommand(latencyCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(coinsCmd)
	rootCmd.AddCommand(objectCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(consolidateCmd)
	rootCmd.AddCommand(versionCmd)
}

// rpcClient builds the client for the --endpoint flag, falling back to the
// selected network's default fullnode
func rpcClient(cmd *cobra.Command) *api.Client {
	endpoint, _ := cmd.Flags().GetString("endpoint")
	if endpoint != "" {
		return api.NewClient(endpoint)
	}
	return api.NewNetworkClient()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Suikit v%s\n", version)
	},
}
