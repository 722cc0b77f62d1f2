package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/okmatt/suikit/api"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network [mainnet|testnet|devnet]",
	Short: "Show or change network",
	Long: `Show the current network or switch between mainnet, testnet, and
devnet. The selection decides which fullnode the other commands talk to and
which public endpoint set the latency command probes by default.

Examples:
  suikit network            # Show current network
  suikit network mainnet    # Switch to mainnet
  suikit network testnet    # Switch to testnet
  suikit network devnet     # Switch to devnet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	// If no arguments provided, show current network
	if len(args) == 0 {
		return showCurrentNetwork()
	}

	network := strings.ToLower(args[0])

	// Validate network argument
	if network != api.NetworkMainnet && network != api.NetworkTestnet && network != api.NetworkDevnet {
		return fmt.Errorf("invalid network: %s. Use 'mainnet', 'testnet', or 'devnet'", network)
	}

	return setNetwork(network)
}

func showCurrentNetwork() error {
	network := api.CurrentNetwork()

	switch network {
	case api.NetworkMainnet:
		fmt.Printf("🌐 Current network: %s\n", color.GreenString("Mainnet"))
	case api.NetworkTestnet:
		fmt.Printf("🌐 Current network: %s\n", color.YellowString("Testnet"))
	default:
		fmt.Printf("🌐 Current network: %s\n", color.YellowString("Devnet"))
	}

	fmt.Println()
	fmt.Printf("   Fullnode: %s\n", api.FullnodeForNetwork(network))
	fmt.Printf("   Default probe set: %d endpoints\n", len(api.PublicRPCsForNetwork(network)))
	fmt.Println("💡 Use --endpoint on any command to talk to a specific fullnode")

	return nil
}

func setNetwork(network string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".suikit")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	networkPath := filepath.Join(configDir, "network.txt")
	if err := os.WriteFile(networkPath, []byte(network), 0600); err != nil {
		return fmt.Errorf("failed to write network file: %w", err)
	}

	fmt.Printf("🌐 Switched to %s network\n", strings.ToUpper(network))
	fmt.Printf("   Fullnode: %s\n", api.FullnodeForNetwork(network))

	if network != api.NetworkMainnet {
		fmt.Println()
		fmt.Println("⚠️  Test networks are wiped periodically; addresses and objects may vanish")
	}

	return nil
}

func init() {
	rootCmd.AddCommand(networkCmd)
}
