package cmd

import (
	"fmt"

	"github.com/okmatt/suikit/chains/sui"
	"github.com/spf13/cobra"
)

var objectCmd = &cobra.Command{
	Use:   "object <object-id>",
	Short: "Inspect a single object",
	Long: `Fetch a single object by id and print its type, version, digest,
and owner.

Examples:
  suikit object 0x5
  suikit object 0x2 --endpoint https://fullnode.testnet.sui.io`,
	Args: cobra.ExactArgs(1),
	RunE: runObject,
}

func runObject(cmd *cobra.Command, args []string) error {
	objectID, err := sui.NormalizeAddress(args[0])
	if err != nil {
		return fmt.Errorf("invalid object id: %w", err)
	}

	client := rpcClient(cmd)
	object, err := client.GetObject(cmd.Context(), objectID)
	if err != nil {
		return err
	}

	fmt.Println("📦 Object")
	fmt.Printf("🔗 Endpoint: %s\n", client.Endpoint())
	fmt.Println()
	fmt.Printf("   ID:      %s\n", object.ObjectID)
	fmt.Printf("   Type:    %s\n", object.Type)
	fmt.Printf("   Version: %s\n", object.Version)
	fmt.Printf("   Digest:  %s\n", object.Digest)
	if len(object.Owner) > 0 {
		fmt.Printf("   Owner:   %s\n", string(object.Owner))
	}

	return nil
}
