package cmd

import (
	"fmt"

	"github.com/okmatt/suikit/chains/sui"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields <parent-id>",
	Short: "List a parent object's dynamic fields",
	Long: `List every dynamic field attached to a parent object, draining all
pages of the listing with the standard inter-page pause.

Examples:
  suikit fields 0x5
  suikit fields 0xab12...`,
	Args: cobra.ExactArgs(1),
	RunE: runFields,
}

func runFields(cmd *cobra.Command, args []string) error {
	parentID, err := sui.NormalizeAddress(args[0])
	if err != nil {
		return fmt.Errorf("invalid parent id: %w", err)
	}

	client := rpcClient(cmd)
	fields, err := client.GetAllDynamicFields(cmd.Context(), parentID)
	if err != nil {
		return err
	}

	fmt.Println("🗂️ Dynamic Fields")
	fmt.Printf("📍 Parent: %s\n", parentID)
	fmt.Printf("🔗 Endpoint: %s\n", client.Endpoint())
	fmt.Println()

	if len(fields) == 0 {
		fmt.Println("   (no dynamic fields)")
		return nil
	}

	for _, field := range fields {
		fmt.Printf("   %s  %s\n", field.ObjectID, field.ObjectType)
		fmt.Printf("      name: %s %s\n", field.Name.Type, string(field.Name.Value))
	}

	fmt.Println()
	fmt.Printf("📊 %d dynamic fields\n", len(fields))
	return nil
}
