package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/okmatt/suikit/api"
	"github.com/okmatt/suikit/probe"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var latencyCmd = &cobra.Command{
	Use:   "latency [endpoints...]",
	Short: "Rank RPC endpoints by response time",
	Long: `Probe fullnode RPC endpoints concurrently and rank them by response
time. Each endpoint gets its own connection and timer, so a slow or broken
endpoint never skews the others; failed endpoints are listed last.

Probe kinds: system-state, all-balances, all-coins, get-object

Examples:
  suikit latency                              # Probe the current network's public endpoints
  suikit latency --kind all-balances          # Probe with a balance lookup
  suikit latency --timeout 5s url1 url2 url3  # Probe specific endpoints`,
	RunE: runLatency,
}

func runLatency(cmd *cobra.Command, args []string) error {
	kindName, _ := cmd.Flags().GetString("kind")
	target, _ := cmd.Flags().GetString("target")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	kind, err := probe.ParseKind(kindName)
	if err != nil {
		return err
	}

	endpoints := args
	network := api.CurrentNetwork()
	if len(endpoints) == 0 {
		endpoints = api.PublicRPCsForNetwork(network)
	}

	fmt.Println("📡 RPC Endpoint Latency")
	fmt.Printf("🌐 Network: %s\n", network)
	fmt.Printf("🔎 Probe: %s\n", kind)
	fmt.Println()

	bar := progressbar.NewOptions(len(endpoints),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan]Probing endpoints...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	results := probe.Probe(cmd.Context(), probe.Request{
		Endpoints: endpoints,
		Kind:      kind,
		Target:    target,
		Timeout:   timeout,
		OnSettle:  func(probe.Result) { bar.Add(1) },
	})
	bar.Finish()
	fmt.Println()
	fmt.Println()

	for i, result := range results {
		rank := fmt.Sprintf("%2d.", i+1)
		if !result.OK() {
			fmt.Printf("%s ❌ %s\n", rank, result.Endpoint)
			fmt.Printf("       %s\n", color.RedString(result.Err))
			continue
		}
		fmt.Printf("%s ✅ %s — %s\n", rank, result.Endpoint, colorLatency(result.LatencyMS))
	}

	return nil
}

// colorLatency renders a latency with a speed-banded color
func colorLatency(ms float64) string {
	formatted := fmt.Sprintf("%.1f ms", ms)
	switch {
	case ms < 250:
		return color.GreenString(formatted)
	case ms < 1000:
		return color.YellowString(formatted)
	default:
		return color.RedString(formatted)
	}
}

func init() {
	latencyCmd.Flags().String("kind", "system-state", "probe kind: system-state, all-balances, all-coins, get-object")
	latencyCmd.Flags().String("target", "", "address or object id the probe looks up (kind-specific default)")
	latencyCmd.Flags().Duration("timeout", 0, "per-endpoint timeout (0 = none)")
}
