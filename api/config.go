package api

import "time"

// network type constants
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
	NetworkDevnet  = "devnet"
)

// Fullnode RPC endpoints
const (
	// mainnet rpc
	MainnetFullnodeRPC = "https://fullnode.mainnet.sui.io"

	// testnet rpc's
	TestnetFullnodeRPC = "https://fullnode.testnet.sui.io"
	DevnetFullnodeRPC  = "https://fullnode.devnet.sui.io"
)

// DefaultPageDelay is the pause inserted between successive page requests
// when draining a paginated listing. It is a rate limit against public
// fullnodes, not a retry interval.
const DefaultPageDelay = 333 * time.Millisecond

// MainnetPublicRPCs are the public mainnet fullnodes probed by the latency
// command when no endpoints are given.
var MainnetPublicRPCs = []string{
	"https://fullnode.mainnet.sui.io",
	"https://sui-rpc.publicnode.com",
	"https://sui-mainnet.public.blastapi.io",
	"https://sui-mainnet-endpoint.blockvision.org",
	"https://rpc-mainnet.suiscan.xyz",
	"https://mainnet.suiet.app",
	"https://sui-mainnet-rpc.allthatnode.com",
}

// TestnetPublicRPCs are the public testnet fullnodes probed by default in
// testnet mode.
var TestnetPublicRPCs = []string{
	"https://fullnode.testnet.sui.io",
	"https://sui-testnet.public.blastapi.io",
	"https://rpc-testnet.suiscan.xyz",
	"https://testnet.suiet.app",
}

// FullnodeForNetwork returns the default fullnode URL for a network name.
// Unknown names fall back to mainnet.
func FullnodeForNetwork(network string) string {
	switch network {
	case NetworkTestnet:
		return TestnetFullnodeRPC
	case NetworkDevnet:
		return DevnetFullnodeRPC
	default:
		return MainnetFullnodeRPC
	}
}

// PublicRPCsForNetwork returns the default probe set for a network name.
func PublicRPCsForNetwork(network string) []string {
	switch network {
	case NetworkTestnet:
		return TestnetPublicRPCs
	case NetworkDevnet:
		return []string{DevnetFullnodeRPC}
	default:
		return MainnetPublicRPCs
	}
}
