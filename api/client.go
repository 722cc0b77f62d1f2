package api

// API Client-
//
// Files:
//   config.go    - RPC endpoints, network constants, default fullnode sets
//   types.go     - Struct definitions (coins, balances, pages, objects, etc.)
//   base.go      - Core client functionality (client struct, newClient, rpc call helper)
//   read.go      - One-shot read calls (system state, balances, coins, objects)
//   paginate.go  - Cursor pagination helpers (drain all pages with a rate delay)
//
// Usage:
//   client := api.NewClient("https://fullnode.mainnet.sui.io")  // from base.go
//   state, err := client.GetLatestSuiSystemState(ctx)           // from read.go
//   coins, err := client.GetAllCoinsOfType(ctx, owner, typ)     // from paginate.go
