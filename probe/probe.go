// Package probe measures the responsiveness of Sui fullnode RPC endpoints.
//
// Every endpoint in a request is probed concurrently with its own client
// handle and its own timer; a failing endpoint never disturbs the others.
// The full result set is returned at once, ranked fastest first with
// failures at the end.
package probe

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/okmatt/suikit/api"
)

// Kind selects which read-only RPC call a probe exercises
type Kind int

const (
	KindSystemState Kind = iota
	KindAllBalances
	KindAllCoins
	KindGetObject
)

var kindNames = map[Kind]string{
	KindSystemState: "system-state",
	KindAllBalances: "all-balances",
	KindAllCoins:    "all-coins",
	KindGetObject:   "get-object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a probe kind from its command-line name
func ParseKind(name string) (Kind, error) {
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown probe kind %q, want one of system-state, all-balances, all-coins, get-object", name)
}

// Fallback probe targets used when the request does not name one. These are
// read-only probe subjects; any live address or object works, they only
// need to exist so the call exercises a real lookup.
const (
	// An active mainnet address with a long balance history.
	defaultProbeOwner = "0x7d20dcdb2bca4f508ea9613994683eb4e76e9c4ed371169677c1be02aaf0b58e"
	// The Sui framework package, present on every network.
	defaultProbeObject = "0x2"
)

// defaultTargets maps each probe kind to its fallback target. SystemState
// takes no target.
var defaultTargets = map[Kind]string{
	KindSystemState: "",
	KindAllBalances: defaultProbeOwner,
	KindAllCoins:    defaultProbeOwner,
	KindGetObject:   defaultProbeObject,
}

// Request describes one probing batch
type Request struct {
	// Endpoints to probe. Duplicates are probed independently; an empty
	// list yields an empty result.
	Endpoints []string
	// Kind selects the RPC call issued against each endpoint.
	Kind Kind
	// Target overrides the default lookup subject for kinds that take one.
	Target string
	// Timeout bounds each individual probe. Zero means no per-probe
	// timeout: a hung endpoint then holds up the whole batch.
	Timeout time.Duration
	// OnSettle, when set, is called once per endpoint as its probe
	// finishes, in completion order and from the probe's goroutine. It is
	// progress reporting only; the ordered result set is still returned.
	OnSettle func(Result)
}

// Result is the outcome of probing one endpoint. Exactly one of the latency
// and the error is meaningful: LatencyMS holds when Err is empty.
type Result struct {
	Endpoint  string
	LatencyMS float64
	Err       string
}

// OK reports whether the probe succeeded
func (r Result) OK() bool {
	return r.Err == ""
}

// client is the slice of the RPC surface a probe can exercise
type client interface {
	GetLatestSuiSystemState(ctx context.Context) (*api.SystemStateSummary, error)
	GetAllBalances(ctx context.Context, owner string) ([]api.Balance, error)
	GetAllCoins(ctx context.Context, owner string, cursor *string, limit int) (*api.CoinPage, error)
	GetObject(ctx context.Context, objectID string) (*api.ObjectData, error)
}

// newClient builds the per-endpoint client handle. Tests substitute it.
var newClient = func(endpoint string) client {
	return api.NewClient(endpoint)
}

// Probe issues one RPC call per endpoint, all concurrently, and returns one
// result per endpoint sorted ascending by latency with failures last.
// Failures among failures keep their completion-independent input order.
// Probe itself never fails: endpoint errors are captured in the results.
func Probe(ctx context.Context, req Request) []Result {
	results := make([]Result, len(req.Endpoints))

	var wg sync.WaitGroup
	for i, endpoint := range req.Endpoints {
		wg.Add(1)
		go func(i int, endpoint string) {
			defer wg.Done()
			results[i] = probeOne(ctx, req, endpoint)
			if req.OnSettle != nil {
				req.OnSettle(results[i])
			}
		}(i, endpoint)
	}
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return sortLatency(results[i]) < sortLatency(results[j])
	})
	return results
}

// probeOne runs a single endpoint's probe with its own client and timer
func probeOne(ctx context.Context, req Request, endpoint string) Result {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	target := req.Target
	if target == "" {
		target = defaultTargets[req.Kind]
	}

	c := newClient(endpoint)

	start := time.Now()
	var err error
	switch req.Kind {
	case KindSystemState:
		_, err = c.GetLatestSuiSystemState(ctx)
	case KindAllBalances:
		_, err = c.GetAllBalances(ctx, target)
	case KindAllCoins:
		_, err = c.GetAllCoins(ctx, target, nil, 0)
	case KindGetObject:
		_, err = c.GetObject(ctx, target)
	default:
		err = fmt.Errorf("unknown probe kind %d", int(req.Kind))
	}
	elapsed := time.Since(start)

	if err != nil {
		return Result{Endpoint: endpoint, Err: err.Error()}
	}
	return Result{
		Endpoint:  endpoint,
		LatencyMS: float64(elapsed) / float64(time.Millisecond),
	}
}

// sortLatency orders failures after every success without touching the
// reported error
func sortLatency(r Result) float64 {
	if !r.OK() {
		return math.Inf(1)
	}
	return r.LatencyMS
}
