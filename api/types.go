package api

import (
	"encoding/json"
	"fmt"
)

// RPCResponse represents a Sui JSON-RPC response envelope
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// RPCError is the error object a fullnode returns inside the envelope
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// Balance represents the aggregate balance of one coin type for an owner
type Balance struct {
	CoinType        string `json:"coinType"`
	CoinObjectCount int    `json:"coinObjectCount"`
	TotalBalance    string `json:"totalBalance"`
}

// Coin represents a single owned coin object
type Coin struct {
	CoinType            string `json:"coinType"`
	CoinObjectID        string `json:"coinObjectId"`
	Version             string `json:"version"`
	Digest              string `json:"digest"`
	Balance             string `json:"balance"`
	PreviousTransaction string `json:"previousTransaction"`
}

// CoinPage is one page of a cursor-paginated coin listing
type CoinPage struct {
	Data        []Coin  `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

// DynamicFieldName identifies a dynamic field on its parent object
type DynamicFieldName struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// DynamicFieldInfo describes one dynamic field of a parent object
type DynamicFieldInfo struct {
	Name       DynamicFieldName `json:"name"`
	BcsName    string           `json:"bcsName"`
	Type       string           `json:"type"`
	ObjectType string           `json:"objectType"`
	ObjectID   string           `json:"objectId"`
	Version    int64            `json:"version"`
	Digest     string           `json:"digest"`
}

// DynamicFieldPage is one page of a cursor-paginated dynamic-field listing
type DynamicFieldPage struct {
	Data        []DynamicFieldInfo `json:"data"`
	NextCursor  *string            `json:"nextCursor"`
	HasNextPage bool               `json:"hasNextPage"`
}

// SystemStateSummary is the subset of the Sui system state this tool reads
type SystemStateSummary struct {
	Epoch                 string `json:"epoch"`
	ProtocolVersion       string `json:"protocolVersion"`
	SystemStateVersion    string `json:"systemStateVersion"`
	ReferenceGasPrice     string `json:"referenceGasPrice"`
	EpochStartTimestampMs string `json:"epochStartTimestampMs"`
	EpochDurationMs       string `json:"epochDurationMs"`
}

// ObjectData is the content of a live object as returned by sui_getObject
type ObjectData struct {
	ObjectID string          `json:"objectId"`
	Version  string          `json:"version"`
	Digest   string          `json:"digest"`
	Type     string          `json:"type"`
	Owner    json.RawMessage `json:"owner"`
	Content  json.RawMessage `json:"content"`
}

// ObjectResponse wraps object data with the per-object error the RPC uses
// for deleted or unknown ids
type ObjectResponse struct {
	Data  *ObjectData     `json:"data"`
	Error json.RawMessage `json:"error"`
}
