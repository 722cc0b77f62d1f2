package sui

import (
	"fmt"
	"strings"
)

// ArgumentKind discriminates the ways a command can refer to a value
type ArgumentKind int

const (
	// ArgGasCoin is the transaction's implicit gas coin
	ArgGasCoin ArgumentKind = iota
	// ArgInput refers to a transaction input by index
	ArgInput
	// ArgResult refers to the result of an earlier command by index
	ArgResult
)

// Argument is a reference a command uses to name one of its operands.
// Arguments are only meaningful within the Transaction that produced them
// and must not be reused across transactions.
type Argument struct {
	Kind  ArgumentKind
	Index int
}

func (a Argument) String() string {
	switch a.Kind {
	case ArgGasCoin:
		return "GasCoin"
	case ArgInput:
		return fmt.Sprintf("Input(%d)", a.Index)
	case ArgResult:
		return fmt.Sprintf("Result(%d)", a.Index)
	default:
		return fmt.Sprintf("Argument(%d,%d)", a.Kind, a.Index)
	}
}

// ObjectRef identifies a specific version of an owned object
type ObjectRef struct {
	ObjectID string
	Version  string
	Digest   string
}

// InputKind discriminates transaction input slots
type InputKind int

const (
	// InputPure is a BCS-encodable literal value
	InputPure InputKind = iota
	// InputObject is an owned object reference
	InputObject
)

// Input is one entry of the transaction's input table
type Input struct {
	Kind   InputKind
	Pure   uint64
	Object ObjectRef
}

func (in Input) String() string {
	if in.Kind == InputObject {
		return fmt.Sprintf("Object(%s v%s)", in.Object.ObjectID, in.Object.Version)
	}
	return fmt.Sprintf("Pure(%d)", in.Pure)
}

// Command is one step of a programmable transaction
type Command interface {
	String() string
}

// SplitCoinsCommand splits the given amounts off a coin, producing new coins
type SplitCoinsCommand struct {
	Coin    Argument
	Amounts []Argument
}

func (c SplitCoinsCommand) String() string {
	return fmt.Sprintf("SplitCoins(%s, %s)", c.Coin, formatArgs(c.Amounts))
}

// MergeCoinsCommand merges the source coins into the target, destroying the
// sources
type MergeCoinsCommand struct {
	Target  Argument
	Sources []Argument
}

func (c MergeCoinsCommand) String() string {
	return fmt.Sprintf("MergeCoins(%s, %s)", c.Target, formatArgs(c.Sources))
}

// TransferObjectsCommand sends the given objects to a recipient address
type TransferObjectsCommand struct {
	Objects   []Argument
	Recipient string
}

func (c TransferObjectsCommand) String() string {
	return fmt.Sprintf("TransferObjects(%s, %s)", formatArgs(c.Objects), c.Recipient)
}

func formatArgs(args []Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Transaction accumulates the inputs and commands of a programmable
// transaction. It only assembles the command plan; signing and submission
// are out of its hands.
type Transaction struct {
	Sender   string
	inputs   []Input
	commands []Command
}

func NewTransaction(sender string) *Transaction {
	return &Transaction{
		Sender:   sender,
		inputs:   make([]Input, 0),
		commands: make([]Command, 0),
	}
}

// Gas returns the argument naming the transaction's implicit gas coin
func (tx *Transaction) Gas() Argument {
	return Argument{Kind: ArgGasCoin}
}

// Object appends an owned-object input and returns the argument naming it
func (tx *Transaction) Object(ref ObjectRef) Argument {
	tx.inputs = append(tx.inputs, Input{Kind: InputObject, Object: ref})
	return Argument{Kind: ArgInput, Index: len(tx.inputs) - 1}
}

// Pure appends a literal input and returns the argument naming it
func (tx *Transaction) Pure(value uint64) Argument {
	tx.inputs = append(tx.inputs, Input{Kind: InputPure, Pure: value})
	return Argument{Kind: ArgInput, Index: len(tx.inputs) - 1}
}

// SplitCoins appends a split command and returns the argument naming its
// result coin
func (tx *Transaction) SplitCoins(coin Argument, amounts []Argument) Argument {
	tx.commands = append(tx.commands, SplitCoinsCommand{Coin: coin, Amounts: amounts})
	return Argument{Kind: ArgResult, Index: len(tx.commands) - 1}
}

// MergeCoins appends a merge command consuming the source coins
func (tx *Transaction) MergeCoins(target Argument, sources []Argument) {
	tx.commands = append(tx.commands, MergeCoinsCommand{Target: target, Sources: sources})
}

// TransferObjects appends a transfer command sending objects to a recipient
func (tx *Transaction) TransferObjects(objects []Argument, recipient string) {
	tx.commands = append(tx.commands, TransferObjectsCommand{Objects: objects, Recipient: recipient})
}

// Inputs returns the accumulated input table
func (tx *Transaction) Inputs() []Input {
	return tx.inputs
}

// Commands returns the accumulated command list
func (tx *Transaction) Commands() []Command {
	return tx.commands
}

// String renders the transaction plan for dry-run display
func (tx *Transaction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sender: %s\n", tx.Sender)
	b.WriteString("inputs:\n")
	for i, in := range tx.inputs {
		fmt.Fprintf(&b, "  %d: %s\n", i, in)
	}
	b.WriteString("commands:\n")
	for i, c := range tx.commands {
		fmt.Fprintf(&b, "  %d: %s\n", i, c)
	}
	return b.String()
}
