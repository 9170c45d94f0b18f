package wasmcalc

import (
	"fmt"
	"strconv"

	"github.com/wippyai/wasm-calculator/errors"
)

// Op selects the operation performed by the calculator.
// Values match the discriminants of the WIT enum op { add, sub }.
type Op uint8

const (
	OpAdd Op = iota // add
	OpSub           // sub
)

var (
	opNames   = [...]string{OpAdd: "add", OpSub: "sub"}
	opSymbols = [...]string{OpAdd: "+", OpSub: "-"}
)

// Ops returns all defined operations in discriminant order.
func Ops() []Op {
	return []Op{OpAdd, OpSub}
}

// Valid reports whether o is one of the defined operations.
func (o Op) Valid() bool {
	return int(o) < len(opNames)
}

// String returns the WIT case name of o.
func (o Op) String() string {
	if o.Valid() {
		return opNames[o]
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Symbol returns the infix symbol for o ("+" or "-").
func (o Op) Symbol() string {
	if o.Valid() {
		return opSymbols[o]
	}
	return "?"
}

// ParseOp parses an operation from its WIT case name.
func ParseOp(s string) (Op, error) {
	for i, name := range opNames {
		if name == s {
			return Op(i), nil
		}
	}
	return 0, errors.New(errors.PhaseParse, errors.KindInvalidEnum).
		Path("op").
		WitType("op").
		Value(s).
		Detail("unknown operation %q", s).
		Build()
}

// Expression formats a finished calculation as "x sym y = result".
func Expression(op Op, x, y, result uint32) string {
	return fmt.Sprintf("%d %s %d = %d", x, op.Symbol(), y, result)
}
