// Package calculator implements the component:calculator/calculate interface
// by dispatching directly to the adder and subtractor packages.
package calculator

import (
	"context"

	wasmcalc "github.com/wippyai/wasm-calculator"
	"github.com/wippyai/wasm-calculator/adder"
	"github.com/wippyai/wasm-calculator/errors"
	"github.com/wippyai/wasm-calculator/subtractor"
)

// Namespace is the WIT interface exported by this component.
const Namespace = "component:calculator/calculate"

// Calculate applies op to x and y.
//
// op must be OpAdd or OpSub. Any other value is a caller bug and panics
// with an *errors.Error of kind invalid_enum.
func Calculate(op wasmcalc.Op, x, y uint32) uint32 {
	switch op {
	case wasmcalc.OpAdd:
		return adder.Add(x, y)
	case wasmcalc.OpSub:
		return subtractor.Subtract(x, y)
	default:
		panic(invalidOp(op))
	}
}

func invalidOp(op wasmcalc.Op) *errors.Error {
	return errors.InvalidEnum(errors.PhaseDispatch, []string{"op"}, uint8(op), "op")
}

// Native is the in-process wasmcalc.Calculator.
// Unlike Calculate it reports an undefined op as an error instead of panicking.
type Native struct{}

var _ wasmcalc.Calculator = Native{}

// Calculate dispatches op and returns a dispatch/invalid_enum error for
// any op outside the enum.
func (Native) Calculate(_ context.Context, op wasmcalc.Op, x, y uint32) (uint32, error) {
	if !op.Valid() {
		return 0, invalidOp(op)
	}
	return Calculate(op, x, y), nil
}
