package world

import (
	"go.bytecodealliance.org/wit"

	wasmcalc "github.com/wippyai/wasm-calculator"
	"github.com/wippyai/wasm-calculator/errors"
)

// LowerOp converts op to its enum discriminant.
func LowerOp(op wasmcalc.Op) (uint32, error) {
	disc := uint32(op)
	if disc >= opCaseCount() {
		return 0, errors.InvalidEnum(errors.PhaseEncode, []string{"op"}, uint8(op), "op")
	}
	return disc, nil
}

// LiftOp converts an enum discriminant back to an Op.
func LiftOp(disc uint32) (wasmcalc.Op, error) {
	if disc >= opCaseCount() {
		return 0, errors.InvalidEnum(errors.PhaseDecode, []string{"op"}, disc, "op")
	}
	return wasmcalc.Op(disc), nil
}

func opCaseCount() uint32 {
	return uint32(len(OpType.Kind.(*wit.Enum).Cases))
}
