package wasmcalc

import "context"

// Calculator evaluates op over two u32 operands.
//
// Implementations: calculator.Native dispatches in process, engine.Engine
// runs the linked WebAssembly components.
type Calculator interface {
	Calculate(ctx context.Context, op Op, x, y uint32) (uint32, error)
}
