// Package wasmcalc composes a calculator out of two single-function components.
//
// A calculator component dispatches an operation to one of two sub-components:
//
//	component:adder/add             add(x: u32, y: u32) -> u32
//	component:subtractor/subtract   subtract(x: u32, y: u32) -> u32
//	component:calculator/calculate  calculate(op: op, x: u32, y: u32) -> u32
//
// where op is the WIT enum { add, sub }. All arithmetic is unsigned 32-bit
// modular arithmetic: 4294967295 + 1 wraps to 0 and 3 - 5 wraps to 4294967294.
//
// # Architecture Overview
//
//	wasmcalc/            Root package with the Op enum and the Calculator interface
//	├── adder/           The add component
//	├── subtractor/      The subtract component
//	├── calculator/      In-process dispatch (the native backend)
//	├── world/           WIT model of the three components and enum lifting/lowering
//	├── wasm/            Core WASM binary encoder
//	├── guest/           Builds the components as core WASM modules
//	├── engine/          wazero host that links and runs the guest modules
//	├── errors/          Structured error types
//	└── cmd/calculator/  Command line front end
//
// # Quick Start
//
// Dispatch in process:
//
//	sum := calculator.Calculate(wasmcalc.OpAdd, 2, 3) // 5
//
// Or run the same composition as linked WebAssembly modules:
//
//	eng, err := engine.NewEngine(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close(ctx)
//
//	diff, err := eng.Calculate(ctx, wasmcalc.OpSub, 3, 5) // 4294967294
//
// # Thread Safety
//
// Both backends are safe for concurrent use. Neither holds mutable state
// between calls.
package wasmcalc
