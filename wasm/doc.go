// Package wasm encodes core WebAssembly modules.
//
// It covers the subset of the binary format needed to ship small
// function-only components: the type, import, function, export and code
// sections. Function bodies are assembled with Code:
//
//	body := wasm.NewCode().
//		LocalGet(0).
//		LocalGet(1).
//		Op(wasm.OpI32Add).
//		End()
//
// Modules carry no memory, tables or globals.
package wasm
