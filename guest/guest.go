// Package guest builds the calculator components as core WebAssembly modules.
//
// Each module's core signature is the flattened WIT signature from the world
// package, so the modules link against each other by namespace exactly as
// the component world describes.
package guest

import (
	"github.com/tetratelabs/wazero/api"

	wasmcalc "github.com/wippyai/wasm-calculator"
	"github.com/wippyai/wasm-calculator/errors"
	"github.com/wippyai/wasm-calculator/wasm"
	"github.com/wippyai/wasm-calculator/world"
)

// Component is an encoded guest module.
type Component struct {
	Namespace string
	Binary    []byte
	Exports   []world.Func
	Imports   []world.Func
}

// Components returns all guests in instantiation order.
func Components() ([]Component, error) {
	builders := []func() (Component, error){Adder, Subtractor, Calculator}
	out := make([]Component, 0, len(builders))
	for _, build := range builders {
		c, err := build()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Adder exports add, implemented with i32.add.
func Adder() (Component, error) {
	return binop(world.Add, wasm.OpI32Add)
}

// Subtractor exports subtract, implemented with i32.sub.
func Subtractor() (Component, error) {
	return binop(world.Subtract, wasm.OpI32Sub)
}

// i32 arithmetic wraps modulo 2^32, matching the u32 semantics of the
// native adder and subtractor.
func binop(f world.Func, op byte) (Component, error) {
	ft, err := funcType(f)
	if err != nil {
		return Component{}, err
	}

	m := &wasm.Module{}
	idx := m.AddFunc(ft, wasm.FuncBody{
		Code: wasm.NewCode().
			LocalGet(0).
			LocalGet(1).
			Op(op).
			End(),
	})
	m.ExportFunc(f.Name, idx)

	return Component{
		Namespace: f.Namespace,
		Binary:    m.Encode(),
		Exports:   []world.Func{f},
	}, nil
}

// Calculator imports add and subtract from their namespaces and exports
// calculate. An op discriminant outside the enum traps with unreachable.
func Calculator() (Component, error) {
	m := &wasm.Module{}

	imports := []world.Func{world.Add, world.Subtract}
	idx := make([]uint32, len(imports))
	for i, f := range imports {
		ft, err := funcType(f)
		if err != nil {
			return Component{}, err
		}
		idx[i] = m.AddImport(f.Namespace, f.Name, ft)
	}

	addDisc, err := world.LowerOp(wasmcalc.OpAdd)
	if err != nil {
		return Component{}, err
	}
	subDisc, err := world.LowerOp(wasmcalc.OpSub)
	if err != nil {
		return Component{}, err
	}

	ft, err := funcType(world.Calculate)
	if err != nil {
		return Component{}, err
	}

	// params: 0 = op, 1 = x, 2 = y
	body := wasm.NewCode().
		LocalGet(0).I32Const(int32(addDisc)).Op(wasm.OpI32Eq).
		If(wasm.ValI32).
		LocalGet(1).LocalGet(2).Call(idx[0]).
		Else().
		LocalGet(0).I32Const(int32(subDisc)).Op(wasm.OpI32Eq).
		If(wasm.ValI32).
		LocalGet(1).LocalGet(2).Call(idx[1]).
		Else().
		Op(wasm.OpUnreachable).
		Close().
		Close().
		End()

	fn := m.AddFunc(ft, wasm.FuncBody{Code: body})
	m.ExportFunc(world.Calculate.Name, fn)

	return Component{
		Namespace: world.Calculate.Namespace,
		Binary:    m.Encode(),
		Exports:   []world.Func{world.Calculate},
		Imports:   imports,
	}, nil
}

func funcType(f world.Func) (wasm.FuncType, error) {
	params, results, err := world.CoreSignature(f)
	if err != nil {
		return wasm.FuncType{}, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "flatten "+f.Key())
	}
	return wasm.FuncType{
		Params:  valTypes(params),
		Results: valTypes(results),
	}, nil
}

func valTypes(in []api.ValueType) []wasm.ValType {
	out := make([]wasm.ValType, len(in))
	for i, t := range in {
		out[i] = wasm.ValType(t)
	}
	return out
}
