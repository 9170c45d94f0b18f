// Package world describes the calculator components in WIT terms.
//
// The world wires three interfaces together:
//
//	package component:calculator;
//
//	interface calculate {
//	    enum op { add, sub }
//	    calculate: func(op: op, x: u32, y: u32) -> u32;
//	}
//
//	world app {
//	    import component:adder/add;        // add: func(x: u32, y: u32) -> u32
//	    import component:subtractor/subtract; // subtract: func(x: u32, y: u32) -> u32
//	    export calculate;
//	}
package world

import (
	"strings"

	"go.bytecodealliance.org/wit"

	wasmcalc "github.com/wippyai/wasm-calculator"
	"github.com/wippyai/wasm-calculator/adder"
	"github.com/wippyai/wasm-calculator/calculator"
	"github.com/wippyai/wasm-calculator/subtractor"
)

// OpType is the WIT enum op, with one case per wasmcalc.Op in discriminant order.
var OpType = newOpType()

func newOpType() *wit.TypeDef {
	name := "op"
	ops := wasmcalc.Ops()
	cases := make([]wit.EnumCase, 0, len(ops))
	for _, op := range ops {
		cases = append(cases, wit.EnumCase{Name: op.String()})
	}
	return &wit.TypeDef{
		Name: &name,
		Kind: &wit.Enum{Cases: cases},
	}
}

// Param is a named function parameter.
type Param struct {
	Type wit.Type
	Name string
}

// Func is a function exported by one of the components.
type Func struct {
	Result    wit.Type
	Namespace string
	Name      string
	Params    []Param
}

// The three component functions.
var (
	Add = Func{
		Namespace: adder.Namespace,
		Name:      "add",
		Params:    []Param{{Name: "x", Type: wit.U32{}}, {Name: "y", Type: wit.U32{}}},
		Result:    wit.U32{},
	}
	Subtract = Func{
		Namespace: subtractor.Namespace,
		Name:      "subtract",
		Params:    []Param{{Name: "x", Type: wit.U32{}}, {Name: "y", Type: wit.U32{}}},
		Result:    wit.U32{},
	}
	Calculate = Func{
		Namespace: calculator.Namespace,
		Name:      "calculate",
		Params:    []Param{{Name: "op", Type: OpType}, {Name: "x", Type: wit.U32{}}, {Name: "y", Type: wit.U32{}}},
		Result:    wit.U32{},
	}
)

// Funcs returns every component function in instantiation order:
// dependencies first.
func Funcs() []Func {
	return []Func{Add, Subtract, Calculate}
}

// Key returns "namespace#name", the form used in linking errors.
func (f Func) Key() string {
	return f.Namespace + "#" + f.Name
}

// String renders f in WIT syntax, e.g. "add: func(x: u32, y: u32) -> u32".
func (f Func) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteString(": func(")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(TypeName(p.Type))
	}
	b.WriteByte(')')
	if f.Result != nil {
		b.WriteString(" -> ")
		b.WriteString(TypeName(f.Result))
	}
	return b.String()
}

// TypeName returns the WIT spelling of t.
func TypeName(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.U16:
		return "u16"
	case wit.U32:
		return "u32"
	case wit.U64:
		return "u64"
	case wit.S8:
		return "s8"
	case wit.S16:
		return "s16"
	case wit.S32:
		return "s32"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		if _, ok := v.Kind.(*wit.Enum); ok {
			return "enum"
		}
	}
	return "unknown"
}
