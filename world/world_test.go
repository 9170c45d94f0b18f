package world

import (
	"errors"
	"testing"

	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	wasmcalc "github.com/wippyai/wasm-calculator"
	calcerrors "github.com/wippyai/wasm-calculator/errors"
)

func TestOpType(t *testing.T) {
	if OpType.Name == nil || *OpType.Name != "op" {
		t.Fatalf("OpType name = %v, want op", OpType.Name)
	}
	enum, ok := OpType.Kind.(*wit.Enum)
	if !ok {
		t.Fatalf("OpType kind = %T, want *wit.Enum", OpType.Kind)
	}
	want := []string{"add", "sub"}
	if len(enum.Cases) != len(want) {
		t.Fatalf("cases = %d, want %d", len(enum.Cases), len(want))
	}
	for i, c := range enum.Cases {
		if c.Name != want[i] {
			t.Errorf("case %d = %q, want %q", i, c.Name, want[i])
		}
	}
}

func TestFunc_String(t *testing.T) {
	tests := []struct {
		f    Func
		want string
	}{
		{Add, "add: func(x: u32, y: u32) -> u32"},
		{Subtract, "subtract: func(x: u32, y: u32) -> u32"},
		{Calculate, "calculate: func(op: op, x: u32, y: u32) -> u32"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFunc_Key(t *testing.T) {
	if got := Calculate.Key(); got != "component:calculator/calculate#calculate" {
		t.Errorf("Key() = %q", got)
	}
	funcs := Funcs()
	if len(funcs) != 3 || funcs[2].Name != "calculate" {
		t.Errorf("Funcs() = %v", funcs)
	}
}

func TestFlattenType(t *testing.T) {
	tests := []struct {
		name string
		typ  wit.Type
		want []api.ValueType
	}{
		{"u32", wit.U32{}, []api.ValueType{api.ValueTypeI32}},
		{"s64", wit.S64{}, []api.ValueType{api.ValueTypeI64}},
		{"f64", wit.F64{}, []api.ValueType{api.ValueTypeF64}},
		{"enum", OpType, []api.ValueType{api.ValueTypeI32}},
		{"string", wit.String{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlattenType(tt.typ)
			if len(got) != len(tt.want) {
				t.Fatalf("FlattenType = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FlattenType[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCoreSignature(t *testing.T) {
	params, results, err := CoreSignature(Calculate)
	if err != nil {
		t.Fatalf("CoreSignature: %v", err)
	}
	if len(params) != 3 || len(results) != 1 {
		t.Fatalf("signature = %v -> %v, want 3 params and 1 result", params, results)
	}
	for _, p := range params {
		if p != api.ValueTypeI32 {
			t.Errorf("param type = %v, want i32", p)
		}
	}

	bad := Func{Name: "greet", Params: []Param{{Name: "who", Type: wit.String{}}}}
	_, _, err = CoreSignature(bad)
	if !errors.Is(err, &calcerrors.Error{Phase: calcerrors.PhaseEncode, Kind: calcerrors.KindInvalidData}) {
		t.Errorf("err = %v, want encode/invalid_data", err)
	}
}

func TestLowerLiftOp(t *testing.T) {
	for _, op := range wasmcalc.Ops() {
		disc, err := LowerOp(op)
		if err != nil {
			t.Fatalf("LowerOp(%s): %v", op, err)
		}
		back, err := LiftOp(disc)
		if err != nil {
			t.Fatalf("LiftOp(%d): %v", disc, err)
		}
		if back != op {
			t.Errorf("LiftOp(LowerOp(%s)) = %s", op, back)
		}
	}

	if d, _ := LowerOp(wasmcalc.OpSub); d != 1 {
		t.Errorf("LowerOp(sub) = %d, want 1", d)
	}
}

func TestLowerLiftOp_Invalid(t *testing.T) {
	_, err := LowerOp(wasmcalc.Op(2))
	if !errors.Is(err, &calcerrors.Error{Phase: calcerrors.PhaseEncode, Kind: calcerrors.KindInvalidEnum}) {
		t.Errorf("LowerOp err = %v, want encode/invalid_enum", err)
	}

	_, err = LiftOp(0xFFFFFFFF)
	if !errors.Is(err, &calcerrors.Error{Phase: calcerrors.PhaseDecode, Kind: calcerrors.KindInvalidEnum}) {
		t.Errorf("LiftOp err = %v, want decode/invalid_enum", err)
	}
}
