package guest

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-calculator/world"
)

func TestComponents(t *testing.T) {
	comps, err := Components()
	if err != nil {
		t.Fatalf("Components: %v", err)
	}
	want := []string{world.Add.Namespace, world.Subtract.Namespace, world.Calculate.Namespace}
	if len(comps) != len(want) {
		t.Fatalf("got %d components, want %d", len(comps), len(want))
	}
	for i, c := range comps {
		if c.Namespace != want[i] {
			t.Errorf("component %d = %s, want %s", i, c.Namespace, want[i])
		}
		if len(c.Binary) < 8 || string(c.Binary[:4]) != "\x00asm" {
			t.Errorf("component %s is not a wasm binary", c.Namespace)
		}
	}
	if len(comps[2].Imports) != 2 {
		t.Errorf("calculator imports = %d, want 2", len(comps[2].Imports))
	}
}

func TestCalculator_ImportsAndExports(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	c, err := Calculator()
	if err != nil {
		t.Fatalf("Calculator: %v", err)
	}
	compiled, err := r.CompileModule(ctx, c.Binary)
	if err != nil {
		t.Fatalf("CompileModule: %v", err)
	}

	imports := compiled.ImportedFunctions()
	if len(imports) != 2 {
		t.Fatalf("imports = %d, want 2", len(imports))
	}
	for i, f := range []world.Func{world.Add, world.Subtract} {
		mod, name, ok := imports[i].Import()
		if !ok || mod != f.Namespace || name != f.Name {
			t.Errorf("import %d = %s#%s, want %s", i, mod, name, f.Key())
		}
	}

	exp, ok := compiled.ExportedFunctions()["calculate"]
	if !ok {
		t.Fatal("calculate not exported")
	}
	if n := len(exp.ParamTypes()); n != 3 {
		t.Errorf("calculate params = %d, want 3", n)
	}
}

func TestBinops(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	tests := []struct {
		build    func() (Component, error)
		fn       string
		x, y     uint32
		expected uint32
	}{
		{Adder, "add", 2, 3, 5},
		{Adder, "add", 4294967295, 1, 0},
		{Subtractor, "subtract", 5, 3, 2},
		{Subtractor, "subtract", 3, 5, 4294967294},
	}

	for _, tt := range tests {
		c, err := tt.build()
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		mod, err := r.InstantiateWithConfig(ctx, c.Binary, wazero.NewModuleConfig().WithName(""))
		if err != nil {
			t.Fatalf("instantiate %s: %v", c.Namespace, err)
		}
		results, err := mod.ExportedFunction(tt.fn).Call(ctx, api.EncodeU32(tt.x), api.EncodeU32(tt.y))
		if err != nil {
			t.Fatalf("%s(%d, %d): %v", tt.fn, tt.x, tt.y, err)
		}
		if got := api.DecodeU32(results[0]); got != tt.expected {
			t.Errorf("%s(%d, %d) = %d, want %d", tt.fn, tt.x, tt.y, got, tt.expected)
		}
		mod.Close(ctx)
	}
}
