package engine

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	wasmcalc "github.com/wippyai/wasm-calculator"
	"github.com/wippyai/wasm-calculator/adder"
	"github.com/wippyai/wasm-calculator/errors"
	"github.com/wippyai/wasm-calculator/guest"
	"github.com/wippyai/wasm-calculator/subtractor"
	"github.com/wippyai/wasm-calculator/world"
)

// Engine runs the calculator components on a wazero runtime.
// It is safe for concurrent use.
type Engine struct {
	runtime wazero.Runtime
	// host holds the Go implementation of every host-served function,
	// keyed by world.Func.Key. wazero forbids calling exports of host
	// modules from Go, so calls into them go through this map.
	host        map[string]hostFunc
	closeOnDone bool
	closed      atomic.Bool
}

// hostFunc takes flattened core parameters.
type hostFunc func(ctx context.Context, params []uint64) (uint32, error)

var _ wasmcalc.Calculator = (*Engine)(nil)

// Config holds configuration for engine creation
type Config struct {
	// Host lists component namespaces served by Go host modules
	// instead of wasm guests.
	Host []string

	// Interpreter forces the wazero interpreter even where the
	// compiler is supported.
	Interpreter bool

	// CloseOnContextDone aborts running calls when their context is done.
	CloseOnContextDone bool
}

// NewEngine creates an engine with every component running as a wasm guest
func NewEngine(ctx context.Context) (*Engine, error) {
	return NewEngineWithConfig(ctx, nil)
}

// NewEngineWithConfig creates an engine with custom configuration
func NewEngineWithConfig(ctx context.Context, cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	for _, ns := range cfg.Host {
		if !isComponent(ns) {
			return nil, errors.NotFound(errors.PhaseLinking, "component", ns)
		}
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg.Interpreter {
		runtimeCfg = wazero.NewRuntimeConfigInterpreter()
	}
	if cfg.CloseOnContextDone {
		runtimeCfg = runtimeCfg.WithCloseOnContextDone(true)
	}

	e := &Engine{
		runtime:     wazero.NewRuntimeWithConfig(ctx, runtimeCfg),
		host:        make(map[string]hostFunc),
		closeOnDone: cfg.CloseOnContextDone,
	}

	guests, err := guest.Components()
	if err != nil {
		e.runtime.Close(ctx)
		return nil, err
	}

	for _, g := range guests {
		if slices.Contains(cfg.Host, g.Namespace) {
			err = e.instantiateHost(ctx, g.Namespace)
		} else {
			err = e.instantiateGuest(ctx, g)
		}
		if err != nil {
			e.runtime.Close(ctx)
			return nil, err
		}
	}

	return e, nil
}

func isComponent(ns string) bool {
	for _, f := range world.Funcs() {
		if f.Namespace == ns {
			return true
		}
	}
	return false
}

func (e *Engine) instantiateGuest(ctx context.Context, g guest.Component) error {
	compiled, err := e.runtime.CompileModule(ctx, g.Binary)
	if err != nil {
		return errors.Load("compile "+g.Namespace, err)
	}

	if missing := e.missingImports(compiled); len(missing) > 0 {
		compiled.Close(ctx)
		return errors.NewMissingImportsError(missing)
	}

	if _, err := e.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(g.Namespace)); err != nil {
		compiled.Close(ctx)
		return errors.Instantiation(g.Namespace, err)
	}

	Logger().Debug("instantiated guest",
		zap.String("namespace", g.Namespace),
		zap.Int("bytes", len(g.Binary)),
		zap.Int("imports", len(g.Imports)))
	return nil
}

// missingImports returns "namespace#name" for every imported function that no
// instantiated module exports. Definitions are used since host modules
// do not allow ExportedFunction.
func (e *Engine) missingImports(compiled wazero.CompiledModule) []string {
	var missing []string
	for _, def := range compiled.ImportedFunctions() {
		mod, name, _ := def.Import()
		m := e.runtime.Module(mod)
		if m == nil {
			missing = append(missing, mod+"#"+name)
			continue
		}
		if _, ok := m.ExportedFunctionDefinitions()[name]; !ok {
			missing = append(missing, mod+"#"+name)
		}
	}
	return missing
}

func (e *Engine) instantiateHost(ctx context.Context, ns string) error {
	builder := e.runtime.NewHostModuleBuilder(ns)

	var f world.Func
	switch ns {
	case adder.Namespace:
		f = world.Add
		builder.NewFunctionBuilder().
			WithFunc(func(_ context.Context, x, y uint32) uint32 {
				return adder.Add(x, y)
			}).
			Export(f.Name)
		e.host[f.Key()] = func(_ context.Context, p []uint64) (uint32, error) {
			return adder.Add(api.DecodeU32(p[0]), api.DecodeU32(p[1])), nil
		}
	case subtractor.Namespace:
		f = world.Subtract
		builder.NewFunctionBuilder().
			WithFunc(func(_ context.Context, x, y uint32) uint32 {
				return subtractor.Subtract(x, y)
			}).
			Export(f.Name)
		e.host[f.Key()] = func(_ context.Context, p []uint64) (uint32, error) {
			return subtractor.Subtract(api.DecodeU32(p[0]), api.DecodeU32(p[1])), nil
		}
	default:
		f = world.Calculate
		builder.NewFunctionBuilder().
			WithFunc(func(ctx context.Context, disc, x, y uint32) uint32 {
				result, err := e.hostCalculate(ctx, disc, x, y)
				if err != nil {
					// wazero reports the panic as an error from Call.
					panic(err)
				}
				return result
			}).
			Export(f.Name)
		e.host[f.Key()] = func(ctx context.Context, p []uint64) (uint32, error) {
			return e.hostCalculate(ctx, api.DecodeU32(p[0]), api.DecodeU32(p[1]), api.DecodeU32(p[2]))
		}
	}

	if _, err := builder.Instantiate(ctx); err != nil {
		delete(e.host, f.Key())
		return errors.Instantiation(ns, err)
	}

	Logger().Debug("instantiated host module", zap.String("namespace", ns))
	return nil
}

// hostCalculate dispatches through the linked adder and subtractor,
// whichever side of the host boundary they run on.
func (e *Engine) hostCalculate(ctx context.Context, disc, x, y uint32) (uint32, error) {
	op, err := world.LiftOp(disc)
	if err != nil {
		return 0, err
	}

	target := world.Add
	if op == wasmcalc.OpSub {
		target = world.Subtract
	}
	return e.call(ctx, target, api.EncodeU32(x), api.EncodeU32(y))
}

// Calculate runs calculate in the calculator component.
func (e *Engine) Calculate(ctx context.Context, op wasmcalc.Op, x, y uint32) (uint32, error) {
	disc, err := world.LowerOp(op)
	if err != nil {
		return 0, err
	}
	return e.call(ctx, world.Calculate, api.EncodeU32(disc), api.EncodeU32(x), api.EncodeU32(y))
}

// Add calls the adder component directly.
func (e *Engine) Add(ctx context.Context, x, y uint32) (uint32, error) {
	return e.call(ctx, world.Add, api.EncodeU32(x), api.EncodeU32(y))
}

// Subtract calls the subtractor component directly.
func (e *Engine) Subtract(ctx context.Context, x, y uint32) (uint32, error) {
	return e.call(ctx, world.Subtract, api.EncodeU32(x), api.EncodeU32(y))
}

// call resolves the export on every call: api.Function values are not safe
// for concurrent use, modules are.
func (e *Engine) call(ctx context.Context, f world.Func, params ...uint64) (uint32, error) {
	if e.closed.Load() {
		return 0, errors.NotInitialized(errors.PhaseRuntime, "engine")
	}

	// A done context would make wazero close the module for good.
	if e.closeOnDone {
		if err := ctx.Err(); err != nil {
			Logger().Debug("call aborted", zap.String("func", f.Key()), zap.Error(err))
			return 0, errors.Trap(f.Namespace, f.Name, err)
		}
	}

	if fn, ok := e.host[f.Key()]; ok {
		result, err := fn(ctx, params)
		if err != nil {
			Logger().Debug("call trapped", zap.String("func", f.Key()), zap.Bool("host", true), zap.Error(err))
			return 0, errors.Trap(f.Namespace, f.Name, err)
		}
		Logger().Debug("call",
			zap.String("func", f.Key()),
			zap.Bool("host", true),
			zap.Uint64s("params", params),
			zap.Uint32("result", result))
		return result, nil
	}

	mod := e.runtime.Module(f.Namespace)
	if mod == nil {
		return 0, errors.NotFound(errors.PhaseLinking, "component", f.Namespace)
	}
	fn := mod.ExportedFunction(f.Name)
	if fn == nil {
		return 0, errors.NotFound(errors.PhaseLinking, "export", f.Key())
	}

	results, err := fn.Call(ctx, params...)
	if err != nil {
		Logger().Debug("call trapped", zap.String("func", f.Key()), zap.Error(err))
		return 0, errors.Trap(f.Namespace, f.Name, err)
	}

	result := api.DecodeU32(results[0])
	Logger().Debug("call",
		zap.String("func", f.Key()),
		zap.Uint64s("params", params),
		zap.Uint32("result", result))
	return result, nil
}

// Close releases the runtime and every instantiated module.
// Calls after Close return a not_initialized error.
func (e *Engine) Close(ctx context.Context) error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}
	Logger().Debug("closing engine")
	return e.runtime.Close(ctx)
}
