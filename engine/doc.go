// Package engine links and runs the calculator components on wazero.
//
// NewEngine instantiates the adder and subtractor first, then the calculator,
// whose imports resolve against the modules registered under the
// component:adder/add and component:subtractor/subtract namespaces:
//
//	eng, err := engine.NewEngine(ctx)
//	if err != nil {
//	    return err
//	}
//	defer eng.Close(ctx)
//
//	sum, err := eng.Calculate(ctx, wasmcalc.OpAdd, 2, 3)
//
// Any component can be provided by a Go host module instead of a wasm guest
// by listing its namespace in Config.Host. Guests and host modules link
// against each other the same way:
//
//	eng, err := engine.NewEngineWithConfig(ctx, &engine.Config{
//	    Host: []string{adder.Namespace},
//	})
//
// A guest calculator traps on an undefined op discriminant. A host
// calculator rejects it while lifting. Both surface as KindTrap errors.
package engine
