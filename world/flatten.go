package world

import (
	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/wasm-calculator/errors"
)

// FlattenType flattens a WIT type to core wasm types.
// Returns nil for types the components never use.
func FlattenType(t wit.Type) []api.ValueType {
	switch v := t.(type) {
	case wit.Bool, wit.U8, wit.U16, wit.U32, wit.S8, wit.S16, wit.S32, wit.Char:
		return []api.ValueType{api.ValueTypeI32}
	case wit.U64, wit.S64:
		return []api.ValueType{api.ValueTypeI64}
	case wit.F32:
		return []api.ValueType{api.ValueTypeF32}
	case wit.F64:
		return []api.ValueType{api.ValueTypeF64}
	case *wit.TypeDef:
		// Enums up to 2^32 cases lower to a single i32 discriminant.
		if _, ok := v.Kind.(*wit.Enum); ok {
			return []api.ValueType{api.ValueTypeI32}
		}
	}
	return nil
}

// CoreSignature flattens f into its core wasm parameter and result types.
func CoreSignature(f Func) (params, results []api.ValueType, err error) {
	for _, p := range f.Params {
		flat := FlattenType(p.Type)
		if flat == nil {
			return nil, nil, errors.New(errors.PhaseEncode, errors.KindInvalidData).
				Path(f.Name, p.Name).
				WitType(TypeName(p.Type)).
				Detail("type cannot be flattened").
				Build()
		}
		params = append(params, flat...)
	}
	if f.Result != nil {
		results = FlattenType(f.Result)
		if results == nil {
			return nil, nil, errors.New(errors.PhaseEncode, errors.KindInvalidData).
				Path(f.Name, "result").
				WitType(TypeName(f.Result)).
				Detail("type cannot be flattened").
				Build()
		}
	}
	return params, results, nil
}
