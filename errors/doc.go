// Package errors provides structured error types for the calculator.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the operand path, the WIT type involved, the offending
// value and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidInput).
//		Path("x").
//		WitType("u32").
//		Value("-1").
//		Detail("not an unsigned 32-bit integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidEnum(errors.PhaseDecode, []string{"op"}, 7, "op")
//	err := errors.Instantiation("component:adder/add", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
