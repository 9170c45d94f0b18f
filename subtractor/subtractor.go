// Package subtractor implements the component:subtractor/subtract interface.
package subtractor

// Namespace is the WIT interface exported by this component.
const Namespace = "component:subtractor/subtract"

// Subtract returns x - y modulo 2^32.
//
// There is no underflow error: when y > x the result wraps to
// 2^32 - (y - x), so Subtract(3, 5) is 4294967294.
func Subtract(x, y uint32) uint32 {
	return x - y
}
