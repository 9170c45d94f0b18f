// Package adder implements the component:adder/add interface.
package adder

// Namespace is the WIT interface exported by this component.
const Namespace = "component:adder/add"

// Add returns x + y modulo 2^32.
func Add(x, y uint32) uint32 {
	return x + y
}
