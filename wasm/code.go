package wasm

import "bytes"

// Code assembles an instruction sequence.
type Code struct {
	buf bytes.Buffer
}

// NewCode returns an empty instruction sequence.
func NewCode() *Code {
	return &Code{}
}

// Op appends an instruction without immediates.
func (c *Code) Op(op byte) *Code {
	c.buf.WriteByte(op)
	return c
}

// LocalGet appends local.get idx.
func (c *Code) LocalGet(idx uint32) *Code {
	c.buf.WriteByte(OpLocalGet)
	WriteLEB128u(&c.buf, idx)
	return c
}

// I32Const appends i32.const v.
func (c *Code) I32Const(v int32) *Code {
	c.buf.WriteByte(OpI32Const)
	WriteLEB128s(&c.buf, v)
	return c
}

// Call appends call funcIdx.
func (c *Code) Call(funcIdx uint32) *Code {
	c.buf.WriteByte(OpCall)
	WriteLEB128u(&c.buf, funcIdx)
	return c
}

// If opens an if block producing one value of type result.
func (c *Code) If(result ValType) *Code {
	c.buf.WriteByte(OpIf)
	c.buf.WriteByte(byte(result))
	return c
}

// Else switches to the else arm of the innermost if.
func (c *Code) Else() *Code {
	return c.Op(OpElse)
}

// End appends end and returns the encoded instructions.
// The returned slice is the finished function body when the
// block depth reaches zero.
func (c *Code) End() []byte {
	c.buf.WriteByte(OpEnd)
	return c.buf.Bytes()
}

// Close closes an inner block and keeps assembling.
func (c *Code) Close() *Code {
	return c.Op(OpEnd)
}
