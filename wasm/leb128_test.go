package wasm

import (
	"bytes"
	"math"
	"testing"
)

func TestWriteLEB128u(t *testing.T) {
	tests := []struct {
		value uint32
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{624485, []byte{0xe5, 0x8e, 0x26}},
		{math.MaxUint32, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		WriteLEB128u(&buf, tt.value)
		if !bytes.Equal(buf.Bytes(), tt.want) {
			t.Errorf("WriteLEB128u(%d) = %x, want %x", tt.value, buf.Bytes(), tt.want)
		}
	}
}

func TestWriteLEB128s(t *testing.T) {
	tests := []struct {
		value int32
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{-1, []byte{0x7f}},
		{63, []byte{0x3f}},
		{64, []byte{0xc0, 0x00}},
		{-64, []byte{0x40}},
		{-123456, []byte{0xc0, 0xbb, 0x78}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		WriteLEB128s(&buf, tt.value)
		if !bytes.Equal(buf.Bytes(), tt.want) {
			t.Errorf("WriteLEB128s(%d) = %x, want %x", tt.value, buf.Bytes(), tt.want)
		}
	}
}
