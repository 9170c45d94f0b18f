package subtractor

import (
	"math"
	"testing"
	"testing/quick"
)

func TestSubtract(t *testing.T) {
	cases := []struct {
		name     string
		x, y     uint32
		expected uint32
	}{
		{"positive result", 5, 3, 2},
		{"zeros", 0, 0, 0},
		{"equal operands", 7, 7, 0},
		// y > x wraps instead of failing.
		{"underflow wraps", 3, 5, 4294967294},
		{"zero minus one", 0, 1, math.MaxUint32},
		{"zero minus max", 0, math.MaxUint32, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Subtract(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Subtract(%d, %d) = %d, want %d", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestSubtract_Modular(t *testing.T) {
	f := func(x, y uint32) bool {
		want := (uint64(x) + (1 << 32) - uint64(y)) % (1 << 32)
		return uint64(Subtract(x, y)) == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSubtract_Zero(t *testing.T) {
	f := func(x uint32) bool {
		return Subtract(x, 0) == x
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
