// Package playground holds small numeric helpers exposed next to the greeter.
package playground

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrOverflow is returned when a result does not fit the declared width.
var ErrOverflow = errors.New("result overflows uint32")

// Plus100 adds 100 to input.
func Plus100(input uint32) (uint32, error) {
	if input > math.MaxUint32-100 {
		return 0, fmt.Errorf("%w: %d + 100", ErrOverflow, input)
	}
	return input + 100, nil
}

// ArrayLength reports the number of elements regardless of their types.
func ArrayLength(items []any) uint32 {
	return uint32(len(items))
}

// Fibonacci returns the n-th Fibonacci number in base 10, with F(0) = 0 and F(1) = 1.
func Fibonacci(n uint32) string {
	a := big.NewInt(0)
	b := big.NewInt(1)
	if n == 0 {
		return a.String()
	}
	for i := uint32(2); i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b.String()
}

// sampleArray is the fixed array indexed by Element.
var sampleArray = [...]int{1, 2, 3, 4, 5}

// Element wraps index into sampleArray and returns the wrapped position and its value.
func Element(index uint64) (position int, value int) {
	position = int(index % uint64(len(sampleArray)))
	return position, sampleArray[position]
}

// Divisibility describes the largest of 4, 3 and 2 that divides n.
func Divisibility(n uint64) string {
	switch {
	case n%4 == 0:
		return "index is divisible by 4"
	case n%3 == 0:
		return "index is divisible by 3"
	case n%2 == 0:
		return "index is divisible by 2"
	default:
		return "index is not divisible by 4, 3, or 2"
	}
}
