package Go_Segments

import "fmt"

// IndexError is the panic value of every structure in this module when an index falls
// outside the valid range [0, Len).
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// CheckIndex panics with an *IndexError unless 0<=i<n.
func CheckIndex(i, n int) {
	if uint(i) >= uint(n) {
		panic(&IndexError{i, n})
	}
}

// ModulusError is the panic value when values with different moduli are combined.
type ModulusError struct {
	Want, Got uint64
}

func (e *ModulusError) Error() string {
	return fmt.Sprintf("mismatched modulus: %d and %d", e.Want, e.Got)
}
