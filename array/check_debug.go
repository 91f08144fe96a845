//go:build vadebug

package array

import "fmt"

// Debug builds verify the structural invariant on every construction.
func validateShape[T any](shape []int, data []T) {
	if prod(shape) != len(data) {
		panic(fmt.Sprintf("shape %v does not match data length %d", shape, len(data)))
	}
}
