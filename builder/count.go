// SPDX-License-Identifier: MIT

package builder

// CountBy groups tuples by the value at position field and returns the
// distinct values in first-seen order together with their counts.
// Empty input yields empty outputs. Returns ErrFieldOutOfRange when a tuple
// is too short.
//
// Complexity: O(n).
func CountBy[T comparable](field int, tuples [][]T) ([]T, []int, error) {
	if field < 0 {
		return nil, nil, ErrFieldOutOfRange
	}
	var (
		values []T
		counts []int
		at     = make(map[T]int)
	)
	for _, tuple := range tuples {
		if field >= len(tuple) {
			return nil, nil, ErrFieldOutOfRange
		}
		v := tuple[field]
		if i, ok := at[v]; ok {
			counts[i]++
			continue
		}
		at[v] = len(values)
		values = append(values, v)
		counts = append(counts, 1)
	}

	return values, counts, nil
}

// CountDegrees counts how many vertices share each degree.
// Degrees are returned in first-seen order.
func CountDegrees(degrees []int) ([]int, []int) {
	tuples := make([][]int, len(degrees))
	for i, d := range degrees {
		tuples[i] = []int{d}
	}
	values, counts, _ := CountBy(0, tuples)

	return values, counts
}
