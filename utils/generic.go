// Package utils holds small helpers shared by the tgdango packages.
package utils

// Contains reports whether the item is present in the slice.
//
// Args:
//   - arr: The slice to search in.
//   - item: The item to search for.
//
// Returns:
//   - bool: True if the item is found, otherwise false.
func Contains[T comparable](arr []T, item T) bool {
	for _, i := range arr {
		if i == item {
			return true
		}
	}

	return false
}

// Remove returns a copy of the slice without the first occurrence of the item.
// The given slice is left untouched, so it stays safe for concurrent readers.
//
// Args:
//   - arr: The slice to remove the item from.
//   - item: The item to remove.
//
// Returns:
//   - []T: The slice without the removed item.
func Remove[T comparable](arr []T, item T) []T {
	for i, v := range arr {
		if v == item {
			out := make([]T, 0, len(arr)-1)
			out = append(out, arr[:i]...)
			return append(out, arr[i+1:]...)
		}
	}

	return arr
}
