package utils

// Window emulates pagination over a fully fetched list using optional
// 1-based inclusive bounds.
//
//   - first and last set, first <= last, last < len: items[first-1 : last]
//   - first set, last unset or last >= len:          items[first-1 :]
//   - first unset (with or without last):            items unchanged
//
// A first beyond the end, or a first greater than last, yields an empty
// window. A first below 1 is treated as 1.
func Window[T any](items []T, first, last *int) []T {
	if first == nil {
		return items
	}

	n := len(items)
	start := max(*first, 1)

	if start > n {
		return items[:0]
	}

	if last != nil && *last < n {
		if start > *last {
			return items[:0]
		}

		return items[start-1 : *last]
	}

	return items[start-1 : n]
}
