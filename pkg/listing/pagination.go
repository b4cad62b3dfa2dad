package listing

// DefaultPageSize matches the fixed page length of the record tables.
const DefaultPageSize = 6

// Page slices list down to one page. Pages are 1-based; out-of-range pages
// yield an empty slice. Concatenating every page in order reconstructs list.
func Page[T any](list []T, page, size int) []T {
	if size <= 0 || page < 1 {
		return nil
	}
	from := (page - 1) * size
	if from >= len(list) {
		return nil
	}
	to := from + size
	if to > len(list) {
		to = len(list)
	}
	return list[from:to]
}

// TotalPages is ceil(len/size); zero for an empty list.
func TotalPages(length, size int) int {
	if size <= 0 || length <= 0 {
		return 0
	}
	return (length + size - 1) / size
}
