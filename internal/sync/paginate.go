package sync

// Page is one window of an ordered list
type Page[T any] struct {
	Items       []T `json:"items"`
	Total       int `json:"total"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// Paginate windows an ordered list. Callers order items newest-first before
// windowing. The same function serves server-paginated responses and the
// full local snapshot when offline, so both paths produce identical pages
// for identical inputs. Page and size below 1 are clamped to 1.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:       items[start:end],
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}
