package sync

import "testing"

func TestPaginateLaw(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	const size = 10
	first := Paginate(items, 1, size)
	if first.Total != 23 {
		t.Fatalf("total = %d, want 23", first.Total)
	}
	if first.TotalPages != 3 {
		t.Fatalf("totalPages = %d, want ceil(23/10) = 3", first.TotalPages)
	}

	// Walking every page reproduces the list exactly, in order
	var walked []int
	for page := 1; page <= first.TotalPages; page++ {
		walked = append(walked, Paginate(items, page, size).Items...)
	}
	if len(walked) != len(items) {
		t.Fatalf("walked %d items, want %d", len(walked), len(items))
	}
	for i := range items {
		if walked[i] != items[i] {
			t.Fatalf("walked[%d] = %d, want %d", i, walked[i], items[i])
		}
	}
}

func TestPaginateClampsAndBounds(t *testing.T) {
	items := []string{"a", "b", "c"}

	tests := []struct {
		name      string
		page      int
		size      int
		wantItems int
		wantPage  int
	}{
		{"page below one clamps", 0, 2, 2, 1},
		{"size below one clamps", 1, 0, 1, 1},
		{"past the end is empty", 5, 2, 0, 5},
		{"final partial page", 2, 2, 1, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(items, tc.page, tc.size)
			if len(got.Items) != tc.wantItems {
				t.Errorf("len(items) = %d, want %d", len(got.Items), tc.wantItems)
			}
			if got.CurrentPage != tc.wantPage {
				t.Errorf("currentPage = %d, want %d", got.CurrentPage, tc.wantPage)
			}
		})
	}
}

func TestPaginateEmptyList(t *testing.T) {
	got := Paginate([]int(nil), 1, 10)
	if got.Total != 0 || got.TotalPages != 0 || len(got.Items) != 0 {
		t.Errorf("got %+v, want an empty zero-page result", got)
	}
}
