package services

import "testing"

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	cases := []struct {
		name      string
		page      int
		wantLen   int
		wantFirst int
	}{
		{name: "first page", page: 1, wantLen: 10, wantFirst: 1},
		{name: "middle page", page: 2, wantLen: 10, wantFirst: 11},
		{name: "partial last page", page: 3, wantLen: 5, wantFirst: 21},
		{name: "past the end", page: 4, wantLen: 0},
		{name: "huge page", page: int(^uint(0) >> 1), wantLen: 0},
		{name: "zero", page: 0, wantLen: 0},
		{name: "negative", page: -3, wantLen: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(items, tc.page)
			if got == nil {
				t.Fatalf("expected non-nil slice")
			}
			if len(got) != tc.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tc.wantLen)
			}
			if tc.wantLen > 0 && got[0] != tc.wantFirst {
				t.Fatalf("first = %d, want %d", got[0], tc.wantFirst)
			}
		})
	}
}

func TestPaginatePartitionsItems(t *testing.T) {
	items := make([]int, 37)
	for i := range items {
		items[i] = i
	}

	seen := make(map[int]bool)
	for page := 1; page <= PageCount(len(items)); page++ {
		chunk := Paginate(items, page)
		if len(chunk) > QuestionsPerPage {
			t.Fatalf("page %d has %d items", page, len(chunk))
		}
		for _, v := range chunk {
			if seen[v] {
				t.Fatalf("item %d appears on more than one page", v)
			}
			seen[v] = true
		}
	}
	if len(seen) != len(items) {
		t.Fatalf("pages cover %d items, want %d", len(seen), len(items))
	}
}

func TestPaginateEmpty(t *testing.T) {
	if got := Paginate([]string{}, 1); len(got) != 0 {
		t.Fatalf("expected empty page, got %v", got)
	}
	if PageCount(0) != 0 || PageCount(10) != 1 || PageCount(11) != 2 {
		t.Fatalf("unexpected page counts")
	}
}
