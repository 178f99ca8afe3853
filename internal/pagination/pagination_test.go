package pagination_test

import (
	"cmp"
	"errors"
	"math"
	"testing"

	"github.com/dkovalenko/product-catalog-service/internal/pagination"
)

type item struct {
	name  string
	price float64
}

var fields = pagination.SortFields[item]{
	"price": func(a, b item) int { return cmp.Compare(a.price, b.price) },
	"name":  func(a, b item) int { return cmp.Compare(a.name, b.name) },
}

func catalog() []item {
	return []item{
		{"product_A", 1.0},
		{"product_B", 2.0},
		{"product_C", 3.0},
		{"product_D", 4.0},
	}
}

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

func TestPaginate_DefaultWindowCoversAll(t *testing.T) {
	page, err := pagination.Paginate(catalog(), pagination.Request{Number: 0, Size: pagination.DefaultSize}, fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 4 || page.TotalPages != 1 {
		t.Fatalf("expected totals 4/1, got %d/%d", page.TotalElements, page.TotalPages)
	}
	if !page.First || !page.Last {
		t.Fatalf("single page must be both first and last: first=%v last=%v", page.First, page.Last)
	}
	if page.Size != 100 || page.NumberOfElements != 4 {
		t.Fatalf("expected size=100 numberOfElements=4, got %d/%d", page.Size, page.NumberOfElements)
	}
	if got := names(page.Content); got[0] != "product_A" || got[3] != "product_D" {
		t.Fatalf("natural order broken: %v", got)
	}
	if page.Pageable.Offset != 0 || page.Pageable.PageNumber != 0 || page.Pageable.PageSize != 100 || !page.Pageable.Paged {
		t.Fatalf("unexpected pageable: %+v", page.Pageable)
	}
}

func TestPaginate_SecondPageSortedByPriceDesc(t *testing.T) {
	req := pagination.Request{
		Number: 1,
		Size:   2,
		Sort:   &pagination.Sort{Field: "price", Direction: pagination.Descending},
	}
	page, err := pagination.Paginate(catalog(), req, fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 4 || page.TotalPages != 2 {
		t.Fatalf("expected totals 4/2, got %d/%d", page.TotalElements, page.TotalPages)
	}
	if page.First || !page.Last {
		t.Fatalf("page 1 of 2 must be last but not first: first=%v last=%v", page.First, page.Last)
	}
	if page.NumberOfElements != 2 || page.Pageable.Offset != 2 {
		t.Fatalf("expected 2 elements at offset 2, got %d at %d", page.NumberOfElements, page.Pageable.Offset)
	}
	got := names(page.Content)
	if got[0] != "product_B" || got[1] != "product_A" {
		t.Fatalf("expected [product_B product_A], got %v", got)
	}
}

func TestPaginate_WindowArithmetic(t *testing.T) {
	cases := []struct {
		name         string
		number, size int
		wantCount    int
		wantPages    int
		wantFirst    bool
		wantLast     bool
	}{
		{"exact fit", 0, 4, 4, 1, true, true},
		{"first of two", 0, 3, 3, 2, true, false},
		{"partial tail", 1, 3, 1, 2, false, true},
		{"past the end", 5, 2, 0, 2, false, true},
		{"size one middle", 2, 1, 1, 4, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := pagination.Paginate(catalog(), pagination.Request{Number: tc.number, Size: tc.size}, fields)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.NumberOfElements != tc.wantCount {
				t.Fatalf("numberOfElements: want %d, got %d", tc.wantCount, page.NumberOfElements)
			}
			if page.NumberOfElements != len(page.Content) {
				t.Fatalf("numberOfElements %d != len(content) %d", page.NumberOfElements, len(page.Content))
			}
			if page.TotalPages != tc.wantPages {
				t.Fatalf("totalPages: want %d, got %d", tc.wantPages, page.TotalPages)
			}
			if page.First != tc.wantFirst || page.Last != tc.wantLast {
				t.Fatalf("first/last: want %v/%v, got %v/%v", tc.wantFirst, tc.wantLast, page.First, page.Last)
			}
			if page.Pageable.Offset != tc.number*tc.size {
				t.Fatalf("offset: want %d, got %d", tc.number*tc.size, page.Pageable.Offset)
			}
		})
	}
}

func TestPaginate_HugePageNumberIsPastTheEnd(t *testing.T) {
	// Page numbers whose offset product overflows int must behave like any
	// other window past the end, not wrap around into the collection.
	cases := []struct {
		name   string
		number int
	}{
		{"product wraps negative", 92233720368547759},
		{"product wraps positive", 184467440737095517},
		{"max int page", math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := pagination.Paginate(catalog(), pagination.Request{Number: tc.number, Size: 100}, fields)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.NumberOfElements != 0 || len(page.Content) != 0 {
				t.Fatalf("expected an empty page, got %d elements", page.NumberOfElements)
			}
			if page.First || !page.Last {
				t.Fatalf("window past the end must be last only: first=%v last=%v", page.First, page.Last)
			}
			if page.TotalElements != 4 || page.TotalPages != 1 {
				t.Fatalf("totals must be unaffected, got %d/%d", page.TotalElements, page.TotalPages)
			}
			if page.Pageable.Offset < page.TotalElements {
				t.Fatalf("offset must stay past the end, got %d", page.Pageable.Offset)
			}
		})
	}
}

func TestPaginate_EmptyCollection(t *testing.T) {
	page, err := pagination.Paginate([]item{}, pagination.Request{Number: 0, Size: 10}, fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 0 || page.TotalPages != 0 {
		t.Fatalf("empty collection: totals must be 0/0, got %d/%d", page.TotalElements, page.TotalPages)
	}
	if !page.First || !page.Last {
		t.Fatalf("empty collection page must be first and last")
	}
	if page.Content == nil || len(page.Content) != 0 {
		t.Fatalf("content must be an empty slice, got %v", page.Content)
	}
}

func TestPaginate_StableSortKeepsTieOrder(t *testing.T) {
	items := []item{
		{"first", 2.0},
		{"second", 2.0},
		{"cheap", 1.0},
		{"third", 2.0},
	}
	req := pagination.Request{Number: 0, Size: 10, Sort: &pagination.Sort{Field: "price", Direction: pagination.Ascending}}
	page, err := pagination.Paginate(items, req, fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := names(page.Content)
	want := []string{"cheap", "first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tie order broken: want %v, got %v", want, got)
		}
	}
	// Descending must also keep insertion order among ties, not reverse it.
	req.Sort.Direction = pagination.Descending
	page, err = pagination.Paginate(items, req, fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got = names(page.Content)
	want = []string{"first", "second", "third", "cheap"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("descending tie order broken: want %v, got %v", want, got)
		}
	}
}

func TestPaginate_SortDoesNotMutateInput(t *testing.T) {
	items := catalog()
	req := pagination.Request{Number: 0, Size: 10, Sort: &pagination.Sort{Field: "price", Direction: pagination.Descending}}
	if _, err := pagination.Paginate(items, req, fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].name != "product_A" || items[3].name != "product_D" {
		t.Fatalf("input slice was mutated: %v", names(items))
	}
}

func TestPaginate_RejectsBadRequests(t *testing.T) {
	cases := []struct {
		name string
		req  pagination.Request
	}{
		{"negative page", pagination.Request{Number: -1, Size: 10}},
		{"zero size", pagination.Request{Number: 0, Size: 0}},
		{"negative size", pagination.Request{Number: 0, Size: -5}},
		{"unknown sort field", pagination.Request{Number: 0, Size: 10, Sort: &pagination.Sort{Field: "weight", Direction: pagination.Ascending}}},
		{"bad direction", pagination.Request{Number: 0, Size: 10, Sort: &pagination.Sort{Field: "price", Direction: "SIDEWAYS"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pagination.Paginate(catalog(), tc.req, fields)
			if !errors.Is(err, pagination.ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}
