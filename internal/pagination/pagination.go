// Package pagination computes page envelopes over in-memory ordered snapshots.
// It is a pure function layer: no storage, no transport, no shared state.
package pagination

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// DefaultSize is the page size applied when a request does not specify one.
const DefaultSize = 100

// Direction selects the sort order for a named field.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Sort names a field and the direction to order it by.
type Sort struct {
	Field     string
	Direction Direction
}

// Request describes the window a client asked for. Number is zero-based.
// A nil Sort keeps the collection in its natural (insertion) order.
type Request struct {
	Number int
	Size   int
	Sort   *Sort
}

// SortFields maps a sortable field name to its comparison function.
// I resolve fields through this explicit table instead of reflection so the
// set of sortable fields is fixed at compile time.
type SortFields[T any] map[string]func(a, b T) int

// Pageable echoes the window that produced a page.
type Pageable struct {
	Offset     int  `json:"offset"`
	PageNumber int  `json:"pageNumber"`
	PageSize   int  `json:"pageSize"`
	Paged      bool `json:"paged"`
}

// Page is the envelope returned to clients: one slice of the collection plus
// the metadata needed to iterate the rest without another round trip.
type Page[T any] struct {
	Content          []T      `json:"content"`
	TotalElements    int      `json:"totalElements"`
	TotalPages       int      `json:"totalPages"`
	Size             int      `json:"size"`
	NumberOfElements int      `json:"numberOfElements"`
	First            bool     `json:"first"`
	Last             bool     `json:"last"`
	Pageable         Pageable `json:"pageable"`
}

// ErrInvalidRequest marks a request the builder refuses to serve.
// Callers match it with errors.Is; the wrapped message carries the detail.
var ErrInvalidRequest = errors.New("invalid pagination request")

// Paginate slices items into the requested page. When a sort is given the
// snapshot is stably sorted first, so ties keep their insertion order.
// Out-of-range requests fail fast rather than being clamped.
func Paginate[T any](items []T, req Request, fields SortFields[T]) (Page[T], error) {
	if req.Number < 0 {
		return Page[T]{}, fmt.Errorf("%w: page number must be >= 0, got %d", ErrInvalidRequest, req.Number)
	}
	if req.Size <= 0 {
		return Page[T]{}, fmt.Errorf("%w: page size must be > 0, got %d", ErrInvalidRequest, req.Size)
	}

	snapshot := items
	if req.Sort != nil {
		cmp, ok := fields[req.Sort.Field]
		if !ok {
			return Page[T]{}, fmt.Errorf("%w: unknown sort field %q", ErrInvalidRequest, req.Sort.Field)
		}
		switch req.Sort.Direction {
		case Ascending:
		case Descending:
			inner := cmp
			cmp = func(a, b T) int { return -inner(a, b) }
		default:
			return Page[T]{}, fmt.Errorf("%w: unknown sort direction %q", ErrInvalidRequest, req.Sort.Direction)
		}
		// Sort a copy; the caller's snapshot stays in natural order.
		snapshot = slices.Clone(items)
		slices.SortStableFunc(snapshot, cmp)
	}

	total := len(snapshot)
	// The offset product can overflow int for huge page numbers. Any window
	// that far out is past the end of the collection, so saturate instead of
	// letting a wrapped value slip through the bounds checks below.
	offset := math.MaxInt
	if req.Number <= math.MaxInt/req.Size {
		offset = req.Number * req.Size
	}

	var content []T
	if offset < total {
		end := offset + req.Size
		if end > total {
			end = total
		}
		content = slices.Clone(snapshot[offset:end])
	} else {
		content = []T{}
	}

	totalPages := (total + req.Size - 1) / req.Size

	return Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Size:             req.Size,
		NumberOfElements: len(content),
		First:            req.Number == 0,
		Last:             offset+len(content) >= total,
		Pageable: Pageable{
			Offset:     offset,
			PageNumber: req.Number,
			PageSize:   req.Size,
			Paged:      true,
		},
	}, nil
}
