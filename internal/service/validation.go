package service

import (
	"cmp"
	"strings"

	"github.com/dkovalenko/product-catalog-service/internal/model"
	"github.com/dkovalenko/product-catalog-service/internal/pagination"
)

// productSortFields is the fixed table of fields clients may sort by.
// New sortable fields are added here, never discovered via reflection.
var productSortFields = pagination.SortFields[model.Product]{
	"price": func(a, b model.Product) int { return cmp.Compare(a.Price, b.Price) },
	"name":  func(a, b model.Product) int { return cmp.Compare(a.Name, b.Name) },
}

// normalizeListRequest fills the one default the service owns: an unset sort
// direction means ascending. Window defaults belong to the transport layer so
// an explicit size=0 stays a client error instead of being silently corrected.
func normalizeListRequest(req pagination.Request) pagination.Request {
	if req.Sort != nil && req.Sort.Direction == "" {
		req.Sort = &pagination.Sort{Field: req.Sort.Field, Direction: pagination.Ascending}
	}
	return req
}

// validateListRequest collects every violation so the client sees them all at once.
func validateListRequest(req pagination.Request) []FieldError {
	var ferrs []FieldError
	if req.Number < 0 {
		ferrs = append(ferrs, FieldError{Field: "page", Message: "must be >= 0"})
	}
	if req.Size <= 0 {
		ferrs = append(ferrs, FieldError{Field: "size", Message: "must be > 0"})
	}
	if req.Sort != nil {
		if _, ok := productSortFields[req.Sort.Field]; !ok {
			ferrs = append(ferrs, FieldError{Field: "sort", Message: "unknown sort field"})
		}
		switch req.Sort.Direction {
		case pagination.Ascending, pagination.Descending:
		default:
			ferrs = append(ferrs, FieldError{Field: "sort", Message: "direction must be ASC or DESC"})
		}
	}
	return ferrs
}

func validateProductName(name string) []FieldError {
	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	} else if len([]rune(name)) > 100 {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "length must be at most 100"})
	}
	return ferrs
}

// ParseSort turns the wire form "field,DIRECTION" into a sort spec.
// Direction is optional and case-insensitive; "price" alone means ascending.
func ParseSort(raw string) *pagination.Sort {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	field, dir, found := strings.Cut(raw, ",")
	s := &pagination.Sort{Field: strings.TrimSpace(field), Direction: pagination.Ascending}
	if found {
		s.Direction = pagination.Direction(strings.ToUpper(strings.TrimSpace(dir)))
	}
	return s
}
