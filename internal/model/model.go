// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

// Product is a catalog entry. It is an immutable value: once listed it is
// never updated in place, only replaced in the backing catalog.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
