// Package keyof shows a generated key set doing the job of TypeScript's keyof.
package keyof

import (
	"time"

	"github.com/toejough/typetour"
)

//go:generate go run ../../keyofgen Listing

// Listing is a product offered in a catalog.
type Listing struct {
	typetour.Product

	Rating float64
	Listed time.Time
	Tags   []string
	sku    string
}

// NewListing creates a Listing.
func NewListing(product typetour.Product, rating float64, listed time.Time, sku string, tags ...string) Listing {
	return Listing{Product: product, Rating: rating, Listed: listed, Tags: tags, sku: sku}
}

// SKU returns the listing's stock keeping unit.
func (l Listing) SKU() string {
	return l.sku
}
