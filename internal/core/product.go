package core

// Product is a named item with a price.
type Product struct {
	Name  string
	Price float64
}

// GetMostExpensiveProduct returns the highest priced product and true, or the zero Product and
// false when products is empty. Among equal prices the earliest product wins.
func GetMostExpensiveProduct(products []Product) (Product, bool) {
	if len(products) == 0 {
		return Product{}, false
	}

	best := products[0]

	for _, p := range products[1:] {
		if p.Price > best.Price {
			best = p
		}
	}

	return best, true
}
