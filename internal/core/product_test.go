package core_test

import (
	"testing"

	"github.com/onsi/gomega"
	"github.com/toejough/typetour/internal/core"
	"pgregory.net/rapid"
)

func TestGetMostExpensiveProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		products []core.Product
		expected core.Product
		found    bool
	}{
		{name: "nil", products: nil, found: false},
		{name: "empty", products: []core.Product{}, found: false},
		{
			name:     "single",
			products: []core.Product{{Name: "a", Price: 1}},
			expected: core.Product{Name: "a", Price: 1},
			found:    true,
		},
		{
			name:     "max last",
			products: []core.Product{{Name: "a", Price: 5}, {Name: "b", Price: 9}},
			expected: core.Product{Name: "b", Price: 9},
			found:    true,
		},
		{
			name:     "tie keeps first",
			products: []core.Product{{Name: "a", Price: 2}, {Name: "b", Price: 7}, {Name: "c", Price: 7}},
			expected: core.Product{Name: "b", Price: 7},
			found:    true,
		},
		{
			name:     "negative prices",
			products: []core.Product{{Name: "a", Price: -3}, {Name: "b", Price: -1}},
			expected: core.Product{Name: "b", Price: -1},
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expect := gomega.NewWithT(t)
			got, found := core.GetMostExpensiveProduct(tt.products)

			expect.Expect(found).To(gomega.Equal(tt.found))
			expect.Expect(got).To(gomega.Equal(tt.expected))
		})
	}
}

// TestGetMostExpensiveProduct_Property proves the result is the first product holding the maximum price.
func TestGetMostExpensiveProduct_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		products := rapid.SliceOfN(genProduct(), 1, 20).Draw(rt, "products")

		got, found := core.GetMostExpensiveProduct(products)
		if !found {
			rt.Fatalf("expected a result for %d products", len(products))
		}

		first := -1

		for i, p := range products {
			if p.Price > got.Price {
				rt.Fatalf("products[%d] costs %v, more than result %v", i, p.Price, got.Price)
			}

			if first < 0 && p.Price == got.Price {
				first = i
			}
		}

		if products[first] != got {
			rt.Fatalf("got %+v, want first maximum %+v", got, products[first])
		}
	})
}

func genProduct() *rapid.Generator[core.Product] {
	return rapid.Custom(func(t *rapid.T) core.Product {
		return core.Product{
			Name: rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "name"),
			// Few distinct prices so ties are common
			Price: float64(rapid.IntRange(0, 5).Draw(t, "price")),
		}
	})
}
