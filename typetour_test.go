package typetour_test

import (
	"errors"
	"testing"

	"github.com/onsi/gomega"
	"github.com/toejough/typetour"
	"pgregory.net/rapid"
)

func TestFormatString(t *testing.T) {
	t.Parallel()

	expect := gomega.NewWithT(t)

	expect.Expect(typetour.FormatString("Hi")).To(gomega.Equal("HI"))
	expect.Expect(typetour.FormatString("Hi", typetour.WithUpper(true))).To(gomega.Equal("HI"))
	expect.Expect(typetour.FormatString("Hi", typetour.WithUpper(false))).To(gomega.Equal("hi"))
}

func TestFilterByRating(t *testing.T) {
	t.Parallel()

	got := typetour.FilterByRating([]typetour.Rated{{Title: "a", Rating: 3}, {Title: "b", Rating: 5}})

	gomega.NewWithT(t).Expect(got).To(gomega.Equal([]typetour.Rated{{Title: "b", Rating: 5}}))
}

func TestConcatenateArrays(t *testing.T) {
	t.Parallel()

	expect := gomega.NewWithT(t)

	expect.Expect(typetour.ConcatenateArrays([]int{1, 2}, []int{3}, []int{})).To(gomega.Equal([]int{1, 2, 3}))
	expect.Expect(typetour.ConcatenateArrays[int]()).To(gomega.Equal([]int{}))
}

func TestVehicleAndCar(t *testing.T) {
	t.Parallel()

	expect := gomega.NewWithT(t)

	expect.Expect(typetour.NewVehicle("Toyota", 2020).Info()).To(gomega.Equal("Make: Toyota, Year: 2020"))

	car := typetour.NewCar("Honda", 2021, "Civic")
	expect.Expect(car.Info()).To(gomega.Equal("Make: Honda, Year: 2021"))
	expect.Expect(car.ModelInfo()).To(gomega.Equal("Model: Civic"))
}

func TestProcessValue(t *testing.T) {
	t.Parallel()

	expect := gomega.NewWithT(t)

	expect.Expect(typetour.ProcessValue(typetour.Text("hello"))).To(gomega.Equal(5.0))
	expect.Expect(typetour.ProcessValue(typetour.Number(10))).To(gomega.Equal(20.0))
}

func TestGetMostExpensiveProduct(t *testing.T) {
	t.Parallel()

	expect := gomega.NewWithT(t)

	_, found := typetour.GetMostExpensiveProduct(nil)
	expect.Expect(found).To(gomega.BeFalse())

	got, found := typetour.GetMostExpensiveProduct([]typetour.Product{{Name: "a", Price: 5}, {Name: "b", Price: 9}})
	expect.Expect(found).To(gomega.BeTrue())
	expect.Expect(got).To(gomega.Equal(typetour.Product{Name: "b", Price: 9}))

	got, _ = typetour.GetMostExpensiveProduct([]typetour.Product{{Name: "a", Price: 9}, {Name: "b", Price: 9}})
	expect.Expect(got.Name).To(gomega.Equal("a"))
}

func TestTypeConcepts(t *testing.T) {
	t.Parallel()

	expect := gomega.NewWithT(t)

	price := typetour.NewField("Price", func(p typetour.Product) float64 { return p.Price })
	expect.Expect(typetour.Property(typetour.Product{Name: "a", Price: 3}, price)).To(gomega.Equal(3.0))

	var unknown any = "text"

	s, err := typetour.Narrow[string](unknown)
	expect.Expect(err).NotTo(gomega.HaveOccurred())
	expect.Expect(s).To(gomega.Equal("text"))

	_, err = typetour.Narrow[float64](unknown)
	expect.Expect(errors.Is(err, typetour.ErrTypeMismatch)).To(gomega.BeTrue())

	expect.Expect(typetour.Area(typetour.Square{Side: 2})).To(gomega.Equal(4.0))
	expect.Expect(func() { typetour.Unreachable(struct{}{}) }).
		To(gomega.PanicWith(gomega.MatchError(typetour.ErrUnhandledVariant)))
}

// TestPurity_Property proves repeated calls with the same input give the same output.
func TestPurity_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "s")
		nums := rapid.SliceOf(rapid.Int()).Draw(rt, "nums")
		prices := rapid.SliceOf(rapid.Float64Range(0, 100)).Draw(rt, "prices")

		products := make([]typetour.Product, len(prices))
		for i, p := range prices {
			products[i] = typetour.Product{Name: s, Price: p}
		}

		expect := gomega.NewWithT(rt)

		expect.Expect(typetour.FormatString(s)).To(gomega.Equal(typetour.FormatString(s)))
		expect.Expect(typetour.ProcessValue(typetour.Text(s))).To(gomega.Equal(typetour.ProcessValue(typetour.Text(s))))
		expect.Expect(typetour.ConcatenateArrays(nums, nums)).To(gomega.Equal(typetour.ConcatenateArrays(nums, nums)))

		first, firstFound := typetour.GetMostExpensiveProduct(products)
		second, secondFound := typetour.GetMostExpensiveProduct(products)
		expect.Expect(first).To(gomega.Equal(second))
		expect.Expect(firstFound).To(gomega.Equal(secondFound))
	})
}
