// Package typetour is a tour of TypeScript's keyof operator and its any, unknown, and never types,
// told in Go, together with a handful of small utilities from the same tutorial.
//
//   - keyof: Field and Property give typed access to a struct field by key. The keyofgen tool
//     generates, for any struct, a string type naming its fields and a table of Fields.
//   - any: Go's any. Nothing is checked until a value is used.
//   - unknown: Narrow turns an any into a concrete type, or reports ErrTypeMismatch.
//   - never: Unreachable closes the default branch of a switch over a sealed interface such as
//     Value or Shape.
//
// This is the public API entry point. Implementation lives in internal/core.
package typetour

import (
	"github.com/toejough/typetour/internal/core"
)

// Exported constants.
const (
	// MinRating is the lowest rating FilterByRating keeps.
	MinRating = core.MinRating
)

// Exported variables.
var (
	ErrTypeMismatch     = core.ErrTypeMismatch
	ErrUnhandledVariant = core.ErrUnhandledVariant
	ErrUnknownKey       = core.ErrUnknownKey
)

// Car is a Vehicle with a model.
type Car = core.Car

// NewCar creates a Car.
func NewCar(manufacturer string, year int, model string) Car {
	return core.NewCar(manufacturer, year, model)
}

// Circle is a Shape of the given radius.
type Circle = core.Circle

// Field is a named, typed accessor for one field of T whose value has type V.
type Field[T, V any] = core.Field[T, V]

// NewField creates a Field called name that reads its value with get.
func NewField[T, V any](name string, get func(T) V) Field[T, V] {
	return core.NewField(name, get)
}

// FormatOption configures FormatString.
type FormatOption = core.FormatOption

// Number is the numeric variant of Value.
type Number = core.Number

// Product is a named item with a price.
type Product = core.Product

// Rated is a titled item with a numeric rating.
type Rated = core.Rated

// Shape is a closed set of plane figures.
type Shape = core.Shape

// Square is a Shape of the given side length.
type Square = core.Square

// Text is the string variant of Value.
type Text = core.Text

// Triangle is a Shape of the given base and height.
type Triangle = core.Triangle

// Value is either Text or Number.
type Value = core.Value

// Vehicle is a make and model year.
type Vehicle = core.Vehicle

// NewVehicle creates a Vehicle.
func NewVehicle(manufacturer string, year int) Vehicle {
	return core.NewVehicle(manufacturer, year)
}

// Area returns the area of shape.
func Area(shape Shape) float64 {
	return core.Area(shape)
}

// ConcatenateArrays returns the elements of every sequence, in argument order.
func ConcatenateArrays[T any](seqs ...[]T) []T {
	return core.ConcatenateArrays(seqs...)
}

// FilterByRating returns the items rated MinRating or higher, in their original order.
func FilterByRating(items []Rated) []Rated {
	return core.FilterByRating(items)
}

// FormatString converts input to upper case, or to lower case when WithUpper(false) is given.
func FormatString(input string, options ...FormatOption) string {
	return core.FormatString(input, options...)
}

// GetMostExpensiveProduct returns the highest priced product, the earliest on ties.
// It reports false when products is empty.
func GetMostExpensiveProduct(products []Product) (Product, bool) {
	return core.GetMostExpensiveProduct(products)
}

// Narrow returns v as a T, or an error wrapping ErrTypeMismatch.
func Narrow[T any](v any) (T, error) {
	return core.Narrow[T](v)
}

// ProcessValue returns the length of a Text in UTF-16 code units, or double a Number.
func ProcessValue(value Value) float64 {
	return core.ProcessValue(value)
}

// Property reads field from obj.
func Property[T, V any](obj T, field Field[T, V]) V {
	return core.Property(obj, field)
}

// Unreachable panics. Call it where exhaustive handling of a sealed interface ends.
func Unreachable(v any) {
	core.Unreachable(v)
}

// WithUpper selects upper case (true) or lower case (false) output.
func WithUpper(upper bool) FormatOption {
	return core.WithUpper(upper)
}
