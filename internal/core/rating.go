package core

// MinRating is the lowest rating FilterByRating keeps.
const MinRating = 4

// Rated is a titled item with a numeric rating.
type Rated struct {
	Title  string
	Rating float64
}

// FilterByRating returns the items rated MinRating or higher, in their original order.
// The result is never nil and never shares storage with items.
func FilterByRating(items []Rated) []Rated {
	kept := make([]Rated, 0, len(items))

	for _, item := range items {
		if item.Rating >= MinRating {
			kept = append(kept, item)
		}
	}

	return kept
}
