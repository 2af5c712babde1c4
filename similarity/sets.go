package similarity

// Set is a hash set over any comparable element type
type Set[T comparable] map[T]struct{}

// NewSet builds a Set from the given elements
func NewSet[T comparable](elements ...T) Set[T] {
	s := make(Set[T], len(elements))
	for _, e := range elements {
		s[e] = struct{}{}
	}
	return s
}

// Jaccard returns |a ∩ b| / |a ∪ b|. Two empty sets have an empty union, and
// the similarity is defined as 0 rather than NaN.
func Jaccard[T comparable](a, b Set[T]) float64 {
	intersection := 0
	for e := range a {
		if _, ok := b[e]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
