package internal

// An ordered, resizable collection addressed by index. This is the only
// container the algorithms share; it stands in for a linked list, so
// neighbors are found with index arithmetic instead of pointer chasing.
//
// Positional operations throw *InvalidIndexError for an out of range index.
type Sequence[T comparable] struct {
	items []T
}

func NewSequence[T comparable](items ...T) *Sequence[T] {
	s := &Sequence[T]{items: make([]T, len(items))}
	copy(s.items, items)
	return s
}

func (s *Sequence[T]) Len() int {
	return len(s.items)
}

func (s *Sequence[T]) checkIndex(i, n int) {
	if i < 0 || i >= n {
		throw(&InvalidIndexError{Index: i, Len: len(s.items)})
	}
}

func (s *Sequence[T]) At(i int) T {
	s.checkIndex(i, len(s.items))
	return s.items[i]
}

func (s *Sequence[T]) Set(i int, v T) {
	s.checkIndex(i, len(s.items))
	s.items[i] = v
}

func (s *Sequence[T]) Append(v ...T) {
	s.items = append(s.items, v...)
}

func (s *Sequence[T]) Prepend(v T) {
	s.Insert(0, v)
}

// Insert v so that it ends up at index i. i may equal Len(), which appends.
func (s *Sequence[T]) Insert(i int, v T) {
	s.checkIndex(i, len(s.items)+1)
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
}

// Remove the element at i and return it.
func (s *Sequence[T]) Remove(i int) T {
	s.checkIndex(i, len(s.items))
	v := s.items[i]
	copy(s.items[i:], s.items[i+1:])
	s.items = s.items[:len(s.items)-1]
	return v
}

// Index of the first element equal to v, or -1.
func (s *Sequence[T]) IndexOf(v T) int {
	for i, item := range s.items {
		if item == v {
			return i
		}
	}
	return -1
}

func (s *Sequence[T]) Contains(v T) bool {
	return s.IndexOf(v) != -1
}

func (s *Sequence[T]) Swap(i, j int) {
	s.checkIndex(i, len(s.items))
	s.checkIndex(j, len(s.items))
	s.items[i], s.items[j] = s.items[j], s.items[i]
}

// A copy of the underlying items.
func (s *Sequence[T]) Items() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Sequence[T]) Clone() *Sequence[T] {
	return NewSequence(s.items...)
}

func (s *Sequence[T]) Sort(less func(a, b T) bool) {
	Quicksort(s.items, less)
}

// In place quicksort with Lomuto partitioning. The pivot is always the last
// element of the active range, so already sorted input is quadratic. That is
// fine for the point counts this package is meant for. The sort is not stable.
func Quicksort[T any](items []T, less func(a, b T) bool) {
	quicksortRange(items, 0, len(items)-1, less)
}

func quicksortRange[T any](items []T, lo, hi int, less func(a, b T) bool) {
	// Recurse on the smaller side and loop on the larger to bound stack depth
	for lo < hi {
		p := partition(items, lo, hi, less)
		if p-lo < hi-p {
			quicksortRange(items, lo, p-1, less)
			lo = p + 1
		} else {
			quicksortRange(items, p+1, hi, less)
			hi = p - 1
		}
	}
}

func partition[T any](items []T, lo, hi int, less func(a, b T) bool) int {
	pivot := items[hi]
	store := lo
	for i := lo; i < hi; i++ {
		if less(items[i], pivot) {
			items[i], items[store] = items[store], items[i]
			store++
		}
	}
	items[store], items[hi] = items[hi], items[store]
	return store
}

// Drop elements equal to their predecessor. On sorted input this removes all
// duplicates. The wraparound pair (last, first) is not considered.
func RemoveConsecutiveDuplicates[T comparable](items []T) []T {
	result := make([]T, 0, len(items))
	for i, item := range items {
		if i > 0 && item == items[i-1] {
			continue
		}
		result = append(result, item)
	}
	return result
}

// Drop every repeated element, keeping first occurrences in order.
func RemoveDuplicates[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
