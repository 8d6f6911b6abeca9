package listing

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrNotConfirmed = errors.New("confirmation required")
)

// Confirm is the yes/no gate in front of a delete.
type Confirm func(id string) bool

func Confirmed(string) bool { return true }
func Declined(string) bool  { return false }

// Find returns the element with the given id.
func Find[T any](items []T, s Schema[T], id string) (T, bool) {
	for _, it := range items {
		if s.ID(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Create returns a new slice with item appended. The input is not modified.
func Create[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// Update returns a new slice where the element with id is replaced by
// apply(element), at the same position. A missing id yields ErrNotFound and
// the input unchanged.
func Update[T any](items []T, s Schema[T], id string, apply func(T) T) ([]T, error) {
	for i, it := range items {
		if s.ID(it) != id {
			continue
		}
		out := make([]T, len(items))
		copy(out, items)
		out[i] = apply(it)
		return out, nil
	}
	return items, ErrNotFound
}

// Delete removes the element with id once confirm agrees. There is no
// dependency check: removing a parent leaves its children in place.
func Delete[T any](items []T, s Schema[T], id string, confirm Confirm) ([]T, error) {
	idx := -1
	for i, it := range items {
		if s.ID(it) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items, ErrNotFound
	}
	if confirm == nil || !confirm(id) {
		return items, ErrNotConfirmed
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...), nil
}
