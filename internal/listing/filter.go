package listing

import (
	"strings"

	"insurance-portal/internal/models"
)

// Scoped applies only the ownership rule. The result keeps source order.
func Scoped[T any](items []T, s Schema[T], p *Principal) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if s.visible(it, p) {
			out = append(out, it)
		}
	}
	return out
}

// Filter narrows items in three steps: ownership scope, free-text search,
// then equality filters. Every step only removes elements, so filters AND
// together and the result is always a subset in source order.
func Filter[T any](items []T, s Schema[T], p *Principal, q Query) []T {
	q = q.normalized()
	out := Scoped(items, s, p)

	if q.Q != "" && s.Search != nil {
		out = keep(out, func(it T) bool {
			for _, f := range s.Search(it) {
				if strings.Contains(strings.ToLower(f), q.Q) {
					return true
				}
			}
			return false
		})
	}
	if q.Status != "" && s.Status != nil {
		out = keep(out, func(it T) bool { return s.Status(it) == q.Status })
	}
	if q.InsuranceType != "" && s.InsuranceType != nil {
		out = keep(out, func(it T) bool { return s.InsuranceType(it) == q.InsuranceType })
	}
	if q.AgencyID != "" && s.AgencyID != nil && p != nil && p.Role == models.RoleMasterAdmin {
		out = keep(out, func(it T) bool { return s.AgencyID(it) == q.AgencyID })
	}
	return out
}

// keep filters in place; callers only pass slices Filter already owns.
func keep[T any](items []T, pred func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
