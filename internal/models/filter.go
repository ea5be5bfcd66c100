package models

import "strings"

// FilterAll is the sentinel for "no constraint" used by the list menus.
const FilterAll = "all"

// Filter narrows a record listing. Every predicate is optional; an empty
// value or FilterAll means no constraint. Set predicates are combined with
// AND.
type Filter struct {
	// Query matches name or position, case-insensitively, as a substring.
	Query    string
	Position string
	Month    string
	Status   string
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, FilterAll)
}

// Match reports whether r satisfies every active predicate.
func (f Filter) Match(r EmployeeRecord) bool {
	if active(f.Query) {
		q := strings.ToLower(strings.TrimSpace(f.Query))
		if !strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Position), q) {
			return false
		}
	}
	if active(f.Position) && r.Position != strings.TrimSpace(f.Position) {
		return false
	}
	if active(f.Month) && r.Month != strings.TrimSpace(f.Month) {
		return false
	}
	if active(f.Status) && string(r.Status) != strings.ToLower(strings.TrimSpace(f.Status)) {
		return false
	}
	return true
}

// IsEmpty is true when the filter has no active predicate.
func (f Filter) IsEmpty() bool {
	return !active(f.Query) && !active(f.Position) && !active(f.Month) && !active(f.Status)
}
