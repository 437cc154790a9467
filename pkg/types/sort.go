package types

import "encoding/json"

// Getter reads a value off a row.
type Getter func(row *Row) any

// SortPredicate says how to read the sort key off a row: either a property
// path or a named getter function. Functions are not comparable, so two
// predicates are considered the same when their Key matches.
type SortPredicate struct {
	Path string // Property path, e.g. "firstname" or "address.city".
	Fn   Getter // Getter function; takes precedence over Path.
	Name string // Name of Fn; required whenever Fn is set.
}

// ByPath returns a predicate reading the given property path.
func ByPath(path string) SortPredicate {
	return SortPredicate{Path: path}
}

// ByFunc returns a predicate reading keys with fn, identified by name.
func ByFunc(name string, fn Getter) SortPredicate {
	return SortPredicate{Fn: fn, Name: name}
}

// IsZero reports whether the predicate selects nothing to sort by.
func (p SortPredicate) IsZero() bool {
	return p.Fn == nil && p.Path == ""
}

// IsFunc reports whether the predicate is a getter function.
func (p SortPredicate) IsFunc() bool {
	return p.Fn != nil
}

// Key identifies the predicate for change detection: "path:<path>",
// "func:<name>", or "" for the zero predicate.
func (p SortPredicate) Key() string {
	switch {
	case p.Fn != nil:
		return "func:" + p.Name
	case p.Path != "":
		return "path:" + p.Path
	default:
		return ""
	}
}

// Same reports whether p and o describe the same sort semantics.
func (p SortPredicate) Same(o SortPredicate) bool {
	return p.Key() == o.Key()
}

// MarshalJSON encodes a path predicate as its path and a function predicate
// as its name.
func (p SortPredicate) MarshalJSON() ([]byte, error) {
	if p.Fn != nil {
		return json.Marshal(p.Name)
	}
	if p.Path == "" {
		return []byte("null"), nil
	}
	return json.Marshal(p.Path)
}

// SortSpec is the sort part of a TableState.
type SortSpec struct {
	Predicate SortPredicate `json:"predicate"`
	Reverse   bool          `json:"reverse"`

	// FunctionName mirrors Predicate.Name when the predicate is a function
	// and is empty otherwise. Watchers compare it instead of the function.
	FunctionName string `json:"functionName,omitempty"`
}

// PaginationSpec is the pagination part of a TableState. Number is the page
// size; zero means pagination is off. NumberOfPages is derived by the pipe.
type PaginationSpec struct {
	Start         int `json:"start"`
	Number        int `json:"number,omitempty"`
	NumberOfPages int `json:"numberOfPages,omitempty"`
}

// Enabled reports whether pagination slices the view.
func (p PaginationSpec) Enabled() bool {
	return p.Number > 0
}

// CurrentPage returns the 1-based page that contains Start.
func (p PaginationSpec) CurrentPage() int {
	if p.Number <= 0 {
		return 1
	}
	return p.Start/p.Number + 1
}
