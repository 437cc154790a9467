package match

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// NewCollator returns a collator for locale, falling back to the root locale
// when the tag does not parse.
func NewCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return collate.New(tag)
}

// UniqueValues reads path off every row, sorts the values, and drops
// adjacent duplicates. Strings sort with coll (locale-aware), other values
// with Compare; missing values sort last. A nil coll uses the root locale.
func UniqueValues(rows []*types.Row, path string, coll *collate.Collator) []any {
	if coll == nil {
		coll = collate.New(language.Und)
	}
	values := make([]any, len(rows))
	for i, r := range rows {
		values[i], _ = Resolve(r, path)
	}

	slices.SortStableFunc(values, func(a, b any) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		case b == nil:
			return -1
		}
		sa, aok := a.(string)
		sb, bok := b.(string)
		if aok && bok {
			return coll.CompareString(sa, sb)
		}
		return Compare(a, b)
	})

	out := make([]any, 0, len(values))
	for i, v := range values {
		if i > 0 && Equal(v, values[i-1]) {
			continue
		}
		out = append(out, v)
	}
	return out
}
