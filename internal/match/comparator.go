package match

import "strings"

// Fuzzy is the default comparator. A string expected value matches when it
// is a case-insensitive substring of the actual value rendered as text; any
// other expected value must equal the actual value. nil only matches nil.
func Fuzzy(actual, expected any) bool {
	if actual == nil || expected == nil {
		return actual == nil && expected == nil
	}
	want, ok := expected.(string)
	if !ok {
		return Equal(actual, expected)
	}
	if composite(actual) {
		return false
	}
	return strings.Contains(strings.ToLower(Stringify(actual)), strings.ToLower(want))
}

// Strict matches only equal values.
func Strict(actual, expected any) bool {
	return Equal(actual, expected)
}
