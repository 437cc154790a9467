package control

import (
	"strings"

	"github.com/mesh-intelligence/smarttable/internal/match"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// Choice is one entry of a select dropdown.
type Choice struct {
	Label string
	Value any
}

// Template placeholders for choice labels.
const (
	labelPlaceholder = "[[label]]"
	valuePlaceholder = "[[value]]"
)

// ChoiceOption configures a SearchSelect or SelectFilter.
type ChoiceOption func(*choiceConfig)

type choiceConfig struct {
	choices        []Choice
	explicit       bool
	label          string
	comparator     types.Comparator
	comparatorName string
	preselected    any
}

// WithValues supplies the dropdown values explicitly; each value is its own
// label. Without explicit choices they are derived from the table data.
func WithValues(values ...any) ChoiceOption {
	return func(c *choiceConfig) {
		c.choices = choicesFromValues(values)
		c.explicit = true
	}
}

// WithChoices supplies labelled choices explicitly.
func WithChoices(choices ...Choice) ChoiceOption {
	return func(c *choiceConfig) {
		c.choices = append([]Choice(nil), choices...)
		c.explicit = true
	}
}

// WithLabel sets a label template; "[[label]]" and "[[value]]" are replaced
// by each choice's label and value.
func WithLabel(template string) ChoiceOption {
	return func(c *choiceConfig) { c.label = template }
}

// WithComparator matches with cmp instead of strict equality. The name
// keys the filter, so select filters sharing a comparator share a filter.
func WithComparator(name string, cmp types.Comparator) ChoiceOption {
	return func(c *choiceConfig) {
		c.comparatorName = name
		c.comparator = cmp
	}
}

// WithPreselected starts the filter on value without piping.
func WithPreselected(value any) ChoiceOption {
	return func(c *choiceConfig) { c.preselected = value }
}

func choicesFromValues(values []any) []Choice {
	out := make([]Choice, len(values))
	for i, v := range values {
		out[i] = Choice{Label: match.Stringify(v), Value: v}
	}
	return out
}

func applyLabel(template string, choices []Choice) {
	if template == "" {
		return
	}
	for i := range choices {
		r := strings.NewReplacer(
			labelPlaceholder, choices[i].Label,
			valuePlaceholder, match.Stringify(choices[i].Value),
		)
		choices[i].Label = r.Replace(template)
	}
}

func hasChoice(choices []Choice, v any) bool {
	for _, c := range choices {
		if match.Equal(c.Value, v) {
			return true
		}
	}
	return false
}
