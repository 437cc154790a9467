package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mesh-intelligence/smarttable/internal/match"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// pageInfo describes which part of the view a command printed.
type pageInfo struct {
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Shown []int `json:"shown"`
	Total int   `json:"total"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// selectedMark heads and fills the marker column of selected rows.
const selectedMark = "*"

// renderView draws rows as a bordered table followed by a page line.
// Without columns every field name found in rows is shown, sorted. When a
// row is selected a leading marker column flags it.
func renderView(rows []*types.Row, columns []string, page pageInfo) string {
	if len(columns) == 0 {
		columns = fieldNames(rows)
	}
	marked := slices.ContainsFunc(rows, func(r *types.Row) bool { return r.Selected })
	headers := columns
	if marked {
		headers = append([]string{selectedMark}, columns...)
	}

	var b strings.Builder
	if len(rows) == 0 {
		b.WriteString("No rows.\n")
	} else {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(headers...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		for _, row := range rows {
			cs := cells(row, columns)
			if marked {
				mark := ""
				if row.Selected {
					mark = selectedMark
				}
				cs = append([]string{mark}, cs...)
			}
			t.Row(cs...)
		}
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	b.WriteString(footerStyle.Render(pageLine(page)))
	b.WriteByte('\n')
	return b.String()
}

func pageLine(page pageInfo) string {
	pages := max(page.Pages, 1)
	return fmt.Sprintf("page %d of %d (%d rows)", page.Page, pages, page.Total)
}

func cells(row *types.Row, columns []string) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		v, ok := match.Resolve(row, col)
		if !ok {
			continue
		}
		out[i] = cellText(v)
	}
	return out
}

func cellText(v any) string {
	switch v.(type) {
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
	return match.Stringify(v)
}

// fieldNames returns the sorted union of the rows' top-level field names.
func fieldNames(rows []*types.Row) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for k := range row.Fields {
			seen[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// writeJSON prints rows and page info as one indented JSON object.
func writeJSON(w io.Writer, rows []*types.Row, page pageInfo) error {
	if rows == nil {
		rows = []*types.Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Rows       []*types.Row `json:"rows"`
		Pagination pageInfo     `json:"pagination"`
	}{rows, page}); err != nil {
		return sysError("encode output: %w", err)
	}
	return nil
}

// writeValuesJSON prints values as an indented JSON array.
func writeValuesJSON(w io.Writer, values []any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(values); err != nil {
		return sysError("encode output: %w", err)
	}
	return nil
}
