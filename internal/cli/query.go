package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/smarttable/internal/control"
	"github.com/mesh-intelligence/smarttable/internal/match"
	"github.com/mesh-intelligence/smarttable/internal/source"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// byFilterName is the filter --by constraints are applied to.
const byFilterName = "by"

type queryFlags struct {
	search  string
	in      string
	by      []string
	strict  bool
	sort    string
	reverse bool
	page    int
	perPage int
	json    bool
	sqlite  string
	columns []string
	out     string
	sel     []int
}

func newQueryCmd(flags *rootFlags) *cobra.Command {
	qf := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "query <file>",
		Short: "Search, filter, sort and page a data file",
		Long: `Load a JSON array, JSONL file or SQLite table and print the rows the
table engine publishes after search, filters, sort and pagination.`,
		Example: `  smarttable query people.json --search re --in lastname
  smarttable query people.jsonl --by lastname=Renard --sort age --reverse
  smarttable query app.db --sqlite people --page 2 --per-page 20 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, flags, qf, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&qf.search, "search", "", "free-text search")
	f.StringVar(&qf.in, "in", "", "property path to search in (default: every property)")
	f.StringArrayVar(&qf.by, "by", nil, "key=value constraint (repeatable, all must match)")
	f.BoolVar(&qf.strict, "strict", false, "--by values must match exactly")
	f.StringVar(&qf.sort, "sort", "", "property path to sort by")
	f.BoolVar(&qf.reverse, "reverse", false, "sort descending")
	f.IntVar(&qf.page, "page", 1, "page to show (1-based)")
	f.IntVar(&qf.perPage, "per-page", 0, "rows per page (default: config items_by_page or 10)")
	f.BoolVar(&qf.json, "json", false, "print JSON instead of a table")
	f.StringVar(&qf.sqlite, "sqlite", "", "treat <file> as a SQLite database and read this table")
	f.StringSliceVar(&qf.columns, "columns", nil, "columns to print (default: every field)")
	f.StringVar(&qf.out, "out", "", "also write the page to this JSONL file")
	f.IntSliceVar(&qf.sel, "select", nil, "select rows of the page by 1-based position (select_mode decides single or multiple)")
	return cmd
}

func runQuery(cmd *cobra.Command, flags *rootFlags, qf *queryFlags, path string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	constraints, err := parseConstraints(qf.by)
	if err != nil {
		return err
	}

	src, closeSrc, err := openSource(cmd.Context(), path, qf.sqlite)
	if err != nil {
		return err
	}
	defer closeSrc()

	table, err := newTable(cfg, src)
	if err != nil {
		return err
	}
	pager, err := applyQuery(table, cfg, qf, constraints)
	if err != nil {
		return err
	}

	view := table.View()
	if err := selectRows(control.NewSelectRow(table, cfg.SelectMode), view, qf.sel); err != nil {
		return err
	}
	if qf.out != "" {
		if err := source.WriteJSONL(qf.out, view); err != nil {
			return sysError("write %s: %w", qf.out, err)
		}
	}

	page := pageOf(table, pager)
	if qf.json {
		return writeJSON(cmd.OutOrStdout(), view, page)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderView(view, qf.columns, page))
	return nil
}

// applyQuery drives table through the same adapters an interactive view
// would use and returns the pagination bound to it.
func applyQuery(table types.Table, cfg types.Config, qf *queryFlags, constraints []constraint) (*control.Pagination, error) {
	if qf.search != "" {
		search := control.NewSearch(table, qf.in, control.WithDelay(cfg.SearchDelay))
		search.Input(qf.search)
		search.Flush()
	}
	if len(constraints) > 0 {
		var opts []types.FilterOption
		if qf.strict {
			opts = append(opts, types.WithComparator(match.Strict))
		}
		by := table.RegisterFilter(byFilterName, opts...)
		for _, c := range constraints {
			table.ApplyFilter(c.value, c.key, by)
		}
	}
	if qf.sort != "" {
		if _, err := control.NewSort(table, types.ByPath(qf.sort), control.WithDefaultSort(qf.reverse)); err != nil {
			return nil, userError("sort: %w", err)
		}
	}

	perPage := qf.perPage
	if perPage <= 0 {
		perPage = cfg.ItemsByPage
	}
	pager := control.NewPagination(table, perPage, cfg.DisplayedPages)
	if qf.page != 1 {
		if err := pager.SelectPage(qf.page); err != nil {
			return nil, userError("page %d of %d: %w", qf.page, pager.NumberOfPages(), err)
		}
	}
	return pager, nil
}

func pageOf(table types.Table, pager *control.Pagination) pageInfo {
	return pageInfo{
		Page:  pager.CurrentPage(),
		Pages: pager.NumberOfPages(),
		Shown: pager.Pages(),
		Total: len(table.Snapshot()),
	}
}

// selectRows clicks the rows of view at the given 1-based positions, in
// order. In single mode only the last one stays selected.
func selectRows(click *control.SelectRow, view []*types.Row, positions []int) error {
	for _, pos := range positions {
		if pos < 1 || pos > len(view) {
			return userError("invalid --select %d: page has %d rows", pos, len(view))
		}
	}
	for _, pos := range positions {
		click.Click(view[pos-1])
	}
	return nil
}

type constraint struct {
	key   string
	value any
}

// parseConstraints splits key=value pairs. Values that parse as numbers or
// booleans are compared as such.
func parseConstraints(pairs []string) ([]constraint, error) {
	out := make([]constraint, 0, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, userError("invalid --by %q: want key=value", pair)
		}
		out = append(out, constraint{key: key, value: parseValue(raw)})
	}
	return out, nil
}

func parseValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}
