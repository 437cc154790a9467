package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/smarttable/internal/source"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

func newWatchCmd(flags *rootFlags) *cobra.Command {
	qf := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-print a query whenever the file changes",
		Long: `Run a query over a JSON or JSONL file and print it again every time the
file is written or replaced, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, flags, qf, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&qf.search, "search", "", "free-text search")
	f.StringVar(&qf.in, "in", "", "property path to search in (default: every property)")
	f.StringArrayVar(&qf.by, "by", nil, "key=value constraint (repeatable, all must match)")
	f.BoolVar(&qf.strict, "strict", false, "--by values must match exactly")
	f.StringVar(&qf.sort, "sort", "", "property path to sort by")
	f.BoolVar(&qf.reverse, "reverse", false, "sort descending")
	f.IntVar(&qf.perPage, "per-page", 0, "rows per page (default: config items_by_page or 10)")
	f.BoolVar(&qf.json, "json", false, "print JSON instead of a table")
	f.StringSliceVar(&qf.columns, "columns", nil, "columns to print (default: every field)")
	qf.page = 1
	return cmd
}

func runWatch(cmd *cobra.Command, flags *rootFlags, qf *queryFlags, path string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	constraints, err := parseConstraints(qf.by)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return userError("no such file: %s", path)
	}
	file, err := source.OpenFile(path)
	if err != nil {
		return userError("load %s: %w", path, err)
	}

	table, err := newTable(cfg, file)
	if err != nil {
		return err
	}
	pager, err := applyQuery(table, cfg, qf, constraints)
	if err != nil {
		return err
	}

	w, err := source.NewWatcher(file)
	if err != nil {
		return sysError("watch %s: %w", path, err)
	}
	defer w.Close()

	out := cmd.OutOrStdout()
	show := func() error {
		page := pageOf(table, pager)
		if qf.json {
			return writeJSON(out, table.View(), page)
		}
		fmt.Fprint(out, renderView(table.View(), qf.columns, page))
		return nil
	}
	if err := show(); err != nil {
		return err
	}

	// Sync pipes before it emits source.changed, so the view is current here.
	cancel := table.Subscribe(types.ObserverFunc(func(event types.Event) {
		if event.Type != types.EventSourceChanged {
			return
		}
		if err := show(); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
	}))
	defer cancel()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := source.SyncOnChange(ctx, w, table); err != nil && !errors.Is(err, context.Canceled) {
		return sysError("watch %s: %w", path, err)
	}
	return nil
}
