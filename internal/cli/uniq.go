package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUniqCmd(flags *rootFlags) *cobra.Command {
	var (
		sqliteTable string
		asJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "uniq <file> <path>",
		Short: "List the distinct values of a property",
		Long:  "Print the sorted distinct values found at a property path across every row.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			src, closeSrc, err := openSource(cmd.Context(), args[0], sqliteTable)
			if err != nil {
				return err
			}
			defer closeSrc()

			table, err := newTable(cfg, src)
			if err != nil {
				return err
			}
			values := table.GetUniqueValues(args[1])
			if asJSON {
				return writeValuesJSON(cmd.OutOrStdout(), values)
			}
			for _, v := range values {
				if v == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "<null>")
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), cellText(v))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sqliteTable, "sqlite", "", "treat <file> as a SQLite database and read this table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON array")
	return cmd
}
