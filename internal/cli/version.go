package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/smarttable/pkg/smarttable"
)

const modulePath = "github.com/mesh-intelligence/smarttable"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the smarttable version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "smarttable v%s\nmodule: %s\n", smarttable.Version, modulePath)
			return nil
		},
	}
}
