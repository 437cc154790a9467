package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/smarttable/internal/paths"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Create the configuration directory and write config.yaml with default values.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.yaml")
	return cmd
}

func runInit(cmd *cobra.Command, flags *rootFlags, force bool) error {
	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return sysError("create config directory: %w", err)
	}

	path := paths.ConfigFile(dir)
	written, err := writeConfig(path, types.DefaultConfig(), force)
	if err != nil {
		return sysError("write config: %w", err)
	}
	if !written {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
		return nil
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n%s\n", path, describeConfig(cfg))
	return nil
}

// writeConfig writes cfg as YAML to path. An existing file is kept unless
// force is set. Reports whether the file was written.
func writeConfig(path string, cfg types.Config, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		} else if !os.IsNotExist(err) {
			return false, err
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return false, err
	}
	header := []byte("# smarttable configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
