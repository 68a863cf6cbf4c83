package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/vocabankify/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the vocabankify configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFileName
			if len(args) == 1 {
				path = args[0]
			}

			if err := config.Default().Save(path); err != nil {
				if errors.Is(err, fs.ErrExist) {
					return fmt.Errorf("config file %s already exists", path)
				}
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Wrote default configuration to", path)
			return nil
		},
	})

	return cmd
}
