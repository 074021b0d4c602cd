package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srinivasagudi0/Stark-Assistant/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the assistant configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Write a starter config file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path, err := config.WriteDefault()
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the assistant state directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dir, err := config.Dir()
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
	)

	return cmd
}
