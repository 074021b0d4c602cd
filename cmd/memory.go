package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newMemoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Inspect or clear the remembered action",
	}

	cmd.AddCommand(
		newMemoryShowCmd(app),
		newMemoryClearCmd(app),
	)

	return cmd
}

func newMemoryShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the remembered action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry, ok, err := app.memory.Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("read memory: %w", err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing remembered yet.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", entry.Verb, entry.Target, entry.Timestamp.Format(time.RFC3339))
			return nil
		},
	}
}

func newMemoryClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the remembered action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.memory.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear memory: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Memory cleared.")
			return nil
		},
	}
}
