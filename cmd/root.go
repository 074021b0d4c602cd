package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "stark",
		Short:         "Stark Assistant: natural-language local file operations",
		Long:          "stark turns free-form commands into deterministic local file operations. A language model extracts the intent; reference resolution and execution stay local and deterministic.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newChatCmd(app),
		newDoCmd(app),
		newMemoryCmd(app),
		newConfigCmd(),
	)

	return rootCmd
}
