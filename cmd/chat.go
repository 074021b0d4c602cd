package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srinivasagudi0/Stark-Assistant/internal/adapters/render/turn"
	"github.com/srinivasagudi0/Stark-Assistant/internal/application"
)

const chatBanner = `Boot sequence initiated...
All systems online.
Hello! I am Stark Assistant. Tell me what to do with your files.
Type "exit" to shut down.`

func newChatCmd(app *app) *cobra.Command {
	var autoApprove bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive assistant session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			approve := autoApprove || app.cfg.Chat.AutoApprove

			var confirm application.ConfirmFunc
			if !approve {
				confirm = confirmWithPrompt()
			}
			pipeline := app.newPipeline(confirm)

			fmt.Fprintln(cmd.OutOrStdout(), chatBanner)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(cmd.OutOrStdout(), "> ")
				if !scanner.Scan() {
					break
				}

				utterance := strings.TrimSpace(scanner.Text())
				if utterance == "" {
					continue
				}
				if utterance == "exit" {
					fmt.Fprintln(cmd.OutOrStdout(), "Shutting down.")
					break
				}

				result := pipeline.RunTurn(cmd.Context(), utterance)

				rendered, err := turn.Render(result)
				if err != nil {
					return fmt.Errorf("render turn result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read chat input: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&autoApprove, "auto-approve", false, "Skip confirmation for write/append/delete")

	return cmd
}
