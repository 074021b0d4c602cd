package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srinivasagudi0/Stark-Assistant/internal/adapters/render/turn"
	"github.com/srinivasagudi0/Stark-Assistant/internal/application"
)

func newDoCmd(app *app) *cobra.Command {
	var autoApprove bool
	var plain bool

	cmd := &cobra.Command{
		Use:   "do <utterance>...",
		Short: "Run a single assistant turn and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			utterance := strings.Join(args, " ")

			// One-shot turns cannot prompt; destructive actions are
			// declined unless approved up front.
			var confirm application.ConfirmFunc
			if !autoApprove && !app.cfg.Chat.AutoApprove {
				confirm = declineDestructive
			}
			pipeline := app.newPipeline(confirm)

			var result application.TurnResult
			runTurn := func() {
				result = pipeline.RunTurn(cmd.Context(), utterance)
			}

			if plain {
				runTurn()
			} else {
				if err := runTurnSpinner(cmd.Context(), cmd.ErrOrStderr(), runTurn); err != nil {
					return err
				}
			}

			if result.Outcome == application.OutcomeCancelled {
				fmt.Fprintln(cmd.OutOrStdout(), result.Answer, "(pass --auto-approve to run destructive actions)")
				return nil
			}

			rendered, err := turn.Render(result)
			if err != nil {
				return fmt.Errorf("render turn result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&autoApprove, "auto-approve", "y", false, "Allow write/append/delete without confirmation")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable the progress spinner")

	return cmd
}
