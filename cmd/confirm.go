package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/srinivasagudi0/Stark-Assistant/internal/application"
	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
)

// confirmWithPrompt asks before every destructive action in an interactive
// session. Declining cancels the turn without touching filesystem or memory.
func confirmWithPrompt() application.ConfirmFunc {
	return func(ctx context.Context, action domain.ResolvedAction) (bool, error) {
		approved := false

		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Confirm %s on %q?", action.Verb, action.Target)).
				Affirmative("Yes").
				Negative("No").
				Value(&approved),
		))

		if err := form.RunWithContext(ctx); err != nil {
			return false, fmt.Errorf("run confirmation prompt: %w", err)
		}

		return approved, nil
	}
}

// declineDestructive is the one-shot policy: destructive actions need an
// explicit --auto-approve.
func declineDestructive(context.Context, domain.ResolvedAction) (bool, error) {
	return false, nil
}
