package turn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinivasagudi0/Stark-Assistant/internal/application"
	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
)

func TestRenderAnswer(t *testing.T) {
	out, err := Render(application.TurnResult{Outcome: application.OutcomeAnswer, Answer: "Happy to help."})
	require.NoError(t, err)
	assert.Contains(t, out, "Happy to help.")
}

func TestRenderActionShowsVerbTargetAndDetail(t *testing.T) {
	out, err := Render(application.TurnResult{
		Outcome: application.OutcomeAction,
		Action: domain.ExecutionResult{
			Verb:    domain.VerbWrite,
			Target:  "notes.txt",
			Success: true,
			Detail:  "Wrote 5 bytes to notes.txt.",
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "WRITE")
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "Wrote 5 bytes")
}

func TestRenderReadKeepsContentsVerbatim(t *testing.T) {
	contents := "line one\nline two"
	out, err := Render(application.TurnResult{
		Outcome: application.OutcomeAction,
		Action: domain.ExecutionResult{
			Verb:    domain.VerbRead,
			Target:  "main.py",
			Success: true,
			Detail:  contents,
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "line one")
	assert.Contains(t, out, "line two")
}

func TestRenderCancelled(t *testing.T) {
	out, err := Render(application.TurnResult{Outcome: application.OutcomeCancelled, Answer: "Operation cancelled."})
	require.NoError(t, err)
	assert.Contains(t, out, "Operation cancelled.")
}

func TestRenderErrorShowsKindAndDetail(t *testing.T) {
	turnErr := fmt.Errorf("resolve references: %w", domain.ErrNoPriorContext)
	out, err := Render(application.TurnResult{Outcome: application.OutcomeError, Err: turnErr})
	require.NoError(t, err)
	assert.Contains(t, out, "no prior action to refer to")
	assert.Contains(t, out, "resolve references")
}
