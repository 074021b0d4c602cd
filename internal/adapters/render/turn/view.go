package turn

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/srinivasagudi0/Stark-Assistant/internal/application"
	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
)

func renderView(result application.TurnResult, s styles) string {
	switch result.Outcome {
	case application.OutcomeAnswer:
		return s.answer.Render(result.Answer)

	case application.OutcomeCancelled:
		return s.cancelled.Render(result.Answer)

	case application.OutcomeAction:
		return renderAction(result.Action, s)

	case application.OutcomeError:
		return renderError(result, s)

	default:
		return s.errKind.Render(fmt.Sprintf("unknown outcome %q", result.Outcome))
	}
}

func renderAction(action domain.ExecutionResult, s styles) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.verb.Render(string(action.Verb)),
		" ",
		s.target.Render(action.Target),
	)

	if action.Verb == domain.VerbRead {
		// READ detail is the file contents, rendered unstyled below
		// the header so it stays copy-pasteable.
		return lipgloss.JoinVertical(lipgloss.Left, header, action.Detail)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, s.detail.Render(action.Detail))
}

func renderError(result application.TurnResult, s styles) string {
	kind := result.ErrorKind()
	label := "error"
	if kind != nil {
		label = kind.Error()
	}

	detail := ""
	if result.Err != nil {
		detail = result.Err.Error()
	}

	line := s.errKind.Render(label)
	if detail != "" && detail != label {
		line = lipgloss.JoinVertical(lipgloss.Left, line, s.errDetail.Render(detail))
	}

	return line
}
