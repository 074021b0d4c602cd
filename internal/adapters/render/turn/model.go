// Package turn renders a pipeline turn result for the terminal using the
// same render-once bubbletea shape as the rest of the CLI output.
package turn

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/srinivasagudi0/Stark-Assistant/internal/application"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	result application.TurnResult
	styles styles
	output string
}

func newModel(result application.TurnResult) model {
	return model{
		result: result,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.result, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(result application.TurnResult) (string, error) {
	p := tea.NewProgram(
		newModel(result),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
