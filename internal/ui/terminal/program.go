package terminal

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Run starts the Bubble Tea program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, screen *Screen, controller Controller, logger *logrus.Logger) error {
	program := tea.NewProgram(NewModel(screen, controller), tea.WithAltScreen(), tea.WithContext(ctx))
	defer screen.Close()

	// Log lines would corrupt the alternate screen.
	previous := logger.Out
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(previous)

	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
