package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"stoicfocus/internal/core/timekeeper"
	"stoicfocus/internal/ui/preferences"
	"stoicfocus/internal/ui/terminal"
)

func runTerminal(ctx context.Context, settings preferences.Settings, keeperOptions timekeeper.Options, logger *logrus.Logger) error {
	screen := terminal.NewScreen(settings.Timer)
	keeper := timekeeper.New(screen, screen, keeperOptions)
	defer keeper.Close()

	return terminal.Run(ctx, screen, keeper, logger)
}
