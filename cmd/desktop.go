package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/sirupsen/logrus"

	"stoicfocus/internal/core/timekeeper"
	"stoicfocus/internal/ui/preferences"
	"stoicfocus/internal/ui/timerwindow"
	"stoicfocus/internal/ui/tray"
	"stoicfocus/resources"
)

const appID = "com.stoicfocus.app"

func runDesktop(ctx context.Context, settings preferences.Settings, keeperOptions timekeeper.Options, logger *logrus.Logger) error {
	fyneApp := app.NewWithID(appID)
	icon := resources.MustLogo("hourglass.svg")
	fyneApp.SetIcon(icon)

	view := timerwindow.New(fyneApp, settings)
	keeper := timekeeper.New(view, view.Inputs(), keeperOptions)
	defer keeper.Close()

	view.SetCallbacks(timerwindow.Callbacks{
		OnToggle:       keeper.Toggle,
		OnReset:        keeper.Reset,
		OnInputChanged: keeper.InputChanged,
		OnDismissQuote: keeper.DismissQuote,
	})

	window := view.Window()
	window.SetMaster()
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		attachTray(fyneApp, desktopApp, window, keeper, icon)
		window.SetCloseIntercept(window.Hide)
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	window.ShowAndRun()
	return nil
}

func attachTray(fyneApp fyne.App, desktopApp desktop.App, window fyne.Window, keeper *timekeeper.TimeKeeper, icon fyne.Resource) {
	manager := tray.New(desktopApp, tray.Callbacks{
		OnShow: func() {
			window.Show()
			window.RequestFocus()
		},
		OnToggle: keeper.Toggle,
		OnReset:  keeper.Reset,
		OnQuit:   fyneApp.Quit,
	})
	desktopApp.SetSystemTrayIcon(icon)
	manager.Update(keeper.Snapshot())

	events := keeper.Subscribe(8)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				manager.Update(snapshot)
			})
		}
	}()
}
