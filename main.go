package main

import (
	"embed"

	"PomodoroTimer/audio"
	"PomodoroTimer/i18n"
	"PomodoroTimer/logs"
	"PomodoroTimer/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

//go:embed assets/*
var content embed.FS

func main() {
	log := logs.NewLogger("pomodoro")
	i18n.Detect(logs.NewLogger("i18n"))

	fyneApp := app.NewWithID("io.github.pomodorotimer")

	if iconBytes, err := content.ReadFile("assets/icon.png"); err == nil {
		fyneApp.SetIcon(fyne.NewStaticResource("icon.png", iconBytes))
	} else {
		log.WithError(err).Warn("failed to load icon")
	}
	fyneApp.Settings().SetTheme(ui.NewPomodoroTheme())

	a := NewAppManager(fyneApp, content, audio.DefaultSpeaker, log)
	a.mainWindow.SetOnClosed(a.Shutdown)
	a.mainWindow.ShowAndRun()
}
