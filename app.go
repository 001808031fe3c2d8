// Package main contains the application wiring and the AppManager which
// connects the countdown controller, the alarm sound and the UI.
//
// Maintenance notes:
//   - All countdown state lives in control.Controller and is mutated only on
//     its goroutine. AppManager never touches timer.Pomodoro after handing it
//     over; the UI is refreshed from the snapshots the controller publishes.
//   - Every field is assigned before the controller is started, so the
//     controller goroutine may read them without locks.
//   - AppManager is the controller's Alarm: completion sends a desktop
//     notification and plays the bundled sound.
package main

import (
	"embed"
	"path"

	"PomodoroTimer/audio"
	"PomodoroTimer/control"
	"PomodoroTimer/i18n"
	"PomodoroTimer/timer"
	"PomodoroTimer/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const alarmSound = "assets/warning.wav"

// AppManager is the main application struct, holding all state.
type AppManager struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	widget     *ui.TimerWidget
	ctl        *control.Controller
	player     *audio.Player // nil when the sound could not be loaded
	cfg        timer.Config
	log        logrus.FieldLogger

	trayMenu   *fyne.Menu
	toggleItem *fyne.MenuItem

	content embed.FS // Embedded file system for assets
}

// NewAppManager loads the assets, builds the window and starts the controller.
func NewAppManager(fyneApp fyne.App, content embed.FS, spk audio.Speaker, log logrus.FieldLogger) *AppManager {
	a := &AppManager{fyneApp: fyneApp, content: content, log: log}

	cfg, err := timer.LoadTimerConfigs(content)
	if err != nil {
		log.WithError(err).Warn("using built-in timer defaults")
		cfg = timer.DefaultConfig()
	}
	a.cfg = cfg
	log.WithField("short", cfg.Duration(timer.ModeShort)).
		WithField("custom", cfg.Duration(timer.ModeCustom)).
		Info("timer config loaded")

	a.loadAlarm(spk)

	p := timer.NewPomodoro(cfg)
	a.widget = ui.NewTimerWidget(a, cfg, p.Snapshot())
	a.mainWindow = ui.CreateMainWindow(a, fyneApp, a.widget)
	a.setupTray()

	a.ctl = control.NewController(p, a,
		control.WithLogger(log.WithField("component", "controller")),
		control.WithOnChange(a.onChange),
	)
	return a
}

func (a *AppManager) loadAlarm(spk audio.Speaker) {
	f, err := a.content.Open(alarmSound)
	if err != nil {
		a.log.WithError(err).Error("failed to open alarm sound")
		return
	}
	player, err := audio.NewPlayer(path.Base(alarmSound), f, spk, a.log.WithField("component", "audio"))
	if err != nil {
		a.log.WithError(err).Error("failed to load alarm sound")
		return
	}
	a.player = player
}

func (a *AppManager) setupTray() {
	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		return
	}
	a.toggleItem = fyne.NewMenuItem(i18n.T("Start"), a.Toggle)
	a.trayMenu = fyne.NewMenu(i18n.T("Pomodoro Timer"),
		fyne.NewMenuItem(i18n.T("Show"), a.mainWindow.Show),
		a.toggleItem,
		fyne.NewMenuItem(i18n.T("Reset"), a.Reset),
	)
	desk.SetSystemTrayMenu(a.trayMenu)
}

func (a *AppManager) onChange(s timer.Snapshot) {
	a.widget.UpdateDisplay(s)
	if a.trayMenu == nil {
		return
	}
	fyne.Do(func() {
		label := i18n.T("Start")
		if s.Running() {
			label = i18n.T("Pause") + " " + s.Display()
		}
		if a.toggleItem.Label != label {
			a.toggleItem.Label = label
			a.trayMenu.Refresh()
		}
	})
}

// SelectMode switches the countdown mode.
func (a *AppManager) SelectMode(m timer.Mode) {
	if _, err := a.ctl.SelectMode(m); err != nil {
		a.log.WithError(err).Warn("select mode failed")
	}
}

// UpdateDraft forwards the custom form text.
func (a *AppManager) UpdateDraft(minutes, seconds string) {
	if err := a.ctl.UpdateDraft(minutes, seconds); err != nil {
		a.log.WithError(err).Debug("draft update dropped")
	}
}

// SubmitCustomDuration commits the custom form. Invalid input is returned
// to the caller but not reported anywhere else.
func (a *AppManager) SubmitCustomDuration(minutes, seconds string) error {
	_, err := a.ctl.SubmitCustomDuration(minutes, seconds)
	if err != nil && errors.Cause(err) != timer.ErrInvalidDuration {
		a.log.WithError(err).Warn("submit custom duration failed")
	}
	return err
}

// Toggle starts or pauses the countdown.
func (a *AppManager) Toggle() {
	if _, err := a.ctl.Toggle(); err != nil {
		a.log.WithError(err).Warn("toggle failed")
	}
}

// Reset stops the countdown and silences the alarm.
func (a *AppManager) Reset() {
	if _, err := a.ctl.Reset(); err != nil {
		a.log.WithError(err).Warn("reset failed")
	}
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	switch r {
	case ' ':
		a.Toggle()
	case 'r', 'R':
		a.Reset()
	case 's', 'S':
		a.SelectMode(timer.ModeShort)
	case 'c', 'C':
		a.SelectMode(timer.ModeCustom)
	}
}

// Play is called by the controller when the countdown reaches zero.
func (a *AppManager) Play() error {
	a.fyneApp.SendNotification(fyne.NewNotification(i18n.T("Pomodoro Timer"), i18n.T("Time's up!")))
	if a.player == nil {
		return errors.Wrap(audio.ErrUnavailable, "no alarm sound loaded")
	}
	return a.player.Play()
}

// StopAndRewind silences the alarm.
func (a *AppManager) StopAndRewind() {
	if a.player != nil {
		a.player.StopAndRewind()
	}
}

// Shutdown stops the controller and its ticker.
func (a *AppManager) Shutdown() {
	a.ctl.Shutdown()
}
