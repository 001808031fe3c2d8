package ui

import (
	"testing"

	"PomodoroTimer/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApp struct {
	modes     []timer.Mode
	drafts    []timer.Draft
	submits   []timer.Draft
	submitErr error
	toggles   int
	resets    int
	runes     []rune
}

func (f *fakeApp) SelectMode(m timer.Mode) {
	f.modes = append(f.modes, m)
}

func (f *fakeApp) UpdateDraft(minutes, seconds string) {
	f.drafts = append(f.drafts, timer.Draft{Minutes: minutes, Seconds: seconds})
}

func (f *fakeApp) Toggle()              { f.toggles++ }
func (f *fakeApp) Reset()               { f.resets++ }
func (f *fakeApp) HandleKeyRune(r rune) { f.runes = append(f.runes, r) }

func (f *fakeApp) SubmitCustomDuration(minutes, seconds string) error {
	f.submits = append(f.submits, timer.Draft{Minutes: minutes, Seconds: seconds})
	return f.submitErr
}

func setupWidget(t *testing.T) (*TimerWidget, *fakeApp) {
	t.Helper()
	test.NewTempApp(t)

	a := &fakeApp{}
	cfg := timer.DefaultConfig()
	w := NewTimerWidget(a, cfg, timer.NewPomodoro(cfg).Snapshot())
	return w, a
}

func TestInitialRender(t *testing.T) {
	w, _ := setupWidget(t)
	assert.Equal(t, "05:00", w.timeText.Text)
	assert.Equal(t, "Start", w.toggleButton.Text)
	assert.False(t, w.customForm.Visible())
	assert.Equal(t, widget.HighImportance, w.modeButtons[timer.ModeShort].Importance)
	assert.Equal(t, widget.MediumImportance, w.modeButtons[timer.ModeCustom].Importance)
}

func TestRenderCustomRunning(t *testing.T) {
	w, _ := setupWidget(t)
	w.Render(timer.Snapshot{Mode: timer.ModeCustom, State: timer.StateRunning, Remaining: 65})

	assert.Equal(t, "01:05", w.timeText.Text)
	assert.Equal(t, "Pause", w.toggleButton.Text)
	assert.True(t, w.customForm.Visible())
	assert.False(t, w.shortSpacer.Visible())
	assert.Equal(t, widget.HighImportance, w.modeButtons[timer.ModeCustom].Importance)
	assert.Equal(t, widget.MediumImportance, w.modeButtons[timer.ModeShort].Importance)
}

func TestButtonsReachApp(t *testing.T) {
	w, a := setupWidget(t)

	test.Tap(w.modeButtons[timer.ModeCustom])
	test.Tap(w.modeButtons[timer.ModeShort])
	test.Tap(w.toggleButton)
	test.Tap(w.resetButton)

	assert.Equal(t, []timer.Mode{timer.ModeCustom, timer.ModeShort}, a.modes)
	assert.Equal(t, 1, a.toggles)
	assert.Equal(t, 1, a.resets)
}

func TestClockTapTogglesAndSecondaryTapResets(t *testing.T) {
	w, a := setupWidget(t)
	test.Tap(w.timeTap)
	test.TapSecondary(w.timeTap)
	assert.Equal(t, 1, a.toggles)
	assert.Equal(t, 1, a.resets)
}

func TestSubmitClearsFieldsOnSuccess(t *testing.T) {
	w, a := setupWidget(t)
	w.Render(timer.Snapshot{Mode: timer.ModeCustom, Remaining: 1500})

	test.Type(w.minutesEntry, "5")
	test.Type(w.secondsEntry, "30")
	require.NotEmpty(t, a.drafts)
	assert.Equal(t, timer.Draft{Minutes: "5", Seconds: "30"}, a.drafts[len(a.drafts)-1])

	test.Tap(w.setButton)
	require.Len(t, a.submits, 1)
	assert.Equal(t, timer.Draft{Minutes: "5", Seconds: "30"}, a.submits[0])
	assert.Empty(t, w.minutesEntry.Text)
	assert.Empty(t, w.secondsEntry.Text)
}

func TestRejectedSubmitKeepsFields(t *testing.T) {
	w, a := setupWidget(t)
	a.submitErr = errors.Wrap(timer.ErrInvalidDuration, "test")
	w.Render(timer.Snapshot{Mode: timer.ModeCustom, Remaining: 1500})

	test.Type(w.minutesEntry, "0")
	test.Type(w.secondsEntry, "0")
	test.Tap(w.setButton)

	require.Len(t, a.submits, 1)
	assert.Equal(t, "0", w.minutesEntry.Text)
	assert.Equal(t, "0", w.secondsEntry.Text)
}

func TestCreateMainWindowRoutesKeys(t *testing.T) {
	w, a := setupWidget(t)
	win := CreateMainWindow(a, fyne.CurrentApp(), w)
	defer win.Close()

	win.Canvas().OnTypedRune()(' ')
	assert.Equal(t, []rune{' '}, a.runes)
	assert.NotEmpty(t, win.Title())
}
