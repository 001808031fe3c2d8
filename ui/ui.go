package ui

import (
	"image/color"

	"PomodoroTimer/i18n"
	"PomodoroTimer/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// App is what the widget needs from the application. Calls are made on the
// fyne goroutine; the result shows up later through UpdateDisplay.
type App interface {
	SelectMode(timer.Mode)
	UpdateDraft(minutes, seconds string)
	SubmitCustomDuration(minutes, seconds string) error
	Toggle()
	Reset()
	HandleKeyRune(rune)
}

// TimerWidget is the whole timer screen.
type TimerWidget struct {
	titleText    *canvas.Text
	modeButtons  map[timer.Mode]*widget.Button
	minutesEntry *widget.Entry
	secondsEntry *widget.Entry
	setButton    *widget.Button
	customForm   *fyne.Container
	shortSpacer  *canvas.Rectangle
	timeText     *canvas.Text
	timeTap      *TappableContainer
	toggleButton *widget.Button
	resetButton  *widget.Button
	content      fyne.CanvasObject
}

// NewTimerWidget builds the screen and renders initial into it.
func NewTimerWidget(a App, cfg timer.Config, initial timer.Snapshot) *TimerWidget {
	w := &TimerWidget{modeButtons: make(map[timer.Mode]*widget.Button)}

	w.titleText = canvas.NewText(i18n.T("Pomodoro Timer"), color.White)
	w.titleText.TextStyle.Bold = true
	w.titleText.TextSize = timer.FontSizeTitle

	modeRow := container.New(layout.NewHBoxLayout(), layout.NewSpacer())
	for _, m := range timer.Modes {
		btn := widget.NewButton(i18n.T(cfg.Name(m)), func() { a.SelectMode(m) })
		w.modeButtons[m] = btn
		modeRow.Add(btn)
	}
	modeRow.Add(layout.NewSpacer())

	w.minutesEntry = widget.NewEntry()
	w.minutesEntry.SetPlaceHolder(i18n.T("Min"))
	w.secondsEntry = widget.NewEntry()
	w.secondsEntry.SetPlaceHolder(i18n.T("Sec"))

	// Rejected input stays in the fields; there is no error message.
	submit := func() {
		if a.SubmitCustomDuration(w.minutesEntry.Text, w.secondsEntry.Text) == nil {
			w.minutesEntry.SetText("")
			w.secondsEntry.SetText("")
		}
	}
	draftChanged := func(string) {
		a.UpdateDraft(w.minutesEntry.Text, w.secondsEntry.Text)
	}
	w.minutesEntry.OnChanged = draftChanged
	w.secondsEntry.OnChanged = draftChanged
	w.minutesEntry.OnSubmitted = func(string) { submit() }
	w.secondsEntry.OnSubmitted = func(string) { submit() }
	w.setButton = widget.NewButton(i18n.T("Set Timer"), submit)

	colon := canvas.NewText(":", color.White)
	colon.TextSize = timer.FontSizeTitle
	colon.TextStyle.Bold = true
	fields := container.New(layout.NewHBoxLayout(),
		layout.NewSpacer(),
		labeledEntry(w.minutesEntry, i18n.T("Minutes")),
		container.New(layout.NewCenterLayout(), colon),
		labeledEntry(w.secondsEntry, i18n.T("Seconds")),
		layout.NewSpacer(),
	)
	w.customForm = container.New(layout.NewVBoxLayout(),
		fields,
		container.New(layout.NewCenterLayout(), w.setButton),
	)

	// keeps the clock at the same height when the form is hidden
	w.shortSpacer = canvas.NewRectangle(color.Transparent)
	w.shortSpacer.SetMinSize(fyne.NewSize(0, w.customForm.MinSize().Height))

	w.timeText = canvas.NewText("--:--", color.White)
	w.timeText.TextStyle.Monospace = true
	w.timeText.TextStyle.Bold = true
	w.timeText.TextSize = timer.FontSizeTime
	w.timeTap = NewTappableContainer(w.timeText, a.Toggle, func(*fyne.PointEvent) { a.Reset() })

	w.toggleButton = widget.NewButton(i18n.T("Start"), a.Toggle)
	w.resetButton = widget.NewButton(i18n.T("Reset"), a.Reset)
	controls := container.New(layout.NewHBoxLayout(),
		layout.NewSpacer(), w.toggleButton, w.resetButton, layout.NewSpacer())

	w.content = container.New(layout.NewVBoxLayout(),
		container.New(layout.NewCenterLayout(), w.titleText),
		modeRow,
		container.NewStack(w.shortSpacer, w.customForm),
		w.timeTap,
		controls,
	)

	w.Render(initial)
	return w
}

func labeledEntry(e *widget.Entry, label string) fyne.CanvasObject {
	size := canvas.NewRectangle(color.Transparent)
	size.SetMinSize(fyne.NewSize(timer.EntryWidth, 0))
	caption := canvas.NewText(label, color.White)
	caption.TextSize = timer.FontSizeCaption
	return container.New(layout.NewVBoxLayout(),
		container.NewStack(size, e),
		container.New(layout.NewCenterLayout(), caption),
	)
}

// GetCanvasObject returns the root object of the screen.
func (w *TimerWidget) GetCanvasObject() fyne.CanvasObject {
	return w.content
}

// UpdateDisplay schedules Render on the fyne goroutine. It may be called
// from any goroutine.
func (w *TimerWidget) UpdateDisplay(s timer.Snapshot) {
	fyne.Do(func() { w.Render(s) })
}

// Render writes s into the widgets. It must run on the fyne goroutine. The
// form fields are owned by the user and are not overwritten here.
func (w *TimerWidget) Render(s timer.Snapshot) {
	for m, btn := range w.modeButtons {
		importance := widget.MediumImportance
		if m == s.Mode {
			importance = widget.HighImportance
		}
		if btn.Importance != importance {
			btn.Importance = importance
			btn.Refresh()
		}
	}

	if s.Mode == timer.ModeCustom {
		w.shortSpacer.Hide()
		w.customForm.Show()
	} else {
		w.customForm.Hide()
		w.shortSpacer.Show()
	}

	if text := s.Display(); w.timeText.Text != text {
		w.timeText.Text = text
		w.timeText.Refresh()
	}

	label := i18n.T("Start")
	if s.Running() {
		label = i18n.T("Pause")
	}
	w.toggleButton.SetText(label)
}

// CreateMainWindow builds the fixed-size timer window around w.
func CreateMainWindow(a App, fyneApp fyne.App, w *TimerWidget) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = i18n.T("Pomodoro Timer")
	}
	win := fyneApp.NewWindow(title)
	win.Canvas().SetOnTypedRune(a.HandleKeyRune)

	win.SetContent(container.NewPadded(w.GetCanvasObject()))
	win.Resize(fyne.NewSize(timer.WindowWidth, timer.WindowHeight))
	win.SetFixedSize(true)
	return win
}
