// Package timer contains the domain logic of the Pomodoro countdown: the
// mode configuration and the Pomodoro runtime state machine.
//
// Maintenance notes:
//   - Pomodoro holds no lock. It is owned by exactly one goroutine (the
//     control package command loop); everything else reads Snapshots.
//   - Transitions are SelectMode, SubmitCustomDuration, Toggle, Reset and
//     Tick. Tick is the only one that can reach zero, and it reports that
//     back so the owner can sound the alarm exactly once.
package timer

import (
	"github.com/pkg/errors"
)

// ErrInvalidDuration is returned when a custom duration fails validation.
var ErrInvalidDuration = errors.New("invalid custom duration")

// MaxMinutes caps the minutes of a custom duration. Larger input is clamped
// to it, which keeps minutes*60 within a 32-bit int.
const MaxMinutes = 1 << 20

// Mode selects which default duration the countdown restores.
type Mode int

const (
	ModeShort Mode = iota
	ModeCustom
)

// Modes lists every valid mode in display order.
var Modes = []Mode{ModeShort, ModeCustom}

func (m Mode) String() string {
	switch m {
	case ModeShort:
		return "short"
	case ModeCustom:
		return "custom"
	}
	return "unknown"
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown mode %q", s)
}

// State is the running state of the countdown.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Draft holds the unvalidated text of the custom-duration form.
type Draft struct {
	Minutes string
	Seconds string
}

// Pomodoro represents the countdown's state and logic.
type Pomodoro struct {
	cfg       Config
	mode      Mode
	state     State
	remaining int
	draft     Draft
}

// NewPomodoro creates an idle countdown in short mode.
func NewPomodoro(cfg Config) *Pomodoro {
	return &Pomodoro{
		cfg:       cfg,
		mode:      ModeShort,
		state:     StateIdle,
		remaining: cfg.Duration(ModeShort),
	}
}

// SelectMode stops the countdown, switches to m and restores m's default
// duration. The alarm is not involved.
func (p *Pomodoro) SelectMode(m Mode) {
	p.state = StateIdle
	p.mode = m
	p.remaining = p.cfg.Duration(m)
}

// UpdateDraft stores the current form text.
func (p *Pomodoro) UpdateDraft(minutes, seconds string) {
	p.draft = Draft{Minutes: minutes, Seconds: seconds}
}

// SubmitCustomDuration validates the form fields and, on success, makes
// minutes*60+seconds the remaining time and clears the draft. Minutes above
// MaxMinutes are clamped. The running state is left untouched. On failure
// nothing changes.
func (p *Pomodoro) SubmitCustomDuration(minutesText, secondsText string) error {
	minutes := ParseField(minutesText)
	seconds := ParseField(secondsText)

	if minutes < 0 || seconds < 0 || seconds >= 60 {
		return errors.Wrapf(ErrInvalidDuration, "%d min %d sec out of range", minutes, seconds)
	}
	if minutes > MaxMinutes {
		minutes = MaxMinutes
	}
	total := minutes*60 + seconds
	if total <= 0 {
		return errors.Wrap(ErrInvalidDuration, "duration must be positive")
	}

	p.remaining = total
	p.draft = Draft{}
	return nil
}

// Toggle starts or pauses the countdown. Starting from zero first restores
// the current mode's default.
func (p *Pomodoro) Toggle() {
	if p.state == StateIdle && p.remaining == 0 {
		p.remaining = p.cfg.Duration(p.mode)
	}
	if p.state == StateRunning {
		p.state = StateIdle
	} else {
		p.state = StateRunning
	}
}

// Reset stops the countdown and restores the current mode's default.
func (p *Pomodoro) Reset() {
	p.state = StateIdle
	p.remaining = p.cfg.Duration(p.mode)
}

// Tick processes one second of time passing. It returns true only on the
// tick that brings the countdown to zero, which also stops it.
func (p *Pomodoro) Tick() bool {
	if p.state != StateRunning || p.remaining <= 0 {
		return false
	}
	p.remaining--
	if p.remaining == 0 {
		p.state = StateIdle
		return true
	}
	return false
}

// Running reports whether the countdown is decrementing.
func (p *Pomodoro) Running() bool {
	return p.state == StateRunning
}

// Remaining returns the remaining seconds.
func (p *Pomodoro) Remaining() int {
	return p.remaining
}

// Mode returns the current mode.
func (p *Pomodoro) Mode() Mode {
	return p.mode
}

// Config returns the configuration the countdown was built with.
func (p *Pomodoro) Config() Config {
	return p.cfg
}

// Snapshot is a copy of the countdown that can be handed to other
// goroutines.
type Snapshot struct {
	Mode      Mode
	State     State
	Remaining int
	Draft     Draft
}

// Running reports whether the snapshot was taken while counting down.
func (s Snapshot) Running() bool {
	return s.State == StateRunning
}

// Display returns the MM:SS rendering of the remaining time.
func (s Snapshot) Display() string {
	return FormatTime(s.Remaining)
}

// Snapshot returns a consistent copy of the countdown for UI use.
func (p *Pomodoro) Snapshot() Snapshot {
	return Snapshot{
		Mode:      p.mode,
		State:     p.state,
		Remaining: p.remaining,
		Draft:     p.draft,
	}
}
