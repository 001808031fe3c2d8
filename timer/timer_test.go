package timer

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPomodoro() *Pomodoro {
	return NewPomodoro(DefaultConfig())
}

func TestNewPomodoroStartsIdleInShortMode(t *testing.T) {
	p := newTestPomodoro()
	s := p.Snapshot()
	assert.Equal(t, ModeShort, s.Mode)
	assert.Equal(t, StateIdle, s.State)
	assert.Equal(t, 300, s.Remaining)
	assert.Equal(t, Draft{}, s.Draft)
}

func TestSelectModeShortAlwaysRestoresDefault(t *testing.T) {
	p := newTestPomodoro()
	p.SelectMode(ModeCustom)
	require.NoError(t, p.SubmitCustomDuration("1", "0"))
	p.Toggle()
	p.Tick()
	require.True(t, p.Running())

	p.SelectMode(ModeShort)
	assert.False(t, p.Running())
	assert.Equal(t, ModeShort, p.Mode())
	assert.Equal(t, 300, p.Remaining())
}

func TestSelectModeCustomUsesPlaceholder(t *testing.T) {
	p := newTestPomodoro()
	p.SelectMode(ModeCustom)
	assert.Equal(t, 1500, p.Remaining())
	assert.Equal(t, ModeCustom, p.Mode())
}

func TestSubmitCustomDuration(t *testing.T) {
	p := newTestPomodoro()
	p.SelectMode(ModeCustom)
	p.UpdateDraft("5", "30")

	require.NoError(t, p.SubmitCustomDuration("5", "30"))
	assert.Equal(t, 330, p.Remaining())
	assert.Equal(t, Draft{}, p.Snapshot().Draft)
	assert.False(t, p.Running(), "submitting must not auto-start")
}

func TestSubmitCustomDurationKeepsRunningFlag(t *testing.T) {
	p := newTestPomodoro()
	p.Toggle()
	require.NoError(t, p.SubmitCustomDuration("2", ""))
	assert.True(t, p.Running())
	assert.Equal(t, 120, p.Remaining())
}

func TestSubmitCustomDurationRejects(t *testing.T) {
	cases := []struct {
		name, min, sec string
	}{
		{"zero total", "0", "0"},
		{"both empty", "", ""},
		{"negative minutes", "-1", "10"},
		{"negative seconds", "1", "-5"},
		{"seconds overflow", "1", "60"},
		{"not numeric", "abc", "xyz"},
		{"huge negative minutes", "-99999999999", "0"},
		{"huge seconds", "0", "12345678901"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPomodoro()
			p.UpdateDraft(tc.min, tc.sec)
			before := p.Snapshot()

			err := p.SubmitCustomDuration(tc.min, tc.sec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDuration))
			assert.Equal(t, before, p.Snapshot())
		})
	}
}

func TestSubmitCustomDurationClampsMinutes(t *testing.T) {
	for _, minutes := range []string{"12345678901", "2147483647", "1048577"} {
		p := newTestPomodoro()
		require.NoError(t, p.SubmitCustomDuration(minutes, "30"), "minutes %q", minutes)
		assert.Equal(t, MaxMinutes*60+30, p.Remaining(), "minutes %q", minutes)
	}

	p := newTestPomodoro()
	require.NoError(t, p.SubmitCustomDuration("1048576", "0"))
	assert.Equal(t, MaxMinutes*60, p.Remaining())
}

func TestToggleFlipsRunning(t *testing.T) {
	p := newTestPomodoro()
	p.Toggle()
	assert.True(t, p.Running())
	p.Toggle()
	assert.False(t, p.Running())
	assert.Equal(t, 300, p.Remaining())
}

func TestCountdownToZeroStopsAndReportsOnce(t *testing.T) {
	p := newTestPomodoro()
	require.NoError(t, p.SubmitCustomDuration("0", "3"))
	p.Toggle()

	completions := 0
	for i := 0; i < 5; i++ {
		if p.Tick() {
			completions++
		}
	}
	assert.Equal(t, 1, completions)
	assert.Equal(t, 0, p.Remaining())
	assert.False(t, p.Running())
}

func TestToggleAtZeroRestoresModeDefault(t *testing.T) {
	p := newTestPomodoro()
	require.NoError(t, p.SubmitCustomDuration("0", "1"))
	p.Toggle()
	require.True(t, p.Tick())

	p.Toggle()
	assert.True(t, p.Running())
	assert.Equal(t, 300, p.Remaining())
}

func TestTickIgnoredWhileIdle(t *testing.T) {
	p := newTestPomodoro()
	assert.False(t, p.Tick())
	assert.Equal(t, 300, p.Remaining())
}

func TestResetWhileRunning(t *testing.T) {
	p := newTestPomodoro()
	require.NoError(t, p.SubmitCustomDuration("0", "10"))
	p.Toggle()

	p.Reset()
	assert.False(t, p.Running())
	assert.Equal(t, 300, p.Remaining())
}

func TestResetIsIdempotent(t *testing.T) {
	p := newTestPomodoro()
	p.SelectMode(ModeCustom)
	p.Toggle()
	p.Tick()

	p.Reset()
	once := p.Snapshot()
	p.Reset()
	assert.Equal(t, once, p.Snapshot())
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("long")
	assert.Error(t, err)
}
