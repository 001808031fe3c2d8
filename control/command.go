// Package control defines the command messages the UI uses to request
// countdown changes, and the Controller whose single goroutine applies them.
// Serializing commands and ticks on one goroutine keeps the countdown free
// of locks and guarantees ticks are never coalesced with user actions.
package control

import "PomodoroTimer/timer"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdSnapshot CommandType = iota
	CmdSelectMode
	CmdUpdateDraft
	CmdSubmitCustom
	CmdToggle
	CmdReset
)

func (c CommandType) String() string {
	switch c {
	case CmdSnapshot:
		return "snapshot"
	case CmdSelectMode:
		return "select-mode"
	case CmdUpdateDraft:
		return "update-draft"
	case CmdSubmitCustom:
		return "submit-custom"
	case CmdToggle:
		return "toggle"
	case CmdReset:
		return "reset"
	}
	return "unknown"
}

// Command is the message sent from the UI to Controller.commandLoop. The
// optional Reply channel receives the countdown state after the command was
// applied; it should be buffered.
type Command struct {
	Type    CommandType
	Mode    timer.Mode // CmdSelectMode
	Minutes string     // CmdUpdateDraft, CmdSubmitCustom
	Seconds string     // CmdUpdateDraft, CmdSubmitCustom
	Reply   chan Result
}

// Result is the reply to a Command.
type Result struct {
	Snapshot timer.Snapshot
	Err      error
}
