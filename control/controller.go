package control

import (
	"context"
	"sync"
	"time"

	"PomodoroTimer/timer"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrTimeout is returned when a command is not answered in time.
	ErrTimeout = errors.New("command timed out")
	// ErrClosed is returned once the controller has been shut down.
	ErrClosed = errors.New("controller closed")
)

const (
	tickInterval   = time.Second
	enqueueTimeout = 150 * time.Millisecond
	replyTimeout   = 200 * time.Millisecond
)

// Alarm is the sound played when the countdown reaches zero.
type Alarm interface {
	Play() error
	StopAndRewind()
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the system clock.
func WithClock(c timer.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(ctl *Controller) { ctl.log = l }
}

// WithOnChange registers a listener for every state change. It is called on
// the controller goroutine and must not call back into the Controller
// synchronously.
func WithOnChange(fn func(timer.Snapshot)) Option {
	return func(ctl *Controller) { ctl.onChange = fn }
}

// Controller serializes every mutation of a Pomodoro on one goroutine and
// owns the one-second ticker that drives it.
type Controller struct {
	pomodoro *timer.Pomodoro
	alarm    Alarm
	clock    timer.Clock
	log      logrus.FieldLogger
	onChange func(timer.Snapshot)

	cmdCh  chan Command
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	// owned by the loop goroutine
	ticker timer.Ticker

	snapMu sync.RWMutex
	snap   timer.Snapshot
}

// NewController starts the command loop for p. Call Shutdown to stop it.
func NewController(p *timer.Pomodoro, alarm Alarm, opts ...Option) *Controller {
	c := &Controller{
		pomodoro: p,
		alarm:    alarm,
		clock:    timer.SystemClock,
		log:      logrus.StandardLogger(),
		cmdCh:    make(chan Command, 64),
		done:     make(chan struct{}),
		snap:     p.Snapshot(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	go c.commandLoop()
	return c
}

// Enqueue posts a command to the loop without waiting for it to be applied.
// If the queue stays full past a short timeout the command is dropped.
func (c *Controller) Enqueue(cmd Command) error {
	select {
	case <-c.ctx.Done():
		return ErrClosed
	default:
	}

	select {
	case c.cmdCh <- cmd:
		return nil
	case <-c.ctx.Done():
		return ErrClosed
	case <-time.After(enqueueTimeout):
		c.log.WithField("command", cmd.Type).Warn("command queue full, dropping command")
		return errors.Wrapf(ErrTimeout, "enqueue %s", cmd.Type)
	}
}

// Do posts cmd and waits for its result.
func (c *Controller) Do(cmd Command) (timer.Snapshot, error) {
	cmd.Reply = make(chan Result, 1)
	if err := c.Enqueue(cmd); err != nil {
		return c.Current(), err
	}
	select {
	case res := <-cmd.Reply:
		return res.Snapshot, res.Err
	case <-c.done:
		return c.Current(), ErrClosed
	case <-time.After(replyTimeout):
		return c.Current(), errors.Wrapf(ErrTimeout, "await %s", cmd.Type)
	}
}

// SelectMode switches mode and restores its default duration.
func (c *Controller) SelectMode(m timer.Mode) (timer.Snapshot, error) {
	return c.Do(Command{Type: CmdSelectMode, Mode: m})
}

// UpdateDraft records the custom form text.
func (c *Controller) UpdateDraft(minutes, seconds string) error {
	return c.Enqueue(Command{Type: CmdUpdateDraft, Minutes: minutes, Seconds: seconds})
}

// SubmitCustomDuration commits the custom form. Invalid input yields an
// error wrapping timer.ErrInvalidDuration and leaves the state unchanged.
func (c *Controller) SubmitCustomDuration(minutes, seconds string) (timer.Snapshot, error) {
	return c.Do(Command{Type: CmdSubmitCustom, Minutes: minutes, Seconds: seconds})
}

// Toggle starts or pauses the countdown.
func (c *Controller) Toggle() (timer.Snapshot, error) {
	return c.Do(Command{Type: CmdToggle})
}

// Reset stops the countdown, restores the mode default and silences the alarm.
func (c *Controller) Reset() (timer.Snapshot, error) {
	return c.Do(Command{Type: CmdReset})
}

// Snapshot returns the state after every previously queued command and
// received tick has been applied.
func (c *Controller) Snapshot() (timer.Snapshot, error) {
	return c.Do(Command{Type: CmdSnapshot})
}

// Current returns the most recently published state without waiting on the loop.
func (c *Controller) Current() timer.Snapshot {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()
	return c.snap
}

// Shutdown stops the command loop and disarms the ticker. It waits for the
// loop to exit and is safe to call more than once.
func (c *Controller) Shutdown() {
	c.cancel()
	<-c.done
}

func (c *Controller) commandLoop() {
	defer close(c.done)
	defer c.disarm()

	for {
		var tickC <-chan time.Time
		if c.ticker != nil {
			tickC = c.ticker.C()
		}

		select {
		case <-c.ctx.Done():
			return
		case cmd := <-c.cmdCh:
			err := c.apply(cmd)
			snap := c.publish()
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- Result{Snapshot: snap, Err: err}:
				default:
				}
			}
		case <-tickC:
			c.tick()
		}
	}
}

func (c *Controller) apply(cmd Command) error {
	p := c.pomodoro
	switch cmd.Type {
	case CmdSnapshot:
		return nil
	case CmdSelectMode:
		p.SelectMode(cmd.Mode)
		c.log.WithField("mode", cmd.Mode).Debug("mode selected")
	case CmdUpdateDraft:
		p.UpdateDraft(cmd.Minutes, cmd.Seconds)
		return nil
	case CmdSubmitCustom:
		if err := p.SubmitCustomDuration(cmd.Minutes, cmd.Seconds); err != nil {
			c.log.WithError(err).Debug("custom duration discarded")
			return err
		}
		c.log.WithField("remaining", p.Remaining()).Debug("custom duration set")
		// the new target starts a fresh one-second phase
		c.disarm()
	case CmdToggle:
		p.Toggle()
		c.log.WithField("running", p.Running()).Debug("toggled")
	case CmdReset:
		p.Reset()
		c.alarm.StopAndRewind()
		c.log.Debug("reset")
	default:
		return errors.Errorf("unknown command %d", cmd.Type)
	}
	c.syncTicker()
	return nil
}

func (c *Controller) tick() {
	if c.pomodoro.Tick() {
		c.log.Info("countdown complete")
		if err := c.alarm.Play(); err != nil {
			c.log.WithError(err).Warn("error playing alarm")
		}
	}
	c.syncTicker()
	c.publish()
}

// syncTicker keeps exactly one ticker armed while counting down and none otherwise.
func (c *Controller) syncTicker() {
	active := c.pomodoro.Running() && c.pomodoro.Remaining() > 0
	switch {
	case active && c.ticker == nil:
		c.ticker = c.clock.NewTicker(tickInterval)
	case !active && c.ticker != nil:
		c.disarm()
	}
}

func (c *Controller) disarm() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

func (c *Controller) publish() timer.Snapshot {
	snap := c.pomodoro.Snapshot()
	c.snapMu.Lock()
	c.snap = snap
	c.snapMu.Unlock()
	if c.onChange != nil {
		c.onChange(snap)
	}
	return snap
}
