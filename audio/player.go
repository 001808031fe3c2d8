// Package audio plays the alarm sound. The sound is decoded once into
// memory and replayed from the same buffer for the life of the process.
package audio

import (
	"io"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnavailable is returned by Play when no audio device could be opened.
	ErrUnavailable = errors.New("audio unavailable")
	// ErrUnsupportedFormat is returned for sound files other than wav and ogg.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Speaker is the output device. The default forwards to gopxl/beep/speaker.
type Speaker interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

// DefaultSpeaker is the system sound card.
var DefaultSpeaker Speaker = systemSpeaker{}

type systemSpeaker struct{}

func (systemSpeaker) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (systemSpeaker) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (systemSpeaker) Lock()                   { speaker.Lock() }
func (systemSpeaker) Unlock()                 { speaker.Unlock() }

// Player plays one sound. Play and StopAndRewind may be called from any goroutine.
type Player struct {
	name    string
	spk     Speaker
	log     logrus.FieldLogger
	initErr error

	// guarded by the speaker lock
	seeker beep.StreamSeeker
	ctrl   *beep.Ctrl

	mu     sync.Mutex // serializes Play so the ctrl is queued at most once
	queued atomic.Bool
}

// NewPlayer decodes the sound read from rc and opens spk at the sound's
// sample rate. rc is closed before NewPlayer returns. A speaker that fails
// to open is not an error here: the Player is returned and Play reports
// ErrUnavailable instead.
func NewPlayer(name string, rc io.ReadCloser, spk Speaker, log logrus.FieldLogger) (*Player, error) {
	defer rc.Close()

	streamer, format, err := decode(name, rc)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	log.WithField("sound", name).WithField("samples", buffer.Len()).Debug("alarm sound loaded")

	p := &Player{name: name, spk: spk, log: log}
	p.seeker = buffer.Streamer(0, buffer.Len())
	p.ctrl = &beep.Ctrl{Streamer: p.seeker, Paused: true}

	if err := spk.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		p.initErr = err
		log.WithError(err).Warn("audio disabled: failed to initialize speaker")
	}
	return p, nil
}

func decode(name string, rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".wav":
		return wav.Decode(rc)
	case ".ogg":
		return vorbis.Decode(rc)
	}
	return nil, beep.Format{}, errors.Wrap(ErrUnsupportedFormat, path.Ext(name))
}

// Play starts the sound from the beginning. It does not wait for the sound
// to finish.
func (p *Player) Play() error {
	if p.initErr != nil {
		return errors.Wrap(ErrUnavailable, p.initErr.Error())
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.spk.Lock()
	err := p.seeker.Seek(0)
	p.ctrl.Paused = false
	p.spk.Unlock()
	if err != nil {
		return errors.Wrapf(err, "rewind %s", p.name)
	}

	if !p.queued.Swap(true) {
		p.spk.Play(beep.Seq(p.ctrl, beep.Callback(func() {
			p.queued.Store(false)
		})))
	}
	return nil
}

// StopAndRewind silences the sound and moves it back to the start. It is a
// no-op when nothing is playing.
func (p *Player) StopAndRewind() {
	if p.initErr != nil {
		return
	}
	p.spk.Lock()
	defer p.spk.Unlock()
	p.ctrl.Paused = true
	if err := p.seeker.Seek(0); err != nil {
		p.log.WithError(err).Warn("failed to rewind alarm")
	}
}

// Playing reports whether the sound is currently audible.
func (p *Player) Playing() bool {
	if p.initErr != nil || !p.queued.Load() {
		return false
	}
	p.spk.Lock()
	defer p.spk.Unlock()
	return !p.ctrl.Paused
}

// Available reports whether the speaker was opened.
func (p *Player) Available() bool {
	return p.initErr == nil
}
