package timer

import (
	"encoding/json"
	"image/color"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when the timer configuration is unusable.
var ErrInvalidConfig = errors.New("invalid timer config")

// AppContentReader defines the interface for reading content from the embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// ConfigPath is the location of the timer defaults inside the embedded assets.
const ConfigPath = "assets/timers_config.json"

// UI constants
const (
	FontSizeTitle   float32 = 28.0
	FontSizeTime    float32 = 64.0
	FontSizeCaption float32 = 13.0

	// Dimensions
	WindowWidth  = 320
	WindowHeight = 450
	EntryWidth   = 80
)

var (
	// BackgroundColor is the base background color of the window.
	BackgroundColor = color.NRGBA{R: 0x0e, G: 0x0e, B: 0x0e, A: 0xff}
	// ActiveModeColor highlights the selected mode.
	ActiveModeColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x4c}
)

// TimerConfig holds the static configuration of one mode.
type TimerConfig struct {
	Mode    string `json:"mode"`
	Name    string `json:"name"`
	Seconds int    `json:"seconds"`
}

// Config maps every mode to its default duration.
type Config struct {
	durations map[Mode]int
	names     map[Mode]string
}

// DefaultConfig is the compiled-in fallback: a 5 minute short break and a
// 25 minute custom placeholder.
func DefaultConfig() Config {
	return Config{
		durations: map[Mode]int{ModeShort: 5 * 60, ModeCustom: 25 * 60},
		names:     map[Mode]string{ModeShort: "Short Break", ModeCustom: "Custom Timer"},
	}
}

// NewConfig validates a list of per-mode configs. Every mode must appear
// exactly once with a positive duration.
func NewConfig(items []TimerConfig) (Config, error) {
	cfg := Config{durations: make(map[Mode]int), names: make(map[Mode]string)}
	for _, item := range items {
		m, err := ParseMode(item.Mode)
		if err != nil {
			return Config{}, errors.Wrap(ErrInvalidConfig, err.Error())
		}
		if _, dup := cfg.durations[m]; dup {
			return Config{}, errors.Wrapf(ErrInvalidConfig, "duplicate mode %q", item.Mode)
		}
		if item.Seconds <= 0 {
			return Config{}, errors.Wrapf(ErrInvalidConfig, "mode %q: duration must be positive, got %d", item.Mode, item.Seconds)
		}
		cfg.durations[m] = item.Seconds
		cfg.names[m] = item.Name
	}
	for _, m := range Modes {
		if _, ok := cfg.durations[m]; !ok {
			return Config{}, errors.Wrapf(ErrInvalidConfig, "missing mode %q", m)
		}
	}
	return cfg, nil
}

// LoadTimerConfigs loads timer configurations from the embedded JSON file.
func LoadTimerConfigs(reader AppContentReader) (Config, error) {
	data, err := reader.ReadFile(ConfigPath)
	if err != nil {
		return Config{}, errors.Wrap(err, "read timer configs")
	}

	var items []TimerConfig
	if err := json.Unmarshal(data, &items); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal timer configs")
	}
	return NewConfig(items)
}

// Duration returns the default duration of m in whole seconds.
func (c Config) Duration(m Mode) int {
	return c.durations[m]
}

// Name returns the display name of m, falling back to the mode identifier.
func (c Config) Name(m Mode) string {
	if n := c.names[m]; n != "" {
		return n
	}
	return m.String()
}
