package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"

	"github.com/tomicz/collide/internal/logger"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/collide.yaml"

// Window holds the window settings. Width/Height are used when not fullscreen;
// in fullscreen the monitor size wins.
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	FPS        int    `yaml:"fps"`
}

// Interaction holds the tunables of the pointer and keyboard controls.
type Interaction struct {
	GrabCushion   float32 `yaml:"grab_cushion"`   // extra hit radius for picking a body to drag
	DeleteCushion float32 `yaml:"delete_cushion"` // extra hit radius for right-click delete
	DragDivisor   float32 `yaml:"drag_divisor"`   // dragged body closes 1/N of the gap to the cursor per frame
	FlingGain     float32 `yaml:"fling_gain"`     // launch speed per unit of pull-back
	SpeedStep     float32 `yaml:"speed_step"`     // time scale multiplier per speed key press
	SpawnAttempts int     `yaml:"spawn_attempts"` // rejection sampling tries for a random spawn
}

// Keys maps commands to key names (see input.KeyNames).
type Keys struct {
	Pause  string `yaml:"pause"`
	Faster string `yaml:"faster"`
	Slower string `yaml:"slower"`
	Spawn  string `yaml:"spawn"`
	Clear  string `yaml:"clear"`
	Help   string `yaml:"help"`
}

// HUD holds the debug overlay preferences.
type HUD struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowStats bool `yaml:"show_stats"`
	LogLines  int  `yaml:"log_lines"`
}

// Log holds the event log settings.
type Log struct {
	Path string `yaml:"path"`
}

// Config is the full simulator configuration. Persisted as YAML.
type Config struct {
	Window      Window      `yaml:"window"`
	Interaction Interaction `yaml:"interaction"`
	Palette     []string    `yaml:"palette"`
	Keys        Keys        `yaml:"keys"`
	HUD         HUD         `yaml:"hud"`
	Log         Log         `yaml:"log"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:      "Collision Simulator",
			Width:      1280,
			Height:     720,
			Fullscreen: true,
			FPS:        60,
		},
		Interaction: Interaction{
			GrabCushion:   7.5,
			DeleteCushion: 2.5,
			DragDivisor:   10,
			FlingGain:     0.01,
			SpeedStep:     1.5,
			SpawnAttempts: 1000,
		},
		Palette: []string{"red", "blue", "yellow", "green", "black"},
		Keys: Keys{
			Pause:  "space",
			Faster: "up",
			Slower: "down",
			Spawn:  "q",
			Clear:  "r",
			Help:   "h",
		},
		HUD: HUD{
			ShowFPS:   false,
			ShowStats: true,
			LogLines:  5,
		},
		Log: Log{Path: logger.DefaultPath},
	}
}

// Load reads the config at path on top of Default(). A missing file is not an
// error and yields the defaults; a malformed or invalid file is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges. Color and key names are checked by the packages that resolve them.
func (c Config) Validate() error {
	var errs []error
	if !c.Window.Fullscreen && (c.Window.Width <= 0 || c.Window.Height <= 0) {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if !inRange(c.Window.FPS, 1, 1000) {
		errs = append(errs, fmt.Errorf("window.fps %d out of range [1, 1000]", c.Window.FPS))
	}
	in := c.Interaction
	if in.GrabCushion < 0 || in.DeleteCushion < 0 {
		errs = append(errs, errors.New("interaction cushions must not be negative"))
	}
	if in.DragDivisor < 1 {
		errs = append(errs, fmt.Errorf("interaction.drag_divisor %v must be >= 1", in.DragDivisor))
	}
	if in.SpeedStep <= 1 {
		errs = append(errs, fmt.Errorf("interaction.speed_step %v must be > 1", in.SpeedStep))
	}
	if in.SpawnAttempts < 1 {
		errs = append(errs, fmt.Errorf("interaction.spawn_attempts %d must be >= 1", in.SpawnAttempts))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must not be empty"))
	}
	if !inRange(c.HUD.LogLines, 0, 50) {
		errs = append(errs, fmt.Errorf("hud.log_lines %d out of range [0, 50]", c.HUD.LogLines))
	}
	if c.Log.Path == "" {
		errs = append(errs, errors.New("log.path must be set"))
	}
	return errors.Join(errs...)
}

func inRange[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
