package debug

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tomicz/collide/internal/logger"
	"github.com/tomicz/collide/internal/physics"
)

const (
	fontSize    = 20
	padding     = 12
	lineHeight  = fontSize + 4
	maxLogRunes = 120
	// updateInterval: only refresh the stats text every N frames to reduce allocations.
	updateInterval = 15
)

var (
	statsColor = rl.DarkGreen
	logColor   = rl.Gray
)

// Source supplies the recent event lines shown under the stats.
type Source interface {
	Tail(n int) []string
}

// Debug draws the HUD in the top-right corner: FPS, simulation stats and the
// most recent log lines. All overlays can be toggled from the config.
type Debug struct {
	ShowFPS   bool
	ShowStats bool
	LogLines  int

	log        Source
	printer    *message.Printer
	frameCount uint32
	lastFPS    string
	lastStats  string
	collisions int
}

// New returns a HUD reading log lines from log (may be nil).
func New(log Source) *Debug {
	return &Debug{log: log, printer: message.NewPrinter(language.English)}
}

// Record accumulates per-frame step results for the stats line.
func (d *Debug) Record(s physics.StepStats) {
	d.collisions += s.Collisions
}

// Draw renders the enabled overlays. Call last in the draw loop.
func (d *Debug) Draw(w *physics.World) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.lastStats == ""

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	right := func(text string, c rl.Color) {
		x := screenW - rl.MeasureText(text, fontSize) - padding
		rl.DrawText(text, x, y, fontSize, c)
		y += lineHeight
	}

	if d.ShowFPS {
		if update || d.lastFPS == "" {
			d.lastFPS = d.printer.Sprintf("FPS: %d", rl.GetFPS())
		}
		right(d.lastFPS, statsColor)
	}
	if d.ShowStats {
		if update {
			state := "running"
			if w.Paused() {
				state = "paused"
			}
			d.lastStats = d.printer.Sprintf("Bodies: %d  Speed: x%.2f  Impulses: %d  %s",
				w.Len(), w.TimeScale(), d.collisions, state)
		}
		right(d.lastStats, statsColor)
	}
	if d.log != nil && d.LogLines > 0 {
		for _, line := range d.log.Tail(d.LogLines) {
			right(logger.Clip(strings.TrimSpace(line), maxLogRunes), logColor)
		}
	}
}
