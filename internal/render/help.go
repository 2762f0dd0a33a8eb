package render

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tomicz/collide/internal/config"
	"github.com/tomicz/collide/internal/physics"
)

const (
	helpFontSize   = 25
	buttonFontSize = 100
	slideEase      = 0.12
	panelOpenX     = 4
	panelTop       = 2
	panelPad       = 10
)

var (
	panelColor  = rl.NewColor(255, 255, 255, 128)
	borderColor = rl.Black
)

// HelpLines returns the controls list for the given key bindings.
func HelpLines(k config.Keys) []string {
	up := strings.ToUpper
	return []string{
		fmt.Sprintf("%s/%s for speeding up and slowing down time", up(k.Faster), up(k.Slower)),
		fmt.Sprintf("%s to pause", up(k.Pause)),
		fmt.Sprintf("%s to generate random circles", up(k.Spawn)),
		fmt.Sprintf("%s to erase all", up(k.Clear)),
		"Left mouse on circle to drag circle",
		"Left mouse and drag to shoot circle in direction",
		"Right mouse to delete circles",
		fmt.Sprintf("%s to show or hide this help", up(k.Help)),
	}
}

// HelpPanel is a collapsible controls list on the left edge with a toggle
// button that rides along its right side. It slides with exponential easing.
// Must be created after the window is open, since it measures text.
type HelpPanel struct {
	lines  []string
	width  float32
	height float32
	x      float32
	wantX  float32
	button rl.Rectangle
}

// NewHelpPanel returns a closed panel showing lines.
func NewHelpPanel(lines []string) *HelpPanel {
	h := &HelpPanel{}
	h.SetLines(lines)
	h.x = h.closedX()
	h.wantX = h.x
	bw := float32(rl.MeasureText(">", buttonFontSize)) + panelPad
	h.button = rl.NewRectangle(0, panelTop, bw, buttonFontSize+panelPad)
	return h
}

// SetLines replaces the text, e.g. after key bindings change.
func (h *HelpPanel) SetLines(lines []string) {
	h.lines = lines
	var w float32
	for _, l := range lines {
		w = max(w, float32(rl.MeasureText(l, helpFontSize)))
	}
	h.width = w + panelPad
	h.height = float32(len(lines)) * helpFontSize * 1.5
	if h.wantX != panelOpenX {
		h.wantX = h.closedX()
	}
}

func (h *HelpPanel) closedX() float32 {
	return -h.width - panelPad
}

// Open reports whether the panel is open or opening.
func (h *HelpPanel) Open() bool {
	return h.wantX == panelOpenX
}

// Toggle starts sliding the panel in or out.
func (h *HelpPanel) Toggle() {
	if h.Open() {
		h.wantX = h.closedX()
	} else {
		h.wantX = panelOpenX
	}
}

// ButtonHit reports whether p is on the toggle button.
func (h *HelpPanel) ButtonHit(p physics.Vec2) bool {
	return rl.CheckCollisionPointRec(rl.NewVector2(p.X, p.Y), h.button)
}

// Update advances the slide animation by one frame.
func (h *HelpPanel) Update() {
	h.button.X = h.width + h.x + 5
	h.x += (h.wantX - h.x) * slideEase
}

// Draw renders the button and the panel.
func (h *HelpPanel) Draw() {
	b := h.button
	rl.DrawRectangleRec(b, panelColor)
	rl.DrawRectangleLinesEx(b, 5, borderColor)
	if b.X > h.width/2 {
		rl.DrawText("<", int32(b.X+5), int32(b.Y), buttonFontSize, borderColor)
	} else {
		rl.DrawText(">", int32(b.X), int32(b.Y), buttonFontSize, borderColor)
	}

	panel := rl.NewRectangle(h.x, panelTop, h.width, h.height)
	rl.DrawRectangleRec(panel, panelColor)
	rl.DrawRectangleLinesEx(panel, 4, borderColor)
	for i, l := range h.lines {
		y := panelTop + float32(i)*helpFontSize*1.5 + helpFontSize/4
		rl.DrawText(l, int32(h.x+5), int32(y), helpFontSize, borderColor)
	}
}
