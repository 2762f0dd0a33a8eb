// Package input polls raylib's mouse and keyboard state once per frame and
// turns it into an interaction.Input using configurable key bindings.
package input

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tomicz/collide/internal/config"
	"github.com/tomicz/collide/internal/interaction"
	"github.com/tomicz/collide/internal/physics"
)

// KeyNames maps config key names to raylib key codes. Letters and digits are
// added in init.
var KeyNames = map[string]int32{
	"space":     rl.KeySpace,
	"up":        rl.KeyUp,
	"down":      rl.KeyDown,
	"left":      rl.KeyLeft,
	"right":     rl.KeyRight,
	"enter":     rl.KeyEnter,
	"tab":       rl.KeyTab,
	"backspace": rl.KeyBackspace,
	"f1":        rl.KeyF1,
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		KeyNames[string(c)] = rl.KeyA + (c - 'a')
	}
	for c := '0'; c <= '9'; c++ {
		KeyNames[string(c)] = rl.KeyZero + (c - '0')
	}
}

// Bindings are the resolved key codes for each command.
type Bindings struct {
	Pause, Faster, Slower, Spawn, Clear, Help int32
}

// ParseBindings resolves key names from the config.
func ParseBindings(k config.Keys) (Bindings, error) {
	var b Bindings
	for _, kv := range []struct {
		name string
		dst  *int32
	}{
		{k.Pause, &b.Pause},
		{k.Faster, &b.Faster},
		{k.Slower, &b.Slower},
		{k.Spawn, &b.Spawn},
		{k.Clear, &b.Clear},
		{k.Help, &b.Help},
	} {
		code, ok := KeyNames[strings.ToLower(strings.TrimSpace(kv.name))]
		if !ok {
			return Bindings{}, fmt.Errorf("input: unknown key %q", kv.name)
		}
		*kv.dst = code
	}
	return b, nil
}

// Poller reads the current frame's input from raylib.
type Poller struct {
	Keys Bindings
}

// Poll returns this frame's input. Called once per frame, before the World steps.
func (p *Poller) Poll() interaction.Input {
	m := rl.GetMousePosition()
	return interaction.Input{
		Pointer:       physics.V(m.X, m.Y),
		LeftPressed:   rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		LeftDown:      rl.IsMouseButtonDown(rl.MouseButtonLeft),
		LeftReleased:  rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		RightDown:     rl.IsMouseButtonDown(rl.MouseButtonRight),
		PausePressed:  rl.IsKeyPressed(p.Keys.Pause),
		FasterPressed: rl.IsKeyPressed(p.Keys.Faster),
		SlowerPressed: rl.IsKeyPressed(p.Keys.Slower),
		SpawnHeld:     rl.IsKeyDown(p.Keys.Spawn),
		ClearHeld:     rl.IsKeyDown(p.Keys.Clear),
	}
}

// HelpPressed reports whether the help toggle key went down this frame.
func (p *Poller) HelpPressed() bool {
	return rl.IsKeyPressed(p.Keys.Help)
}
