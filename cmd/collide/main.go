package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/tomicz/collide/internal/config"
	"github.com/tomicz/collide/internal/debug"
	"github.com/tomicz/collide/internal/graphics"
	"github.com/tomicz/collide/internal/input"
	"github.com/tomicz/collide/internal/interaction"
	"github.com/tomicz/collide/internal/logger"
	"github.com/tomicz/collide/internal/physics"
	"github.com/tomicz/collide/internal/render"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	seed := flag.Int64("seed", 0, "random seed for body sizes, colors and spawns (0 = time based)")
	writeConfig := flag.Bool("write-config", false, "write the default config to -config and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.Save(*cfgPath, config.Default()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := run(*cfgPath, *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath string, seed int64) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	palette, err := cfg.Colors()
	if err != nil {
		return err
	}
	keys, err := input.ParseBindings(cfg.Keys)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log := logger.New(cfg.Log.Path)
	log.Logf("start config=%s seed=%d", cfgPath, seed)

	graphics.Open(cfg.Window)
	defer graphics.Close()

	world := physics.NewWorld(physics.NewBounds(graphics.Size()))
	ctrl := interaction.New(world, cfg.Interaction, palette, rand.New(rand.NewSource(seed)), log)
	poller := &input.Poller{Keys: keys}
	help := render.NewHelpPanel(render.HelpLines(cfg.Keys))
	hud := debug.New(log)
	applyHUD(hud, cfg.HUD)

	var updates <-chan config.Config
	var watchErrs <-chan error
	if w, err := config.Watch(cfgPath); err != nil {
		log.Logf("config hot reload disabled: %v", err)
	} else {
		defer w.Close()
		updates, watchErrs = w.Updates, w.Errors
	}

	var pointer physics.Vec2
	update := func() {
		select {
		case next := <-updates:
			if err := reload(next, ctrl, poller, help, hud); err != nil {
				log.Logf("config reload rejected: %v", err)
			} else {
				log.Log("config reloaded")
			}
		case err := <-watchErrs:
			log.Logf("config reload failed: %v", err)
		default:
		}

		world.Bounds = physics.NewBounds(graphics.Size())
		help.Update()

		in := poller.Poll()
		pointer = in.Pointer
		if in.LeftPressed && help.ButtonHit(in.Pointer) {
			help.Toggle()
			in.LeftPressed = false
		}
		if poller.HelpPressed() {
			help.Toggle()
		}
		ctrl.Apply(in)
		hud.Record(world.Step())
	}
	draw := func() {
		render.Bodies(world)
		render.Pull(world, pointer)
		help.Draw()
		hud.Draw(world)
	}
	graphics.Run(render.Background, update, draw)

	log.Logf("exit with %d bodies", world.Len())
	return nil
}

// reload applies the hot-reloadable parts of cfg. Window settings need a restart.
func reload(cfg config.Config, ctrl *interaction.Controller, poller *input.Poller, help *render.HelpPanel, hud *debug.Debug) error {
	palette, err := cfg.Colors()
	if err != nil {
		return err
	}
	keys, err := input.ParseBindings(cfg.Keys)
	if err != nil {
		return err
	}
	ctrl.SetTuning(cfg.Interaction)
	ctrl.SetPalette(palette)
	poller.Keys = keys
	help.SetLines(render.HelpLines(cfg.Keys))
	applyHUD(hud, cfg.HUD)
	return nil
}

func applyHUD(hud *debug.Debug, h config.HUD) {
	hud.ShowFPS = h.ShowFPS
	hud.ShowStats = h.ShowStats
	hud.LogLines = h.LogLines
}
