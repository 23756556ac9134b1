// Headless driver for the movement simulation: loads a level and movement
// settings, runs fixed ticks with a scripted route and logs the player.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chewxy/math32"

	"boxmotion/internal/engine"
	"boxmotion/internal/player"
	"boxmotion/internal/world"
)

func main() {
	levelPath := flag.String("level", "", "level JSON file (empty = built-in demo room)")
	settingsPath := flag.String("settings", "movement.json", "movement settings JSON file")
	ticks := flag.Int("ticks", 600, "number of fixed ticks to simulate")
	frame := flag.Float64("frame", 1.0/60, "simulated frame time in seconds")
	logEvery := flag.Int("log-every", 60, "log player state every N ticks (0 = only at the end)")
	saveLevel := flag.String("save-level", "", "write the loaded level to this path and exit")
	saveSettings := flag.String("save-settings", "", "write the effective settings to this path and exit")
	flag.Parse()

	if err := run(config{
		levelPath:    *levelPath,
		settingsPath: *settingsPath,
		ticks:        *ticks,
		frame:        float32(*frame),
		logEvery:     *logEvery,
		saveLevel:    *saveLevel,
		saveSettings: *saveSettings,
	}); err != nil {
		log.Printf("boxmotion: %v", err)
		os.Exit(1)
	}
}

type config struct {
	levelPath    string
	settingsPath string
	ticks        int
	frame        float32
	logEvery     int
	saveLevel    string
	saveSettings string
}

func run(cfg config) error {
	settings, err := player.LoadSettings(cfg.settingsPath)
	if err != nil {
		return err
	}
	if cfg.saveSettings != "" {
		if err := player.SaveSettings(cfg.saveSettings, settings); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		log.Printf("Settings: wrote %s", cfg.saveSettings)
		return nil
	}

	w := world.New(settings)
	if cfg.levelPath == "" {
		err = w.Load(world.DemoRoom())
	} else {
		err = w.LoadLevel(cfg.levelPath)
	}
	if err != nil {
		return err
	}

	if cfg.saveLevel != "" {
		if err := w.SaveLevel(cfg.saveLevel); err != nil {
			return fmt.Errorf("save level: %w", err)
		}
		log.Printf("Level: wrote %s", cfg.saveLevel)
		return nil
	}

	if !(cfg.frame > 0) || math32.IsInf(cfg.frame, 1) {
		return fmt.Errorf("frame time must be positive and finite, got %v", cfg.frame)
	}

	route := newRoute(w)
	clock := engine.NewFixedTimestep(settings.FixedDelta())
	tick := 0
	for tick < cfg.ticks {
		clock.Advance(cfg.frame, func(dt float32) {
			if tick >= cfg.ticks {
				return
			}
			w.FixedUpdate(dt, route.input(tick))
			tick++
			if cfg.logEvery > 0 && tick%cfg.logEvery == 0 {
				logState(tick, w)
			}
		})
	}

	logState(tick, w)
	return nil
}

func logState(tick int, w *world.World) {
	m := w.Player()
	log.Printf("Tick %d: feet=(%.3f, %.3f, %.3f) vel=(%.3f, %.3f, %.3f) grounded=%v",
		tick, m.Position.X, m.Position.Y, m.Position.Z,
		m.Velocity.X, m.Velocity.Y, m.Velocity.Z, m.Grounded())
}
