package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-chess/board"
	"github.com/lixenwraith/vi-chess/config"
	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/engine"
	"github.com/lixenwraith/vi-chess/event"
	"github.com/lixenwraith/vi-chess/input"
	"github.com/lixenwraith/vi-chess/parameter"
	"github.com/lixenwraith/vi-chess/system"
	"github.com/lixenwraith/vi-chess/terminal"
)

var (
	configFlag   = flag.String("config", "", "TOML config file (built-in defaults if empty)")
	logFlag      = flag.String("log", "./vi-chess.log", "Log file")
	logLevelFlag = flag.String("log-level", "", "Override the configured log level: debug, info, warn, error")
	fenFlag      = flag.String("fen", "", "Start from a FEN position")
	pointerFlag  = flag.Bool("pointer", true, "Set the mouse pointer shape with OSC 22")
)

func main() {
	// Terminal must be restored even if the game crashes
	defer func() {
		terminal.HandleCrash(recover())
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-chess: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *logLevelFlag != "" {
		cfg.Log.Level = *logLevelFlag
	}

	// Stdout belongs to the screen
	logFile, err := os.OpenFile(*logFlag, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}
	defer logFile.Close()

	log, err := cfg.NewLogger(logFile)
	if err != nil {
		return err
	}

	svc := terminal.NewService(nil)
	if err := svc.Init(); err != nil {
		return err
	}
	if err := svc.Start(); err != nil {
		return err
	}
	defer svc.Stop()
	screen := svc.Screen()

	var pointer io.Writer
	if *pointerFlag {
		pointer = os.Stdout
	}
	sink := terminal.NewSink(screen, pointer)
	defer sink.Reset()

	// Cursor stack and its baseline exist before any binding is attached
	res := engine.NewResource(cfg.DefaultIcon, sink, log)
	world := engine.NewWorld(res)
	cursors := system.NewCursorSystem(world)

	queue := event.NewEventQueue()
	router := event.NewRouter(queue)
	router.Register(cursors)

	b := board.New(world, cursors, cfg)
	router.Register(b)
	if *fenFlag != "" {
		if err := b.LoadFEN(*fenFlag); err != nil {
			return err
		}
	}

	width, height := screen.Size()
	minWidth, minHeight := board.ScreenSize()
	buf := core.NewBuffer(max(width, minWidth), max(height, minHeight))
	picker := input.NewPicker(queue, buf)
	machine := input.NewMachine(picker)

	draw := func() {
		b.Render(buf, res.Status, board.DefaultTheme)
		buf.Flush(screen)
		screen.Show()
	}
	draw()
	log.Info("started", "default_icon", cfg.DefaultIcon, "config", *configFlag)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	var frame int64
	dirty := false
	for {
		select {
		case ev := <-svc.Events():
			if m, ok := ev.(*tcell.EventMouse); ok {
				sink.MoveTo(m.Position())
			}
			intent := machine.Process(ev)
			if intent == nil {
				continue
			}
			switch intent.Type {
			case input.IntentQuit:
				log.Info("quit", "frames", frame)
				return nil
			case input.IntentNewGame:
				b.NewGame()
			case input.IntentFlip:
				b.Flip()
			case input.IntentResize:
				w, h := screen.Size()
				buf.Resize(max(w, minWidth), max(h, minHeight))
				screen.Sync()
			}
			dirty = true

		case <-ticker.C:
			frame++
			picker.SetFrame(frame)
			if router.DispatchAll() == 0 && !dirty {
				continue
			}
			dirty = false
			draw()

			// Widgets may have been rebuilt under a still pointer
			if picker.Resync(world.IsAlive) > 0 {
				router.DispatchAll()
				draw()
			}
		}
	}
}
