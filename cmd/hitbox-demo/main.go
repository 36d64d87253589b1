// Package main is an interactive demo of the hitbox input pipeline.
//
// It draws the widgets of a layout as rectangles in the terminal and runs
// every pointer event batch through the pipeline, highlighting captured
// widgets and logging the widget events the pipeline emits. Press q or
// Escape to quit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hitbox/internal/config"
	"github.com/dshills/hitbox/internal/geom"
	"github.com/dshills/hitbox/internal/input"
	"github.com/dshills/hitbox/internal/input/device"
	"github.com/dshills/hitbox/internal/input/widget"
)

func main() {
	os.Exit(run())
}

func run() int {
	layoutPath := flag.String("layout", "", "layout file (TOML or JSON); built-in demo layout when empty")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	layout, err := loadLayout(*layoutPath)
	if err != nil {
		logger.Error("loading layout", "error", err)
		return 1
	}

	registry := layout.Build()

	pipeline := input.NewPipeline()
	pipeline.Register(device.NewSynthesizer())
	pipeline.Register(registry.Processors()...)

	term, err := device.NewTerminal(device.WithLogger(logger))
	if err != nil {
		logger.Error("creating terminal", "error", err)
		return 1
	}
	if err := term.Init(); err != nil {
		logger.Error("initializing terminal", "error", err)
		return 1
	}
	defer term.Fini()

	// Live-reload widget geometry while the demo runs.
	if *layoutPath != "" {
		watcher, err := config.NewWatcher(*layoutPath, func(l config.Layout) {
			for _, w := range l.Widgets {
				registry.SetBounds(w.ID, geom.NewRect(w.X, w.Y, w.Width, w.Height))
			}
		}, config.WithErrorFunc(func(err error) {
			logger.Warn("layout reload failed", "error", err)
		}))
		if err != nil {
			logger.Warn("layout watching disabled", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	d := &demo{
		screen:   term.Screen(),
		registry: registry,
	}

	for {
		d.draw()

		batch := term.Poll()
		if batch == nil {
			return 0
		}

		batch = pipeline.Process(batch)
		for _, ev := range batch {
			switch {
			case ev.IsWidget():
				d.record(ev)
			case ev.Kind == input.KindDevice:
				if d.quitRequested(ev) {
					stats := pipeline.Stats()
					term.Fini()
					logger.Info("done",
						"cycles", stats.Cycles,
						"events", stats.Events,
						"rewritten", stats.Rewritten)
					return 0
				}
			}
		}
	}
}

// loadLayout loads the layout file, or the built-in demo layout when path
// is empty.
func loadLayout(path string) (config.Layout, error) {
	if path == "" {
		return config.Layout{Widgets: []config.WidgetDef{
			{ID: 1, X: 4, Y: 2, Width: 20, Height: 5},
			{ID: 2, X: 30, Y: 2, Width: 20, Height: 5},
			{ID: 3, X: 4, Y: 10, Width: 46, Height: 3},
		}}, nil
	}
	return config.Load(path)
}

// demo owns the screen contents: the widget rectangles and a rolling log of
// widget events.
type demo struct {
	screen   tcell.Screen
	registry *widget.Registry
	log      []string
}

// record appends a widget event to the rolling log.
func (d *demo) record(ev input.Event) {
	d.log = append(d.log, ev.String())
	if len(d.log) > 8 {
		d.log = d.log[len(d.log)-8:]
	}
}

// quitRequested reports whether the opaque device event is a quit key.
func (d *demo) quitRequested(ev input.Event) bool {
	key, ok := ev.Device.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch {
	case key.Key() == tcell.KeyEscape, key.Key() == tcell.KeyCtrlC:
		return true
	case key.Key() == tcell.KeyRune && key.Rune() == 'q':
		return true
	}
	return false
}

// draw renders the widgets and the event log.
func (d *demo) draw() {
	d.screen.Clear()

	for _, b := range d.registry.Buttons() {
		d.drawButton(b)
	}

	_, height := d.screen.Size()
	base := height - len(d.log) - 1
	for i, line := range d.log {
		drawText(d.screen, 1, base+i, tcell.StyleDefault.Dim(true), line)
	}
	drawText(d.screen, 1, height-1, tcell.StyleDefault, "click the boxes; q to quit")

	d.screen.Show()
}

// drawButton fills the button's rectangle, highlighted while captured.
func (d *demo) drawButton(b *widget.Button) {
	style := tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	if b.Captured() {
		style = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorBlack)
	}

	bounds := b.Bounds()
	if bounds.Empty() {
		return
	}
	for y := bounds.Y; y <= bounds.Y+bounds.Height; y++ {
		for x := bounds.X; x <= bounds.X+bounds.Width; x++ {
			d.screen.SetContent(int(x), int(y), ' ', nil, style)
		}
	}

	label := fmt.Sprintf("widget %d", b.ID())
	drawText(d.screen, int(bounds.X)+1, int(bounds.Y+bounds.Height/2), style, label)
}

// drawText writes a string starting at (x, y).
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
