// Package main is a minimal terminal host for the editkit editing core.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/editkit/editkit/buffer"
	"github.com/editkit/editkit/config"
	"github.com/editkit/editkit/editor"
	"github.com/editkit/editkit/metrics"
	"github.com/editkit/editkit/mouse"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a JSON options file")
	flag.StringVar(&configPath, "c", "", "Path to a JSON options file (shorthand)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "editkit-demo - terminal host for the editkit core\n\n")
		fmt.Fprintf(os.Stderr, "Usage: editkit-demo [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := config.Default()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read config: %v\n", err)
			return 1
		}
		opts = config.LoadJSON(data)
	}
	// Terminal hosts address cells directly, one unit per cell and row.
	opts.CellWidth = 1
	opts.LineHeight = 1

	text := "Welcome to editkit.\nClick, drag, and type.\nCtrl-Z undoes; Ctrl-Q quits."
	if args := flag.Args(); len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", args[0], err)
			return 1
		}
		text = string(data)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	host := &demoHost{screen: screen}
	host.ed = editor.New(text,
		editor.WithOptions(opts),
		editor.WithMetrics(metrics.NewMonospace(1, opts.TabWidth)),
		editor.WithRedraw(host.draw),
	)
	host.draw()

	return host.loop()
}

// demoHost wires tcell events into the editing core and paints the buffer
// back onto the screen.
type demoHost struct {
	screen tcell.Screen
	ed     *editor.Editor
}

func (h *demoHost) loop() int {
	for {
		switch ev := h.screen.PollEvent().(type) {
		case *tcell.EventResize:
			h.screen.Sync()
			h.draw()
		case *tcell.EventKey:
			if h.handleKey(ev) {
				return 0
			}
		case *tcell.EventMouse:
			h.handleMouse(ev)
		}
	}
}

// handleKey dispatches a key event. Returns true on quit.
func (h *demoHost) handleKey(ev *tcell.EventKey) bool {
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyEscape:
		return true
	case tcell.KeyLeft:
		h.arrow(shift, h.ed.SelectLeft, h.ed.MoveLeft)
	case tcell.KeyRight:
		h.arrow(shift, h.ed.SelectRight, h.ed.MoveRight)
	case tcell.KeyUp:
		h.arrow(shift, h.ed.SelectUp, h.ed.MoveUp)
	case tcell.KeyDown:
		h.arrow(shift, h.ed.SelectDown, h.ed.MoveDown)
	case tcell.KeyHome:
		h.ed.MoveLineStart()
	case tcell.KeyEnd:
		h.ed.MoveLineEnd()
	case tcell.KeyPgUp:
		h.ed.MovePageUp()
	case tcell.KeyPgDn:
		h.ed.MovePageDown()
	case tcell.KeyEnter:
		h.ed.InsertNewline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.ed.Backspace()
	case tcell.KeyDelete:
		h.ed.Delete()
	case tcell.KeyTab:
		h.ed.Indent()
	case tcell.KeyBacktab:
		h.ed.Unindent()
	case tcell.KeyCtrlZ:
		h.ed.Undo()
	case tcell.KeyCtrlY:
		h.ed.Redo()
	case tcell.KeyCtrlA:
		h.ed.SelectAll()
	case tcell.KeyCtrlD:
		h.ed.DuplicateLine()
	case tcell.KeyCtrlK:
		h.ed.DeleteLine()
	case tcell.KeyRune:
		h.ed.InsertText(string(ev.Rune()))
	}
	return false
}

func (h *demoHost) arrow(shift bool, sel func() bool, move func() bool) {
	if shift {
		sel()
	} else {
		move()
	}
}

func (h *demoHost) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		if h.ed.MouseState() == mouse.StateIdle {
			h.ed.HandleClickAt(float64(x), float64(y), shift, ev.When())
		} else {
			h.ed.HandleDrag(float64(x), float64(y))
		}
	default:
		h.ed.HandleRelease()
	}
}

func (h *demoHost) draw() {
	h.screen.Clear()
	plain := tcell.StyleDefault
	highlighted := tcell.StyleDefault.Reverse(true)

	sel, hasSel := h.ed.Selection()
	for row, line := range h.ed.Lines() {
		col := 0
		for _, r := range line {
			style := plain
			if hasSel && sel.Contains(buffer.Position{Row: row, Col: col}) {
				style = highlighted
			}
			h.screen.SetContent(col, row, r, nil, style)
			col++
		}
	}

	cur := h.ed.CursorPosition()
	h.screen.ShowCursor(cur.Col, cur.Row)
	h.screen.Show()
}
