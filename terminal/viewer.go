// Package terminal provides an interactive tcell viewer for elbow routes.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"elbow/canvas"
	"elbow/core"
	"elbow/pathfinding"
)

var (
	lineStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	markerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Viewer lets the user place a start and end point on the terminal and shows
// the elbow connector between them. Terminal cell (x, y) maps to canvas point
// (x*unit, y*unit).
type Viewer struct {
	screen  tcell.Screen
	planner pathfinding.Planner
	unit    float64
	history *History

	width, height int // drawable area, excluding the status line
	start, end    core.GridPoint
	cursor        core.GridPoint

	route  core.Route
	result pathfinding.Result
	err    error
}

// NewViewer creates a viewer on an initialised screen. The start and end
// points begin at opposite quarters of the screen.
func NewViewer(screen tcell.Screen, planner pathfinding.Planner, unit float64) *Viewer {
	v := &Viewer{screen: screen, planner: planner, unit: unit, history: NewHistory(100)}
	v.resize()

	v.start = core.GridPoint{X: v.width / 4, Y: v.height / 4}
	v.end = core.GridPoint{X: v.width * 3 / 4, Y: v.height * 3 / 4}
	v.cursor = core.GridPoint{X: v.width / 2, Y: v.height / 2}
	v.history.Save(v.start, v.end)
	v.reroute()
	return v
}

// Route returns the connector currently displayed.
func (v *Viewer) Route() core.Route {
	return v.route
}

// Cursor returns the cursor cell.
func (v *Viewer) Cursor() core.GridPoint {
	return v.cursor
}

func (v *Viewer) toCanvas(p core.GridPoint) core.Point {
	return core.Point{X: float64(p.X) * v.unit, Y: float64(p.Y) * v.unit}
}

func (v *Viewer) resize() {
	w, h := v.screen.Size()
	v.width, v.height = w, h-1
	if v.height < 1 {
		v.height = 1
	}
	v.cursor = v.clamp(v.cursor)
}

func (v *Viewer) clamp(p core.GridPoint) core.GridPoint {
	p.X = max(0, min(p.X, v.width-1))
	p.Y = max(0, min(p.Y, v.height-1))
	return p
}

func (v *Viewer) reroute() {
	start, end := v.toCanvas(v.start), v.toCanvas(v.end)
	v.result, v.err = v.planner.Plan(start, end)
	v.route = core.Route{Start: start, End: end, Points: v.result.Points}
}

// HandleEvent applies one input event. It returns false when the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		switch ev.Key() {
		case tcell.KeyUp:
			v.moveCursor(0, -1)
		case tcell.KeyDown:
			v.moveCursor(0, 1)
		case tcell.KeyLeft:
			v.moveCursor(-1, 0)
		case tcell.KeyRight:
			v.moveCursor(1, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 's':
				v.place(v.cursor, v.end)
			case 'e':
				v.place(v.start, v.cursor)
			case 'x':
				v.place(v.end, v.start)
			case 'u':
				if start, end, ok := v.history.Undo(); ok {
					v.start, v.end = start, end
					v.reroute()
				}
			case 'r':
				if start, end, ok := v.history.Redo(); ok {
					v.start, v.end = start, end
					v.reroute()
				}
			case 'h':
				v.moveCursor(-1, 0)
			case 'j':
				v.moveCursor(0, 1)
			case 'k':
				v.moveCursor(0, -1)
			case 'l':
				v.moveCursor(1, 0)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		p := v.clamp(core.GridPoint{X: x, Y: y})
		switch {
		case ev.Buttons()&tcell.ButtonPrimary != 0:
			v.cursor = p
			v.place(p, v.end)
		case ev.Buttons()&tcell.ButtonSecondary != 0:
			v.cursor = p
			v.place(v.start, p)
		}

	case *tcell.EventResize:
		v.resize()
		v.start, v.end = v.clamp(v.start), v.clamp(v.end)
		v.reroute()
		v.screen.Sync()
	}

	return true
}

// place moves the endpoints and records the change for undo.
func (v *Viewer) place(start, end core.GridPoint) {
	if start == v.start && end == v.end {
		return
	}
	v.start, v.end = start, end
	v.history.Save(start, end)
	v.reroute()
}

func (v *Viewer) moveCursor(dx, dy int) {
	v.cursor = v.clamp(core.GridPoint{X: v.cursor.X + dx, Y: v.cursor.Y + dy})
}

// Draw renders the connector, the cursor and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()

	if c, err := canvas.NewMatrixCanvas(v.width, v.height); err == nil {
		drawErr := c.DrawRoute(v.route, canvas.Viewport{Unit: v.unit})
		if drawErr != nil {
			// Start and end share a cell
			c.SetMark(v.start, canvas.StartMarker)
		}
		v.blit(c)
	}

	r, _, style, _ := v.screen.GetContent(v.cursor.X, v.cursor.Y)
	v.screen.SetContent(v.cursor.X, v.cursor.Y, r, nil, style.Reverse(true))

	v.drawStatus()
	v.screen.Show()
}

func (v *Viewer) blit(c *canvas.MatrixCanvas) {
	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := c.Get(core.GridPoint{X: x, Y: y})
			if r == ' ' {
				continue
			}
			style := lineStyle
			if canvas.IsTerminal(r) {
				style = markerStyle
			}
			v.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (v *Viewer) drawStatus() {
	var text string
	style := statusStyle
	switch {
	case v.err != nil:
		text = "error: " + v.err.Error()
		style = errorStyle
	case len(v.route.Points) == 0:
		text = fmt.Sprintf("start %v  end %v  direct", v.route.Start, v.route.End)
	default:
		text = fmt.Sprintf("start %v  end %v  %s  points: %d",
			v.route.Start, v.route.End, v.result.Heading, len(v.route.Points))
	}
	text += "  [arrows/hjkl move, s start, e end, x swap, u/r undo/redo, q quit]"

	y := v.height
	col := 0
	for _, r := range text {
		w := max(runewidth.RuneWidth(r), 1)
		if col+w > v.width {
			break
		}
		v.screen.SetContent(col, y, r, nil, style)
		col += w
	}
	for ; col < v.width; col++ {
		v.screen.SetContent(col, y, ' ', nil, style)
	}
}

// Run draws the viewer and processes events until the user quits or the
// screen is finalized. Events are polled on a separate goroutine and
// delivered over a channel; the poller exits once Run has returned and the
// screen is finalized.
func (v *Viewer) Run() error {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	v.Draw()
	for ev := range events {
		if !v.HandleEvent(ev) {
			return nil
		}
		v.Draw()
	}
	return nil
}

// Run opens the terminal, runs a viewer on it and restores the terminal on
// exit. Routes are cached since undo and swap revisit earlier endpoints.
func Run(router *pathfinding.Router, unit float64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)

	return NewViewer(screen, pathfinding.NewCachedRouter(router, 256), unit).Run()
}
