package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/tamjidrahman/mandelzoom/fractal"
	"github.com/tamjidrahman/mandelzoom/view"
)

// upperHalf carries the top pixel in its foreground and the bottom pixel
// in its background, so every cell shows two vertically stacked pixels.
const upperHalf = '▀'

var (
	outlineStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorRed)
	hudStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

type app struct {
	screen  tcell.Screen
	session *view.Session
	showHUD bool
	dirty   bool
}

func newApp(screen tcell.Screen, coloring fractal.Coloring) *app {
	cols, rows := screen.Size()
	return &app{
		screen:  screen,
		session: view.NewSession(cols, rows*2, view.WithColoring(coloring)),
		showHUD: true,
		dirty:   true,
	}
}

// cellToPixel maps a terminal cell to the upper pixel it displays.
func cellToPixel(x, y int) image.Point {
	return image.Pt(x, y*2)
}

// handle applies one event and reports whether the app keeps running.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.screen.Sync()
		cols, rows := ev.Size()
		a.session.Resize(cols, rows*2)
		a.dirty = true
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if _, dragging := a.session.Selection(); !dragging {
			return false
		}
		a.session.Cancel()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			a.session.Reset()
		case 'c':
			a.session.SetColoring(a.session.Coloring().Next())
		case 'h':
			a.showHUD = !a.showHUD
		}
	}
	a.dirty = true
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	p := cellToPixel(ev.Position())
	_, dragging := a.session.Selection()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.Button2 != 0:
		a.session.Reset()
	case buttons&tcell.Button1 != 0 && !dragging:
		a.session.Press(p)
	case buttons&tcell.Button1 != 0:
		a.session.Move(p)
	case dragging && buttons == tcell.ButtonNone:
		a.session.Release(p)
	default:
		return
	}
	a.dirty = true
}

// frame re-renders if needed and redraws the screen. It reports whether
// anything was drawn.
func (a *app) frame() bool {
	if a.session.Refresh() {
		a.dirty = true
	}
	if !a.dirty {
		return false
	}
	a.draw()
	a.screen.Show()
	a.dirty = false
	return true
}

func (a *app) draw() {
	img := a.session.Image()
	cols, rows := a.screen.Size()
	b := img.Bounds()

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bottom := image.Pt(cx, cy*2), image.Pt(cx, cy*2+1)
			if !top.In(b) {
				a.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.Foreground(rgb(img.RGBAAt(top.X, top.Y)))
			if bottom.In(b) {
				style = style.Background(rgb(img.RGBAAt(bottom.X, bottom.Y)))
			}
			a.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}

	if sel, ok := a.session.Selection(); ok {
		a.drawOutline(sel)
	}
	if a.showHUD {
		vp := a.session.Viewport()
		a.drawText(0, 0, fmt.Sprintf(" %v  %s  [drag] zoom [r] reset [c] coloring [q] quit ", vp, a.session.Coloring()))
	}
}

// drawOutline paints the cells on the border of a pixel-space selection.
func (a *app) drawOutline(sel image.Rectangle) {
	x0, x1 := sel.Min.X, sel.Max.X
	y0, y1 := sel.Min.Y/2, sel.Max.Y/2
	for x := x0; x <= x1; x++ {
		a.screen.SetContent(x, y0, upperHalf, nil, outlineStyle)
		a.screen.SetContent(x, y1, upperHalf, nil, outlineStyle)
	}
	for y := y0; y <= y1; y++ {
		a.screen.SetContent(x0, y, upperHalf, nil, outlineStyle)
		a.screen.SetContent(x1, y, upperHalf, nil, outlineStyle)
	}
}

func (a *app) drawText(x, y int, s string) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, hudStyle)
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
