package main

import (
	"image"
	"io"
	"log"
	"os"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/tamjidrahman/mandelzoom/fractal"
	"github.com/tamjidrahman/mandelzoom/viewport"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, cols, rows int) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	a := newApp(screen, fractal.SmoothHue)
	a.showHUD = false
	return a
}

func TestNewApp_BufferIsTwoPixelsPerCell(t *testing.T) {
	a := newTestApp(t, 20, 8)
	if w, h := a.session.Size(); w != 20 || h != 16 {
		t.Errorf("buffer = %dx%d, want 20x16", w, h)
	}
}

func TestFrame_PacksRowsIntoHalfBlocks(t *testing.T) {
	a := newTestApp(t, 12, 5)
	if !a.frame() {
		t.Fatal("first frame drew nothing")
	}

	img := a.session.Image()
	for cy := 0; cy < 5; cy++ {
		for cx := 0; cx < 12; cx++ {
			r, _, style, _ := a.screen.GetContent(cx, cy)
			if r != upperHalf {
				t.Fatalf("cell (%d,%d) rune = %q", cx, cy, r)
			}
			fg, bg, _ := style.Decompose()
			if want := rgb(img.RGBAAt(cx, cy*2)); fg != want {
				t.Errorf("cell (%d,%d) fg = %v, want %v", cx, cy, fg, want)
			}
			if want := rgb(img.RGBAAt(cx, cy*2+1)); bg != want {
				t.Errorf("cell (%d,%d) bg = %v, want %v", cx, cy, bg, want)
			}
		}
	}

	if a.frame() {
		t.Error("unchanged frame redrew")
	}
}

func TestMouseDrag_Zooms(t *testing.T) {
	a := newTestApp(t, 40, 20)
	a.frame()

	a.handle(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone))
	a.handle(tcell.NewEventMouse(15, 9, tcell.Button1, tcell.ModNone))
	if sel, ok := a.session.Selection(); !ok || sel != image.Rect(5, 8, 15, 18) {
		t.Fatalf("Selection = %v, %v", sel, ok)
	}
	a.frame()
	if _, _, style, _ := a.screen.GetContent(5, 4); style != outlineStyle {
		t.Error("selection corner not outlined")
	}

	a.handle(tcell.NewEventMouse(25, 14, tcell.ButtonNone, tcell.ModNone))
	if _, ok := a.session.Selection(); ok {
		t.Fatal("selection still active after release")
	}

	want := viewport.New()
	want.CommitSelection(image.Pt(5, 8), image.Pt(25, 28), 40, 40)
	if got := a.session.Viewport(); got != want {
		t.Errorf("Viewport = %v, want %v", got, want)
	}
}

func TestRightClick_Resets(t *testing.T) {
	a := newTestApp(t, 40, 20)
	a.handle(tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone))
	a.handle(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone))
	if a.session.Viewport() == viewport.Default {
		t.Fatal("drag did not zoom")
	}

	a.handle(tcell.NewEventMouse(0, 0, tcell.Button2, tcell.ModNone))
	if a.session.Viewport() != viewport.Default {
		t.Errorf("Viewport after right click = %v", a.session.Viewport())
	}
}

func TestKeys(t *testing.T) {
	a := newTestApp(t, 10, 4)

	if !a.handle(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)) {
		t.Fatal("c quit the app")
	}
	if a.session.Coloring() != fractal.GrayscaleLinear {
		t.Errorf("Coloring = %v after c", a.session.Coloring())
	}

	a.handle(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	if !a.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc during drag quit instead of cancelling")
	}
	if _, ok := a.session.Selection(); ok {
		t.Error("Esc did not cancel the drag")
	}
	if a.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc without drag did not quit")
	}
	if a.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q did not quit")
	}
}

func TestResizeEvent(t *testing.T) {
	a := newTestApp(t, 10, 4)
	a.frame()

	a.screen.(tcell.SimulationScreen).SetSize(30, 12)
	a.handle(tcell.NewEventResize(30, 12))
	if w, h := a.session.Size(); w != 30 || h != 24 {
		t.Errorf("buffer after resize = %dx%d, want 30x24", w, h)
	}
	if !a.frame() {
		t.Error("resize did not redraw")
	}
}

func TestHUD_DrawsStatusLine(t *testing.T) {
	a := newTestApp(t, 80, 4)
	a.showHUD = true
	a.frame()
	if r, _, style, _ := a.screen.GetContent(1, 0); r != '[' || style != hudStyle {
		t.Errorf("HUD cell = %q %v", r, style)
	}
}
