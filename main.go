package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tamjidrahman/mandelzoom/debuglog"
	"github.com/tamjidrahman/mandelzoom/fractal"
	"github.com/tamjidrahman/mandelzoom/view"
)

const (
	defaultWidth  = 1024
	defaultHeight = 768
	outlineWidth  = 2
)

var outlineColor = color.RGBA{255, 0, 0, 255}

var (
	widthFlag    = flag.Int("width", defaultWidth, "initial window width")
	heightFlag   = flag.Int("height", defaultHeight, "initial window height")
	titleFlag    = flag.String("title", "Mandelbrot", "window title")
	coloringFlag = flag.String("coloring", "smooth", "coloring: smooth, gray")
	debugFlag    = flag.Bool("debug", false, "write debug log to "+debuglog.DefaultDir+"/"+debuglog.FileName)
)

var errQuit = errors.New("quit")

// Game adapts a view.Session to ebiten. Layout tracks the window size,
// Update feeds mouse and keys into the session, Draw uploads the buffer.
type Game struct {
	session *view.Session

	outW, outH int

	canvas  *ebiten.Image
	stale   bool
	showHUD bool
}

func NewGame(width, height int, coloring fractal.Coloring) *Game {
	return &Game{
		session: view.NewSession(width, height, view.WithColoring(coloring)),
		outW:    width,
		outH:    height,
		showHUD: true,
	}
}

func (g *Game) Update() error {
	g.session.Resize(g.outW, g.outH)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.SetColoring(g.session.Coloring().Next())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Cancel()
	}

	cursor := image.Pt(ebiten.CursorPosition())
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.session.Press(cursor)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.session.Release(cursor)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.session.Move(cursor)
	}

	if g.session.Refresh() {
		g.stale = true
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	img := g.session.Image()
	b := img.Bounds()
	if b.Empty() {
		return
	}

	if g.canvas == nil || g.canvas.Bounds().Size() != b.Size() {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(b.Dx(), b.Dy())
		g.stale = true
	}
	if g.stale {
		g.canvas.WritePixels(img.Pix)
		g.stale = false
	}
	screen.DrawImage(g.canvas, nil)

	if sel, ok := g.session.Selection(); ok {
		vector.StrokeRect(screen,
			float32(sel.Min.X), float32(sel.Min.Y),
			float32(sel.Dx()), float32(sel.Dy()),
			outlineWidth, outlineColor, false)
	}

	if g.showHUD {
		vp := g.session.Viewport()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f\nView: %v\nCenter: (%g, %g)\nColoring: %s",
			ebiten.ActualFPS(), vp, real(vp.Center()), imag(vp.Center()), g.session.Coloring()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		// The standard logger may be discarded; report on stderr.
		fmt.Fprintf(os.Stderr, "mandelzoom: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logFile, err := debuglog.Setup(debuglog.DefaultDir, *debugFlag)
	if err != nil {
		return fmt.Errorf("debug log: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	coloring, err := fractal.ParseColoring(*coloringFlag)
	if err != nil {
		return err
	}
	if *widthFlag <= 0 || *heightFlag <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", *widthFlag, *heightFlag)
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle(*titleFlag)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(*widthFlag, *heightFlag, coloring)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
