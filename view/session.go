// Package view owns the interactive state shared by every frontend: the
// current viewport, the pixel buffer it is rendered into, and the drag
// selection in progress.
package view

import (
	"image"
	"log"
	"time"

	"github.com/tamjidrahman/mandelzoom/fractal"
	"github.com/tamjidrahman/mandelzoom/viewport"
)

// Session is driven from a single frontend loop and is not safe for
// concurrent use.
type Session struct {
	vp       viewport.Viewport
	img      *image.RGBA
	coloring fractal.Coloring
	maxIter  uint32

	dirty bool

	selecting bool
	anchor    image.Point
	cursor    image.Point
}

type Option func(*Session)

func WithColoring(c fractal.Coloring) Option {
	return func(s *Session) { s.coloring = c }
}

func WithMaxIter(n uint32) Option {
	return func(s *Session) { s.maxIter = n }
}

// NewSession starts at the default viewport with a width x height buffer.
// The first call to Refresh renders it.
func NewSession(width, height int, opts ...Option) *Session {
	s := &Session{
		vp:      viewport.New(),
		maxIter: fractal.MaxIter,
		dirty:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	return s
}

func (s *Session) Viewport() viewport.Viewport { return s.vp }
func (s *Session) Coloring() fractal.Coloring  { return s.coloring }
func (s *Session) Image() *image.RGBA          { return s.img }

func (s *Session) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Dirty reports whether the buffer is out of date with the view.
func (s *Session) Dirty() bool { return s.dirty }

// Resize replaces the buffer when the output dimensions change.
func (s *Session) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if w, h := s.Size(); w == width && h == height {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.dirty = true
	log.Printf("view: resized to %dx%d", width, height)
}

// Press starts a drag at p. A press while dragging is ignored.
func (s *Session) Press(p image.Point) {
	if s.selecting {
		return
	}
	s.selecting = true
	s.anchor, s.cursor = p, p
}

// Move updates the live end of the drag.
func (s *Session) Move(p image.Point) {
	if s.selecting {
		s.cursor = p
	}
}

// Release ends the drag at p and zooms into the selected rectangle. It
// reports whether the viewport changed; empty selections are dropped.
func (s *Session) Release(p image.Point) bool {
	if !s.selecting {
		return false
	}
	s.cursor = p
	sel, _ := s.Selection()
	s.selecting = false

	w, h := s.Size()
	if !s.vp.CommitSelection(sel.Min, sel.Max, w, h) {
		log.Printf("view: ignored selection %v on %dx%d", sel, w, h)
		return false
	}
	s.dirty = true
	log.Printf("view: zoom to %v", s.vp)
	return true
}

// Cancel abandons a drag without zooming.
func (s *Session) Cancel() {
	s.selecting = false
}

// Selection returns the rectangle between the drag start and the cursor,
// normalized so Min is the top-left corner.
func (s *Session) Selection() (image.Rectangle, bool) {
	if !s.selecting {
		return image.Rectangle{}, false
	}
	return image.Rectangle{Min: s.anchor, Max: s.cursor}.Canon(), true
}

// Reset returns to the default viewport.
func (s *Session) Reset() {
	s.selecting = false
	s.vp.Reset()
	s.dirty = true
	log.Printf("view: reset to %v", s.vp)
}

func (s *Session) SetColoring(c fractal.Coloring) {
	if c == s.coloring {
		return
	}
	s.coloring = c
	s.dirty = true
}

// Refresh re-renders the buffer if the view changed since the last
// render. It reports whether a render happened. An empty buffer stays
// dirty until a real size arrives.
func (s *Session) Refresh() bool {
	if !s.dirty {
		return false
	}
	start := time.Now()
	if !fractal.Render(s.img, s.vp, s.maxIter, s.coloring) {
		return false
	}
	s.dirty = false
	w, h := s.Size()
	log.Printf("view: rendered %dx%d %s in %v", w, h, s.coloring, time.Since(start))
	return true
}
