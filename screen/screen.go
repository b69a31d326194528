package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen owns the terminal for the lifetime of one run. Enter and Leave
// bracket every exit path; between them the terminal is in the alternate
// buffer with raw input and a hidden cursor
type Screen struct {
	tc        tcell.Screen
	style     tcell.Style
	width     int
	centerRow int
}

// New creates a controller drawing with the given foreground colour;
// hasColor false leaves the terminal default in place
func New(color tcell.Color, hasColor bool) *Screen {
	style := tcell.StyleDefault
	if hasColor {
		style = style.Foreground(color)
	}
	return &Screen{style: style}
}

// Enter switches to the alternate screen buffer and enables raw input
func (s *Screen) Enter() error {
	tc, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := tc.Init(); err != nil {
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	s.tc = tc
	return nil
}

// Leave restores cursor visibility, default colours, the main screen
// buffer and cooked input. Safe to call after a failed Enter. The screen
// handle is kept so a concurrent PollEvent drains to nil instead of
// dereferencing a cleared field
func (s *Screen) Leave() {
	if s.tc != nil {
		s.tc.Fini()
	}
}

// Size returns the current terminal dimensions in cells
func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

// PollEvent blocks until the next terminal event. Returns nil once the
// screen has been finalized
func (s *Screen) PollEvent() tcell.Event {
	return s.tc.PollEvent()
}

// Init clears the whole screen, hides the cursor, applies the configured
// style and recomputes the vertical center for the given dimensions.
// Called once at startup and again after every resize
func (s *Screen) Init(width, height int) {
	s.width = width
	s.centerRow = height / 2
	s.tc.SetStyle(s.style)
	s.tc.HideCursor()
	s.tc.Clear()
}

// Render redraws the center row only: the row is blanked and the text
// written starting at the horizontal center. Touching a single row avoids
// the flicker of a whole-screen clear on every tick
func (s *Screen) Render(text string, count int) {
	for x := 0; x < s.width; x++ {
		s.tc.SetContent(x, s.centerRow, ' ', nil, s.style)
	}
	x := CenterColumn(s.width, count)
	for _, r := range text {
		s.tc.SetContent(x, s.centerRow, r, nil, s.style)
		x++
	}
	s.tc.Show()
}

// CenterColumn computes the starting column that horizontally centers a
// run of count cells, saturating at zero when the text is wider than the
// terminal
func CenterColumn(columns, count int) int {
	col := columns/2 - count/2
	if col < 0 {
		return 0
	}
	return col
}
