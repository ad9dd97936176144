package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/x/ansi"
)

// TextScreen prints each frame as plain text, separated by a header line.
// It backs headless replay and golden-style tests.
type TextScreen struct {
	w      io.Writer
	width  int
	height int
	caret  cursor.Model
	frames int
}

func NewTextScreen(w io.Writer, width, height int) *TextScreen {
	return &TextScreen{w: w, width: width, height: height, caret: newCaret()}
}

func (s *TextScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *TextScreen) Resize(width, height int) {
	s.width, s.height = width, height
}

// Frames returns how many frames were drawn.
func (s *TextScreen) Frames() int {
	return s.frames
}

func (s *TextScreen) Draw(f Frame) error {
	s.frames++
	var b strings.Builder
	fmt.Fprintf(&b, "--- frame %d (%dx%d)", s.frames, f.Width, f.Height)
	if f.Cursor.Visible {
		fmt.Fprintf(&b, " cursor %d,%d", f.Cursor.X, f.Cursor.Y)
	}
	b.WriteString("\n")
	for _, line := range strings.Split(ansi.Strip(renderFrame(f, &s.caret)), "\n") {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
	_, err := io.WriteString(s.w, b.String())
	return err
}
