package ui

import (
	"strings"

	"github.com/atomicstack/feedview/internal/theme"
	"github.com/atomicstack/feedview/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var styles = theme.Default()

const ellipsis = "…"

// RowKind selects how a content row is styled.
type RowKind int

const (
	RowBody RowKind = iota
	RowItem
	RowSelected
	RowEmpty
)

// Row is one line of the content band.
type Row struct {
	Text string
	Kind RowKind
}

// CommandRow is the command line band. Caret is the caret column in cells.
type CommandRow struct {
	Prompt string
	Text   string
	Caret  int

	caretRune int
}

// Cursor tells the terminal where to show the caret, if anywhere.
type Cursor struct {
	Visible bool
	X, Y    int
}

// Frame is the laid-out screen for the focused dialog: a title band, the
// content band, a hints band and, in command-line focus, the command band.
// When Height is smaller than the fixed bands, rows are dropped from the top.
type Frame struct {
	Width   int
	Height  int
	Title   string
	Content []Row
	Hints   string
	Command *CommandRow
	Cursor  Cursor
}

type styledLine struct {
	text  string
	style *lipgloss.Style
	caret int // rune index of the caret, -1 for none
}

func (f Frame) bands() []styledLine {
	lines := make([]styledLine, 0, len(f.Content)+3)
	lines = append(lines, styledLine{text: f.Title, style: styles.Title, caret: -1})
	for _, row := range f.Content {
		lines = append(lines, styledLine{text: row.Text, style: rowStyle(row.Kind), caret: -1})
	}
	lines = append(lines, styledLine{text: f.Hints, style: styles.Hints, caret: -1})
	if f.Command != nil {
		lines = append(lines, styledLine{
			text:  f.Command.Prompt + f.Command.Text,
			style: styles.CommandText,
			caret: f.Command.caretRune,
		})
	}
	return limitHeight(lines, f.Height)
}

// Lines returns the frame as plain text, one entry per terminal row.
func (f Frame) Lines() []string {
	bands := f.bands()
	out := make([]string, len(bands))
	for i, line := range bands {
		out[i] = line.text
	}
	return out
}

func (f Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}

func rowStyle(kind RowKind) *lipgloss.Style {
	switch kind {
	case RowItem:
		return styles.Item
	case RowSelected:
		return styles.SelectedItem
	case RowEmpty:
		return styles.Empty
	default:
		return styles.Body
	}
}

func limitHeight(lines []styledLine, height int) []styledLine {
	if height < 0 {
		height = 0
	}
	if len(lines) <= height {
		return lines
	}
	return lines[len(lines)-height:]
}

// Surface collects what a dialog wants drawn. Dialogs call SetCommandLine
// before ContentRows so the command band is accounted for.
type Surface struct {
	width   int
	height  int
	title   string
	hints   []key.Binding
	content []Row
	command *CommandRow
}

func newSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// Width is the drawable width in cells; zero or less means unbounded.
func (s *Surface) Width() int {
	return s.width
}

// ContentRows is the height left for the content band.
func (s *Surface) ContentRows() int {
	fixed := 2
	if s.command != nil {
		fixed++
	}
	if rows := s.height - fixed; rows > 0 {
		return rows
	}
	return 0
}

func (s *Surface) SetTitle(title string) {
	s.title = title
}

func (s *Surface) SetHints(bindings ...key.Binding) {
	s.hints = bindings
}

// AddRow appends a content row. Rows beyond ContentRows are dropped.
func (s *Surface) AddRow(text string, kind RowKind) {
	if len(s.content) >= s.ContentRows() {
		return
	}
	s.content = append(s.content, Row{Text: text, Kind: kind})
}

// SetCommandLine shows editor after prompt, scrolling the editor's viewport
// so the caret fits in the remaining cells.
func (s *Surface) SetCommandLine(prompt string, editor *state.TextLine) {
	promptWidth := runewidth.StringWidth(prompt)
	var visible string
	if s.width > 0 {
		visible = editor.VisibleCells(s.width - promptWidth)
	} else {
		visible = editor.VisibleSlice(editor.Len() + 1)
	}
	offset := editor.DisplayCursorOffset()
	before := string([]rune(visible)[:offset])
	s.command = &CommandRow{
		Prompt:    prompt,
		Text:      visible,
		Caret:     promptWidth + runewidth.StringWidth(before),
		caretRune: len([]rune(prompt)) + offset,
	}
}

func (s *Surface) frame() Frame {
	f := Frame{
		Width:  s.width,
		Height: s.height,
		Title:  fitWidth(s.title, s.width),
		Hints:  fitWidth(hintText(s.hints, s.width), s.width),
	}
	rows := s.ContentRows()
	f.Content = make([]Row, 0, rows)
	for _, row := range s.content {
		f.Content = append(f.Content, Row{Text: fitWidth(row.Text, s.width), Kind: row.Kind})
	}
	for len(f.Content) < rows {
		f.Content = append(f.Content, Row{Text: fitWidth("", s.width), Kind: RowBody})
	}
	if s.command != nil {
		cmd := *s.command
		if s.width > 0 {
			avail := s.width - runewidth.StringWidth(cmd.Prompt)
			if avail < 0 {
				avail = 0
			}
			cmd.Text = runewidth.FillRight(runewidth.Truncate(cmd.Text, avail, ""), avail)
		}
		f.Command = &cmd
		if n := len(f.bands()); n > 0 {
			x := cmd.Caret
			if s.width > 0 && x >= s.width {
				x = s.width - 1
			}
			f.Cursor = Cursor{Visible: true, X: x, Y: n - 1}
		}
	}
	return f
}

// fitWidth truncates text to width cells and pads it so styled backgrounds
// span the whole row.
func fitWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	return runewidth.FillRight(runewidth.Truncate(text, width, ellipsis), width)
}

var hintHelp = func() help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	plain := lipgloss.NewStyle()
	h.Styles.ShortKey = plain
	h.Styles.ShortDesc = plain
	h.Styles.ShortSeparator = plain
	h.Styles.Ellipsis = plain
	return h
}()

func hintText(bindings []key.Binding, width int) string {
	h := hintHelp
	if width > 0 {
		h.Width = width
	}
	return h.ShortHelpView(bindings)
}

// renderFrame styles a frame for the terminal. caret draws the character
// under the command-line caret.
func renderFrame(f Frame, caret *cursor.Model) string {
	return renderLines(f.bands(), caret)
}

func renderLines(lines []styledLine, caret *cursor.Model) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		runes := []rune(line.text)
		if line.caret < 0 || caret == nil {
			out[i] = render(line.style, line.text)
			continue
		}
		at := line.caret
		if at > len(runes) {
			at = len(runes)
		}
		under := " "
		tail := ""
		if at < len(runes) {
			under = string(runes[at])
			tail = string(runes[at+1:])
		}
		c := *caret
		c.SetChar(under)
		out[i] = render(line.style, string(runes[:at])) + c.View() + render(line.style, tail)
	}
	return strings.Join(out, "\n")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func newCaret() cursor.Model {
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.CommandText != nil {
		c.TextStyle = *styles.CommandText
	}
	c.SetMode(cursor.CursorStatic)
	c.Focus()
	return c
}
