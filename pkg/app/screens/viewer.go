package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/tirinha/pkg/app/components"
	"github.com/kerbaras/tirinha/pkg/app/styles"
	"github.com/kerbaras/tirinha/pkg/data"
)

const (
	// WindowTitle is shown by terminals that support it
	WindowTitle = "Tirinha"

	// Used until the terminal reports its size: the 1150x370 strip
	// window at ten pixels per cell.
	defaultWidth  = 115
	defaultHeight = 21

	statusHeight = 2
)

// stripRenderedMsg carries a rendered strip back into the update loop
type stripRenderedMsg struct {
	index int
	cols  int
	rows  int
	view  string
	err   error
}

// ViewerScreen is the slideshow over the downloaded strips
type ViewerScreen struct {
	strips []data.Strip
	cursor *components.Cursor
	keys   keyMap
	help   help.Model

	width     int
	height    int
	maxWidth  int
	maxHeight int

	picture  string
	rendered int
	err      error
	quitting bool
}

type ViewerOption func(*ViewerScreen)

// WithMaxSize caps the area used for the picture, in terminal cells.
// Zero leaves that dimension bound only by the terminal.
func WithMaxSize(cols, rows int) ViewerOption {
	return func(s *ViewerScreen) {
		s.maxWidth = cols
		s.maxHeight = rows
	}
}

func NewViewerScreen(strips []data.Strip, opts ...ViewerOption) *ViewerScreen {
	s := &ViewerScreen{
		strips:   strips,
		cursor:   components.NewCursor(len(strips)),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
		rendered: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Index returns the strip currently shown
func (s *ViewerScreen) Index() int {
	return s.cursor.Index()
}

// Rendered returns the index of the strip whose picture is on screen, or -1
func (s *ViewerScreen) Rendered() int {
	return s.rendered
}

// Err returns the render failure that closed the viewer, if any
func (s *ViewerScreen) Err() error {
	return s.err
}

func (s *ViewerScreen) Closed() bool {
	return s.quitting
}

func (s *ViewerScreen) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(WindowTitle),
		s.render(),
	)
}

func (s *ViewerScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// A resize is the terminal's expose event: redraw the current strip
		s.width = msg.Width
		s.height = msg.Height
		s.help.Width = msg.Width
		return s, s.render()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Quit):
			s.quitting = true
			return s, tea.Quit
		case key.Matches(msg, s.keys.Next):
			if s.cursor.Next() {
				return s, s.render()
			}
		case key.Matches(msg, s.keys.Prev):
			if s.cursor.Prev() {
				return s, s.render()
			}
		case key.Matches(msg, s.keys.First):
			if s.cursor.First() {
				return s, s.render()
			}
		case key.Matches(msg, s.keys.Last):
			if s.cursor.Last() {
				return s, s.render()
			}
		}

	case stripRenderedMsg:
		if msg.err != nil {
			s.err = msg.err
			s.quitting = true
			return s, tea.Quit
		}
		// Drop renders that finished after the cursor or the terminal moved on
		cols, rows := s.viewport()
		if msg.index == s.cursor.Index() && msg.cols == cols && msg.rows == rows {
			s.picture = msg.view
			s.rendered = msg.index
		}
	}

	return s, nil
}

// viewport returns the cell area available for the picture
func (s *ViewerScreen) viewport() (int, int) {
	cols := s.width
	rows := s.height - statusHeight
	if s.maxWidth > 0 && cols > s.maxWidth {
		cols = s.maxWidth
	}
	if s.maxHeight > 0 && rows > s.maxHeight {
		rows = s.maxHeight
	}
	return max(cols, 1), max(rows, 1)
}

// render loads the strip under the cursor and scales it to the viewport
func (s *ViewerScreen) render() tea.Cmd {
	if len(s.strips) == 0 {
		return nil
	}
	index := s.cursor.Index()
	strip := s.strips[index]
	cols, rows := s.viewport()

	return func() tea.Msg {
		msg := stripRenderedMsg{index: index, cols: cols, rows: rows}
		picture, err := components.LoadPicture(strip.Path)
		if err != nil {
			msg.err = fmt.Errorf("strip %d: %w", index+1, err)
			return msg
		}
		msg.view, msg.err = picture.Render(cols, rows)
		return msg
	}
}

func (s *ViewerScreen) View() string {
	if s.quitting {
		return ""
	}
	if len(s.strips) == 0 {
		return styles.MutedStyle.Render("No strips to show")
	}

	return lipgloss.JoinVertical(lipgloss.Left, s.picture, s.renderStatus(), s.help.View(s.keys))
}

func (s *ViewerScreen) renderStatus() string {
	index := s.cursor.Index()
	counter := styles.TitleStyle.Render(fmt.Sprintf("%d/%d", index+1, s.cursor.Len()))
	name := styles.MutedStyle.Render(s.strips[index].Name())

	barWidth := s.width / 4
	bar := components.PositionBar(index, s.cursor.Len(), barWidth)

	return lipgloss.JoinHorizontal(lipgloss.Center, counter, "  ", bar, "  ", name)
}
