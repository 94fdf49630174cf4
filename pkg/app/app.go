package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/tirinha/pkg/app/screens"
	"github.com/kerbaras/tirinha/pkg/data"
)

type App struct {
	strips  []data.Strip
	options []screens.ViewerOption
	program []tea.ProgramOption
}

func NewApp(strips []data.Strip, opts ...screens.ViewerOption) *App {
	return &App{strips: strips, options: opts}
}

// WithProgramOptions passes extra options to the bubbletea program,
// e.g. custom input and output in tests
func (a *App) WithProgramOptions(opts ...tea.ProgramOption) *App {
	a.program = append(a.program, opts...)
	return a
}

// Run shows the strips until the user quits. It returns the render error
// that closed the viewer, if any.
func (a *App) Run(ctx context.Context) error {
	if len(a.strips) == 0 {
		return data.Errorf(data.ErrRender, "no strips to show")
	}

	model := screens.NewViewerScreen(a.strips, a.options...)
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, a.program...)
	p := tea.NewProgram(model, opts...)
	final, err := p.Run()
	if err != nil {
		return data.Wrap(data.ErrRender, err, "viewer failed")
	}
	if viewer, ok := final.(*screens.ViewerScreen); ok && viewer.Err() != nil {
		return viewer.Err()
	}
	return nil
}
