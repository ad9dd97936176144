package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/feedview/internal/content"
	"github.com/atomicstack/feedview/internal/event"
	"github.com/atomicstack/feedview/internal/logging/events"
	"github.com/atomicstack/feedview/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	headlessWidth  = 80
	headlessHeight = 24
)

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	NextKey     rune
	PreviousKey rune
	ReplayPath  string
	ReplayPace  time.Duration
	Headless    bool
}

// terminalSize reports the size of stdout when it is a terminal.
var terminalSize = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Run bootstraps the dialogs and executes the Bubble Tea program, or the
// plain-text replay loop when cfg.Headless is set.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Headless {
		return RunHeadless(ctx, cfg, content.Sample(), os.Stdout)
	}
	stack, err := newStack(cfg, content.Sample())
	if err != nil {
		return err
	}
	replay, closeReplay, err := openReplay(cfg)
	if err != nil {
		return err
	}
	defer closeReplay()

	var source event.Source
	if replay != nil {
		source = replay
	}
	model := ui.NewModel(stack, cfg.Width, cfg.Height, source)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	if err != nil {
		return err
	}
	if replay != nil {
		if perr := replay.Err(); perr != nil {
			return fmt.Errorf("replay: %w", perr)
		}
	}
	events.App.Stop("quit")
	return nil
}

// RunHeadless replays cfg.ReplayPath against the dialogs and writes every
// frame to out as plain text. A script that ends before quit is requested is
// a normal shutdown.
func RunHeadless(ctx context.Context, cfg Config, provider content.Provider, out io.Writer) error {
	stack, err := newStack(cfg, provider)
	if err != nil {
		return err
	}
	replay, closeReplay, err := openReplay(cfg)
	if err != nil {
		return err
	}
	defer closeReplay()
	if replay == nil {
		return errors.New("headless mode requires a replay script")
	}

	lipgloss.SetColorProfile(termenv.Ascii)
	width, height := headlessSize(cfg)
	screen := ui.NewTextScreen(out, width, height)

	err = ui.Run(ctx, stack, replay, screen)
	switch {
	case err == nil:
		events.App.Stop("quit")
		return nil
	case errors.Is(err, ui.ErrEventsClosed):
		if perr := replay.Wait(); perr != nil {
			return fmt.Errorf("replay: %w", perr)
		}
		events.App.Stop("replay finished")
		return nil
	default:
		return err
	}
}

func newStack(cfg Config, provider content.Provider) (*ui.Stack, error) {
	root, err := NewRoot(provider)
	if err != nil {
		return nil, err
	}
	return ui.NewStack(root, ui.Keys{Next: cfg.NextKey, Previous: cfg.PreviousKey}), nil
}

// openReplay starts a queue over the replay script. It returns a nil queue
// when no script is configured.
func openReplay(cfg Config) (*event.Queue, func(), error) {
	if cfg.ReplayPath == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(cfg.ReplayPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open replay script: %w", err)
	}
	q := event.NewQueue(event.Script(f, cfg.ReplayPace))
	return q, func() {
		q.Stop()
		_ = q.Wait()
		f.Close()
	}, nil
}

func headlessSize(cfg Config) (int, int) {
	width, height := cfg.Width, cfg.Height
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th, err := terminalSize()
	if err != nil || tw <= 0 || th <= 0 {
		tw, th = headlessWidth, headlessHeight
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}
