package pager

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/hangxie/csv-browser/model"
)

// Pager is the low-level viewer: a tcell screen, a manually drawn
// table and a blocking one-key-at-a-time navigation loop. The screen
// owns terminal raw mode; Fini restores the terminal on every exit
// path. tcell reads keys from /dev/tty, so navigation keeps working
// when the CSV data itself arrived on stdin.
type Pager struct {
	screen tcell.Screen
	frame  *model.Frame
	state  *PageState
	border Border
	source string
}

// New creates a Pager with a freshly initialized terminal screen
func New(frame *model.Frame, source string, border Border) (*Pager, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return newPager(screen, frame, source, border), nil
}

// newPager wires a Pager onto an already initialized screen
func newPager(screen tcell.Screen, frame *model.Frame, source string, border Border) *Pager {
	_, height := screen.Size()
	pageSize := PageSize(height, border.ChromeOverhead(), MinPageRows)
	return &Pager{
		screen: screen,
		frame:  frame,
		state:  NewPageState(frame.NumRows(), pageSize),
		border: border,
		source: source,
	}
}

// Run draws the first page and blocks on the key loop until the user
// quits. The terminal is restored before Run returns, whatever the
// exit path.
func (p *Pager) Run() error {
	defer p.screen.Fini()

	p.draw()
	for {
		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventResize:
			p.screen.Sync()
			p.resize()
			p.draw()
		case *tcell.EventKey:
			quit, changed := p.handleKey(ev)
			if quit {
				return nil
			}
			if changed {
				p.draw()
			}
		}
	}
}

// handleKey maps one key event to a pagination transition. Unknown
// keys are ignored. Enter pages forward, or quits when the last page
// is already shown.
func (p *Pager) handleKey(ev *tcell.EventKey) (quit, changed bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, false
	case tcell.KeyEnter:
		if p.state.OnLastPage() {
			return true, false
		}
		return false, p.state.PageDown()
	case tcell.KeyDown:
		return false, p.state.LineDown()
	case tcell.KeyUp:
		return false, p.state.LineUp()
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		return false, p.state.PageDown()
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		return false, p.state.PageUp()
	case tcell.KeyHome:
		return false, p.state.FirstPage()
	case tcell.KeyEnd:
		return false, p.state.LastPage()
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return true, false
		}
	}
	return false, false
}

// resize recomputes the page size from the new terminal height and
// re-clamps the offset
func (p *Pager) resize() {
	_, height := p.screen.Size()
	p.state.SetPageSize(PageSize(height, p.border.ChromeOverhead(), MinPageRows))
}
