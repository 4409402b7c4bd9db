package term

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keysnipe/internal/alias"
	"github.com/dshills/keysnipe/internal/config"
	"github.com/dshills/keysnipe/internal/document"
	"github.com/dshills/keysnipe/internal/key"
	"github.com/dshills/keysnipe/internal/snipe"
	"github.com/dshills/keysnipe/internal/viewport"
)

// ErrQuit signals a normal user-requested exit.
var ErrQuit = errors.New("term: quit")

// Options configures the demo application.
type Options struct {
	// File is the document to view.
	File string

	// ConfigPath is an optional settings file, watched for changes.
	ConfigPath string
}

// reloadResult carries a config reload across goroutines via the tcell
// event queue.
type reloadResult struct {
	settings config.Settings
	err      error
}

// App wires the document, engine, viewer, and config watcher together.
type App struct {
	screen  tcell.Screen
	viewer  *Viewer
	eng     *snipe.Engine
	watcher *config.Watcher
	script  *alias.Script

	// count is the pending numeric prefix for the next motion.
	count int
}

// New builds the application. Call Close when done.
func New(opts Options) (*App, error) {
	data, err := os.ReadFile(opts.File)
	if err != nil {
		return nil, fmt.Errorf("term: reading %s: %w", opts.File, err)
	}
	doc := document.New(string(data))

	cfg := config.Default()
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: creating screen: %w", err)
	}

	a := &App{screen: screen, viewer: NewViewer(screen, doc)}

	engOpts := []snipe.Option{
		snipe.WithMessenger(a.viewer),
		snipe.WithFollower(viewport.NewFollower(a.viewer)),
	}
	if res, script, err := buildAliases(cfg); err != nil {
		return nil, err
	} else if res != nil {
		a.script = script
		engOpts = append(engOpts, snipe.WithAliases(res))
	}

	a.eng, err = snipe.New(doc, a.viewer, a.viewer, cfg, engOpts...)
	if err != nil {
		return nil, err
	}
	a.viewer.SetHighlights(a.eng.Highlights())
	a.viewer.onInterrupt = a.handleInterrupt

	if opts.ConfigPath != "" {
		a.watcher, err = config.NewWatcher(opts.ConfigPath, func(s config.Settings, err error) {
			_ = screen.PostEvent(tcell.NewEventInterrupt(reloadResult{settings: s, err: err}))
		})
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// buildAliases composes the alias resolver from the settings: the Lua
// script, when present, takes precedence over the static table.
func buildAliases(cfg config.Settings) (alias.Resolver, *alias.Script, error) {
	var chain alias.Chain
	var script *alias.Script

	if cfg.AliasScript != "" {
		s, err := alias.LoadScript(cfg.AliasScript)
		if err != nil {
			return nil, nil, err
		}
		script = s
		chain = append(chain, s)
	}
	if m := cfg.AliasMap(); m != nil {
		chain = append(chain, alias.Map(m))
	}
	if len(chain) == 0 {
		return nil, nil, nil
	}
	return chain, script, nil
}

// Run drives the event loop until the user quits.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("term: initializing screen: %w", err)
	}
	defer a.screen.Fini()

	a.viewer.Message("s/S x/X f/F t/T snipe, ;/, repeat, v mode, q quit")
	for {
		ev := a.viewer.NextKey()
		if err := a.dispatch(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return ErrQuit
			}
			// Engine errors were already reported on the status line.
		}
		a.viewer.Render()
	}
}

// Close releases the config watcher and alias script.
func (a *App) Close() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.script != nil {
		a.script.Close()
	}
}

func (a *App) handleInterrupt(data interface{}) {
	r, ok := data.(reloadResult)
	if !ok {
		return
	}
	if r.err != nil {
		a.viewer.Message(fmt.Sprintf("config reload failed: %v", r.err))
		return
	}
	if err := a.eng.ApplySettings(r.settings); err != nil {
		a.viewer.Message(fmt.Sprintf("config reload failed: %v", err))
		return
	}

	// Rebuild the alias chain so a configured Lua script survives the
	// reload (and picks up a changed script path).
	res, script, err := buildAliases(r.settings)
	if err != nil {
		a.viewer.Message(fmt.Sprintf("config reload failed: %v", err))
		return
	}
	if a.script != nil {
		a.script.Close()
	}
	a.script = script
	if res != nil {
		a.eng.SetAliases(res)
	}
	a.viewer.Message("configuration reloaded")
}

// dispatch handles one key press in the main loop.
func (a *App) dispatch(ev key.Event) error {
	if ev.IsEscape() {
		a.count = 0
		a.eng.Invalidate()
		a.viewer.Message("")
		return nil
	}
	if !ev.IsRune() {
		return nil
	}

	r := ev.Rune
	if r >= '1' && r <= '9' || (r == '0' && a.count > 0) {
		a.count = a.count*10 + int(r-'0')
		return nil
	}

	// Any real action retires the previous snipe's highlights. Snipe
	// motions install their own set right after.
	a.eng.Invalidate()

	count := a.count
	a.count = 0

	switch r {
	case 'q':
		return ErrQuit
	case 'h':
		a.viewer.MoveHorizontal(-max(count, 1))
	case 'l':
		a.viewer.MoveHorizontal(max(count, 1))
	case 'j':
		a.viewer.MoveVertical(max(count, 1))
	case 'k':
		a.viewer.MoveVertical(-max(count, 1))
	case 'g':
		a.viewer.JumpTop()
	case 'G':
		a.viewer.JumpBottom()
	case 'v':
		a.viewer.CycleState()
	case 's':
		return a.eng.Snipe(count)
	case 'S':
		return a.eng.SnipeReverse(count)
	case 'x':
		return a.eng.SnipeTill(count)
	case 'X':
		return a.eng.SnipeTillReverse(count)
	case 'f':
		return a.eng.Find(count)
	case 'F':
		return a.eng.FindReverse(count)
	case 't':
		return a.eng.Till(count)
	case 'T':
		return a.eng.TillReverse(count)
	case ';':
		return a.eng.RepeatLast(count)
	case ',':
		return a.eng.RepeatLastReverse(count)
	}
	return nil
}
