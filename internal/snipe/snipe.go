package snipe

import (
	"github.com/dshills/keysnipe/internal/alias"
	"github.com/dshills/keysnipe/internal/config"
	"github.com/dshills/keysnipe/internal/document"
	"github.com/dshills/keysnipe/internal/key"
	"github.com/dshills/keysnipe/internal/overlay"
	"github.com/dshills/keysnipe/internal/scope"
	"github.com/dshills/keysnipe/internal/viewport"
)

// Host provides the editor state the engine consumes: cursor, viewport
// bounds, and modal state. The engine writes back only through SetCursor.
type Host interface {
	// Cursor returns the current cursor offset.
	Cursor() document.Offset

	// SetCursor repositions the cursor.
	SetCursor(off document.Offset)

	// VisibleRange returns the visible window as document offsets.
	VisibleRange() (start, end document.Offset)

	// State returns the current modal state.
	State() State
}

// KeySource delivers the next key event, blocking until one is available.
// It is the engine's only suspension point.
type KeySource interface {
	NextKey() key.Event
}

// Messenger receives user-facing feedback: collection prompts and
// not-found reports. Optional.
type Messenger interface {
	Message(msg string)
}

// Engine executes snipe motions against a host editor.
// It is not safe for concurrent use: all calls must come from the
// host's input-handling goroutine.
type Engine struct {
	doc  *document.Document
	host Host
	keys KeySource

	cfg     config.Settings
	scopes  *scope.Resolver
	aliases alias.Resolver
	marks   *overlay.Manager
	follow  *viewport.Follower
	msg     Messenger

	// pending is the armed clear-on-next-action token for the current
	// highlight set.
	pending *overlay.Cleanup

	// last is the process-wide repeat record. Only the engine writes it,
	// and only non-repeat invocations overwrite it.
	last *lastSnipe
}

// Option configures an Engine.
type Option func(*Engine)

// WithAliases sets the alias resolver (compose context-specific resolvers
// ahead of global ones with alias.Chain).
func WithAliases(r alias.Resolver) Option {
	return func(e *Engine) { e.aliases = r }
}

// WithHighlights sets the highlight manager. A fresh manager is created
// when unset.
func WithHighlights(m *overlay.Manager) Option {
	return func(e *Engine) { e.marks = m }
}

// WithFollower sets the viewport follower used when follow_viewport is
// enabled.
func WithFollower(f *viewport.Follower) Option {
	return func(e *Engine) { e.follow = f }
}

// WithMessenger sets the feedback sink.
func WithMessenger(m Messenger) Option {
	return func(e *Engine) { e.msg = m }
}

// New creates an engine for the given document and host.
// The scope resolver is built from the settings; an invalid scope name is
// a fatal configuration error.
func New(doc *document.Document, host Host, keys KeySource, cfg config.Settings, opts ...Option) (*Engine, error) {
	scopes, err := cfg.ScopeResolver()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		doc:    doc,
		host:   host,
		keys:   keys,
		cfg:    cfg,
		scopes: scopes,
	}
	if m := cfg.AliasMap(); m != nil {
		e.aliases = alias.Map(m)
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.marks == nil {
		e.marks = overlay.NewManager()
	}
	return e, nil
}

// SetDocument swaps the document the engine searches.
func (e *Engine) SetDocument(doc *document.Document) {
	e.doc = doc
}

// ApplySettings replaces the engine configuration, e.g. after a live
// config reload. The repeat record survives.
func (e *Engine) ApplySettings(cfg config.Settings) error {
	scopes, err := cfg.ScopeResolver()
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.scopes = scopes
	if m := cfg.AliasMap(); m != nil {
		e.aliases = alias.Map(m)
	} else {
		e.aliases = nil
	}
	return nil
}

// SetAliases replaces the alias resolver. Hosts that compose resolvers
// beyond the settings table (scripts, context-local tables) call this
// after ApplySettings, which otherwise rebuilds the resolver from the
// settings alone.
func (e *Engine) SetAliases(r alias.Resolver) {
	e.aliases = r
}

// Settings returns the active configuration.
func (e *Engine) Settings() config.Settings {
	return e.cfg
}

// Highlights returns the highlight manager, for rendering.
func (e *Engine) Highlights() *overlay.Manager {
	return e.marks
}

// Invalidate fires the pending clear-on-next-action token, removing any
// highlights left from the previous snipe. Hosts call this on every
// user action that is not part of a snipe. Calling it with nothing
// pending is harmless.
func (e *Engine) Invalidate() {
	if e.pending != nil {
		e.pending.Fire()
		e.pending = nil
	}
}

// armCleanup registers the current highlight set for clearing on the
// next user action.
func (e *Engine) armCleanup() {
	e.pending = e.marks.ArmCleanup()
}

// say pushes feedback to the messenger, if one is attached.
func (e *Engine) say(msg string) {
	if e.msg != nil {
		e.msg.Message(msg)
	}
}

// scopeContext gathers the position queries bounds computation needs,
// relative to the given origin.
func (e *Engine) scopeContext(origin document.Offset) scope.Context {
	line := e.doc.LineAt(origin)
	winStart, winEnd := e.host.VisibleRange()
	return scope.Context{
		Cursor:      origin,
		LineStart:   e.doc.LineStartOffset(line),
		LineEnd:     e.doc.LineEndOffset(line),
		WindowStart: winStart,
		WindowEnd:   winEnd,
		DocStart:    0,
		DocEnd:      e.doc.Len(),
	}
}
