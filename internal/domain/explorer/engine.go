package explorer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/bridge"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/paths"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

// Observer receives a copy of the state after every change
type Observer func(State)

// Engine is the navigation and selection state machine
type Engine struct {
	api       bridge.API
	logger    *zap.Logger
	observers []Observer
	workers   int

	// actions that call the bridge run one at a time
	opMu sync.Mutex

	mu    sync.RWMutex
	state State
}

// Option configures an Engine
type Option func(*Engine)

// WithObserver registers fn to be called after every state change
func WithObserver(fn Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, fn) }
}

// WithLogger sets the engine logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithBatchWorkers bounds concurrent bridge calls of a multi-item action
func WithBatchWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New creates an engine backed by api
func New(api bridge.API, opts ...Option) *Engine {
	e := &Engine{
		api:     api,
		logger:  zap.NewNop(),
		workers: runtime.NumCPU(),
		state:   initialState(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.Named("explorer")
	return e
}

// State returns a copy of the current state
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Clone()
}

// update applies fn under the lock and then notifies observers
func (e *Engine) update(fn func(*State)) {
	e.mu.Lock()
	fn(&e.state)
	snapshot := e.state.Clone()
	e.mu.Unlock()

	for i, observer := range e.observers {
		if i > 0 {
			snapshot = snapshot.Clone()
		}
		observer(snapshot)
	}
}

// begin sets loading and clears the error; the returned func clears
// loading and must run on every exit path
func (e *Engine) begin() func() {
	e.update(func(s *State) {
		s.Loading = true
		s.Error = ""
	})
	return func() {
		e.update(func(s *State) { s.Loading = false })
	}
}

func (e *Engine) setError(msg string) {
	if msg != "" {
		e.logger.Debug("Action failed", zap.String("error", msg))
	}
	e.update(func(s *State) { s.Error = msg })
}

// failure renders err with the prefix of op. Errors that already are
// operation errors keep their own message.
func failure(op string, err error) string {
	var opErr *types.OpError
	if errors.As(err, &opErr) {
		return opErr.Error()
	}
	return types.NewOpError(op, err).Error()
}

// load reads path and replaces the listing. It reports a failure message
// and leaves the state untouched when the read fails.
func (e *Engine) load(ctx context.Context, path string, record bool) string {
	contents, err := e.api.ReadDirectory(ctx, path)
	if err != nil {
		return failure(types.OpReadDirectory, err)
	}

	e.update(func(s *State) {
		s.CurrentPath = contents.Path
		s.Items = contents.Items
		s.Selected = nil
		if record {
			s.push(contents.Path)
		}
	})
	return ""
}

// navigate is a full loading cycle around load
func (e *Engine) navigate(ctx context.Context, path string, record bool) {
	defer e.begin()()
	if msg := e.load(ctx, path, record); msg != "" {
		e.setError(msg)
	}
}

// Initialize opens the home directory
func (e *Engine) Initialize(ctx context.Context) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	home, err := e.api.GetHomeDirectory(ctx)
	if err != nil {
		e.setError(fmt.Sprintf("Failed to initialize: %s", err.Error()))
		return
	}
	e.navigate(ctx, home, true)
}

// NavigateTo opens path and records it in history
func (e *Engine) NavigateTo(ctx context.Context, path string) {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	e.navigate(ctx, path, true)
}

// NavigateUp opens the parent of the current directory. It does nothing at
// a root or before the first listing.
func (e *Engine) NavigateUp(ctx context.Context) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	current := e.State().CurrentPath
	if current == "" {
		return
	}
	parent, ok := paths.Parent(current)
	if !ok {
		return
	}
	e.navigate(ctx, parent, true)
}

// NavigateBack reloads the previous history entry
func (e *Engine) NavigateBack(ctx context.Context) {
	e.step(ctx, -1)
}

// NavigateForward reloads the next history entry
func (e *Engine) NavigateForward(ctx context.Context) {
	e.step(ctx, 1)
}

func (e *Engine) step(ctx context.Context, delta int) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	var target string
	e.mu.Lock()
	next := e.state.HistoryIndex + delta
	if next >= 0 && next < len(e.state.History) {
		e.state.HistoryIndex = next
		target = e.state.History[next]
	}
	e.mu.Unlock()

	if target == "" {
		return
	}
	e.navigate(ctx, target, false)
}

// Refresh reloads the current directory without touching history
func (e *Engine) Refresh(ctx context.Context) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	if current := e.State().CurrentPath; current != "" {
		e.navigate(ctx, current, false)
	}
}

// NavigateToHome opens the home directory
func (e *Engine) NavigateToHome(ctx context.Context) {
	e.navigateToWellKnown(ctx, types.WellKnownHome, e.api.GetHomeDirectory)
}

// NavigateToDesktop opens the desktop directory
func (e *Engine) NavigateToDesktop(ctx context.Context) {
	e.navigateToWellKnown(ctx, types.WellKnownDesktop, e.api.GetDesktopDirectory)
}

// NavigateToDocuments opens the documents directory
func (e *Engine) NavigateToDocuments(ctx context.Context) {
	e.navigateToWellKnown(ctx, types.WellKnownDocuments, e.api.GetDocumentsDirectory)
}

// NavigateToDownloads opens the downloads directory
func (e *Engine) NavigateToDownloads(ctx context.Context) {
	e.navigateToWellKnown(ctx, types.WellKnownDownloads, e.api.GetDownloadsDirectory)
}

func (e *Engine) navigateToWellKnown(ctx context.Context, kind types.WellKnown, resolve func(context.Context) (string, error)) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	path, err := resolve(ctx)
	if err != nil {
		e.setError(fmt.Sprintf("Failed to get %s directory: %s", kind, err.Error()))
		return
	}
	e.navigate(ctx, path, true)
}
