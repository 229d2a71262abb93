package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/engine"
)

// Transcript defines the dependency required by Session to record the
// event stream.
type Transcript interface {
	Append(evt engine.Event) error
	Load() ([]engine.Event, error)
	Close() error
}

// Session is one running game: a dispatcher guarded by a mutex, an
// input mapper for human replies, and an optional transcript. Clients
// (the terminal UI, the Telegram worker) talk only to the Session.
type Session struct {
	ID string

	mu         sync.Mutex
	dispatcher *engine.Dispatcher
	mapper     InputMapper
	transcript Transcript
}

// NewSession bootstraps a game session pipeline. transcript may be nil
// for clients that keep their own scrollback.
func NewSession(opts engine.Options, transcript Transcript) (*Session, error) {
	d, err := engine.NewDispatcher(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build dispatcher: %w", err)
	}
	return &Session{
		ID:         uuid.NewString(),
		dispatcher: d,
		transcript: transcript,
	}, nil
}

// Start emits the opening screen and records it.
func (s *Session) Start() []engine.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.dispatcher.Start()
	s.record(events)
	return events
}

// Dispatch resolves a raw human reply against the current menu, routes
// it through the dispatcher, and records what came back. Errors are
// conversational: the caller shows them and the game carries on.
func (s *Session) Dispatch(input string) ([]engine.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action := s.mapper.Resolve(input)
	events, err := s.dispatcher.Dispatch(action)
	if err != nil {
		return nil, err
	}
	s.record(events)
	return events, nil
}

// Menu returns the options currently on offer, for clients that render
// reply keyboards.
func (s *Session) Menu() []engine.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapper.Items()
}

// State exposes the machine for clients that render from it.
func (s *Session) State() *engine.State {
	return s.dispatcher.State()
}

// Replay returns the recorded transcript, oldest first.
func (s *Session) Replay() ([]engine.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.transcript == nil {
		return nil, nil
	}
	return s.transcript.Load()
}

// Close releases the transcript.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.transcript == nil {
		return nil
	}
	return s.transcript.Close()
}

// record appends events to the transcript and feeds the input mapper.
// A transcript write failure must not kill the running game.
func (s *Session) record(events []engine.Event) {
	s.mapper.Observe(events)
	if s.transcript == nil {
		return
	}
	for _, evt := range events {
		_ = s.transcript.Append(evt)
	}
}
