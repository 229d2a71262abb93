package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/engine"
)

// EventWrapper serializes polymorphic engine events to JSONL.
type EventWrapper struct {
	Type engine.EventType `json:"type"`
	Data json.RawMessage  `json:"data"`
}

// Store handles append-only storage of the session transcript as JSONL.
// Replaying it restores a client's scrollback after a reconnect.
type Store struct {
	file *os.File
}

// NewStore opens or creates a JSONL transcript at the given path.
func NewStore(path string) (*Store, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	return &Store{file: file}, nil
}

// Append marshals an engine Event and appends it as a JSONL line.
func (s *Store) Append(evt engine.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	wrapper := EventWrapper{
		Type: evt.Type(),
		Data: data,
	}

	line, err := json.Marshal(wrapper)
	if err != nil {
		return fmt.Errorf("failed to marshal wrapper: %w", err)
	}

	if _, err := s.file.Write(append(line, '\n')); err != nil {
		return err
	}
	return s.file.Sync()
}

// Load replays all events from the transcript and returns them.
func (s *Store) Load() ([]engine.Event, error) {
	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, err
	}

	var events []engine.Event
	scanner := bufio.NewScanner(s.file)
	for scanner.Scan() {
		var wrapper EventWrapper
		if err := json.Unmarshal(scanner.Bytes(), &wrapper); err != nil {
			return nil, fmt.Errorf("failed to decode event wrapper: %w", err)
		}

		evt, err := unmarshalEvent(wrapper.Type, wrapper.Data)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}

	return events, scanner.Err()
}

// Truncate discards the transcript, for a fresh expedition in the same
// profile.
func (s *Store) Truncate() error {
	if err := s.file.Truncate(0); err != nil {
		return err
	}
	_, err := s.file.Seek(0, 0)
	return err
}

// Close flushes and closes the underlying file.
func (s *Store) Close() error {
	return s.file.Close()
}

// unmarshalEvent reconstructs a concrete Event from its type
// discriminator and JSON data.
func unmarshalEvent(typeName engine.EventType, data json.RawMessage) (engine.Event, error) {
	var evt engine.Event

	switch typeName {
	case engine.EventDialogue:
		evt = &engine.DialogueEvent{}
	case engine.EventMenu:
		evt = &engine.MenuEvent{}
	case engine.EventPrompt:
		evt = &engine.PromptEvent{}
	case engine.EventState:
		evt = &engine.StateEvent{}
	case engine.EventPause:
		evt = &engine.PauseEvent{}
	case engine.EventClear:
		evt = &engine.ClearEvent{}
	case engine.EventScene:
		evt = &engine.SceneEvent{}
	case engine.EventCombatUpdate:
		evt = &engine.CombatUpdateEvent{}
	case engine.EventUpdateStats:
		evt = &engine.StatsEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", typeName)
	}

	if err := json.Unmarshal(data, evt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", typeName, err)
	}
	return evt, nil
}
