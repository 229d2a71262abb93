package engine

import (
	"strings"
)

// EventType discriminates the wire events sent to UI clients.
type EventType string

const (
	EventDialogue     EventType = "dialogue"
	EventMenu         EventType = "menu"
	EventPrompt       EventType = "prompt"
	EventState        EventType = "state"
	EventPause        EventType = "pause"
	EventClear        EventType = "clear"
	EventScene        EventType = "scene"
	EventCombatUpdate EventType = "combatUpdate"
	EventUpdateStats  EventType = "updateStats"
)

// Event is one item of the UI protocol stream. Most events are pure
// output; StateEvent also moves the phase machine when replayed.
type Event interface {
	Type() EventType
	Apply(state *State) error
	Message() string
}

// DialogueEvent carries narration or NPC lines.
type DialogueEvent struct {
	Lines []string `json:"lines"`
}

func (e *DialogueEvent) Type() EventType         { return EventDialogue }
func (e *DialogueEvent) Apply(state *State) error { return nil }
func (e *DialogueEvent) Message() string          { return strings.Join(e.Lines, "\n") }

// MenuItem is one selectable option. The ID is the action the client
// sends back when the item is chosen.
type MenuItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// MenuEvent offers the player a choice.
type MenuEvent struct {
	Title string     `json:"title,omitempty"`
	Items []MenuItem `json:"items"`
}

func (e *MenuEvent) Type() EventType         { return EventMenu }
func (e *MenuEvent) Apply(state *State) error { return nil }
func (e *MenuEvent) Message() string {
	var sb strings.Builder
	if e.Title != "" {
		sb.WriteString(e.Title)
		sb.WriteString("\n")
	}
	for i, item := range e.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  ")
		sb.WriteString(item.Label)
	}
	return sb.String()
}

// PromptEvent asks for free text, like a character name.
type PromptEvent struct {
	Prompt string `json:"prompt"`
}

func (e *PromptEvent) Type() EventType         { return EventPrompt }
func (e *PromptEvent) Apply(state *State) error { return nil }
func (e *PromptEvent) Message() string          { return e.Prompt }

// StateEvent records a phase transition. Replaying the stream through
// Apply reconstructs the machine's position.
type StateEvent struct {
	Phase    Phase  `json:"phase"`
	Subphase string `json:"subphase,omitempty"`
}

func (e *StateEvent) Type() EventType { return EventState }
func (e *StateEvent) Apply(state *State) error {
	state.Phase = e.Phase
	state.Subphase = e.Subphase
	return nil
}
func (e *StateEvent) Message() string { return "" }

// PauseEvent gates the stream: the client shows what it has and waits
// for the player before asking for more.
type PauseEvent struct{}

func (e *PauseEvent) Type() EventType         { return EventPause }
func (e *PauseEvent) Apply(state *State) error { return nil }
func (e *PauseEvent) Message() string          { return "" }

// ClearEvent tells the client to wipe its scrollback.
type ClearEvent struct{}

func (e *ClearEvent) Type() EventType         { return EventClear }
func (e *ClearEvent) Apply(state *State) error { return nil }
func (e *ClearEvent) Message() string          { return "" }

// SceneEvent names the room art variant to display.
type SceneEvent struct {
	SceneID int `json:"scene_id"`
	Depth   int `json:"depth"`
}

func (e *SceneEvent) Type() EventType         { return EventScene }
func (e *SceneEvent) Apply(state *State) error { return nil }
func (e *SceneEvent) Message() string          { return "" }

// CombatUpdateEvent refreshes the fight header.
type CombatUpdateEvent struct {
	PlayerHP     int    `json:"player_hp"`
	PlayerMaxHP  int    `json:"player_max_hp"`
	MonsterName  string `json:"monster_name"`
	MonsterHP    int    `json:"monster_hp"`
	MonsterMaxHP int    `json:"monster_max_hp"`
}

func (e *CombatUpdateEvent) Type() EventType         { return EventCombatUpdate }
func (e *CombatUpdateEvent) Apply(state *State) error { return nil }
func (e *CombatUpdateEvent) Message() string          { return "" }

// StatsEvent refreshes the character sheet header.
type StatsEvent struct {
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
	Gold  int    `json:"gold"`
	Level int    `json:"level"`
	XP    int    `json:"xp"`
	Depth int    `json:"depth"`
}

func (e *StatsEvent) Type() EventType         { return EventUpdateStats }
func (e *StatsEvent) Apply(state *State) error { return nil }
func (e *StatsEvent) Message() string          { return "" }
