package engine

import (
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/character"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/combat"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dungeon"
)

// Phase is a position in the game's finite state machine.
type Phase string

const (
	PhaseMainMenu    Phase = "main_menu"
	PhaseDifficulty  Phase = "difficulty"
	PhaseCreateName  Phase = "create_name"
	PhaseCreateAttrs Phase = "create_attrs"
	PhaseTown        Phase = "town"
	PhaseShop        Phase = "shop"
	PhaseInventory   Phase = "inventory"
	PhaseDungeon     Phase = "dungeon"
	PhaseCombat      Phase = "combat"
)

// gambleState is the dice-game scratchpad while the player sits at
// Finch's table.
type gambleState struct {
	Die     int  // 6, 10 or 20
	Bet     int
	Guess   int
	Band    int  // range-bet band for the d20 game, 0 when exact
	IsRange bool
}

// sellState stashes an in-flight sale between the offer and the
// player's yes or no.
type sellState struct {
	Kind  string // w, a, i
	Index int
	Offer int
}

// State is everything the dispatcher mutates: the machine position,
// the character, and the transient room and fight.
type State struct {
	Phase    Phase
	Subphase string

	Char  *character.Character
	Depth int
	// RoomHistory stacks the depths left behind on each descent, so
	// climbing back retraces the way down.
	RoomHistory []int
	// Encounters counts fights since character creation; the boss is
	// forced once it runs high enough.
	Encounters int

	Room     *dungeon.Room
	NextRoom *dungeon.Room // pre-drawn when the player listens ahead
	Combat   *combat.State

	// Once-per-depth ability tracking. The stored value is the depth
	// the ability was last used on.
	UsedDivineDepth int
	UsedListenDepth int

	// DeferDepthReset marks a run that ended at death's door (or with
	// the boss slain): the depth and room history survive the trip to
	// town and reset only when the next descent begins.
	DeferDepthReset bool

	Gamble      gambleState
	SellPending *sellState

	// Creation scratch: the roll waiting to be assigned and the
	// attribute values already placed.
	PendingName       string
	PendingDifficulty character.Difficulty
	PendingRoll       int
	Assignments       map[string]int
}

// NewState opens the machine at the main menu.
func NewState() *State {
	return &State{Phase: PhaseMainMenu, UsedDivineDepth: -1, UsedListenDepth: -1}
}

// Snapshot is the durable save format: position plus sheet. Rooms and
// fights are transient and regenerate on load.
type Snapshot struct {
	Phase           Phase                `json:"phase"`
	Depth           int                  `json:"depth"`
	RoomHistory     []int                `json:"room_history,omitempty"`
	Encounters      int                  `json:"encounters"`
	DeferDepthReset bool                 `json:"defer_depth_reset,omitempty"`
	Character       *character.Character `json:"character"`
}

// Persistence stores and recalls one snapshot per profile.
type Persistence interface {
	Save(snap Snapshot) error
	Load() (*Snapshot, bool, error)
	Clear() error
}

// Snapshot captures the durable part of the state.
func (s *State) Snapshot() Snapshot {
	phase := s.Phase
	// Transient phases save as their nearest durable anchor.
	switch phase {
	case PhaseCombat, PhaseDungeon:
		phase = PhaseDungeon
	case PhaseShop, PhaseInventory:
		phase = PhaseTown
	case PhaseDifficulty, PhaseCreateName, PhaseCreateAttrs:
		phase = PhaseMainMenu
	}
	return Snapshot{
		Phase:           phase,
		Depth:           s.Depth,
		RoomHistory:     s.RoomHistory,
		Encounters:      s.Encounters,
		DeferDepthReset: s.DeferDepthReset,
		Character:       s.Char,
	}
}

// Restore rebuilds the machine from a snapshot.
func (s *State) Restore(snap Snapshot) {
	s.Char = snap.Character
	s.Depth = snap.Depth
	s.RoomHistory = snap.RoomHistory
	s.Encounters = snap.Encounters
	s.DeferDepthReset = snap.DeferDepthReset
	s.Phase = snap.Phase
	s.Subphase = ""
	s.Room = nil
	s.NextRoom = nil
	s.Combat = nil
	s.UsedDivineDepth = -1
	s.UsedListenDepth = -1
}
