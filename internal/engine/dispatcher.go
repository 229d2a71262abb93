package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/combat"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dice"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dungeon"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/parser"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/quests"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/rules"
)

// ErrInvalidAction marks input that names no action offered in the
// current phase. Dispatch answers it by re-rendering the current menu
// with the state untouched instead of surfacing an error.
var ErrInvalidAction = errors.New("invalid action")

func invalidAction(act *parser.Action) error {
	return fmt.Errorf("%w %q", ErrInvalidAction, act.String())
}

// Dispatcher is the game's state machine: it parses incoming action
// IDs, routes them to the handler for the current phase, and collects
// the UI events the handler emits.
type Dispatcher struct {
	state    *State
	loader   *data.Loader
	roller   *dice.Roller
	rules    *rules.Registry
	gen      *dungeon.Generator
	resolver *combat.Resolver
	quests   *quests.Manager
	persist  Persistence

	randFloat func() float64
	handlers  map[Phase]func(*parser.Action) error
	buffer    []Event
	// lastMenu remembers the most recent choice offered, so invalid
	// input can replay it verbatim.
	lastMenu *MenuEvent
}

// Options collects the dispatcher's injectable dependencies. Roller,
// RandFloat and Persist may be nil for production defaults.
type Options struct {
	Loader    *data.Loader
	Roller    *dice.Roller
	RandFloat func() float64
	Persist   Persistence
}

// NewDispatcher wires the full engine stack.
func NewDispatcher(opts Options) (*Dispatcher, error) {
	loader := opts.Loader
	if loader == nil {
		loader = data.NewLoader(nil)
	}
	roller := opts.Roller
	if roller == nil {
		roller = dice.New(dice.NewCrypto())
	}
	randFloat := opts.RandFloat
	if randFloat == nil {
		randFloat = rand.Float64
	}

	reg, err := rules.NewRegistry(loader.Checks(), roller.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rules registry: %w", err)
	}

	d := &Dispatcher{
		state:     NewState(),
		loader:    loader,
		roller:    roller,
		rules:     reg,
		gen:       dungeon.NewGenerator(loader, roller, randFloat),
		resolver:  combat.NewResolver(roller, reg, loader, randFloat),
		quests:    quests.NewManager(loader, randFloat),
		persist:   opts.Persist,
		randFloat: randFloat,
	}
	d.handlers = map[Phase]func(*parser.Action) error{
		PhaseMainMenu:    d.handleMainMenu,
		PhaseDifficulty:  d.handleDifficulty,
		PhaseCreateName:  d.handleCreateName,
		PhaseCreateAttrs: d.handleCreateAttrs,
		PhaseTown:        d.handleTown,
		PhaseShop:        d.handleShop,
		PhaseInventory:   d.handleInventory,
		PhaseDungeon:     d.handleDungeon,
		PhaseCombat:      d.handleCombat,
	}
	return d, nil
}

// State exposes the machine for clients that render from it.
func (d *Dispatcher) State() *State { return d.state }

// Start emits the opening screen.
func (d *Dispatcher) Start() []Event {
	d.showMainMenu()
	return d.flush()
}

// Dispatch routes one action ID through the current phase's handler
// and returns the events it produced.
func (d *Dispatcher) Dispatch(input string) ([]Event, error) {
	// Name entry takes free text, not action grammar.
	if d.state.Phase == PhaseCreateName {
		if err := d.submitName(input); err != nil {
			d.buffer = nil
			return nil, err
		}
		return d.flush(), nil
	}

	act, err := parser.Parse(input)
	if err != nil {
		// Garbage input gets the same answer as an unknown action:
		// the menu again, nothing changed.
		d.buffer = nil
		d.rerenderMenu()
		return d.flush(), nil
	}

	handler, ok := d.handlers[d.state.Phase]
	if !ok {
		return nil, fmt.Errorf("no handler for phase %q", d.state.Phase)
	}
	if err := handler(act); err != nil {
		d.buffer = nil
		if errors.Is(err, ErrInvalidAction) {
			d.rerenderMenu()
			return d.flush(), nil
		}
		return nil, err
	}
	return d.flush(), nil
}

// rerenderMenu replays the last menu shown. State is untouched; the
// player simply gets the same choices again.
func (d *Dispatcher) rerenderMenu() {
	if d.lastMenu != nil {
		d.emit(&MenuEvent{Title: d.lastMenu.Title, Items: d.lastMenu.Items})
	}
}

func (d *Dispatcher) flush() []Event {
	out := d.buffer
	d.buffer = nil
	return out
}

func (d *Dispatcher) emit(e Event) {
	d.buffer = append(d.buffer, e)
}

func (d *Dispatcher) say(lines ...string) {
	if len(lines) > 0 {
		d.emit(&DialogueEvent{Lines: lines})
	}
}

func (d *Dispatcher) menu(title string, items ...MenuItem) {
	e := &MenuEvent{Title: title, Items: items}
	d.lastMenu = e
	d.emit(e)
}

func (d *Dispatcher) prompt(p string) {
	d.emit(&PromptEvent{Prompt: p})
}

func (d *Dispatcher) pause() { d.emit(&PauseEvent{}) }
func (d *Dispatcher) clear() { d.emit(&ClearEvent{}) }

func (d *Dispatcher) setPhase(p Phase, subphase string) {
	d.state.Phase = p
	d.state.Subphase = subphase
	d.emit(&StateEvent{Phase: p, Subphase: subphase})
}

func (d *Dispatcher) scene() {
	if d.state.Room != nil {
		d.emit(&SceneEvent{SceneID: d.state.Room.ID, Depth: d.state.Depth})
	}
}

func (d *Dispatcher) stats() {
	c := d.state.Char
	if c == nil {
		return
	}
	d.emit(&StatsEvent{
		Name: c.Name, HP: c.HP, MaxHP: c.MaxHP,
		Gold: c.Gold, Level: c.Level, XP: c.XP, Depth: d.state.Depth,
	})
}

func (d *Dispatcher) combatUpdate() {
	st := d.state.Combat
	c := d.state.Char
	if st == nil || c == nil {
		return
	}
	d.emit(&CombatUpdateEvent{
		PlayerHP: c.HP, PlayerMaxHP: c.MaxHP,
		MonsterName: st.Monster.Name, MonsterHP: st.Monster.HP, MonsterMaxHP: st.Monster.MaxHP,
	})
}

// save persists the durable state, quietly: a failed autosave must not
// kill the running game.
func (d *Dispatcher) save() {
	if d.persist == nil || d.state.Char == nil {
		return
	}
	_ = d.persist.Save(d.state.Snapshot())
}

// clearSave removes the profile after a final death.
func (d *Dispatcher) clearSave() {
	if d.persist != nil {
		_ = d.persist.Clear()
	}
}

// LoadSave restores a snapshot if one exists.
func (d *Dispatcher) LoadSave() (bool, error) {
	if d.persist == nil {
		return false, nil
	}
	snap, ok, err := d.persist.Load()
	if err != nil || !ok {
		return false, err
	}
	if snap.Character == nil {
		return false, nil
	}
	d.state.Restore(*snap)
	return true, nil
}

// enterTown is the single town entrance: every path into town, from
// the main menu or up the stairs, resets the once-per-visit services.
func (d *Dispatcher) enterTown(greeting bool) {
	d.state.Char.ResetTownFlags()
	d.state.Char.Buffs.Clear()
	d.state.Room = nil
	d.state.NextRoom = nil
	d.state.Combat = nil
	if greeting {
		if line, ok := d.loader.Dialogue("town", "arrive"); ok {
			d.say(line)
		}
	}
	d.setPhase(PhaseTown, "")
	d.stats()
	d.showTownMenu()
	d.save()
}

func ceilHalf(n int) int {
	if n%2 == 0 {
		return n / 2
	}
	return n/2 + 1
}
