package engine

import (
	"fmt"
	"strings"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/character"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/parser"
)

func (d *Dispatcher) showMainMenu() {
	d.clear()
	d.say(
		"LABYRINTH EXPLORER",
		"Below the town, the labyrinth. Below the labyrinth, the Dragon.",
	)
	d.setPhase(PhaseMainMenu, "")
	d.menu("",
		MenuItem{ID: "new", Label: "New game"},
		MenuItem{ID: "load", Label: "Continue"},
		MenuItem{ID: "quit", Label: "Quit"},
	)
}

func (d *Dispatcher) handleMainMenu(act *parser.Action) error {
	switch act.Head {
	case "new":
		d.setPhase(PhaseDifficulty, "")
		d.say("How kind should fate be?")
		d.menu("Choose a difficulty",
			MenuItem{ID: "diff:easy", Label: "Easy - a generous roll of the dice"},
			MenuItem{ID: "diff:normal", Label: "Normal - the usual odds"},
			MenuItem{ID: "diff:hard", Label: "Hard - the labyrinth shows no mercy"},
		)
		return nil
	case "load":
		ok, err := d.LoadSave()
		if err != nil {
			return fmt.Errorf("failed to load save: %w", err)
		}
		if !ok {
			d.say("No saved expedition found.")
			d.showMainMenu()
			return nil
		}
		d.say(fmt.Sprintf("Welcome back, %s.", d.state.Char.Name))
		if d.state.Phase == PhaseDungeon {
			// Saves anchor in the dungeon between rooms.
			d.state.Phase = PhaseDungeon
			d.stats()
			d.showRoomMenu()
			return nil
		}
		d.enterTown(true)
		return nil
	case "quit":
		d.say("The labyrinth will wait. It always does.")
		return nil
	}
	return invalidAction(act)
}

func (d *Dispatcher) handleDifficulty(act *parser.Action) error {
	if act.Head == "back" {
		d.showMainMenu()
		return nil
	}
	if act.Head != "diff" || act.Len() != 1 {
		return invalidAction(act)
	}
	switch act.At(0) {
	case "easy":
		d.state.PendingDifficulty = character.Easy
	case "normal":
		d.state.PendingDifficulty = character.Normal
	case "hard":
		d.state.PendingDifficulty = character.Hard
	default:
		return invalidAction(act)
	}
	d.setPhase(PhaseCreateName, "")
	d.prompt("What is your name, explorer?")
	return nil
}

// submitName takes the raw prompt reply; names are free text and skip
// the action grammar.
func (d *Dispatcher) submitName(input string) error {
	name := strings.TrimSpace(input)
	if name == "" {
		d.prompt("Every explorer needs a name. Try again:")
		return nil
	}
	if len(name) > 32 {
		name = name[:32]
	}
	d.state.PendingName = name
	d.beginAssignment()
	return nil
}

// beginAssignment starts the roll-and-assign loop: one roll of the
// difficulty dice at a time, placed wherever the player wants, until
// all seven attributes are filled.
func (d *Dispatcher) beginAssignment() {
	d.state.Char = nil
	d.state.Assignments = make(map[string]int, len(character.AttributeNames))
	d.setPhase(PhaseCreateAttrs, "")
	d.say("Fate hands you seven rolls. Spend each where you will.")
	d.nextAssignment()
}

// nextAssignment rolls the next pending value, or closes the loop once
// every attribute has one.
func (d *Dispatcher) nextAssignment() {
	s := d.state
	if len(s.Assignments) == len(character.AttributeNames) {
		d.finishSheet()
		return
	}
	s.PendingRoll = d.roller.Total(s.PendingDifficulty.CreationDice())
	d.showAssignmentMenu()
}

// showAssignmentMenu offers the unassigned attributes for the pending
// roll. Re-rendered as-is on invalid input, without rolling again.
func (d *Dispatcher) showAssignmentMenu() {
	s := d.state
	var items []MenuItem
	for _, attr := range character.AttributeNames {
		if _, done := s.Assignments[attr]; done {
			continue
		}
		items = append(items, MenuItem{ID: "asn:" + attr, Label: attr})
	}
	d.menu(fmt.Sprintf("You rolled %d. Where does it go?", s.PendingRoll), items...)
}

// finishSheet builds the character from the finished assignments and
// offers it for approval.
func (d *Dispatcher) finishSheet() {
	s := d.state
	c := character.New(d.roller, s.PendingName, s.PendingDifficulty, s.Assignments)
	s.Char = c

	lines := []string{fmt.Sprintf("%s (%s)", c.Name, c.Difficulty)}
	for _, attr := range character.AttributeNames {
		lines = append(lines, fmt.Sprintf("  %-13s %d", attr, c.Attr(attr)))
	}
	lines = append(lines,
		fmt.Sprintf("  %-13s %d", "Hit Points", c.MaxHP),
		fmt.Sprintf("  %-13s %d", "Gold", c.Gold),
	)
	d.say(lines...)
	d.menu("Keep this sheet?",
		MenuItem{ID: "accept", Label: "Accept and head to town"},
		MenuItem{ID: "reroll", Label: "Tear it up and start the rolls over"},
	)
}

func (d *Dispatcher) handleCreateAttrs(act *parser.Action) error {
	s := d.state
	switch act.Head {
	case "asn":
		if s.Char != nil {
			// The sheet is already built; only accept or reroll remain.
			return invalidAction(act)
		}
		attr := act.At(0)
		if !validAttribute(attr) {
			return invalidAction(act)
		}
		if _, done := s.Assignments[attr]; done {
			return invalidAction(act)
		}
		s.Assignments[attr] = s.PendingRoll
		d.say(fmt.Sprintf("%s %d.", attr, s.PendingRoll))
		d.nextAssignment()
		return nil
	case "accept":
		if s.Char == nil {
			return invalidAction(act)
		}
		s.Depth = 0
		s.RoomHistory = nil
		s.Encounters = 0
		s.DeferDepthReset = false
		s.Assignments = nil
		d.enterTown(true)
		return nil
	case "reroll":
		d.beginAssignment()
		return nil
	}
	return invalidAction(act)
}

func validAttribute(name string) bool {
	for _, attr := range character.AttributeNames {
		if attr == name {
			return true
		}
	}
	return false
}

func (d *Dispatcher) handleCreateName(act *parser.Action) error {
	// Reached only for grammar-clean names; Dispatch normally routes
	// raw prompt text straight to submitName.
	return d.submitName(act.String())
}
