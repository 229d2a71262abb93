package engine

import (
	"fmt"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dungeon"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/parser"
)

// enterDungeon walks back in at whatever depth the last trip reached.
// Only a run that ended at death's door (or with the boss slain)
// restarts the descent from the first floor.
func (d *Dispatcher) enterDungeon() {
	s := d.state
	if s.DeferDepthReset {
		s.Depth = 1
		s.RoomHistory = nil
		s.DeferDepthReset = false
	}
	if s.Depth < 1 {
		s.Depth = 1
	}
	s.UsedDivineDepth = -1
	s.UsedListenDepth = -1
	if line, ok := d.loader.Dialogue("dungeon", "descend"); ok {
		d.say(line)
	}
	d.newRoom()
}

// newRoom walks the character into the next chamber: scene, hazards,
// and always a fight. The encounter count ticks up first so the boss
// milestone lands on the milestone fight itself.
func (d *Dispatcher) newRoom() {
	s := d.state
	s.Encounters++
	if s.NextRoom != nil {
		s.Room = s.NextRoom
		s.NextRoom = nil
	} else {
		room := d.gen.Generate(s.Depth, s.Encounters)
		s.Room = &room
	}

	d.clear()
	d.setPhase(PhaseDungeon, "")
	d.scene()
	d.stats()
	d.say(fmt.Sprintf("Depth %d. Your torch pushes the dark back a few paces.", s.Depth))

	if s.Room.Trap != nil {
		d.say(d.gen.ResolveTrap(s.Room.Trap, s.Char)...)
		s.Room.Trap = nil
		d.stats()
		if s.Char.IsDead() {
			d.handleDefeat()
			return
		}
	}

	d.startCombat()
}

// showRoomMenu lists what can be done in a cleared chamber.
func (d *Dispatcher) showRoomMenu() {
	s := d.state
	items := []MenuItem{
		{ID: "dng:next", Label: "Push on through the next door"},
	}
	if s.Depth < dungeon.BossDepth {
		items = append(items, MenuItem{ID: "dng:down", Label: fmt.Sprintf("Take the stairs down to depth %d", s.Depth+1)})
	}
	if s.Depth > 1 {
		items = append(items, MenuItem{ID: "dng:back", Label: "Climb back up a level"})
	}
	if s.Room != nil && s.Room.Chest != nil {
		items = append(items, MenuItem{ID: "dng:chest", Label: "Pry open the chest"})
	}
	if s.UsedDivineDepth != s.Depth {
		items = append(items, MenuItem{ID: "dng:divine", Label: "Divine what lies ahead"})
	}
	if s.UsedListenDepth != s.Depth && s.NextRoom == nil {
		items = append(items, MenuItem{ID: "dng:listen", Label: "Listen at the next door"})
	}
	items = append(items, MenuItem{ID: "dng:town", Label: "Climb back to town"})
	d.menu("The room falls quiet.", items...)
}

// showFleeMenu is the reduced menu after running from a fight: the
// room still belongs to the monster.
func (d *Dispatcher) showFleeMenu() {
	d.menu("You catch your breath in the corridor.",
		MenuItem{ID: "dng:next", Label: "Slip down a different passage"},
		MenuItem{ID: "dng:town", Label: "Climb back to town"},
	)
}

func (d *Dispatcher) handleDungeon(act *parser.Action) error {
	s := d.state
	if act.Head != "dng" {
		return invalidAction(act)
	}

	switch act.At(0) {
	case "next":
		d.newRoom()
		return nil
	case "down":
		if s.Depth >= dungeon.BossDepth {
			// There are no stairs below the boss floor.
			d.showRoomMenu()
			return nil
		}
		s.RoomHistory = append(s.RoomHistory, s.Depth)
		s.Depth++
		s.NextRoom = nil // the peeked door stays behind
		s.UsedDivineDepth = -1
		s.UsedListenDepth = -1
		d.newRoom()
		return nil
	case "back":
		s.NextRoom = nil
		s.UsedDivineDepth = -1
		s.UsedListenDepth = -1
		if n := len(s.RoomHistory); n > 0 {
			s.Depth = s.RoomHistory[n-1]
			s.RoomHistory = s.RoomHistory[:n-1]
			if s.Depth < 1 {
				s.Depth = 1
			}
			d.newRoom()
			return nil
		}
		if s.Depth > 1 {
			s.Depth--
			d.newRoom()
			return nil
		}
		d.enterTown(true)
		return nil
	case "town":
		// Depth keeps; the stairs remember how far you got.
		d.enterTown(true)
		return nil
	case "chest":
		return d.openChest()
	case "divine":
		return d.dungeonDivine()
	case "listen":
		return d.dungeonListen()
	}
	return invalidAction(act)
}

func (d *Dispatcher) openChest() error {
	s := d.state
	if s.Room == nil || s.Room.Chest == nil {
		return fmt.Errorf("there is no chest here")
	}
	chest := s.Room.Chest
	s.Room.Chest = nil

	if line, ok := d.loader.Dialogue("dungeon", "chest"); ok {
		d.say(line)
	}
	s.Char.Gold += chest.Gold
	d.say(fmt.Sprintf("Inside: %d gold.", chest.Gold))

	if chest.Item != nil {
		d.say(d.takeLoot(chest.Item)...)
	}
	d.stats()
	d.save()
	d.showRoomMenu()
	return nil
}

// takeLoot moves one drawn item onto the sheet.
func (d *Dispatcher) takeLoot(l *dungeon.Loot) []string {
	c := d.state.Char
	switch l.Kind {
	case dungeon.LootWeapon:
		c.AddWeapon(l.Weapon)
		return []string{fmt.Sprintf("A %s! It joins your arsenal.", l.Weapon.Name)}
	case dungeon.LootArmor:
		c.AddArmor(l.Armor)
		return []string{fmt.Sprintf("A %s, barely worn.", l.Armor.Name)}
	case dungeon.LootPotion:
		c.AddPotion(l.Potion)
		return []string{fmt.Sprintf("A %s potion, stoppered tight.", l.Potion.Name)}
	case dungeon.LootSpell:
		c.AddSpell(l.Spell)
		return []string{fmt.Sprintf("A scroll of %s.", l.Spell.Name)}
	case dungeon.LootMagicItem:
		return c.AddMagicItem(l.MagicItem)
	}
	return nil
}

// dungeonDivine reads the way ahead: a wisdom check that, when it
// lands, pre-draws the next room and reveals everything in it. Once
// per depth.
func (d *Dispatcher) dungeonDivine() error {
	s := d.state
	if s.UsedDivineDepth == s.Depth {
		d.say("The way ahead stays clouded. Not twice on one floor.")
		d.showRoomMenu()
		return nil
	}
	s.UsedDivineDepth = s.Depth

	roll := d.roller.Total("5d4")
	seen, err := d.rules.EvalBool("dungeon_sense", map[string]any{"roll": roll, "stat": s.Char.Attr("Wisdom")})
	if err != nil {
		return err
	}
	if !seen {
		d.say("You close your eyes and reach out. Only the dark reaches back.")
		d.showRoomMenu()
		return nil
	}

	room := d.gen.Generate(s.Depth, s.Encounters+1)
	s.NextRoom = &room
	lines := []string{fmt.Sprintf("A vision: beyond the next door waits a %s.", room.Monster.Name)}
	if room.Chest != nil {
		lines = append(lines, "Something glitters in the corner of the vision. A chest.")
	}
	if room.Trap != nil {
		lines = append(lines, fmt.Sprintf("And beneath the dust, a %s. Forewarned.", room.Trap.Name))
	}
	d.say(lines...)
	d.showRoomMenu()
	return nil
}

// dungeonListen presses an ear to the next door: a luck check that
// names what prowls beyond. Once per depth.
func (d *Dispatcher) dungeonListen() error {
	s := d.state
	if s.UsedListenDepth == s.Depth {
		d.say("You've heard all this floor will tell you.")
		d.showRoomMenu()
		return nil
	}
	s.UsedListenDepth = s.Depth

	roll := d.roller.Total("5d4")
	heard, err := d.rules.EvalBool("dungeon_sense", map[string]any{"roll": roll, "stat": s.Char.Attr("Luck")})
	if err != nil {
		return err
	}
	if !heard {
		d.say("You press your ear to the door. Your own heartbeat drowns everything out.")
		d.showRoomMenu()
		return nil
	}

	room := d.gen.Generate(s.Depth, s.Encounters+1)
	s.NextRoom = &room
	d.say(fmt.Sprintf("Through the wood: something breathing. It sounds like a %s.", room.Monster.Name))
	d.showRoomMenu()
	return nil
}

// handleDefeat runs death's door, from any source of lethal damage.
func (d *Dispatcher) handleDefeat() {
	s := d.state
	lines, revived := d.resolver.AttemptRevival(s.Char)
	d.say(lines...)

	if !revived {
		d.clearSave()
		d.say(fmt.Sprintf("Here ends the tale of %s, slain at depth %d.", s.Char.Name, s.Depth))
		s.Char = nil
		s.Room = nil
		s.NextRoom = nil
		s.Combat = nil
		d.pause()
		d.showMainMenu()
		return
	}

	// The revival carries you back to the surface. The depth itself
	// resets only when the next descent begins.
	s.DeferDepthReset = true
	s.Combat = nil
	d.pause()
	d.enterTown(false)
	d.say("You come to on the temple steps, hauled up from the dark by hands you never saw.")
	d.stats()
	d.save()
}
