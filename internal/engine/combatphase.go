package engine

import (
	"fmt"
	"sort"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/combat"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/parser"
)

func (d *Dispatcher) startCombat() {
	s := d.state
	st := combat.NewState(s.Room.Monster)
	s.Combat = st
	d.setPhase(PhaseCombat, "")

	m := st.Monster
	if m.Description != "" {
		d.say(fmt.Sprintf("A %s! %s", m.Name, m.Description))
	} else {
		d.say(fmt.Sprintf("A %s blocks your way!", m.Name))
	}

	d.say(d.resolver.Initiative(s.Char, st)...)
	if !st.PlayerTurn {
		// The monster's edge buys it one opening strike.
		out := d.resolver.MonsterAttack(s.Char, st)
		d.say(out.Lines...)
		if s.Char.IsDead() {
			d.handleDefeat()
			return
		}
		if !st.Monster.Alive() {
			// It can fumble itself to death before the fight starts.
			d.endCombatVictory()
			return
		}
	}
	d.combatUpdate()
	d.showCombatMenu()
}

func (d *Dispatcher) showCombatMenu() {
	s := d.state
	c := s.Char
	st := s.Combat

	items := []MenuItem{
		{ID: "atk:high", Label: "Strike high"},
		{ID: "atk:middle", Label: "Strike center"},
		{ID: "atk:low", Label: "Strike low"},
	}
	if !st.CharmUsed {
		items = append(items, MenuItem{ID: "charm", Label: "Try to talk it down"})
	}
	if !st.ExamineUsed {
		items = append(items, MenuItem{ID: "exam", Label: "Size it up"})
	}
	if len(c.PotionUses) > 0 {
		items = append(items, MenuItem{ID: "pot", Label: "Drink a potion"})
	}
	if len(c.Spells) > 0 {
		items = append(items, MenuItem{ID: "spl", Label: "Read a scroll"})
	}
	items = append(items,
		MenuItem{ID: "aid", Label: "Pray for intervention"},
		MenuItem{ID: "run", Label: "Run for it"},
	)
	d.menu("Your move.", items...)
}

func (d *Dispatcher) handleCombat(act *parser.Action) error {
	s := d.state
	st := s.Combat
	if st == nil {
		return fmt.Errorf("no fight in progress")
	}

	switch act.Head {
	case "atk":
		zone, ok := combat.ParseZone(act.At(0))
		if !ok {
			return invalidAction(act)
		}
		st.AimZone = zone
		d.menu("And guard where?",
			MenuItem{ID: "grd:high", Label: "Guard high"},
			MenuItem{ID: "grd:middle", Label: "Guard center"},
			MenuItem{ID: "grd:low", Label: "Guard low"},
		)
		return nil

	case "grd":
		zone, ok := combat.ParseZone(act.At(0))
		if !ok {
			return invalidAction(act)
		}
		st.GuardZone = zone
		d.resolveRound()
		return nil

	case "charm":
		lines, charmed := d.resolver.AttemptCharm(s.Char, st)
		d.say(lines...)
		if charmed {
			d.endCombatCharmed()
			return nil
		}
		d.monsterReply()
		return nil

	case "exam":
		// A free action, but the one attempt is spent on the try.
		d.say(d.resolver.Examine(s.Char, st)...)
		d.showCombatMenu()
		return nil

	case "pot":
		names := sortedKeys(s.Char.PotionUses)
		if act.Len() == 0 {
			var items []MenuItem
			for i, name := range names {
				items = append(items, MenuItem{ID: fmt.Sprintf("pot:%d", i), Label: fmt.Sprintf("%s potion x%d", name, s.Char.PotionUses[name])})
			}
			items = append(items, MenuItem{ID: "back", Label: "Back"})
			d.menu("Drink which?", items...)
			return nil
		}
		idx, ok := act.IntAt(0)
		if !ok || idx < 0 || idx >= len(names) {
			return invalidAction(act)
		}
		lines, used := d.resolver.UsePotion(s.Char, names[idx])
		d.say(lines...)
		if !used {
			d.showCombatMenu()
			return nil
		}
		d.stats()
		d.monsterReply()
		return nil

	case "spl":
		names := sortedKeys(s.Char.Spells)
		if act.Len() == 0 {
			var items []MenuItem
			for i, name := range names {
				items = append(items, MenuItem{ID: fmt.Sprintf("spl:%d", i), Label: fmt.Sprintf("Scroll of %s x%d", name, s.Char.Spells[name])})
			}
			items = append(items, MenuItem{ID: "back", Label: "Back"})
			d.menu("Read which?", items...)
			return nil
		}
		idx, ok := act.IntAt(0)
		if !ok || idx < 0 || idx >= len(names) {
			return invalidAction(act)
		}
		if spell, known := d.loader.SpellByName(names[idx]); known && spell.Effect == "lightning" && act.Len() < 2 {
			d.menu("How much of the storm?",
				MenuItem{ID: fmt.Sprintf("spl:%d:full", idx), Label: "The full bolt (6d6)"},
				MenuItem{ID: fmt.Sprintf("spl:%d:half", idx), Label: "A measured arc (3d6)"},
			)
			return nil
		}
		return d.castInCombat(names[idx], act.At(1))

	case "back":
		d.showCombatMenu()
		return nil

	case "aid":
		lines, _ := d.resolver.DivineAid(s.Char, st)
		d.say(lines...)
		if !st.Monster.Alive() {
			d.endCombatVictory()
			return nil
		}
		d.monsterReply()
		return nil

	case "run":
		lines, escaped := d.resolver.AttemptRun(s.Char, st)
		d.say(lines...)
		if escaped {
			s.Combat = nil
			s.Char.Buffs.Clear()
			d.setPhase(PhaseDungeon, "")
			d.showFleeMenu()
			return nil
		}
		// It catches you turning: a free strike.
		d.monsterReply()
		return nil
	}
	return invalidAction(act)
}

func sortedKeys(m map[string]int) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// castInCombat resolves a scroll read mid-fight, including the escape
// hatch of teleport.
func (d *Dispatcher) castInCombat(name, mode string) error {
	s := d.state
	st := s.Combat

	spell, known := d.loader.SpellByName(name)
	lines, used := d.resolver.CastSpell(s.Char, st, name, mode)
	d.say(lines...)
	if !used {
		d.showCombatMenu()
		return nil
	}
	d.stats()

	if known && spell.Effect == "teleport" {
		// Blink out of the fight and into a fresh chamber.
		s.Combat = nil
		s.Char.Buffs.Clear()
		d.newRoom()
		return nil
	}
	if !st.Monster.Alive() {
		d.endCombatVictory()
		return nil
	}
	d.monsterReply()
	return nil
}

// resolveRound plays one full exchange with the chosen zones.
func (d *Dispatcher) resolveRound() {
	s := d.state
	st := s.Combat
	c := s.Char
	st.Round++

	out := d.resolver.PlayerAttack(c, st)
	d.say(out.Lines...)
	if c.IsDead() {
		// A fumble can finish a wounded explorer.
		d.handleDefeat()
		return
	}
	for st.Monster.Alive() && c.Buffs.SpendExtraAttack() {
		out = d.resolver.PlayerAttack(c, st)
		d.say(out.Lines...)
		if c.IsDead() {
			d.handleDefeat()
			return
		}
	}
	if !st.Monster.Alive() {
		d.endCombatVictory()
		return
	}

	if lines := d.resolver.CompanionTurn(c, st); len(lines) > 0 {
		d.say(lines...)
		if !st.Monster.Alive() {
			d.endCombatVictory()
			return
		}
	}

	d.monsterReply()
}

// monsterReply gives the monster its swing plus end-of-round upkeep,
// then reopens the combat menu.
func (d *Dispatcher) monsterReply() {
	s := d.state
	st := s.Combat
	c := s.Char

	out := d.resolver.MonsterAttack(c, st)
	d.say(out.Lines...)
	if c.IsDead() {
		d.handleDefeat()
		return
	}
	if !st.Monster.Alive() {
		// Its own fumble can finish it.
		d.endCombatVictory()
		return
	}

	if lines := d.resolver.TickPoison(c); len(lines) > 0 {
		d.say(lines...)
		if c.IsDead() {
			d.handleDefeat()
			return
		}
	}

	d.combatUpdate()
	d.showCombatMenu()
}

func (d *Dispatcher) endCombatVictory() {
	s := d.state
	st := s.Combat
	c := s.Char
	m := st.Monster

	d.say(fmt.Sprintf("The %s collapses. The room is yours.", m.Name))
	d.say(d.resolver.VictoryRewards(c, st, s.Depth, 1.0)...)
	d.say(d.quests.SettleKill(c, m.Name)...)

	if s.Room.Gold > 0 {
		c.Gold += s.Room.Gold
		d.say(fmt.Sprintf("You scrape %d gold off the floor.", s.Room.Gold))
		s.Room.Gold = 0
	}

	c.Buffs.Clear()
	s.Combat = nil
	d.stats()

	if m.Boss {
		d.say(
			"The Dragon is dead.",
			"The labyrinth itself seems to exhale. Somewhere above, bells are ringing.",
			fmt.Sprintf("%s, Dragonslayer. That's what they'll call you now.", c.Name),
		)
		d.pause()
		// The run is over; the next descent starts from the top.
		s.DeferDepthReset = true
		d.enterTown(true)
		return
	}

	d.setPhase(PhaseDungeon, "")
	d.save()
	d.showRoomMenu()
}

// endCombatCharmed closes a fight won with words: a quarter of the
// spoils and no body to loot.
func (d *Dispatcher) endCombatCharmed() {
	s := d.state
	c := s.Char

	d.say(d.resolver.VictoryRewards(c, s.Combat, s.Depth, combat.CharmRewardShare)...)
	c.Buffs.Clear()
	s.Combat = nil
	d.stats()
	d.setPhase(PhaseDungeon, "")
	d.save()
	d.showRoomMenu()
}
