package combat

import (
	"fmt"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/character"
)

// UsePotion drinks one use of a carried potion and applies its effect.
// Buff effects last until the fight ends.
func (r *Resolver) UsePotion(c *character.Character, name string) ([]string, bool) {
	p, ok := r.loader.PotionByName(name)
	if !ok {
		return []string{fmt.Sprintf("You carry no %s potion.", name)}, false
	}
	if !c.ConsumePotion(p.Name) {
		return []string{fmt.Sprintf("Your %s potion is spent.", p.Name)}, false
	}

	switch p.Effect {
	case "healing":
		// One 2d2 draught per point of half constitution, each worth
		// at least 1.
		total := 0
		for i := 0; i < ceilHalf(c.Attr("Constitution")); i++ {
			sip := r.roller.Total("2d2")
			if sip < 1 {
				sip = 1
			}
			total += sip
		}
		healed := c.Heal(total)
		return []string{fmt.Sprintf("Warmth spreads through you. You recover %d HP.", healed)}, true
	case "strength":
		c.Buffs.Damage += 2
		return []string{"Your muscles swell with borrowed might. Damage +2."}, true
	case "protection":
		c.Buffs.Armor += 3
		return []string{"A faint shimmer settles over your skin. AC +3."}, true
	case "speed":
		c.Buffs.ExtraAttacks++
		return []string{"The world slows around you. Your next exchange holds an extra strike."}, true
	case "invisibility":
		c.Buffs.InvisibleCharges++
		return []string{"You fade from sight. The next blow will find nothing."}, true
	case "charisma":
		c.Buffs.Charm += 2
		return []string{"Your voice gains a honeyed edge. Charm +2."}, true
	case "intelligence":
		c.Buffs.Damage++
		return []string{"Your thoughts sharpen. You see every opening. Damage +1."}, true
	case "antidote":
		if c.Debuffs.CurePoison() {
			return []string{"The antidote quenches the venom."}, true
		}
		return []string{"Bitter, but you weren't poisoned. Nothing happens."}, true
	}
	return []string{fmt.Sprintf("The %s potion fizzes without effect.", p.Name)}, true
}

// spellDamage lands offensive spell damage on the monster, bled off
// against its innate resistance first.
func spellDamage(st *State, dmg int) int {
	dmg -= st.Monster.SpellResistance
	if dmg < 0 {
		dmg = 0
	}
	st.Monster.TakeDamage(dmg)
	return dmg
}

// CastSpell burns one scroll copy. Offensive spells require a live
// fight; st may be nil outside combat, in which case combat-only
// scrolls refuse to fire and are not consumed. mode selects a variant
// for spells that have one (lightning: "full" or "half").
func (r *Resolver) CastSpell(c *character.Character, st *State, name, mode string) ([]string, bool) {
	s, ok := r.loader.SpellByName(name)
	if !ok {
		return []string{fmt.Sprintf("You carry no scroll of %s.", name)}, false
	}

	combatOnly := map[string]bool{
		"magic_missile": true, "weakness": true, "slowness": true,
		"vulnerability": true, "freeze": true, "lightning": true, "fireball": true,
	}
	if combatOnly[s.Effect] && (st == nil || !st.Monster.Alive()) {
		return []string{"There is nothing to aim that at."}, false
	}
	if !c.ConsumeSpell(s.Name) {
		return []string{fmt.Sprintf("Your scroll of %s is spent.", s.Name)}, false
	}

	switch s.Effect {
	case "magic_missile":
		dmg := spellDamage(st, r.roller.Total("2d6"))
		if dmg == 0 {
			return []string{fmt.Sprintf("Darts of light shatter against the %s's warded hide.", st.Monster.Name)}, true
		}
		return []string{fmt.Sprintf("Darts of light slam into the %s for %d damage.", st.Monster.Name, dmg)}, true
	case "heal":
		healed := c.Heal(r.roller.Total("8d4"))
		return []string{fmt.Sprintf("Golden light knits your wounds. You recover %d HP.", healed)}, true
	case "weakness":
		st.MonsterDebuffs.Damage += 2
		return []string{fmt.Sprintf("The %s's limbs sag. Its blows weaken.", st.Monster.Name)}, true
	case "slowness":
		st.MonsterDebuffs.FrozenTurns++
		return []string{fmt.Sprintf("The %s moves as if through tar.", st.Monster.Name)}, true
	case "vulnerability":
		st.MonsterDebuffs.Armor += 2
		return []string{fmt.Sprintf("Cracks spider across the %s's hide.", st.Monster.Name)}, true
	case "freeze":
		st.MonsterDebuffs.FrozenTurns += 2
		return []string{fmt.Sprintf("Ice locks the %s in place!", st.Monster.Name)}, true
	case "lightning":
		die := "3d6"
		if mode == "full" {
			die = "6d6"
		}
		dmg := spellDamage(st, r.roller.Total(die))
		if dmg == 0 {
			return []string{fmt.Sprintf("The bolt crawls over the %s's scales and grounds out.", st.Monster.Name)}, true
		}
		return []string{fmt.Sprintf("A bolt rips through the %s for %d damage!", st.Monster.Name, dmg)}, true
	case "fireball":
		dmg := spellDamage(st, r.roller.Total("4d6"))
		if dmg == 0 {
			return []string{fmt.Sprintf("Fire washes over the %s and gutters out harmlessly.", st.Monster.Name)}, true
		}
		return []string{fmt.Sprintf("Fire engulfs the %s for %d damage!", st.Monster.Name, dmg)}, true
	case "summon":
		if c.Companion.Alive() {
			c.AddSpell(s) // refund, the scroll was not spent in vain
			return []string{fmt.Sprintf("Your %s growls. One companion is company enough.", c.Companion.Name)}, false
		}
		comp := character.Summon(r.roller, r.roller.Total(CombatDie), c.Attr("Intelligence"), c.Attr("Charisma"))
		if comp == nil {
			return []string{"The circle flares and gutters out. Nothing answers."}, true
		}
		c.Companion = comp
		return []string{fmt.Sprintf("A %s pads out of the smoke and takes your side!", comp.Name)}, true
	case "teleport":
		return []string{"The world folds. You are somewhere else."}, true
	}
	return []string{fmt.Sprintf("The scroll of %s crumbles without effect.", s.Name)}, true
}

// DivineAid petitions the powers above: the combat die plus the margin
// of wisdom over ten, twelve or better to be heard. A strong answer is
// fire, a weak one lightning.
func (r *Resolver) DivineAid(c *character.Character, st *State) ([]string, bool) {
	roll := r.roller.Total(CombatDie) + c.Attr("Wisdom") - 10
	if roll < 12 {
		return []string{fmt.Sprintf("You call out. The dark swallows your prayer. (%d)", roll)}, false
	}

	var dmg int
	var lines []string
	if roll >= 16 {
		dmg = r.roller.Total("4d6")
		lines = append(lines, fmt.Sprintf("A pillar of fire answers! The %s takes %d damage.", st.Monster.Name, dmg))
	} else {
		dmg = r.roller.Total("3d6")
		lines = append(lines, fmt.Sprintf("Lightning splits the ceiling! The %s takes %d damage.", st.Monster.Name, dmg))
	}
	st.Monster.TakeDamage(dmg)
	return lines, true
}

// AttemptCharm tries to talk the monster down: the combat die plus
// charisma and charm buffs against the charm DC for the monster's
// difficulty. One attempt per fight; the boss cannot be charmed. A
// charmed monster leaves and a quarter of the victory rewards are paid.
func (r *Resolver) AttemptCharm(c *character.Character, st *State) ([]string, bool) {
	if st.CharmUsed {
		return []string{"You have already shown your hand. It isn't listening."}, false
	}
	st.CharmUsed = true

	if st.Monster.Boss {
		return []string{fmt.Sprintf("The %s regards you with ancient contempt. Words are wind.", st.Monster.Name)}, false
	}

	dc, err := r.rules.EvalInt("charm_dc", map[string]any{"difficulty": st.Monster.Difficulty})
	if err != nil {
		dc = 28 + st.Monster.Difficulty*2
	}
	roll := r.roller.Total(CombatDie) + c.Attr("Charisma") + c.Buffs.Charm
	if roll <= dc {
		return []string{fmt.Sprintf("Your words slide off. (%d vs %d)", roll, dc)}, false
	}

	st.CharmedAway = true
	return []string{fmt.Sprintf("The %s wavers... then lowers its guard and slips away. (%d vs %d)", st.Monster.Name, roll, dc)}, true
}

// AttemptRun tries to flee: the combat die plus half dexterity against
// the flight DC for the monster's reflexes. On failure the monster gets
// a free swing as you turn.
func (r *Resolver) AttemptRun(c *character.Character, st *State) ([]string, bool) {
	dc, err := r.rules.EvalInt("run_dc", map[string]any{"monster_dex": st.Monster.Dexterity})
	if err != nil {
		dc = 15 + ceilHalf(st.Monster.Dexterity)
	}
	roll := r.roller.Total(CombatDie) + ceilHalf(c.Attr("Dexterity"))
	if roll <= dc {
		return []string{fmt.Sprintf("You bolt for the corridor and it cuts you off! (%d vs %d)", roll, dc)}, false
	}
	return []string{fmt.Sprintf("You duck away into the dark. (%d vs %d)", roll, dc)}, true
}

// Examine sizes the monster up: the combat die plus wisdom over 25
// reveals the full stat line. One attempt per fight, spent whether or
// not the look pays off.
func (r *Resolver) Examine(c *character.Character, st *State) []string {
	if st.ExamineUsed {
		return []string{fmt.Sprintf("You've already taken the %s's measure.", st.Monster.Name)}
	}
	st.ExamineUsed = true

	roll := r.roller.Total(CombatDie) + c.Attr("Wisdom")
	if roll <= 25 {
		return []string{fmt.Sprintf("You study the %s but learn nothing useful. (%d)", st.Monster.Name, roll)}
	}
	m := st.Monster
	return []string{
		fmt.Sprintf("%s: HP %d/%d, AC %d, STR %d, DEX %d, hits for %s.",
			m.Name, m.HP, m.MaxHP, m.ArmorClass, m.Strength, m.Dexterity, m.DamageDie),
	}
}
