package combat

import (
	"fmt"
	"math"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/character"
)

// AttackOutcome reports one resolved blow. Roll is the raw combat die;
// fumble and crit key off it before any modifier is added.
type AttackOutcome struct {
	Roll    int
	Hit     bool
	Blocked bool
	Crit    bool
	Fumble  bool
	Damage  int
	Lines   []string
}

// PlayerAttack resolves the character's swing against the monster. The
// combat die plus strength is compared to the monster's armor class;
// the monster guards a random zone and a matching strike is turned
// aside. A critical (maximum raw roll) multiplies damage by 1.5,
// floored, and cannot be blocked. A fumble (minimum raw roll) misses
// and the wild swing wounds the attacker. Any solid contact, blocked
// included, can chip the weapon.
func (r *Resolver) PlayerAttack(c *character.Character, st *State) AttackOutcome {
	out := AttackOutcome{Roll: r.roller.Total(CombatDie)}
	monsterGuard := r.randomZone()
	monsterAC := st.Monster.ArmorClass - st.MonsterDebuffs.Armor

	switch {
	case out.Roll <= combatDieMin:
		out.Fumble = true
		self := r.roller.Total("1d4")
		if self < 1 {
			self = 1
		}
		c.TakeDamage(self)
		out.Lines = append(out.Lines, fmt.Sprintf("You swing wide and gash yourself for %d damage! (%d)", self, out.Roll))
		return out
	case out.Roll >= combatDieMax:
		out.Crit = true
	case out.Roll+c.Attr("Strength") < monsterAC:
		out.Lines = append(out.Lines, fmt.Sprintf("Your blow glances off. (%d vs AC %d)", out.Roll+c.Attr("Strength"), monsterAC))
		return out
	}

	if !out.Crit && monsterGuard == st.AimZone {
		out.Blocked = true
		out.Lines = append(out.Lines, fmt.Sprintf("The %s guards %s and turns your strike aside!", st.Monster.Name, zoneNoun(monsterGuard)))
		out.Lines = append(out.Lines, r.chipWeapon(c, st)...)
		return out
	}

	out.Hit = true
	out.Damage = r.playerDamage(c, out.Crit)
	st.Monster.TakeDamage(out.Damage)
	if out.Crit {
		out.Lines = append(out.Lines, fmt.Sprintf("A perfect strike! %d damage.", out.Damage))
	} else {
		out.Lines = append(out.Lines, fmt.Sprintf("You hit the %s %s for %d damage.", st.Monster.Name, zoneNoun(st.AimZone), out.Damage))
	}
	out.Lines = append(out.Lines, r.chipWeapon(c, st)...)
	return out
}

// chipWeapon rolls equipment wear after solid contact. The tougher the
// hide, the likelier the edge suffers.
func (r *Resolver) chipWeapon(c *character.Character, st *State) []string {
	w, ok := c.EquippedWeaponItem()
	if !ok || w.Damaged {
		return nil
	}
	if r.randFloat() >= float64(st.Monster.ArmorClass)*0.001 {
		return nil
	}
	w.Damaged = true
	return []string{fmt.Sprintf("Your %s chips badly on impact!", w.Weapon.Name)}
}

// dentArmor rolls armor wear after the monster makes solid contact,
// scaled by its strength.
func (r *Resolver) dentArmor(c *character.Character, st *State) []string {
	a, ok := c.EquippedArmorPiece()
	if !ok || a.Damaged {
		return nil
	}
	if r.randFloat() >= float64(st.Monster.Strength)*0.001 {
		return nil
	}
	a.Damaged = true
	return []string{fmt.Sprintf("Your %s buckles under the blow!", a.Armor.Name)}
}

// playerDamage computes one hit's damage: the weapon die (halved while
// damaged, minimum 1), half strength rounded up, and the net of damage
// buffs and debuffs.
func (r *Resolver) playerDamage(c *character.Character, crit bool) int {
	die, damaged := c.DamageDie()
	base := r.roller.Total(die)
	if damaged {
		base /= 2
		if base < 1 {
			base = 1
		}
	}
	dmg := base + ceilHalf(c.Attr("Strength")) + c.Buffs.Damage - c.Debuffs.Damage
	if dmg < 1 {
		dmg = 1
	}
	if crit {
		dmg = int(math.Floor(float64(dmg) * 1.5))
	}
	return dmg
}

// MonsterAttack resolves the monster's swing at the character, or at
// the companion when one stands in front. The combat die plus half the
// monster's strength, floored, is compared to the character's armor
// class. An invisibility charge absorbs one otherwise-certain blow. A
// frozen monster loses the round. A fumbling monster wounds itself
// with its own attack.
func (r *Resolver) MonsterAttack(c *character.Character, st *State) AttackOutcome {
	var out AttackOutcome

	if st.MonsterDebuffs.TickFrozen() {
		out.Lines = append(out.Lines, fmt.Sprintf("The %s strains against the ice and cannot move.", st.Monster.Name))
		return out
	}
	if c.Buffs.ConsumeInvisibility() {
		out.Lines = append(out.Lines, fmt.Sprintf("The %s lashes at empty air. It cannot see you.", st.Monster.Name))
		return out
	}

	if c.Companion.Alive() && r.randFloat() < 0.5 {
		return r.monsterAttackCompanion(c, st)
	}

	out.Roll = r.roller.Total(CombatDie)
	aim := r.randomZone()

	switch {
	case out.Roll <= combatDieMin:
		out.Fumble = true
		self := r.roller.Total(st.Monster.DamageDie) - st.MonsterDebuffs.Damage
		if self < 1 {
			self = 1
		}
		st.Monster.TakeDamage(self)
		out.Lines = append(out.Lines, fmt.Sprintf("The %s overreaches and wounds itself for %d! (%d)", st.Monster.Name, self, out.Roll))
		return out
	case out.Roll >= combatDieMax:
		out.Crit = true
	case out.Roll+st.Monster.Strength/2 < c.ArmorClass():
		out.Lines = append(out.Lines, fmt.Sprintf("The %s's attack glances off you. (%d vs AC %d)", st.Monster.Name, out.Roll+st.Monster.Strength/2, c.ArmorClass()))
		return out
	}

	if !out.Crit && st.GuardZone == aim {
		out.Blocked = true
		out.Lines = append(out.Lines, fmt.Sprintf("It strikes %s. You were guarding there and block it!", zoneNoun(aim)))
		out.Lines = append(out.Lines, r.dentArmor(c, st)...)
		return out
	}

	out.Hit = true
	out.Damage = r.monsterDamage(st, out.Crit)
	c.TakeDamage(out.Damage)
	if out.Crit {
		out.Lines = append(out.Lines, fmt.Sprintf("The %s lands a savage blow! %d damage.", st.Monster.Name, out.Damage))
	} else {
		out.Lines = append(out.Lines, fmt.Sprintf("The %s hits you %s for %d damage.", st.Monster.Name, zoneNoun(aim), out.Damage))
	}
	out.Lines = append(out.Lines, r.dentArmor(c, st)...)
	return out
}

func (r *Resolver) monsterDamage(st *State, crit bool) int {
	dmg := r.roller.Total(st.Monster.DamageDie) + ceilHalf(st.Monster.Strength) - st.MonsterDebuffs.Damage
	if dmg < 1 {
		dmg = 1
	}
	if crit {
		dmg = int(math.Floor(float64(dmg) * 1.5))
	}
	return dmg
}

func (r *Resolver) monsterAttackCompanion(c *character.Character, st *State) AttackOutcome {
	out := AttackOutcome{Roll: r.roller.Total(CombatDie)}
	comp := c.Companion

	if out.Roll <= combatDieMin || out.Roll <= comp.ArmorClass {
		out.Lines = append(out.Lines, fmt.Sprintf("The %s snaps at your %s and misses.", st.Monster.Name, comp.Name))
		return out
	}

	out.Hit = true
	out.Damage = r.monsterDamage(st, out.Roll >= combatDieMax)
	comp.HP -= out.Damage
	out.Lines = append(out.Lines, fmt.Sprintf("The %s savages your %s for %d damage.", st.Monster.Name, comp.Name, out.Damage))
	if comp.HP <= 0 {
		c.Companion = nil
		out.Lines = append(out.Lines, fmt.Sprintf("Your %s falls. It will not rise again.", comp.Name))
	}
	return out
}

// CompanionTurn resolves the companion's attack: a d20 plus strength
// against the monster's armor class.
func (r *Resolver) CompanionTurn(c *character.Character, st *State) []string {
	comp := c.Companion
	if !comp.Alive() || !st.Monster.Alive() {
		return nil
	}

	roll := r.roller.Die(20) + comp.Strength
	if roll <= st.Monster.ArmorClass-st.MonsterDebuffs.Armor {
		return []string{fmt.Sprintf("Your %s lunges and misses. (%d)", comp.Name, roll)}
	}
	dmg := r.roller.Total(comp.DamageDie)
	if dmg < 1 {
		dmg = 1
	}
	st.Monster.TakeDamage(dmg)
	return []string{fmt.Sprintf("Your %s tears into the %s for %d damage!", comp.Name, st.Monster.Name, dmg)}
}

// TickPoison applies the per-round poison damage to the character and
// reports what happened.
func (r *Resolver) TickPoison(c *character.Character) []string {
	if !c.Debuffs.TickPoison() {
		return nil
	}
	dmg := r.roller.Total("1d4")
	c.TakeDamage(dmg)
	lines := []string{fmt.Sprintf("Poison courses through you. %d damage.", dmg)}
	if !c.Debuffs.Poisoned() {
		lines = append(lines, "The venom finally burns itself out.")
	}
	return lines
}

func ceilHalf(n int) int {
	if n%2 == 0 {
		return n / 2
	}
	return n/2 + 1
}
