package engine

import (
	"fmt"
	"sort"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/parser"
)

func (d *Dispatcher) enterInventory() {
	d.setPhase(PhaseInventory, "")
	d.showInventory()
}

func (d *Dispatcher) showInventory() {
	c := d.state.Char
	var lines []string

	lines = append(lines, "Your pack:")
	if len(c.Weapons) == 0 {
		lines = append(lines, "  No weapons. Fists it is.")
	}
	for i, w := range c.Weapons {
		marker := " "
		if i == c.EquippedWeapon {
			marker = "*"
		}
		status := ""
		if w.Damaged {
			status = " (damaged)"
		}
		lines = append(lines, fmt.Sprintf(" %s %s (%s)%s", marker, w.Weapon.Name, w.Weapon.DamageDie, status))
	}
	for i, a := range c.Armors {
		marker := " "
		if i == c.EquippedArmor {
			marker = "*"
		}
		status := ""
		if a.Damaged {
			status = " (damaged)"
		}
		lines = append(lines, fmt.Sprintf(" %s %s (AC +%d)%s", marker, a.Armor.Name, a.Armor.ArmorClass, status))
	}

	// Spent potions drop out of the map, so only live ones list here.
	if len(c.PotionUses) > 0 {
		names := make([]string, 0, len(c.PotionUses))
		for name := range c.PotionUses {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("   %s potion x%d", name, c.PotionUses[name]))
		}
	}
	if len(c.Spells) > 0 {
		names := make([]string, 0, len(c.Spells))
		for name := range c.Spells {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("   Scroll of %s x%d", name, c.Spells[name]))
		}
	}
	for _, m := range c.MagicItems {
		suffix := ""
		if m.Cursed {
			suffix = " (cursed)"
		}
		lines = append(lines, fmt.Sprintf("   %s%s", m.Name, suffix))
	}
	d.say(lines...)

	items := []MenuItem{}
	for i, w := range c.Weapons {
		if i == c.EquippedWeapon {
			continue
		}
		items = append(items, MenuItem{ID: fmt.Sprintf("inv:weapon:set:%d", i), Label: "Wield " + w.Weapon.Name})
	}
	if c.EquippedWeapon >= 0 {
		items = append(items, MenuItem{ID: "inv:weapon:unset", Label: "Fight bare-handed"})
	}
	for i, a := range c.Armors {
		if i == c.EquippedArmor {
			continue
		}
		items = append(items, MenuItem{ID: fmt.Sprintf("inv:armor:set:%d", i), Label: "Wear " + a.Armor.Name})
	}
	if c.EquippedArmor >= 0 {
		items = append(items, MenuItem{ID: "inv:armor:unset", Label: "Strip off your armor"})
	}
	items = append(items, MenuItem{ID: "inv:back", Label: "Close the pack"})
	d.menu(fmt.Sprintf("AC %d, %d gold", c.ArmorClass(), c.Gold), items...)
}

func (d *Dispatcher) handleInventory(act *parser.Action) error {
	c := d.state.Char
	if act.Head != "inv" {
		return invalidAction(act)
	}

	switch act.At(0) {
	case "back":
		d.setPhase(PhaseTown, "")
		d.showTownMenu()
		return nil
	case "weapon":
		switch act.At(1) {
		case "set":
			idx, ok := act.IntAt(2)
			if !ok || idx < 0 || idx >= len(c.Weapons) {
				return invalidAction(act)
			}
			c.EquippedWeapon = idx
			d.say(fmt.Sprintf("You heft the %s.", c.Weapons[idx].Weapon.Name))
		case "unset":
			c.EquippedWeapon = -1
			d.say("You sling your weapon away.")
		default:
			return invalidAction(act)
		}
	case "armor":
		switch act.At(1) {
		case "set":
			idx, ok := act.IntAt(2)
			if !ok || idx < 0 || idx >= len(c.Armors) {
				return invalidAction(act)
			}
			c.EquippedArmor = idx
			d.say(fmt.Sprintf("You buckle on the %s.", c.Armors[idx].Armor.Name))
		case "unset":
			c.EquippedArmor = -1
			d.say("You shrug out of your armor.")
		default:
			return invalidAction(act)
		}
	default:
		return invalidAction(act)
	}
	d.save()
	d.showInventory()
	return nil
}
