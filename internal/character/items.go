package character

import (
	"fmt"
	"strings"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
)

// AddWeapon puts a weapon into the pack, auto-wielding when unarmed.
func (c *Character) AddWeapon(w data.Weapon) {
	c.Weapons = append(c.Weapons, OwnedWeapon{Weapon: w})
	if c.EquippedWeapon < 0 {
		c.EquippedWeapon = len(c.Weapons) - 1
	}
}

// AddArmor puts an armor piece into the pack, auto-wearing when bare.
func (c *Character) AddArmor(a data.Armor) {
	c.Armors = append(c.Armors, OwnedArmor{Armor: a})
	if c.EquippedArmor < 0 {
		c.EquippedArmor = len(c.Armors) - 1
	}
}

// RemoveWeapon drops a weapon by index, fixing the equipped index.
func (c *Character) RemoveWeapon(i int) (data.Weapon, bool) {
	if i < 0 || i >= len(c.Weapons) {
		return data.Weapon{}, false
	}
	w := c.Weapons[i].Weapon
	c.Weapons = append(c.Weapons[:i], c.Weapons[i+1:]...)
	switch {
	case c.EquippedWeapon == i:
		c.EquippedWeapon = -1
	case c.EquippedWeapon > i:
		c.EquippedWeapon--
	}
	return w, true
}

// RemoveArmor drops an armor piece by index, fixing the equipped index.
func (c *Character) RemoveArmor(i int) (data.Armor, bool) {
	if i < 0 || i >= len(c.Armors) {
		return data.Armor{}, false
	}
	a := c.Armors[i].Armor
	c.Armors = append(c.Armors[:i], c.Armors[i+1:]...)
	switch {
	case c.EquippedArmor == i:
		c.EquippedArmor = -1
	case c.EquippedArmor > i:
		c.EquippedArmor--
	}
	return a, true
}

// AddMagicItem takes a found trinket and applies its effect. Items of
// type weapon instead join the weapon pack. The returned lines narrate
// what changed.
func (c *Character) AddMagicItem(item data.MagicItem) []string {
	if item.Type == "weapon" {
		die := item.DamageDie
		if die == "" {
			die = "1d6"
		}
		c.AddWeapon(data.Weapon{Name: item.Name, DamageDie: die, Availability: "labyrinth"})
		return []string{fmt.Sprintf("The %s joins your arsenal.", item.Name)}
	}

	c.MagicItems = append(c.MagicItems, item)
	lines := []string{fmt.Sprintf("You take the %s.", item.Name)}
	lines = append(lines, c.applyItemEffect(item, false)...)
	return lines
}

// RemoveMagicItem discards a trinket by index, reversing its effect.
// Cursed effects reverse too; removal is what the temple's ritual buys.
func (c *Character) RemoveMagicItem(i int) ([]string, bool) {
	if i < 0 || i >= len(c.MagicItems) {
		return nil, false
	}
	item := c.MagicItems[i]
	c.MagicItems = append(c.MagicItems[:i], c.MagicItems[i+1:]...)
	lines := []string{fmt.Sprintf("You part with the %s.", item.Name)}
	lines = append(lines, c.applyItemEffect(item, true)...)
	return lines, true
}

// CursedItems returns the indexes of carried cursed trinkets.
func (c *Character) CursedItems() []int {
	var out []int
	for i, m := range c.MagicItems {
		if m.Cursed {
			out = append(out, i)
		}
	}
	return out
}

// applyItemEffect mutates the sheet for a magic item's named effect.
// With reverse set, it undoes the same effect.
func (c *Character) applyItemEffect(item data.MagicItem, reverse bool) []string {
	var lines []string
	sign := 1
	if reverse {
		sign = -1
	}

	switch {
	case strings.HasSuffix(item.Effect, "_bonus"):
		attr := strings.TrimSuffix(item.Effect, "_bonus")
		c.AdjustAttr(attr, sign*item.Bonus, 1)
		if !reverse {
			lines = append(lines, fmt.Sprintf("%s +%d.", attr, item.Bonus))
		} else {
			lines = append(lines, fmt.Sprintf("%s returns to normal.", attr))
		}
	case strings.HasSuffix(item.Effect, "_penalty"):
		attr := strings.TrimSuffix(item.Effect, "_penalty")
		c.AdjustAttr(attr, -sign*item.Penalty, 1)
		if !reverse {
			lines = append(lines, fmt.Sprintf("%s -%d. Something is wrong with this thing.", attr, item.Penalty))
		} else {
			lines = append(lines, fmt.Sprintf("%s recovers.", attr))
		}
	case item.Effect == "noise":
		if !reverse {
			c.Debuffs.Armor += 1
			lines = append(lines, "It rattles with every step. Hard to stay unnoticed.")
		} else {
			c.Debuffs.Armor -= 1
			if c.Debuffs.Armor < 0 {
				c.Debuffs.Armor = 0
			}
			lines = append(lines, "Blessed silence.")
		}
	case item.Effect == "weapon_damage":
		if !reverse {
			if w, ok := c.EquippedWeaponItem(); ok && !w.Damaged {
				w.Damaged = true
				lines = append(lines, fmt.Sprintf("Your %s corrodes at its touch!", w.Weapon.Name))
			}
		}
	}
	return lines
}
