package dungeon

import (
	"fmt"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/character"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
)

// ResolveTrap springs a room trap against the character: a dexterity
// dodge against the trap's DC, then damage and secondary effects on a
// failure. The returned lines narrate the outcome.
func (g *Generator) ResolveTrap(trap *data.Trap, c *character.Character) []string {
	lines := []string{fmt.Sprintf("A trap! %s!", trap.Name)}

	roll := g.roller.Total("5d4") + ceilHalf(c.Attr("Dexterity"))
	if roll > trap.DC {
		lines = append(lines, fmt.Sprintf("You twist aside just in time. (%d vs DC %d)", roll, trap.DC))
		return lines
	}
	lines = append(lines, fmt.Sprintf("Too slow. (%d vs DC %d)", roll, trap.DC))

	if dmg := g.roller.Total(trap.Damage); dmg > 0 {
		c.TakeDamage(dmg)
		lines = append(lines, fmt.Sprintf("You take %d damage.", dmg))
	}

	for _, eff := range trap.Effects {
		if eff.Chance > 0 && g.randFloat() >= eff.Chance {
			continue
		}
		switch eff.Type {
		case "gold_dust":
			lost := eff.Amount
			if lost > c.Gold {
				lost = c.Gold
			}
			c.Gold -= lost
			if lost > 0 {
				lines = append(lines, fmt.Sprintf("%d gold crumbles to worthless dust.", lost))
			}
		case "poison":
			c.Debuffs.PoisonTurns = eff.Duration
			lines = append(lines, "Venom burns in the wound. You are poisoned!")
		case "dex_down":
			c.AdjustAttr("Dexterity", -eff.Amount, 1)
			lines = append(lines, fmt.Sprintf("Your limbs go numb. Dexterity -%d.", eff.Amount))
		}
	}
	return lines
}

func ceilHalf(n int) int {
	if n%2 == 0 {
		return n / 2
	}
	return n/2 + 1
}
