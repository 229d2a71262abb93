package combat

import (
	"fmt"
	"math"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/character"
)

// VictoryRewards pays out a defeated monster: gold and experience
// scaled by depth, plus chance drops from the catalog. share is 1.0
// for a kill and CharmRewardShare for a charm.
func (r *Resolver) VictoryRewards(c *character.Character, st *State, depth int, share float64) []string {
	m := st.Monster

	mult, err := r.rules.EvalFloat("reward_mult", map[string]any{"depth": depth})
	if err != nil {
		mult = 1.0 + 0.5*float64(depth-1)
	}
	mult *= share

	gold := m.GoldMin
	if m.GoldMax > m.GoldMin {
		gold += int(r.randFloat() * float64(m.GoldMax-m.GoldMin+1))
	}
	gold = int(float64(gold) * mult)
	xp := int(float64(m.XP) * mult)

	c.Gold += gold
	lines := []string{fmt.Sprintf("You claim %d gold.", gold)}
	lines = append(lines, c.GainXP(xp)...)

	// Chance drops only on a true kill.
	if share >= 1.0 {
		lines = append(lines, r.rollDrops(c, m.Difficulty)...)
	}
	return lines
}

// rollDrops tests the consumable and trinket drop tables. Harder
// monsters drop more often, with both chances capped.
func (r *Resolver) rollDrops(c *character.Character, difficulty int) []string {
	var lines []string

	consumable := math.Min(0.20, 0.05+0.01*float64(difficulty))
	if r.randFloat() < consumable {
		if r.randFloat() < 0.5 {
			if potions := r.loader.Potions(); len(potions) > 0 {
				p := potions[int(r.randFloat()*float64(len(potions)))%len(potions)]
				c.AddPotion(p)
				lines = append(lines, fmt.Sprintf("Among the remains: a %s potion.", p.Name))
			}
		} else {
			if spells := r.loader.Spells(); len(spells) > 0 {
				s := spells[int(r.randFloat()*float64(len(spells)))%len(spells)]
				c.AddSpell(s)
				lines = append(lines, fmt.Sprintf("Among the remains: a scroll of %s.", s.Name))
			}
		}
	}

	trinket := math.Min(0.12, 0.02+0.01*float64(difficulty))
	if r.randFloat() < trinket {
		if items := r.loader.MagicItems(); len(items) > 0 {
			item := items[int(r.randFloat()*float64(len(items)))%len(items)]
			lines = append(lines, c.AddMagicItem(item)...)
		}
	}
	return lines
}

// AttemptRevival resolves death's door: the death count rises, then
// the combat die plus wisdom is set against a DC that grows five per
// death. Survival costs one point from every attribute (floored at
// three) and leaves the character at one hit point; the climb back to
// the surface is handled by the caller. Failure is the end.
func (r *Resolver) AttemptRevival(c *character.Character) ([]string, bool) {
	c.DeathCount++

	dc, err := r.rules.EvalInt("revival_dc", map[string]any{"deaths": c.DeathCount})
	if err != nil {
		dc = 15 + 5*c.DeathCount
	}
	roll := r.roller.Total(CombatDie) + c.Attr("Wisdom")

	if roll < dc {
		return []string{
			"Everything goes dark.",
			fmt.Sprintf("You reach for the light and it slips away. (%d vs %d)", roll, dc),
		}, false
	}

	for _, attr := range character.AttributeNames {
		c.AdjustAttr(attr, -1, 3)
	}
	c.HP = 1
	c.Buffs.Clear()
	c.Debuffs.Clear()

	return []string{
		"Everything goes dark.",
		fmt.Sprintf("...and then, impossibly, a heartbeat. (%d vs %d)", roll, dc),
		"You wake weaker than before. Every part of you aches.",
	}, true
}
