package character

import (
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dice"
)

// Companion is a summoned creature fighting at the character's side.
// It persists across fights until it dies.
type Companion struct {
	Name       string `json:"name"`
	HP         int    `json:"hp"`
	MaxHP      int    `json:"max_hp"`
	ArmorClass int    `json:"armor_class"`
	Strength   int    `json:"strength"`
	DamageDie  string `json:"damage_die"`
}

type summonTier struct {
	minRoll   int
	names     []string
	damageDie string
	acMin     int
	acMax     int
	strMin    int
	strMax    int
	hpMin     int
	hpMax     int
}

// summonTiers is ordered strongest first; the first tier whose minRoll
// the adjusted roll meets wins.
var summonTiers = []summonTier{
	{minRoll: 16, names: []string{"Lion", "Bear", "Tiger"}, damageDie: "4d6", acMin: 12, acMax: 14, strMin: 12, strMax: 15, hpMin: 50, hpMax: 75},
	{minRoll: 12, names: []string{"Wolf", "Panther", "Eagle"}, damageDie: "3d6", acMin: 10, acMax: 12, strMin: 10, strMax: 12, hpMin: 30, hpMax: 50},
	{minRoll: 8, names: []string{"Dog", "Cat", "Owl"}, damageDie: "2d6", acMin: 8, acMax: 10, strMin: 8, strMax: 10, hpMin: 15, hpMax: 30},
}

// Summon resolves a summoning attempt. The raw roll is adjusted by the
// caster's intelligence and charisma; the best tier the adjusted roll
// reaches produces a random creature within the tier's stat ranges.
// A nil return means nothing answered the call.
func Summon(roller *dice.Roller, roll, intelligence, charisma int) *Companion {
	adjusted := roll + (intelligence-10)/2 + (charisma-10)/2
	for _, tier := range summonTiers {
		if adjusted < tier.minRoll {
			continue
		}
		name := tier.names[roller.Die(len(tier.names))-1]
		hp := rangeRoll(roller, tier.hpMin, tier.hpMax)
		return &Companion{
			Name:       name,
			HP:         hp,
			MaxHP:      hp,
			ArmorClass: rangeRoll(roller, tier.acMin, tier.acMax),
			Strength:   rangeRoll(roller, tier.strMin, tier.strMax),
			DamageDie:  tier.damageDie,
		}
	}
	return nil
}

// Alive reports whether the companion can still fight.
func (c *Companion) Alive() bool { return c != nil && c.HP > 0 }

// Heal restores companion hit points up to the maximum.
func (c *Companion) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := c.HP
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	return c.HP - before
}

func rangeRoll(roller *dice.Roller, min, max int) int {
	if max <= min {
		return min
	}
	return min + roller.Die(max-min+1) - 1
}
