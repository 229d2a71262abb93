package character

import (
	"fmt"
	"math"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dice"
)

// AttributeNames lists the seven attributes in display order.
var AttributeNames = []string{
	"Strength",
	"Dexterity",
	"Constitution",
	"Intelligence",
	"Wisdom",
	"Charisma",
	"Luck",
}

// Difficulty selects the attribute creation dice.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// CreationDice returns the notation rolled once per attribute.
func (d Difficulty) CreationDice() string {
	switch d {
	case Easy:
		return "6d5"
	case Hard:
		return "4d5"
	default:
		return "5d5"
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "normal"
	}
}

// OwnedWeapon is a weapon in the character's possession. Damaged
// weapons deal half damage until repaired.
type OwnedWeapon struct {
	Weapon  data.Weapon `json:"weapon"`
	Damaged bool        `json:"damaged,omitempty"`
}

// OwnedArmor is an armor piece in the character's possession. Damaged
// armor contributes half its class until repaired.
type OwnedArmor struct {
	Armor   data.Armor `json:"armor"`
	Damaged bool       `json:"damaged,omitempty"`
}

// SideQuest is an accepted bounty on a wandering monster. Kills are
// turned in automatically.
type SideQuest struct {
	Monster    string `json:"monster"`
	Difficulty int    `json:"difficulty"`
	Reward     int    `json:"reward"`
}

// Character is the full player sheet. It is serialized wholesale into
// save snapshots, so every field that must survive a restart lives here.
type Character struct {
	Name       string         `json:"name"`
	Difficulty Difficulty     `json:"difficulty"`
	Attributes map[string]int `json:"attributes"`

	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	Gold  int `json:"gold"`
	XP    int `json:"xp"`
	Level int `json:"level"`

	Weapons        []OwnedWeapon `json:"weapons,omitempty"`
	EquippedWeapon int           `json:"equipped_weapon"` // index into Weapons, -1 unarmed
	Armors         []OwnedArmor  `json:"armors,omitempty"`
	EquippedArmor  int           `json:"equipped_armor"` // index into Armors, -1 unarmored

	PotionUses map[string]int   `json:"potion_uses,omitempty"`
	Spells     map[string]int   `json:"spells,omitempty"`
	MagicItems []data.MagicItem `json:"magic_items,omitempty"`

	Companion *Companion `json:"companion,omitempty"`

	Buffs   BuffSet   `json:"buffs"`
	Debuffs DebuffSet `json:"debuffs"`

	SideQuests []SideQuest     `json:"side_quests,omitempty"`
	TownFlags  map[string]bool `json:"town_flags,omitempty"`

	DeathCount   int `json:"death_count"`
	TrainedTimes int `json:"trained_times"`
}

// New builds a character from assigned attribute rolls: the creation
// flow rolls the difficulty dice once per attribute and the player
// decides where each roll lands. Hit points and starting gold derive
// from the finished sheet, with extra purse dice the weaker the body.
func New(roller *dice.Roller, name string, difficulty Difficulty, attrs map[string]int) *Character {
	c := &Character{
		Name:           name,
		Difficulty:     difficulty,
		Attributes:     make(map[string]int, len(AttributeNames)),
		Level:          1,
		EquippedWeapon: -1,
		EquippedArmor:  -1,
		PotionUses:     make(map[string]int),
		Spells:         make(map[string]int),
		TownFlags:      make(map[string]bool),
	}
	for _, attr := range AttributeNames {
		c.Attributes[attr] = attrs[attr]
	}

	c.MaxHP = 3*c.Attr("Constitution") + roller.Total("5d4")
	c.HP = c.MaxHP

	c.Gold = roller.Total("20d6")
	if cha := c.Attr("Charisma"); cha > 0 {
		c.Gold += roller.Total(fmt.Sprintf("%dd6", ceilDiv(cha*2, 3)))
	}
	switch {
	case c.MaxHP < 25:
		c.Gold += roller.Total("15d6")
	case c.MaxHP < 30:
		c.Gold += roller.Total("10d6")
	case c.MaxHP < 40:
		c.Gold += roller.Total("7d6")
	case c.MaxHP < 50:
		c.Gold += roller.Total("5d6")
	case c.MaxHP < 60:
		c.Gold += roller.Total("3d6")
	}
	return c
}

// Attr returns an attribute value, zero if unknown.
func (c *Character) Attr(name string) int {
	return c.Attributes[name]
}

// AdjustAttr shifts an attribute by delta, never below floor.
func (c *Character) AdjustAttr(name string, delta, floor int) {
	v := c.Attributes[name] + delta
	if v < floor {
		v = floor
	}
	c.Attributes[name] = v
}

// ArmorClass computes the current armor class: base 10, a constitution
// bonus, the equipped armor's contribution (halved while damaged), and
// the net of active buffs and debuffs.
func (c *Character) ArmorClass() int {
	ac := 10 + ceilHalf(c.Attr("Constitution"))
	if a, ok := c.EquippedArmorPiece(); ok {
		contrib := a.Armor.ArmorClass
		if a.Damaged {
			contrib /= 2
		}
		ac += contrib
	}
	ac += c.Buffs.Armor - c.Debuffs.Armor
	if ac < 1 {
		ac = 1
	}
	return ac
}

// EquippedWeaponItem returns the wielded weapon, if any.
func (c *Character) EquippedWeaponItem() (*OwnedWeapon, bool) {
	if c.EquippedWeapon < 0 || c.EquippedWeapon >= len(c.Weapons) {
		return nil, false
	}
	return &c.Weapons[c.EquippedWeapon], true
}

// EquippedArmorPiece returns the worn armor, if any.
func (c *Character) EquippedArmorPiece() (*OwnedArmor, bool) {
	if c.EquippedArmor < 0 || c.EquippedArmor >= len(c.Armors) {
		return nil, false
	}
	return &c.Armors[c.EquippedArmor], true
}

// DamageDie returns the active weapon's die and damaged state.
// An unarmed character punches for 1d2.
func (c *Character) DamageDie() (string, bool) {
	if w, ok := c.EquippedWeaponItem(); ok {
		return w.Weapon.DamageDie, w.Damaged
	}
	return "1d2", false
}

// IsDead reports whether hit points are exhausted.
func (c *Character) IsDead() bool { return c.HP <= 0 }

// TakeDamage subtracts hit points, never below zero.
func (c *Character) TakeDamage(amount int) {
	if amount < 0 {
		amount = 0
	}
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
}

// Heal restores hit points up to the maximum and returns the amount
// actually recovered.
func (c *Character) Heal(amount int) int {
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

// SpendGold deducts a price, refusing overdraw.
func (c *Character) SpendGold(price int) bool {
	if price > c.Gold {
		return false
	}
	c.Gold -= price
	return true
}

// TotalXPForLevel is the cumulative experience required to hold a level.
func TotalXPForLevel(level int) int {
	return 25 * level * (level - 1)
}

// GainXP adds experience and applies any level-ups, returning one
// message per event for the caller to display.
func (c *Character) GainXP(amount int) []string {
	c.XP += amount
	msgs := []string{fmt.Sprintf("You gain %d XP.", amount)}
	for c.XP >= TotalXPForLevel(c.Level+1) {
		c.Level++
		gain := ceilHalf(c.Attr("Constitution")) + 2
		c.MaxHP += gain
		c.HP += gain
		msgs = append(msgs, fmt.Sprintf("You reached level %d! Max HP +%d.", c.Level, gain))
	}
	return msgs
}

// AddPotion registers a purchased or found potion, stacking uses.
func (c *Character) AddPotion(p data.Potion) {
	if c.PotionUses == nil {
		c.PotionUses = make(map[string]int)
	}
	c.PotionUses[p.Name] += p.Uses
}

// AddSpell registers a scroll copy.
func (c *Character) AddSpell(s data.Spell) {
	if c.Spells == nil {
		c.Spells = make(map[string]int)
	}
	c.Spells[s.Name]++
}

// ConsumePotion removes one use, pruning exhausted entries.
func (c *Character) ConsumePotion(name string) bool {
	if c.PotionUses[name] <= 0 {
		return false
	}
	c.PotionUses[name]--
	if c.PotionUses[name] == 0 {
		delete(c.PotionUses, name)
	}
	return true
}

// ConsumeSpell removes one scroll copy.
func (c *Character) ConsumeSpell(name string) bool {
	if c.Spells[name] <= 0 {
		return false
	}
	c.Spells[name]--
	if c.Spells[name] == 0 {
		delete(c.Spells, name)
	}
	return true
}

// TownFlag reports a once-per-visit service flag.
func (c *Character) TownFlag(name string) bool { return c.TownFlags[name] }

// SetTownFlag marks a once-per-visit service as used.
func (c *Character) SetTownFlag(name string) {
	if c.TownFlags == nil {
		c.TownFlags = make(map[string]bool)
	}
	c.TownFlags[name] = true
}

// ResetTownFlags clears all once-per-visit service flags. Called on
// every town entry, whether from the main menu or up from the dungeon.
func (c *Character) ResetTownFlags() {
	c.TownFlags = make(map[string]bool)
}

func ceilHalf(n int) int {
	return int(math.Ceil(float64(n) / 2.0))
}

func ceilDiv(a, b int) int {
	return int(math.Ceil(float64(a) / float64(b)))
}
