// Package dungeon generates labyrinth rooms: a monster is always
// present, loot and hazards are drawn from the catalog tables.
package dungeon

import (
	"math/rand"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dice"
)

// BossDepth is the level where the labyrinth's boss always waits.
const BossDepth = 5

// BossEncounter forces the boss after this many fights regardless of
// depth, so a cautious explorer cannot grind forever.
const BossEncounter = 50

const chestChance = 0.25
const chestItemChance = 0.5
const trapChance = 0.20

// Monster is the runtime copy of a catalog species, with mutable HP.
// SpellResistance is shaved off incoming spell damage.
type Monster struct {
	Name            string `json:"name"`
	HP              int    `json:"hp"`
	MaxHP           int    `json:"max_hp"`
	ArmorClass      int    `json:"armor_class"`
	Dexterity       int    `json:"dexterity"`
	Strength        int    `json:"strength"`
	DamageDie       string `json:"damage_die"`
	Difficulty      int    `json:"difficulty"`
	SpellResistance int    `json:"spell_resistance,omitempty"`
	Boss            bool   `json:"boss,omitempty"`
	XP              int    `json:"xp"`
	GoldMin         int    `json:"gold_min"`
	GoldMax         int    `json:"gold_max"`
	Description     string `json:"description,omitempty"`
}

// Alive reports whether the monster can still fight.
func (m *Monster) Alive() bool { return m != nil && m.HP > 0 }

// TakeDamage subtracts hit points, never below zero.
func (m *Monster) TakeDamage(amount int) {
	if amount < 0 {
		amount = 0
	}
	m.HP -= amount
	if m.HP < 0 {
		m.HP = 0
	}
}

// LootKind discriminates chest contents.
type LootKind string

const (
	LootWeapon    LootKind = "weapon"
	LootArmor     LootKind = "armor"
	LootPotion    LootKind = "potion"
	LootSpell     LootKind = "spell"
	LootMagicItem LootKind = "magic_item"
)

// Loot is one item drawn from the merged chest pool.
type Loot struct {
	Kind      LootKind
	Weapon    data.Weapon
	Armor     data.Armor
	Potion    data.Potion
	Spell     data.Spell
	MagicItem data.MagicItem
}

// Name returns the display name of whatever the loot is.
func (l *Loot) Name() string {
	switch l.Kind {
	case LootWeapon:
		return l.Weapon.Name
	case LootArmor:
		return l.Armor.Name
	case LootPotion:
		return l.Potion.Name + " Potion"
	case LootSpell:
		return "Scroll of " + l.Spell.Name
	case LootMagicItem:
		return l.MagicItem.Name
	}
	return ""
}

// Chest is an unopened container found in a room.
type Chest struct {
	Gold int
	Item *Loot
}

// Room is one generated encounter space. The monster is always
// present; chest and trap are optional.
type Room struct {
	ID      int // scene variant, 1..6
	Depth   int
	Monster *Monster
	Gold    int
	Chest   *Chest
	Trap    *data.Trap
}

// Generator draws rooms from the catalog. randFloat may be swapped for
// a deterministic source in tests.
type Generator struct {
	loader    *data.Loader
	roller    *dice.Roller
	randFloat func() float64
}

// NewGenerator wires a Generator.
func NewGenerator(loader *data.Loader, roller *dice.Roller, randFloat func() float64) *Generator {
	if randFloat == nil {
		randFloat = rand.Float64
	}
	return &Generator{loader: loader, roller: roller, randFloat: randFloat}
}

// Generate produces the next room. encounter is the running fight
// count for the character; at BossDepth or the BossEncounter-th fight
// the catalog's boss replaces the wandering draw.
func (g *Generator) Generate(depth, encounter int) Room {
	room := Room{
		ID:    g.roller.Die(6),
		Depth: depth,
		Gold:  4 + g.roller.Die(11) + depth*2, // 5..15 plus depth bonus
	}

	if depth >= BossDepth || encounter >= BossEncounter {
		if boss, ok := g.loader.Boss(); ok {
			room.Monster = instantiate(boss)
		}
	}
	if room.Monster == nil {
		room.Monster = instantiate(g.drawWanderer())
	}

	if g.randFloat() < chestChance {
		room.Chest = g.generateChest()
	}
	if g.randFloat() < trapChance {
		room.Trap = g.drawTrap()
	}
	return room
}

// drawWanderer picks a species weighted by wander chance. Zero-weight
// entries (the boss, scripted foes) never wander.
func (g *Generator) drawWanderer() data.Monster {
	monsters := g.loader.Monsters()
	total := 0.0
	for _, m := range monsters {
		if !m.Boss {
			total += m.WanderWeight
		}
	}
	pick := g.randFloat() * total
	for _, m := range monsters {
		if m.Boss || m.WanderWeight <= 0 {
			continue
		}
		pick -= m.WanderWeight
		if pick <= 0 {
			return m
		}
	}
	// Rounding fallthrough: last weighted entry.
	for i := len(monsters) - 1; i >= 0; i-- {
		if !monsters[i].Boss && monsters[i].WanderWeight > 0 {
			return monsters[i]
		}
	}
	return data.Monster{Name: "Giant Rat", HP: 6, ArmorClass: 11, Dexterity: 12, Strength: 7, DamageDie: "1d4", Difficulty: 1, XP: 15}
}

func instantiate(m data.Monster) *Monster {
	return &Monster{
		Name:            m.Name,
		HP:              m.HP,
		MaxHP:           m.HP,
		ArmorClass:      m.ArmorClass,
		Dexterity:       m.Dexterity,
		Strength:        m.Strength,
		DamageDie:       m.DamageDie,
		Difficulty:      m.Difficulty,
		SpellResistance: m.SpellResistance,
		Boss:            m.Boss,
		XP:              m.XP,
		GoldMin:         m.GoldMin,
		GoldMax:         m.GoldMax,
		Description:     m.Description,
	}
}

func (g *Generator) generateChest() *Chest {
	chest := &Chest{Gold: 10 + int(g.randFloat()*91)} // 10..100
	if g.randFloat() < chestItemChance {
		chest.Item = g.drawLoot()
	}
	return chest
}

type lootEntry struct {
	weight int
	loot   Loot
}

// drawLoot merges the chest-eligible pools: magic items, labyrinth
// weapons, armors and spells, and every potion. Catalog chance values
// act as weights; magic items default heavier.
func (g *Generator) drawLoot() *Loot {
	var pool []lootEntry

	for _, m := range g.loader.MagicItems() {
		w := m.Chance
		if w <= 0 {
			w = 3
		}
		pool = append(pool, lootEntry{weight: w, loot: Loot{Kind: LootMagicItem, MagicItem: m}})
	}
	for _, w := range g.loader.Weapons() {
		if w.Availability != "labyrinth" {
			continue
		}
		weight := w.Chance
		if weight <= 0 {
			weight = 1
		}
		pool = append(pool, lootEntry{weight: weight, loot: Loot{Kind: LootWeapon, Weapon: w}})
	}
	for _, a := range g.loader.Armors() {
		if a.Availability != "labyrinth" {
			continue
		}
		weight := a.Chance
		if weight <= 0 {
			weight = 1
		}
		pool = append(pool, lootEntry{weight: weight, loot: Loot{Kind: LootArmor, Armor: a}})
	}
	for _, s := range g.loader.Spells() {
		if s.Availability != "labyrinth" {
			continue
		}
		weight := s.Chance
		if weight <= 0 {
			weight = 1
		}
		pool = append(pool, lootEntry{weight: weight, loot: Loot{Kind: LootSpell, Spell: s}})
	}
	for _, p := range g.loader.Potions() {
		weight := p.Chance
		if weight <= 0 {
			weight = 1
		}
		pool = append(pool, lootEntry{weight: weight, loot: Loot{Kind: LootPotion, Potion: p}})
	}

	if len(pool) == 0 {
		return nil
	}
	total := 0
	for _, e := range pool {
		total += e.weight
	}
	pick := int(g.randFloat() * float64(total))
	for _, e := range pool {
		pick -= e.weight
		if pick < 0 {
			l := e.loot
			return &l
		}
	}
	l := pool[len(pool)-1].loot
	return &l
}

func (g *Generator) drawTrap() *data.Trap {
	traps := g.loader.Traps()
	if len(traps) == 0 {
		return nil
	}
	t := traps[int(g.randFloat()*float64(len(traps)))%len(traps)]
	return &t
}
