package data

// Monster is a catalog species entry. Stats are read directly by the
// room generator; there is no per-depth scaling in the current ruleset.
// SpellResistance is shaved off every offensive spell that hits the
// species.
type Monster struct {
	Name            string  `yaml:"name"`
	HP              int     `yaml:"base_hp"`
	ArmorClass      int     `yaml:"base_ac"`
	Dexterity       int     `yaml:"base_dex"`
	Strength        int     `yaml:"base_strength"`
	DamageDie       string  `yaml:"damage_die"`
	WanderWeight    float64 `yaml:"wander_chance"`
	Difficulty      int     `yaml:"difficulty"`
	SpellResistance int     `yaml:"spell_resistance,omitempty"`
	Boss            bool    `yaml:"boss,omitempty"`
	XP              int     `yaml:"xp"`
	GoldMin         int     `yaml:"gold_min"`
	GoldMax         int     `yaml:"gold_max"`
	Description     string  `yaml:"description,omitempty"`
}

// Weapon is a purchasable or lootable weapon entry.
type Weapon struct {
	Name         string `yaml:"name"`
	DamageDie    string `yaml:"damage_die"`
	Price        int    `yaml:"price"`
	Availability string `yaml:"availability,omitempty"` // "shop" (default) or "labyrinth"
	Chance       int    `yaml:"chance,omitempty"`
}

// Armor is a purchasable or lootable armor entry. ArmorClass is the
// flat contribution added on top of the base 10.
type Armor struct {
	Name         string `yaml:"name"`
	ArmorClass   int    `yaml:"armor_class"`
	Price        int    `yaml:"price"`
	Availability string `yaml:"availability,omitempty"`
	Chance       int    `yaml:"chance,omitempty"`
}

// Potion is a consumable with a named combat/utility effect.
type Potion struct {
	Name   string `yaml:"name"`
	Effect string `yaml:"effect"`
	Price  int    `yaml:"price"`
	Uses   int    `yaml:"uses"`
	Chance int    `yaml:"chance,omitempty"`
}

// Spell is a castable scroll with a named effect.
type Spell struct {
	Name         string `yaml:"name"`
	Effect       string `yaml:"effect"`
	Price        int    `yaml:"price"`
	Availability string `yaml:"availability,omitempty"`
	Chance       int    `yaml:"chance,omitempty"`
}

// MagicItem is a blessed or cursed trinket found in chests.
type MagicItem struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Effect      string `yaml:"effect"`
	Bonus       int    `yaml:"bonus,omitempty"`
	Penalty     int    `yaml:"penalty,omitempty"`
	DamageDie   string `yaml:"damage_die,omitempty"`
	BonusDamage string `yaml:"bonus_damage,omitempty"`
	Cursed      bool   `yaml:"cursed,omitempty"`
	Description string `yaml:"description,omitempty"`
	Chance      int    `yaml:"chance,omitempty"`
}

// TrapEffect is a secondary consequence attached to a sprung trap.
type TrapEffect struct {
	Type     string  `yaml:"type"` // gold_dust, poison, dex_down
	Amount   int     `yaml:"amount,omitempty"`
	Duration int     `yaml:"duration,omitempty"`
	Chance   float64 `yaml:"chance,omitempty"`
}

// Trap is a room hazard resolved with a dodge check.
type Trap struct {
	Name    string       `yaml:"name"`
	DC      int          `yaml:"dc"`
	Damage  string       `yaml:"damage"`
	Effects []TrapEffect `yaml:"effects,omitempty"`
}

// Check is a named CEL formula overriding a built-in rule threshold.
type Check struct {
	Name    string `yaml:"name"`
	Formula string `yaml:"formula"`
}

// DialogueNode groups the flavor lines for one speaker or topic.
type DialogueNode struct {
	Name       string              `yaml:"name,omitempty"`
	Role       string              `yaml:"role,omitempty"`
	Dialogues  []string            `yaml:"dialogues,omitempty"`
	Conditions map[string][]string `yaml:"conditions,omitempty"`
}

// DialogueSet maps namespace -> key -> node.
type DialogueSet map[string]map[string]DialogueNode
