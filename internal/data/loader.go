package data

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader handles reading and instantiating records from the read-only
// data layer. Each table is a single YAML list file resolved through an
// ordered data directory fallback hierarchy; missing tables fall back to
// the built-in defaults so catalog gaps are never fatal.
type Loader struct {
	dataDirs []string

	monsters   []Monster
	weapons    []Weapon
	armors     []Armor
	potions    []Potion
	spells     []Spell
	magicItems []MagicItem
	traps      []Trap
	checks     []Check
	dialogues  DialogueSet
	npcNames   map[string]string
	loaded     map[string]bool
}

// NewLoader initializes a Loader with the given fallback hierarchy.
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
		loaded:   make(map[string]bool),
	}
}

// load decodes the first matching file across the data directories.
// A false return means no directory carries the file.
func (l *Loader) load(ref string, target interface{}) (bool, error) {
	for _, dir := range l.dataDirs {
		path := filepath.Join(dir, ref)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(target); err != nil {
			return false, fmt.Errorf("failed to decode yaml reference %s: %w", ref, err)
		}
		return true, nil
	}
	return false, nil
}

// Monsters returns the species table.
func (l *Loader) Monsters() []Monster {
	if !l.loaded["monsters"] {
		var out []Monster
		if ok, err := l.load("monsters.yaml", &out); ok && err == nil {
			l.monsters = out
		} else {
			l.monsters = defaultMonsters
		}
		l.loaded["monsters"] = true
	}
	return l.monsters
}

// MonsterByName finds one species entry, case-sensitively.
func (l *Loader) MonsterByName(name string) (Monster, bool) {
	for _, m := range l.Monsters() {
		if m.Name == name {
			return m, true
		}
	}
	return Monster{}, false
}

// Boss returns the catalog's boss entry.
func (l *Loader) Boss() (Monster, bool) {
	for _, m := range l.Monsters() {
		if m.Boss {
			return m, true
		}
	}
	return Monster{}, false
}

// Weapons returns the weapon table.
func (l *Loader) Weapons() []Weapon {
	if !l.loaded["weapons"] {
		var out []Weapon
		if ok, err := l.load("weapons.yaml", &out); ok && err == nil {
			l.weapons = out
		} else {
			l.weapons = defaultWeapons
		}
		l.loaded["weapons"] = true
	}
	return l.weapons
}

// Armors returns the armor table.
func (l *Loader) Armors() []Armor {
	if !l.loaded["armors"] {
		var out []Armor
		if ok, err := l.load("armors.yaml", &out); ok && err == nil {
			l.armors = out
		} else {
			l.armors = defaultArmors
		}
		l.loaded["armors"] = true
	}
	return l.armors
}

// Potions returns the potion table.
func (l *Loader) Potions() []Potion {
	if !l.loaded["potions"] {
		var out []Potion
		if ok, err := l.load("potions.yaml", &out); ok && err == nil {
			l.potions = out
		} else {
			l.potions = defaultPotions
		}
		l.loaded["potions"] = true
	}
	return l.potions
}

// PotionByName finds one potion entry.
func (l *Loader) PotionByName(name string) (Potion, bool) {
	for _, p := range l.Potions() {
		if p.Name == name {
			return p, true
		}
	}
	return Potion{}, false
}

// Spells returns the spell table.
func (l *Loader) Spells() []Spell {
	if !l.loaded["spells"] {
		var out []Spell
		if ok, err := l.load("spells.yaml", &out); ok && err == nil {
			l.spells = out
		} else {
			l.spells = defaultSpells
		}
		l.loaded["spells"] = true
	}
	return l.spells
}

// SpellByName finds one spell entry.
func (l *Loader) SpellByName(name string) (Spell, bool) {
	for _, s := range l.Spells() {
		if s.Name == name {
			return s, true
		}
	}
	return Spell{}, false
}

// MagicItems returns the magic item table.
func (l *Loader) MagicItems() []MagicItem {
	if !l.loaded["magic_items"] {
		var out []MagicItem
		if ok, err := l.load("magic_items.yaml", &out); ok && err == nil {
			l.magicItems = out
		} else {
			l.magicItems = defaultMagicItems
		}
		l.loaded["magic_items"] = true
	}
	return l.magicItems
}

// MagicItemByName finds one magic item entry.
func (l *Loader) MagicItemByName(name string) (MagicItem, bool) {
	for _, m := range l.MagicItems() {
		if m.Name == name {
			return m, true
		}
	}
	return MagicItem{}, false
}

// Traps returns the trap table.
func (l *Loader) Traps() []Trap {
	if !l.loaded["traps"] {
		var out []Trap
		if ok, err := l.load("traps.yaml", &out); ok && err == nil {
			l.traps = out
		} else {
			l.traps = defaultTraps
		}
		l.loaded["traps"] = true
	}
	return l.traps
}

// Checks returns the named rule formulas, catalog overrides layered
// over the built-in defaults.
func (l *Loader) Checks() []Check {
	if !l.loaded["checks"] {
		merged := make([]Check, len(defaultChecks))
		copy(merged, defaultChecks)

		var out []Check
		if ok, err := l.load("checks.yaml", &out); ok && err == nil {
			for _, override := range out {
				replaced := false
				for i := range merged {
					if merged[i].Name == override.Name {
						merged[i] = override
						replaced = true
						break
					}
				}
				if !replaced {
					merged = append(merged, override)
				}
			}
		}
		l.checks = merged
		l.loaded["checks"] = true
	}
	return l.checks
}
