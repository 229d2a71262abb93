package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderFallsBackToDefaults(t *testing.T) {
	l := NewLoader([]string{t.TempDir()})

	assert.NotEmpty(t, l.Monsters())
	assert.NotEmpty(t, l.Weapons())
	assert.NotEmpty(t, l.Potions())

	boss, ok := l.Boss()
	require.True(t, ok)
	assert.Equal(t, "Dragon", boss.Name)
	assert.True(t, boss.Boss)
}

func TestLoaderDirectoryOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := `
- name: Cave Slug
  base_hp: 4
  base_ac: 8
  base_dex: 4
  base_strength: 5
  damage_die: 1d3
  wander_chance: 1.0
  difficulty: 1
  xp: 5
  gold_min: 0
  gold_max: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "monsters.yaml"), []byte(yaml), 0o644))

	l := NewLoader([]string{dir})
	monsters := l.Monsters()
	require.Len(t, monsters, 1)
	assert.Equal(t, "Cave Slug", monsters[0].Name)
	assert.Equal(t, "1d3", monsters[0].DamageDie)

	_, ok := l.MonsterByName("Goblin")
	assert.False(t, ok)
}

func TestLoaderFallbackHierarchy(t *testing.T) {
	primary := t.TempDir()
	secondary := t.TempDir()
	yaml := `
- name: Rusty Pike
  damage_die: 1d6
  price: 12
`
	require.NoError(t, os.WriteFile(filepath.Join(secondary, "weapons.yaml"), []byte(yaml), 0o644))

	l := NewLoader([]string{primary, secondary})
	weapons := l.Weapons()
	require.Len(t, weapons, 1)
	assert.Equal(t, "Rusty Pike", weapons[0].Name)
}

func TestChecksMergeOverDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `
- name: charm_dc
  formula: "10"
- name: custom_check
  formula: "roll > 1"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "checks.yaml"), []byte(yaml), 0o644))

	l := NewLoader([]string{dir})
	byName := map[string]string{}
	for _, c := range l.Checks() {
		byName[c.Name] = c.Formula
	}

	assert.Equal(t, "10", byName["charm_dc"])
	assert.Equal(t, "roll > 1", byName["custom_check"])
	assert.Contains(t, byName, "run_dc")
	assert.Contains(t, byName, "revival_dc")
}

func TestDialogueLookup(t *testing.T) {
	l := NewLoader(nil)

	line, ok := l.Dialogue("town", "arrive")
	require.True(t, ok)
	assert.NotEmpty(t, line)

	_, ok = l.Dialogue("town", "no_such_key")
	assert.False(t, ok)

	npcLine, ok := l.NPCLine("shopkeeper", "greet")
	require.True(t, ok)
	assert.Contains(t, npcLine, "Maro the Shopkeeper")
}

func TestMagicItemDefaultsIncludeCurse(t *testing.T) {
	l := NewLoader(nil)
	cursed := 0
	for _, m := range l.MagicItems() {
		if m.Cursed {
			cursed++
		}
	}
	assert.Greater(t, cursed, 0)
}
