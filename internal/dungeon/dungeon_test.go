package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/character"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dice"
)

func flatRoller(face int) *dice.Roller {
	src := dice.NewMockSource()
	for i := 0; i < 100; i++ {
		src.Push(face)
	}
	return dice.New(src)
}

func constFloat(v float64) func() float64 {
	return func() float64 { return v }
}

func TestRoomAlwaysHasMonster(t *testing.T) {
	g := NewGenerator(data.NewLoader(nil), flatRoller(2), constFloat(0.99))
	for depth := 1; depth <= 4; depth++ {
		room := g.Generate(depth, depth)
		require.NotNil(t, room.Monster, "depth %d", depth)
		assert.False(t, room.Monster.Boss)
		assert.True(t, room.Monster.Alive())
		assert.GreaterOrEqual(t, room.ID, 1)
		assert.LessOrEqual(t, room.ID, 6)
	}
}

func TestBossForcedAtBossDepth(t *testing.T) {
	g := NewGenerator(data.NewLoader(nil), flatRoller(2), constFloat(0.99))
	room := g.Generate(BossDepth, 3)
	require.NotNil(t, room.Monster)
	assert.True(t, room.Monster.Boss)
	assert.Equal(t, "Dragon", room.Monster.Name)
}

func TestBossForcedByEncounterCount(t *testing.T) {
	g := NewGenerator(data.NewLoader(nil), flatRoller(2), constFloat(0.99))
	room := g.Generate(1, BossEncounter)
	require.NotNil(t, room.Monster)
	assert.True(t, room.Monster.Boss)
}

func TestWandererDrawSkipsZeroWeight(t *testing.T) {
	g := NewGenerator(data.NewLoader(nil), flatRoller(2), constFloat(0.99))
	for i := 0; i < 200; i++ {
		room := g.Generate(1, 1)
		assert.NotEqual(t, "Evil Necromancer", room.Monster.Name)
		assert.NotEqual(t, "Dragon", room.Monster.Name)
	}
}

func TestRoomGoldScalesWithDepth(t *testing.T) {
	shallow := NewGenerator(data.NewLoader(nil), flatRoller(2), constFloat(0.99)).Generate(1, 1)
	deep := NewGenerator(data.NewLoader(nil), flatRoller(2), constFloat(0.99)).Generate(4, 1)
	assert.Equal(t, 6, deep.Gold-shallow.Gold)
}

func TestChestGeneration(t *testing.T) {
	// randFloat 0.1: chest spawns (< 0.25), item spawns (< 0.5),
	// weighted draws land on the first pool entry.
	g := NewGenerator(data.NewLoader(nil), flatRoller(2), constFloat(0.1))
	room := g.Generate(1, 1)

	require.NotNil(t, room.Chest)
	assert.GreaterOrEqual(t, room.Chest.Gold, 10)
	assert.LessOrEqual(t, room.Chest.Gold, 100)
	require.NotNil(t, room.Chest.Item)
	assert.NotEmpty(t, room.Chest.Item.Name())
}

func TestNoChestAboveThreshold(t *testing.T) {
	g := NewGenerator(data.NewLoader(nil), flatRoller(2), constFloat(0.3))
	room := g.Generate(1, 1)
	assert.Nil(t, room.Chest)
	assert.Nil(t, room.Trap)
}

func TestTrapDodge(t *testing.T) {
	c := &character.Character{
		Attributes: map[string]int{"Dexterity": 14},
		HP:         30, MaxHP: 30, Gold: 100,
	}
	trap := &data.Trap{Name: "Dart Trap", DC: 12, Damage: "1d4"}

	// 5d4 of fours = 20, +7 dodge beats DC 12.
	g := NewGenerator(data.NewLoader(nil), flatRoller(4), constFloat(0.99))
	lines := g.ResolveTrap(trap, c)
	assert.Equal(t, 30, c.HP)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "twist aside")
}

func TestTrapHitAppliesDamageAndEffects(t *testing.T) {
	c := &character.Character{
		Attributes: map[string]int{"Dexterity": 4},
		HP:         30, MaxHP: 30, Gold: 20,
	}
	trap := &data.Trap{
		Name: "Poison Needle", DC: 12, Damage: "1d4",
		Effects: []data.TrapEffect{
			{Type: "poison", Duration: 3, Chance: 0.8},
			{Type: "gold_dust", Amount: 50},
		},
	}

	// 5d4 of ones = 5, +2 dodge fails DC 12; damage die rolls 1.
	g := NewGenerator(data.NewLoader(nil), flatRoller(1), constFloat(0.0))
	g.ResolveTrap(trap, c)

	assert.Equal(t, 29, c.HP)
	assert.Equal(t, 3, c.Debuffs.PoisonTurns)
	assert.Equal(t, 0, c.Gold) // gold_dust clamps at the purse
}

func TestTrapDamageStopsAtZeroHP(t *testing.T) {
	c := &character.Character{
		Attributes: map[string]int{"Dexterity": 4},
		HP:         1, MaxHP: 30,
	}
	trap := &data.Trap{Name: "Pit of Spikes", DC: 12, Damage: "2d4"}

	// 5d4 of ones fails the dodge; the 2d4 of ones overshoots 1 HP.
	g := NewGenerator(data.NewLoader(nil), flatRoller(1), constFloat(0.99))
	g.ResolveTrap(trap, c)
	assert.Equal(t, 0, c.HP)
	assert.True(t, c.IsDead())
}
