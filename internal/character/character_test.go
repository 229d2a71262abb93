package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dice"
)

func flatRoller(face int) *dice.Roller {
	src := dice.NewMockSource()
	for i := 0; i < 200; i++ {
		src.Push(face)
	}
	return dice.New(src)
}

func TestNewDerivesSheetFromAssignments(t *testing.T) {
	attrs := map[string]int{}
	for _, name := range AttributeNames {
		attrs[name] = 15
	}
	c := New(flatRoller(3), "Aldric", Normal, attrs)

	require.Len(t, c.Attributes, len(AttributeNames))
	for _, name := range AttributeNames {
		assert.Equal(t, 15, c.Attr(name), name)
	}
	assert.Equal(t, 3*15+15, c.MaxHP) // 3*CON + 5d4 of threes
	assert.Equal(t, c.MaxHP, c.HP)
	assert.Equal(t, -1, c.EquippedWeapon)
	assert.Equal(t, -1, c.EquippedArmor)
	assert.Positive(t, c.Gold)
}

func TestTakeDamageClampsAtZero(t *testing.T) {
	c := &Character{HP: 5, MaxHP: 20}
	c.TakeDamage(3)
	assert.Equal(t, 2, c.HP)
	c.TakeDamage(50)
	assert.Equal(t, 0, c.HP)
	assert.True(t, c.IsDead())
}

func TestBuffChargesSpendOneAtATime(t *testing.T) {
	b := BuffSet{ExtraAttacks: 1, InvisibleCharges: 2}

	assert.True(t, b.SpendExtraAttack())
	assert.False(t, b.SpendExtraAttack())

	assert.True(t, b.ConsumeInvisibility())
	assert.True(t, b.ConsumeInvisibility())
	assert.False(t, b.ConsumeInvisibility())
	assert.False(t, b.Any())
}

func TestDifficultyChangesCreationDice(t *testing.T) {
	assert.Equal(t, "6d5", Easy.CreationDice())
	assert.Equal(t, "5d5", Normal.CreationDice())
	assert.Equal(t, "4d5", Hard.CreationDice())
}

func TestArmorClass(t *testing.T) {
	c := &Character{Attributes: map[string]int{"Constitution": 13}, EquippedWeapon: -1, EquippedArmor: -1}
	assert.Equal(t, 17, c.ArmorClass()) // 10 + ceil(13/2)

	c.AddArmor(data.Armor{Name: "Chain Shirt", ArmorClass: 3})
	assert.Equal(t, 20, c.ArmorClass())

	c.Armors[0].Damaged = true
	assert.Equal(t, 18, c.ArmorClass()) // damaged armor counts half, floored

	c.Buffs.Armor = 2
	c.Debuffs.Armor = 1
	assert.Equal(t, 19, c.ArmorClass())
}

func TestXPCurveAndLevelUp(t *testing.T) {
	assert.Equal(t, 0, TotalXPForLevel(1))
	assert.Equal(t, 100, TotalXPForLevel(2))
	assert.Equal(t, 300, TotalXPForLevel(3))

	c := &Character{Attributes: map[string]int{"Constitution": 10}, Level: 1, MaxHP: 30, HP: 30}
	msgs := c.GainXP(120)
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 37, c.MaxHP) // +ceil(10/2)+2
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1], "level 2")

	// 120 XP is short of level 3
	msgs = c.GainXP(10)
	assert.Equal(t, 2, c.Level)
	assert.Len(t, msgs, 1)
}

func TestEquipBookkeepingOnRemoval(t *testing.T) {
	c := &Character{EquippedWeapon: -1, EquippedArmor: -1}
	c.AddWeapon(data.Weapon{Name: "Dagger", DamageDie: "1d4"})
	c.AddWeapon(data.Weapon{Name: "Long Sword", DamageDie: "1d8"})
	c.EquippedWeapon = 1

	_, ok := c.RemoveWeapon(0)
	require.True(t, ok)
	assert.Equal(t, 0, c.EquippedWeapon)

	_, ok = c.RemoveWeapon(0)
	require.True(t, ok)
	assert.Equal(t, -1, c.EquippedWeapon)

	die, damaged := c.DamageDie()
	assert.Equal(t, "1d2", die) // unarmed
	assert.False(t, damaged)
}

func TestPotionAndSpellConsumption(t *testing.T) {
	c := &Character{}
	c.AddPotion(data.Potion{Name: "Healing", Uses: 2})
	c.AddSpell(data.Spell{Name: "Fireball"})

	assert.True(t, c.ConsumePotion("Healing"))
	assert.True(t, c.ConsumePotion("Healing"))
	assert.False(t, c.ConsumePotion("Healing"))
	_, listed := c.PotionUses["Healing"]
	assert.False(t, listed) // exhausted entries are pruned

	assert.True(t, c.ConsumeSpell("Fireball"))
	assert.False(t, c.ConsumeSpell("Fireball"))
}

func TestMagicItemEffectsReverse(t *testing.T) {
	c := &Character{Attributes: map[string]int{"Strength": 10, "Dexterity": 10}}

	c.AddMagicItem(data.MagicItem{Name: "Ring of Strength", Type: "ring", Effect: "Strength_bonus", Bonus: 2})
	assert.Equal(t, 12, c.Attr("Strength"))

	c.AddMagicItem(data.MagicItem{Name: "Cursed Band", Type: "ring", Effect: "Dexterity_penalty", Penalty: 2, Cursed: true})
	assert.Equal(t, 8, c.Attr("Dexterity"))
	assert.Equal(t, []int{1}, c.CursedItems())

	_, ok := c.RemoveMagicItem(1)
	require.True(t, ok)
	assert.Equal(t, 10, c.Attr("Dexterity"))
	assert.Empty(t, c.CursedItems())
}

func TestPenaltyFloorsAtOne(t *testing.T) {
	c := &Character{Attributes: map[string]int{"Wisdom": 2}}
	c.AddMagicItem(data.MagicItem{Name: "Whispering Idol", Type: "idol", Effect: "Wisdom_penalty", Penalty: 5, Cursed: true})
	assert.Equal(t, 1, c.Attr("Wisdom"))
}

func TestMagicWeaponJoinsArsenal(t *testing.T) {
	c := &Character{EquippedWeapon: -1, EquippedArmor: -1}
	c.AddMagicItem(data.MagicItem{Name: "Moonlit Blade", Type: "weapon", Effect: "weapon", DamageDie: "1d8+1"})

	assert.Empty(t, c.MagicItems)
	require.Len(t, c.Weapons, 1)
	assert.Equal(t, 0, c.EquippedWeapon)

	die, _ := c.DamageDie()
	assert.Equal(t, "1d8+1", die)
}

func TestSummonTiers(t *testing.T) {
	roller := flatRoller(1)

	// Adjusted roll 16 reaches the top tier.
	comp := Summon(roller, 16, 10, 10)
	require.NotNil(t, comp)
	assert.Equal(t, "4d6", comp.DamageDie)
	assert.GreaterOrEqual(t, comp.MaxHP, 50)

	// Raw 14 with INT 14 and CHA 14 is adjusted to 18.
	comp = Summon(flatRoller(1), 14, 14, 14)
	require.NotNil(t, comp)
	assert.Equal(t, "4d6", comp.DamageDie)

	// Adjusted 9 lands in the lowest tier.
	comp = Summon(flatRoller(1), 9, 10, 10)
	require.NotNil(t, comp)
	assert.Equal(t, "2d6", comp.DamageDie)

	// Below 8 nothing answers.
	assert.Nil(t, Summon(flatRoller(1), 7, 10, 10))
}

func TestTownFlagsResetOnEntry(t *testing.T) {
	c := &Character{}
	c.SetTownFlag("trained")
	c.SetTownFlag("gambled")
	assert.True(t, c.TownFlag("trained"))

	c.ResetTownFlags()
	assert.False(t, c.TownFlag("trained"))
	assert.False(t, c.TownFlag("gambled"))
}

func TestDebuffTicks(t *testing.T) {
	d := DebuffSet{PoisonTurns: 2, FrozenTurns: 1}

	assert.True(t, d.TickPoison())
	assert.True(t, d.TickPoison())
	assert.False(t, d.TickPoison())

	assert.True(t, d.TickFrozen())
	assert.False(t, d.TickFrozen())

	d.PoisonTurns = 3
	assert.True(t, d.CurePoison())
	assert.False(t, d.Poisoned())
}
