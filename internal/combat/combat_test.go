package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/character"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dice"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dungeon"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/rules"
)

func testResolver(t *testing.T, src *dice.MockSource, randFloat func() float64) *Resolver {
	t.Helper()
	loader := data.NewLoader(nil)
	roller := dice.New(src)
	reg, err := rules.NewRegistry(loader.Checks(), roller.Total)
	require.NoError(t, err)
	if randFloat == nil {
		randFloat = func() float64 { return 0.99 }
	}
	return NewResolver(roller, reg, loader, randFloat)
}

func queue(faces ...int) *dice.MockSource {
	src := dice.NewMockSource()
	for _, f := range faces {
		src.Push(f)
	}
	return src
}

func flat(face, n int) *dice.MockSource {
	src := dice.NewMockSource()
	for i := 0; i < n; i++ {
		src.Push(face)
	}
	return src
}

func testMonster() *dungeon.Monster {
	return &dungeon.Monster{
		Name: "Goblin", HP: 20, MaxHP: 20, ArmorClass: 12,
		Dexterity: 12, Strength: 9, DamageDie: "1d6", Difficulty: 1,
		XP: 25, GoldMin: 10, GoldMax: 10,
	}
}

func testCharacter() *character.Character {
	c := &character.Character{
		Name:       "Aldric",
		Attributes: map[string]int{"Strength": 12, "Dexterity": 12, "Constitution": 10, "Intelligence": 10, "Wisdom": 10, "Charisma": 10, "Luck": 10},
		HP:         40, MaxHP: 40, Level: 1,
		EquippedWeapon: -1, EquippedArmor: -1,
	}
	c.AddWeapon(data.Weapon{Name: "Long Sword", DamageDie: "1d8"})
	return c
}

func TestInitiativeTieGoesToPlayer(t *testing.T) {
	// Both sides roll all twos (10) and have DEX 12.
	r := testResolver(t, flat(2, 10), nil)
	c := testCharacter()
	st := NewState(testMonster())

	r.Initiative(c, st)
	assert.True(t, st.PlayerTurn)
}

func TestPlayerAttackHit(t *testing.T) {
	// Attack 5d4 of threes = 15, +STR 12 = 27 vs AC 12, then the
	// damage die 1d8 rolls 4.
	r := testResolver(t, queue(3, 3, 3, 3, 3, 4), nil)
	c := testCharacter()
	st := NewState(testMonster())
	st.AimZone = ZoneMiddle // guard draw with randFloat 0.99 is low

	out := r.PlayerAttack(c, st)
	require.True(t, out.Hit)
	assert.Equal(t, 10, out.Damage) // 4 + ceil(12/2)
	assert.Equal(t, 10, st.Monster.HP)
}

func TestStrengthCarriesAWeakRoll(t *testing.T) {
	// A raw 7 would bounce off AC 12, but 7 + STR 12 = 19 lands.
	r := testResolver(t, queue(1, 2, 1, 2, 1, 4), nil)
	c := testCharacter()
	st := NewState(testMonster())
	st.AimZone = ZoneMiddle

	out := r.PlayerAttack(c, st)
	require.True(t, out.Hit)
	assert.Equal(t, 10, st.Monster.HP)
}

func TestPlayerAttackMissesWithoutTheModifier(t *testing.T) {
	// 7 + STR 3 = 10 falls short of AC 12.
	r := testResolver(t, queue(1, 2, 1, 2, 1), nil)
	c := testCharacter()
	c.Attributes["Strength"] = 3
	st := NewState(testMonster())
	st.AimZone = ZoneMiddle

	out := r.PlayerAttack(c, st)
	assert.False(t, out.Hit)
	assert.Equal(t, 20, st.Monster.HP)
}

func TestPlayerAttackFumbleWoundsTheAttacker(t *testing.T) {
	// 5d4 of ones fumbles, then the 1d4 self-wound rolls 3.
	r := testResolver(t, queue(1, 1, 1, 1, 1, 3), nil)
	c := testCharacter()
	st := NewState(testMonster())

	out := r.PlayerAttack(c, st)
	assert.True(t, out.Fumble)
	assert.False(t, out.Hit)
	assert.Equal(t, 20, st.Monster.HP)
	assert.Equal(t, 37, c.HP)
}

func TestMonsterFumbleWoundsItself(t *testing.T) {
	// 5d4 of ones fumbles, then its own 1d6 rolls 4.
	r := testResolver(t, queue(1, 1, 1, 1, 1, 4), nil)
	c := testCharacter()
	st := NewState(testMonster())

	out := r.MonsterAttack(c, st)
	assert.True(t, out.Fumble)
	assert.Equal(t, 16, st.Monster.HP)
	assert.Equal(t, 40, c.HP)
}

func TestPlayerAttackBlockedByMatchingZone(t *testing.T) {
	// randFloat 0.2 draws the high guard and then spares the blade
	// (0.2 >= AC 12 x 0.001).
	r := testResolver(t, flat(3, 6), func() float64 { return 0.2 })
	c := testCharacter()
	st := NewState(testMonster())
	st.AimZone = ZoneHigh

	out := r.PlayerAttack(c, st)
	assert.True(t, out.Blocked)
	assert.False(t, out.Hit)
	assert.Equal(t, 20, st.Monster.HP)
	assert.False(t, c.Weapons[0].Damaged)
}

func TestBlockedStrikeCanStillChipTheWeapon(t *testing.T) {
	// randFloat 0 draws the high guard and then lands the wear roll.
	r := testResolver(t, flat(3, 6), func() float64 { return 0 })
	c := testCharacter()
	st := NewState(testMonster())
	st.AimZone = ZoneHigh

	out := r.PlayerAttack(c, st)
	require.True(t, out.Blocked)
	assert.True(t, c.Weapons[0].Damaged)
}

func TestCriticalBypassesBlockAndScales(t *testing.T) {
	// 5d4 of fours = 20 crit, damage die rolls 3.
	r := testResolver(t, queue(4, 4, 4, 4, 4, 3), func() float64 { return 0 })
	c := testCharacter()
	st := NewState(testMonster())
	st.AimZone = ZoneHigh // guard matches, but a crit cannot be blocked

	out := r.PlayerAttack(c, st)
	require.True(t, out.Crit)
	require.True(t, out.Hit)
	assert.Equal(t, 13, out.Damage) // floor((3+6) * 1.5)
}

func TestDamagedWeaponHalvesDamage(t *testing.T) {
	r := testResolver(t, queue(3, 3, 3, 3, 3, 8), nil)
	c := testCharacter()
	c.Weapons[0].Damaged = true
	st := NewState(testMonster())
	st.AimZone = ZoneMiddle

	out := r.PlayerAttack(c, st)
	require.True(t, out.Hit)
	assert.Equal(t, 10, out.Damage) // 8/2 + ceil(12/2)
}

func TestMonsterAttackBlocked(t *testing.T) {
	// 18 + STR 9/2 beats the player's AC 15 but lands on the guarded zone.
	r := testResolver(t, queue(4, 4, 4, 3, 3), func() float64 { return 0 }) // aim draw: high
	c := testCharacter()
	st := NewState(testMonster())
	st.GuardZone = ZoneHigh

	out := r.MonsterAttack(c, st)
	assert.True(t, out.Blocked)
	assert.Equal(t, 40, c.HP)
}

func TestBlockedBlowCanStillDentTheArmor(t *testing.T) {
	r := testResolver(t, queue(4, 4, 4, 3, 3), func() float64 { return 0 })
	c := testCharacter()
	c.AddArmor(data.Armor{Name: "Chain Shirt", ArmorClass: 3})
	st := NewState(testMonster())
	st.GuardZone = ZoneHigh

	out := r.MonsterAttack(c, st)
	require.True(t, out.Blocked)
	assert.Equal(t, 40, c.HP)
	assert.True(t, c.Armors[0].Damaged)
}

func TestMonsterAttackModifierVsArmorClass(t *testing.T) {
	// Raw 12 misses AC 15 even with STR 9/2 = 4: 16 lands. Drop the
	// monster's strength and the same roll glances off.
	weak := testMonster()
	weak.Strength = 2 // 12 + 1 = 13 vs AC 15
	r := testResolver(t, queue(3, 3, 2, 2, 2), nil)
	c := testCharacter()
	st := NewState(weak)

	out := r.MonsterAttack(c, st)
	assert.False(t, out.Hit)
	assert.Equal(t, 40, c.HP)
}

func TestInvisibilityAbsorbsOneBlow(t *testing.T) {
	r := testResolver(t, flat(4, 12), nil)
	c := testCharacter()
	c.Buffs.InvisibleCharges = 1
	st := NewState(testMonster())

	out := r.MonsterAttack(c, st)
	assert.False(t, out.Hit)
	assert.Equal(t, 40, c.HP)
	assert.Equal(t, 0, c.Buffs.InvisibleCharges)

	// The charge is spent; the next swing connects.
	out = r.MonsterAttack(c, st)
	assert.True(t, out.Hit)
	assert.Less(t, c.HP, 40)
}

func TestMonsterAttackNeverDropsHPBelowZero(t *testing.T) {
	r := testResolver(t, flat(4, 6), nil)
	c := testCharacter()
	c.HP = 1
	st := NewState(testMonster())

	out := r.MonsterAttack(c, st)
	require.True(t, out.Hit)
	assert.Equal(t, 0, c.HP)
	assert.True(t, c.IsDead())
}

func TestFrozenMonsterLosesRound(t *testing.T) {
	r := testResolver(t, flat(4, 6), nil)
	c := testCharacter()
	st := NewState(testMonster())
	st.MonsterDebuffs.FrozenTurns = 1

	out := r.MonsterAttack(c, st)
	assert.False(t, out.Hit)
	assert.Equal(t, 0, st.MonsterDebuffs.FrozenTurns)

	// Next round it thaws and fights: 5d4 of fours = crit.
	out = r.MonsterAttack(c, st)
	assert.True(t, out.Hit)
}

func TestCharmBossImmune(t *testing.T) {
	r := testResolver(t, flat(4, 10), nil)
	c := testCharacter()
	m := testMonster()
	m.Boss = true
	st := NewState(m)

	lines, ok := r.AttemptCharm(c, st)
	assert.False(t, ok)
	assert.NotEmpty(t, lines)
	assert.True(t, st.CharmUsed)
}

func TestCharmOncePerFight(t *testing.T) {
	// Roll 20 + CHA 10 + buff 2 = 32 > DC 30 (28 + ceil(1.5)).
	r := testResolver(t, flat(4, 10), nil)
	c := testCharacter()
	c.Buffs.Charm = 2
	st := NewState(testMonster())

	_, ok := r.AttemptCharm(c, st)
	require.True(t, ok)
	assert.True(t, st.CharmedAway)

	_, ok = r.AttemptCharm(c, st)
	assert.False(t, ok)
}

func TestCharmFailure(t *testing.T) {
	// Roll 10 + CHA 10 = 20 vs DC 30.
	r := testResolver(t, flat(2, 5), nil)
	c := testCharacter()
	st := NewState(testMonster())

	_, ok := r.AttemptCharm(c, st)
	assert.False(t, ok)
	assert.False(t, st.CharmedAway)
}

func TestRunCheck(t *testing.T) {
	// DC = 15 + ceil(12/2) = 21. Roll 20 + ceil(12/2) = 26 escapes.
	r := testResolver(t, flat(4, 5), nil)
	c := testCharacter()
	st := NewState(testMonster())

	_, ok := r.AttemptRun(c, st)
	assert.True(t, ok)

	// All ones: 5 + 6 = 11 fails.
	r = testResolver(t, flat(1, 5), nil)
	_, ok = r.AttemptRun(c, st)
	assert.False(t, ok)
}

func TestExamineRevealsOnGoodRoll(t *testing.T) {
	// 20 + WIS 10 = 30 > 25.
	r := testResolver(t, flat(4, 5), nil)
	c := testCharacter()
	st := NewState(testMonster())

	lines := r.Examine(c, st)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "AC 12")
	assert.True(t, st.ExamineUsed)
}

func TestExamineFailsOnBadRoll(t *testing.T) {
	// 5 + WIS 10 = 15, not over 25. The attempt is spent regardless.
	r := testResolver(t, flat(1, 5), nil)
	c := testCharacter()
	st := NewState(testMonster())

	lines := r.Examine(c, st)
	assert.Contains(t, lines[0], "learn nothing")
	assert.True(t, st.ExamineUsed)
}

func TestExamineOncePerFight(t *testing.T) {
	// A failed look still burns the fight's one attempt: the second
	// try consumes no dice.
	r := testResolver(t, flat(1, 5), nil)
	c := testCharacter()
	st := NewState(testMonster())

	r.Examine(c, st)
	lines := r.Examine(c, st)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "already taken")
}

func TestVictoryRewardsScaleWithDepth(t *testing.T) {
	c := testCharacter()
	st := NewState(testMonster())
	r := testResolver(t, flat(2, 5), nil) // drops miss at 0.99

	lines := r.VictoryRewards(c, st, 3, 1.0)
	assert.NotEmpty(t, lines)
	// depth 3 multiplier is 2.0: gold 10*2, XP 25*2.
	assert.Equal(t, 20, c.Gold)
	assert.Equal(t, 50, c.XP)
}

func TestCharmPaysQuarterRewards(t *testing.T) {
	c := testCharacter()
	st := NewState(testMonster())
	r := testResolver(t, flat(2, 5), nil)

	r.VictoryRewards(c, st, 1, CharmRewardShare)
	assert.Equal(t, 2, c.Gold) // 10 * 0.25
	assert.Equal(t, 6, c.XP)   // 25 * 0.25
}

func TestRevivalFirstDeath(t *testing.T) {
	// Roll 5 + WIS 10 = 15 meets DC 20? No: DC after first death is 20.
	// Use a roll of all twos: 10 + 10 = 20 meets DC exactly.
	r := testResolver(t, flat(2, 5), nil)
	c := testCharacter()
	c.HP = 0

	lines, ok := r.AttemptRevival(c)
	require.True(t, ok, "%v", lines)
	assert.Equal(t, 1, c.DeathCount)
	assert.Equal(t, 1, c.HP)
	assert.Equal(t, 11, c.Attr("Strength")) // every attribute pays one
	assert.Equal(t, 9, c.Attr("Wisdom"))
}

func TestRevivalFailureIsFinal(t *testing.T) {
	r := testResolver(t, flat(1, 5), nil)
	c := testCharacter()
	c.HP = 0
	c.DeathCount = 2 // third death: DC 30

	_, ok := r.AttemptRevival(c)
	assert.False(t, ok)
	assert.Equal(t, 3, c.DeathCount)
}

func TestRevivalAttributeFloor(t *testing.T) {
	r := testResolver(t, flat(4, 5), nil)
	c := testCharacter()
	c.Attributes["Luck"] = 3
	c.HP = 0

	_, ok := r.AttemptRevival(c)
	require.True(t, ok)
	assert.Equal(t, 3, c.Attr("Luck"))
}

func TestPoisonTick(t *testing.T) {
	r := testResolver(t, queue(3), nil)
	c := testCharacter()
	c.Debuffs.PoisonTurns = 1

	lines := r.TickPoison(c)
	require.Len(t, lines, 2) // damage plus the venom burning out
	assert.Equal(t, 37, c.HP)
	assert.False(t, c.Debuffs.Poisoned())

	assert.Nil(t, r.TickPoison(c))
}

func TestUsePotionHealing(t *testing.T) {
	// CON 10 buys five 2d2 draughts; all twos makes each worth 4.
	r := testResolver(t, flat(2, 10), nil)
	c := testCharacter()
	c.HP = 10
	c.AddPotion(data.Potion{Name: "Healing", Effect: "healing", Uses: 1})

	lines, ok := r.UsePotion(c, "Healing")
	require.True(t, ok, "%v", lines)
	assert.Equal(t, 30, c.HP)

	_, ok = r.UsePotion(c, "Healing")
	assert.False(t, ok)
}

func TestBuffPotionsGrantCharges(t *testing.T) {
	r := testResolver(t, flat(2, 5), nil)
	c := testCharacter()
	c.AddPotion(data.Potion{Name: "Speed", Effect: "speed", Uses: 1})
	c.AddPotion(data.Potion{Name: "Invisibility", Effect: "invisibility", Uses: 1})
	c.AddPotion(data.Potion{Name: "Intelligence", Effect: "intelligence", Uses: 1})

	_, ok := r.UsePotion(c, "Speed")
	require.True(t, ok)
	_, ok = r.UsePotion(c, "Invisibility")
	require.True(t, ok)
	_, ok = r.UsePotion(c, "Intelligence")
	require.True(t, ok)

	assert.Equal(t, 1, c.Buffs.ExtraAttacks)
	assert.Equal(t, 1, c.Buffs.InvisibleCharges)
	assert.Equal(t, 1, c.Buffs.Damage)
	assert.Equal(t, 10, c.Attr("Intelligence")) // the wits go to damage, not the sheet
}

func TestCastSpellRequiresTarget(t *testing.T) {
	r := testResolver(t, flat(2, 5), nil)
	c := testCharacter()
	c.AddSpell(data.Spell{Name: "Fireball", Effect: "fireball"})

	_, ok := r.CastSpell(c, nil, "Fireball", "")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Spells["Fireball"]) // not consumed

	st := NewState(testMonster())
	lines, ok := r.CastSpell(c, st, "Fireball", "")
	require.True(t, ok, "%v", lines)
	assert.Equal(t, 12, st.Monster.HP) // 4d6 of twos
}

func TestLightningFullAndHalf(t *testing.T) {
	r := testResolver(t, flat(2, 9), nil)
	c := testCharacter()
	c.AddSpell(data.Spell{Name: "Lightning", Effect: "lightning"})
	c.AddSpell(data.Spell{Name: "Lightning", Effect: "lightning"})
	st := NewState(testMonster())

	// The full bolt is 6d6; all twos lands 12.
	_, ok := r.CastSpell(c, st, "Lightning", "full")
	require.True(t, ok)
	assert.Equal(t, 8, st.Monster.HP)

	// The measured arc is 3d6 of twos, 6 more.
	_, ok = r.CastSpell(c, st, "Lightning", "half")
	require.True(t, ok)
	assert.Equal(t, 2, st.Monster.HP)
}

func TestMagicMissileBleedsOffResistance(t *testing.T) {
	r := testResolver(t, flat(2, 2), nil)
	c := testCharacter()
	c.AddSpell(data.Spell{Name: "Magic Missile", Effect: "magic_missile"})
	m := testMonster()
	m.SpellResistance = 3
	st := NewState(m)

	// 2d6 of twos is 4; resistance 3 leaves 1.
	lines, ok := r.CastSpell(c, st, "Magic Missile", "")
	require.True(t, ok, "%v", lines)
	assert.Equal(t, 19, st.Monster.HP)
}

func TestWardedHideSwallowsWeakSpells(t *testing.T) {
	r := testResolver(t, flat(1, 2), nil)
	c := testCharacter()
	c.AddSpell(data.Spell{Name: "Magic Missile", Effect: "magic_missile"})
	m := testMonster()
	m.SpellResistance = 3
	st := NewState(m)

	// 2d6 of ones is 2, fully resisted. The scroll is still spent.
	lines, ok := r.CastSpell(c, st, "Magic Missile", "")
	require.True(t, ok)
	assert.Contains(t, lines[0], "warded hide")
	assert.Equal(t, 20, st.Monster.HP)
	assert.Zero(t, c.Spells["Magic Missile"])
}

func TestHealScrollRestores(t *testing.T) {
	r := testResolver(t, flat(2, 8), nil)
	c := testCharacter()
	c.HP = 10
	c.AddSpell(data.Spell{Name: "Heal", Effect: "heal"})

	// 8d4 of twos is 16.
	_, ok := r.CastSpell(c, nil, "Heal", "")
	require.True(t, ok)
	assert.Equal(t, 26, c.HP)
}

func TestFreezeSpellLocksMonster(t *testing.T) {
	r := testResolver(t, flat(2, 5), nil)
	c := testCharacter()
	c.AddSpell(data.Spell{Name: "Freeze", Effect: "freeze"})
	st := NewState(testMonster())

	_, ok := r.CastSpell(c, st, "Freeze", "")
	require.True(t, ok)
	assert.Equal(t, 2, st.MonsterDebuffs.FrozenTurns)
}

func TestDivineAid(t *testing.T) {
	// Roll 20 + (10-10) = 20: heard, and >= 16 brings fire (4d6).
	r := testResolver(t, flat(4, 9), nil)
	c := testCharacter()
	st := NewState(testMonster())

	lines, ok := r.DivineAid(c, st)
	require.True(t, ok)
	assert.Contains(t, lines[0], "fire")
	assert.Equal(t, 20-16, st.Monster.HP)

	// All ones: 5 + 0 = 5, unheard.
	r = testResolver(t, flat(1, 5), nil)
	st = NewState(testMonster())
	_, ok = r.DivineAid(c, st)
	assert.False(t, ok)
	assert.Equal(t, 20, st.Monster.HP)
}
