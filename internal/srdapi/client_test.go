package srdapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
)

func srdGoblin() *SRDMonster {
	return &SRDMonster{
		Name:      "Goblin",
		HitPoints: 7,
		ArmorClass: []struct {
			Value int `json:"value"`
		}{{Value: 15}},
		Strength:        8,
		Dexterity:       14,
		ChallengeRating: 0.25,
		XP:              50,
		Actions: []struct {
			Damage []struct {
				DamageDice string `json:"damage_dice"`
			} `json:"damage"`
		}{
			{Damage: []struct {
				DamageDice string `json:"damage_dice"`
			}{{DamageDice: "1d6"}}},
		},
	}
}

func TestConvertCarriesStatBlock(t *testing.T) {
	out := Convert(srdGoblin())

	assert.Equal(t, "Goblin", out.Name)
	assert.Equal(t, 7, out.HP)
	assert.Equal(t, 15, out.ArmorClass)
	assert.Equal(t, 8, out.Strength)
	assert.Equal(t, 14, out.Dexterity)
	assert.Equal(t, "1d6", out.DamageDie)
	assert.Equal(t, 50, out.XP)
}

func TestConvertChallengeDrivesDifficulty(t *testing.T) {
	m := srdGoblin()
	m.ChallengeRating = 0.25
	assert.Equal(t, 1, Convert(m).Difficulty)

	m.ChallengeRating = 3
	assert.Equal(t, 4, Convert(m).Difficulty)

	// Very high challenge is capped so the encounter tables stay sane.
	m.ChallengeRating = 17
	out := Convert(m)
	assert.Equal(t, 5, out.Difficulty)
	assert.Equal(t, 2+5*3, out.GoldMin)
	assert.Equal(t, 5+5*10, out.GoldMax)
}

func TestConvertRareMonstersWanderLess(t *testing.T) {
	weak := srdGoblin()
	weak.ChallengeRating = 0.25
	strong := srdGoblin()
	strong.ChallengeRating = 8

	assert.Greater(t, Convert(weak).WanderWeight, Convert(strong).WanderWeight)
}

func TestConvertMissingXPGetsFallback(t *testing.T) {
	m := srdGoblin()
	m.XP = 0
	out := Convert(m)
	assert.Equal(t, 10+out.Difficulty*15, out.XP)
}

func TestDamageDieFallsBackByChallenge(t *testing.T) {
	m := srdGoblin()
	m.Actions = nil

	m.ChallengeRating = 0.5
	assert.Equal(t, "1d6", damageDie(m))
	m.ChallengeRating = 1
	assert.Equal(t, "1d8", damageDie(m))
	m.ChallengeRating = 4
	assert.Equal(t, "2d6", damageDie(m))
}

func TestDamageDieSkipsInvalidNotation(t *testing.T) {
	m := srdGoblin()
	m.Actions[0].Damage[0].DamageDice = "varies"
	m.ChallengeRating = 1

	assert.Equal(t, "1d8", damageDie(m))
}

func TestDamageDieNormalizes(t *testing.T) {
	m := srdGoblin()
	m.Actions[0].Damage[0].DamageDice = "2D8 + 3"

	assert.Equal(t, "2d8+3", damageDie(m))
}

func TestSaveCatalogRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	monsters := []data.Monster{Convert(srdGoblin())}

	c := NewClient(dir, false)
	require.NoError(t, c.SaveCatalog(monsters))

	err := c.SaveCatalog(monsters)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	forced := NewClient(dir, true)
	require.NoError(t, forced.SaveCatalog(monsters))
}

func TestSaveCatalogRoundTrips(t *testing.T) {
	dir := t.TempDir()
	monsters := []data.Monster{Convert(srdGoblin())}

	c := NewClient(dir, false)
	require.NoError(t, c.SaveCatalog(monsters))

	raw, err := os.ReadFile(filepath.Join(dir, "monsters.yaml"))
	require.NoError(t, err)

	var loaded []data.Monster
	require.NoError(t, yaml.Unmarshal(raw, &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, "Goblin", loaded[0].Name)
	assert.Equal(t, 15, loaded[0].ArmorClass)
}
