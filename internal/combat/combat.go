// Package combat implements the turn-based fight loop: zone attacks,
// the 5d4 combat die, charms, spells, flight, and the fallout of
// victory and defeat. All randomness flows through the injected dice
// source and float source so every path is testable.
package combat

import (
	"fmt"
	"math/rand"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/character"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dice"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/dungeon"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/rules"
)

// CombatDie is the notation rolled for every attack, charm, flight and
// revival attempt. Its floor (all ones) is a fumble, its ceiling (all
// fours) a critical.
const CombatDie = "5d4"

const combatDieMin = 5
const combatDieMax = 20

// CharmRewardShare is the fraction of victory rewards paid when a
// monster is charmed away instead of slain.
const CharmRewardShare = 0.25

// Zone is a strike or guard height. Matching zones block the blow.
type Zone string

const (
	ZoneHigh   Zone = "high"
	ZoneMiddle Zone = "middle"
	ZoneLow    Zone = "low"
)

// Zones lists the three heights in menu order.
var Zones = []Zone{ZoneHigh, ZoneMiddle, ZoneLow}

// ParseZone maps an action segment onto a Zone.
func ParseZone(s string) (Zone, bool) {
	switch s {
	case "high", "h":
		return ZoneHigh, true
	case "middle", "mid", "m":
		return ZoneMiddle, true
	case "low", "l":
		return ZoneLow, true
	}
	return "", false
}

// State is one running fight. It lives only for the encounter; the
// durable consequences land on the character sheet.
type State struct {
	Monster        *dungeon.Monster
	MonsterDebuffs character.DebuffSet

	PlayerTurn  bool
	Round       int
	CharmUsed   bool
	ExamineUsed bool
	CharmedAway bool

	// Player-chosen zones for the coming exchange.
	AimZone   Zone
	GuardZone Zone
}

// NewState opens a fight against the given monster.
func NewState(m *dungeon.Monster) *State {
	return &State{Monster: m, AimZone: ZoneMiddle, GuardZone: ZoneMiddle}
}

// Resolver carries the shared machinery every combat action needs.
type Resolver struct {
	roller    *dice.Roller
	rules     *rules.Registry
	loader    *data.Loader
	randFloat func() float64
}

// NewResolver wires a Resolver. randFloat may be nil for the default
// PRNG.
func NewResolver(roller *dice.Roller, reg *rules.Registry, loader *data.Loader, randFloat func() float64) *Resolver {
	if randFloat == nil {
		randFloat = rand.Float64
	}
	return &Resolver{roller: roller, rules: reg, loader: loader, randFloat: randFloat}
}

// Initiative rolls the combat die plus dexterity for both sides. Ties
// go to the player.
func (r *Resolver) Initiative(c *character.Character, st *State) []string {
	playerRoll := r.roller.Total(CombatDie) + c.Attr("Dexterity")
	monsterRoll := r.roller.Total(CombatDie) + st.Monster.Dexterity
	st.PlayerTurn = playerRoll >= monsterRoll

	lines := []string{fmt.Sprintf("Initiative: you %d, %s %d.", playerRoll, st.Monster.Name, monsterRoll)}
	if st.PlayerTurn {
		lines = append(lines, "You move first.")
	} else {
		lines = append(lines, fmt.Sprintf("The %s moves first!", st.Monster.Name))
	}
	return lines
}

// randomZone picks a zone for the monster's aim or guard.
func (r *Resolver) randomZone() Zone {
	return Zones[int(r.randFloat()*3)%3]
}

func zoneNoun(z Zone) string {
	switch z {
	case ZoneHigh:
		return "high"
	case ZoneLow:
		return "low"
	}
	return "center"
}
