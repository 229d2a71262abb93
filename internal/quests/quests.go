// Package quests manages the notice board bounties: short side quests
// on wandering monsters, turned in automatically when the mark dies.
package quests

import (
	"fmt"
	"math/rand"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/character"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
)

// MaxActive caps the number of bounties a character may hold.
const MaxActive = 3

// Manager generates and settles bounties against the monster catalog.
type Manager struct {
	loader    *data.Loader
	randFloat func() float64
}

// NewManager wires a Manager to the catalog. randFloat may be nil, in
// which case the default PRNG is used.
func NewManager(loader *data.Loader, randFloat func() float64) *Manager {
	if randFloat == nil {
		randFloat = rand.Float64
	}
	return &Manager{loader: loader, randFloat: randFloat}
}

// Reward computes a bounty's payout. Rarer marks pay more.
func Reward(m data.Monster) int {
	wander := m.WanderWeight
	if wander < 0.01 {
		wander = 0.01
	}
	return m.Difficulty*20 + int(1.0/wander)/2
}

// eligible lists catalog monsters common enough to be hunted, minus
// ones the character already has a bounty on.
func (mgr *Manager) eligible(c *character.Character) []data.Monster {
	taken := make(map[string]bool, len(c.SideQuests))
	for _, q := range c.SideQuests {
		taken[q.Monster] = true
	}
	var out []data.Monster
	for _, m := range mgr.loader.Monsters() {
		if m.WanderWeight > 0.02 && !taken[m.Name] {
			out = append(out, m)
		}
	}
	return out
}

// Offer draws one new bounty for the character, or false when the
// board is full or no distinct mark remains.
func (mgr *Manager) Offer(c *character.Character) (character.SideQuest, bool) {
	if len(c.SideQuests) >= MaxActive {
		return character.SideQuest{}, false
	}
	pool := mgr.eligible(c)
	if len(pool) == 0 {
		return character.SideQuest{}, false
	}
	m := pool[int(mgr.randFloat()*float64(len(pool)))%len(pool)]
	return character.SideQuest{
		Monster:    m.Name,
		Difficulty: m.Difficulty,
		Reward:     Reward(m),
	}, true
}

// Accept attaches an offered bounty to the character.
func (mgr *Manager) Accept(c *character.Character, q character.SideQuest) bool {
	if len(c.SideQuests) >= MaxActive {
		return false
	}
	for _, existing := range c.SideQuests {
		if existing.Monster == q.Monster {
			return false
		}
	}
	c.SideQuests = append(c.SideQuests, q)
	return true
}

// SettleKill turns in any bounty matching the slain monster. The gold
// is paid on the spot; the returned lines narrate the payout.
func (mgr *Manager) SettleKill(c *character.Character, monsterName string) []string {
	var lines []string
	kept := c.SideQuests[:0]
	for _, q := range c.SideQuests {
		if q.Monster == monsterName {
			c.Gold += q.Reward
			lines = append(lines, fmt.Sprintf("Bounty fulfilled: %s. You pocket %d gold.", q.Monster, q.Reward))
			continue
		}
		kept = append(kept, q)
	}
	c.SideQuests = kept
	return lines
}
