package engine

import (
	"fmt"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/parser"
)

const minBet = 5

// exactPayout is the multiplier for calling the exact face of a die.
func exactPayout(die int) int {
	switch die {
	case 20:
		return 11
	case 10:
		return 6
	default:
		return 3
	}
}

const rangePayout = 2

func (d *Dispatcher) showGambleMenu() {
	d.menu("Pick a die",
		MenuItem{ID: "die:6", Label: fmt.Sprintf("A six-sider (exact face pays x%d)", exactPayout(6))},
		MenuItem{ID: "die:10", Label: fmt.Sprintf("A ten-sider (exact face pays x%d)", exactPayout(10))},
		MenuItem{ID: "die:20", Label: fmt.Sprintf("The big twenty (exact x%d, range x%d)", exactPayout(20), rangePayout)},
		MenuItem{ID: "bet:back", Label: "Walk away"},
	)
}

func (d *Dispatcher) showBetMenu() {
	g := &d.state.Gamble
	d.menu(fmt.Sprintf("Current bet: %d gold on the d%d", g.Bet, g.Die),
		MenuItem{ID: "bet:+5", Label: "+5"},
		MenuItem{ID: "bet:+10", Label: "+10"},
		MenuItem{ID: "bet:+50", Label: "+50"},
		MenuItem{ID: "bet:+100", Label: "+100"},
		MenuItem{ID: "bet:ok", Label: "Roll it"},
		MenuItem{ID: "bet:back", Label: "Walk away"},
	)
}

func (d *Dispatcher) townGamble(act *parser.Action) error {
	c := d.state.Char
	g := &d.state.Gamble

	switch act.Head {
	case "gamble":
		if act.Len() == 1 && act.At(0) == "exact" {
			var items []MenuItem
			for face := 1; face <= g.Die; face++ {
				items = append(items, MenuItem{ID: fmt.Sprintf("guess:%d", face), Label: fmt.Sprintf("%d", face)})
			}
			d.menu("Call it", items...)
			return nil
		}
		*g = gambleState{}
		if line, ok := d.loader.NPCLine("gambler", "greet"); ok {
			d.say(line)
		}
		d.showGambleMenu()
		return nil

	case "die":
		n, ok := act.IntAt(0)
		if !ok || (n != 6 && n != 10 && n != 20) {
			return invalidAction(act)
		}
		g.Die = n
		g.Bet = minBet
		d.showBetMenu()
		return nil

	case "bet":
		switch act.At(0) {
		case "back":
			*g = gambleState{}
			d.showTownMenu()
			return nil
		case "ok":
			if g.Die == 0 {
				d.showGambleMenu()
				return nil
			}
			if c.Gold < g.Bet {
				d.say(fmt.Sprintf("You're short. The bet is %d and your purse holds %d.", g.Bet, c.Gold))
				d.showBetMenu()
				return nil
			}
			if g.Die == 20 {
				d.menu("Exact face, or a range?",
					MenuItem{ID: "gamble:exact", Label: "Call the exact face"},
					MenuItem{ID: "band:1", Label: "1-5"},
					MenuItem{ID: "band:2", Label: "6-10"},
					MenuItem{ID: "band:3", Label: "11-15"},
					MenuItem{ID: "band:4", Label: "16-20"},
				)
				return nil
			}
			var items []MenuItem
			for face := 1; face <= g.Die; face++ {
				items = append(items, MenuItem{ID: fmt.Sprintf("guess:%d", face), Label: fmt.Sprintf("%d", face)})
			}
			d.menu("Call it", items...)
			return nil
		}
		if raise, ok := act.IntAt(0); ok && raise > 0 {
			g.Bet += raise
			if g.Bet > c.Gold {
				g.Bet = c.Gold
				if g.Bet < minBet {
					g.Bet = minBet
				}
			}
			d.showBetMenu()
			return nil
		}
		return invalidAction(act)

	case "guess":
		guess, ok := act.IntAt(0)
		if !ok || guess < 1 || guess > g.Die {
			return fmt.Errorf("that's not a face on this die")
		}
		return d.resolveGamble(guess, 0)

	case "band":
		band, ok := act.IntAt(0)
		if !ok || band < 1 || band > 4 || g.Die != 20 {
			return invalidAction(act)
		}
		return d.resolveGamble(0, band)
	}
	return invalidAction(act)
}

// resolveGamble rolls the chosen die against an exact call or a d20
// range band, settles the stake, and reopens the table.
func (d *Dispatcher) resolveGamble(guess, band int) error {
	c := d.state.Char
	g := &d.state.Gamble
	if g.Die == 0 {
		return fmt.Errorf("no game in progress")
	}
	if !c.SpendGold(g.Bet) {
		d.say("Finch taps the table. \"Stake first.\"")
		d.showBetMenu()
		return nil
	}

	face := d.roller.Die(g.Die)
	won := false
	payout := 0
	if band > 0 {
		won = (face-1)/5+1 == band
		payout = g.Bet * rangePayout
		d.say(fmt.Sprintf("The d20 skitters... %d.", face))
	} else {
		won = face == guess
		payout = g.Bet * exactPayout(g.Die)
		d.say(fmt.Sprintf("The d%d skitters... %d.", g.Die, face))
	}

	if won {
		c.Gold += payout
		d.say(fmt.Sprintf("You win %d gold!", payout))
		if line, ok := d.loader.NPCLine("gambler", "win"); ok {
			d.say(line)
		}
	} else {
		d.say(fmt.Sprintf("Your %d gold slides across the table.", g.Bet))
		if line, ok := d.loader.NPCLine("gambler", "lose"); ok {
			d.say(line)
		}
	}
	d.stats()
	d.save()

	g.Bet = minBet
	d.showGambleMenu()
	return nil
}
