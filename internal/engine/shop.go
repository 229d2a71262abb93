package engine

import (
	"fmt"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/parser"
)

// Fallback values for items that never had a shop price.
const labyrinthWeaponValue = 80
const magicItemValue = 100

func (d *Dispatcher) enterShop() {
	d.setPhase(PhaseShop, "")
	if line, ok := d.loader.NPCLine("shopkeeper", "greet"); ok {
		d.say(line)
	}
	d.showShopMenu()
}

func (d *Dispatcher) showShopMenu() {
	d.menu("Maro's shop",
		MenuItem{ID: "shop:buy:w", Label: "Browse weapons"},
		MenuItem{ID: "shop:buy:a", Label: "Browse armor"},
		MenuItem{ID: "shop:buy:p", Label: "Browse potions"},
		MenuItem{ID: "shop:buy:s", Label: "Browse scrolls"},
		MenuItem{ID: "shop:sell", Label: "Sell from your pack"},
		MenuItem{ID: "shop:leave", Label: "Leave the shop"},
	)
}

// shopWeapons filters the catalog down to what Maro actually stocks.
func (d *Dispatcher) shopWeapons() []data.Weapon {
	var out []data.Weapon
	for _, w := range d.loader.Weapons() {
		if w.Availability != "labyrinth" {
			out = append(out, w)
		}
	}
	return out
}

func (d *Dispatcher) shopArmors() []data.Armor {
	var out []data.Armor
	for _, a := range d.loader.Armors() {
		if a.Availability != "labyrinth" {
			out = append(out, a)
		}
	}
	return out
}

func (d *Dispatcher) shopSpells() []data.Spell {
	var out []data.Spell
	for _, s := range d.loader.Spells() {
		if s.Availability != "labyrinth" {
			out = append(out, s)
		}
	}
	return out
}

func (d *Dispatcher) handleShop(act *parser.Action) error {
	if act.Head != "shop" {
		return invalidAction(act)
	}

	switch act.At(0) {
	case "leave":
		if line, ok := d.loader.NPCLine("shopkeeper", "farewell"); ok {
			d.say(line)
		}
		d.state.SellPending = nil
		d.setPhase(PhaseTown, "")
		d.showTownMenu()
		return nil
	case "buy":
		return d.shopBuy(act)
	case "sell":
		return d.shopSell(act)
	case "sellconfirm":
		return d.shopSellConfirm(act)
	case "":
		d.showShopMenu()
		return nil
	}
	return invalidAction(act)
}

func (d *Dispatcher) shopBuy(act *parser.Action) error {
	c := d.state.Char
	kind := act.At(1)

	if act.Len() == 2 {
		var items []MenuItem
		switch kind {
		case "w":
			for i, w := range d.shopWeapons() {
				items = append(items, MenuItem{ID: fmt.Sprintf("shop:buy:w:%d", i), Label: fmt.Sprintf("%s (%s) - %d gold", w.Name, w.DamageDie, w.Price)})
			}
		case "a":
			for i, a := range d.shopArmors() {
				items = append(items, MenuItem{ID: fmt.Sprintf("shop:buy:a:%d", i), Label: fmt.Sprintf("%s (AC +%d) - %d gold", a.Name, a.ArmorClass, a.Price)})
			}
		case "p":
			for i, p := range d.loader.Potions() {
				items = append(items, MenuItem{ID: fmt.Sprintf("shop:buy:p:%d", i), Label: fmt.Sprintf("%s potion (%d uses) - %d gold", p.Name, p.Uses, p.Price)})
			}
		case "s":
			for i, s := range d.shopSpells() {
				items = append(items, MenuItem{ID: fmt.Sprintf("shop:buy:s:%d", i), Label: fmt.Sprintf("Scroll of %s - %d gold", s.Name, s.Price)})
			}
		default:
			return invalidAction(act)
		}
		items = append(items, MenuItem{ID: "shop", Label: "Back"})
		d.menu(fmt.Sprintf("Your purse: %d gold", c.Gold), items...)
		return nil
	}

	idx, ok := act.IntAt(2)
	if !ok {
		return fmt.Errorf("malformed shop action %q", act.String())
	}

	var name string
	var price int
	var take func()
	switch kind {
	case "w":
		stock := d.shopWeapons()
		if idx < 0 || idx >= len(stock) {
			return invalidAction(act)
		}
		w := stock[idx]
		name, price, take = w.Name, w.Price, func() { c.AddWeapon(w) }
	case "a":
		stock := d.shopArmors()
		if idx < 0 || idx >= len(stock) {
			return invalidAction(act)
		}
		a := stock[idx]
		name, price, take = a.Name, a.Price, func() { c.AddArmor(a) }
	case "p":
		stock := d.loader.Potions()
		if idx < 0 || idx >= len(stock) {
			return invalidAction(act)
		}
		p := stock[idx]
		name, price, take = p.Name+" potion", p.Price, func() { c.AddPotion(p) }
	case "s":
		stock := d.shopSpells()
		if idx < 0 || idx >= len(stock) {
			return invalidAction(act)
		}
		s := stock[idx]
		name, price, take = "scroll of "+s.Name, s.Price, func() { c.AddSpell(s) }
	default:
		return invalidAction(act)
	}

	if !c.SpendGold(price) {
		if line, ok := d.loader.NPCLine("shopkeeper", "no_gold"); ok {
			d.say(line)
		}
		return nil
	}
	take()
	d.say(fmt.Sprintf("You buy the %s for %d gold.", name, price))
	d.stats()
	d.save()
	d.showShopMenu()
	return nil
}

// sellBase is an item's reference value before haggling.
func sellBase(price int, fallback int) int {
	if price > 0 {
		return price
	}
	return fallback
}

// haggle turns a base value into Maro's offer: half the sticker, a
// charisma swing, then a little daily variance.
func (d *Dispatcher) haggle(base int) int {
	offer := float64(base) * 0.5
	switch cha := d.state.Char.Attr("Charisma"); {
	case cha >= 15:
		offer *= 1.2
	case cha <= 6:
		offer *= 0.8
	}
	offer *= 0.9 + d.randFloat()*0.2
	if offer < 1 {
		offer = 1
	}
	return int(offer)
}

func (d *Dispatcher) shopSell(act *parser.Action) error {
	c := d.state.Char

	if act.Len() == 1 {
		var items []MenuItem
		for i, w := range c.Weapons {
			if i == c.EquippedWeapon {
				continue
			}
			label := w.Weapon.Name
			if w.Damaged {
				label += " (damaged)"
			}
			items = append(items, MenuItem{ID: fmt.Sprintf("shop:sell:w:%d", i), Label: label})
		}
		for i, a := range c.Armors {
			// Worn or battered armor stays with you.
			if i == c.EquippedArmor || a.Damaged {
				continue
			}
			items = append(items, MenuItem{ID: fmt.Sprintf("shop:sell:a:%d", i), Label: a.Armor.Name})
		}
		for i, m := range c.MagicItems {
			if m.Cursed {
				continue // Maro won't touch cursed goods
			}
			items = append(items, MenuItem{ID: fmt.Sprintf("shop:sell:i:%d", i), Label: m.Name})
		}
		if len(items) == 0 {
			d.say("\"Nothing in that pack I'd pay for,\" Maro says, not unkindly.")
			d.showShopMenu()
			return nil
		}
		items = append(items, MenuItem{ID: "shop", Label: "Back"})
		d.menu("What are you selling?", items...)
		return nil
	}

	kind := act.At(1)
	idx, ok := act.IntAt(2)
	if !ok {
		return fmt.Errorf("malformed shop action %q", act.String())
	}

	var offer int
	var name string
	switch kind {
	case "w":
		if idx < 0 || idx >= len(c.Weapons) || idx == c.EquippedWeapon {
			return invalidAction(act)
		}
		w := c.Weapons[idx]
		base := sellBase(w.Weapon.Price, labyrinthWeaponValue)
		if w.Damaged {
			base /= 2
		}
		offer, name = d.haggle(base), w.Weapon.Name
	case "a":
		if idx < 0 || idx >= len(c.Armors) || idx == c.EquippedArmor || c.Armors[idx].Damaged {
			return invalidAction(act)
		}
		a := c.Armors[idx]
		offer, name = d.haggle(sellBase(a.Armor.Price, labyrinthWeaponValue)), a.Armor.Name
	case "i":
		if idx < 0 || idx >= len(c.MagicItems) || c.MagicItems[idx].Cursed {
			return invalidAction(act)
		}
		offer, name = d.haggle(magicItemValue), c.MagicItems[idx].Name
	default:
		return invalidAction(act)
	}

	d.state.SellPending = &sellState{Kind: kind, Index: idx, Offer: offer}
	d.say(fmt.Sprintf("Maro turns the %s over. \"I'll give you %d gold.\"", name, offer))
	d.menu("Take the offer?",
		MenuItem{ID: "shop:sellconfirm:yes", Label: fmt.Sprintf("Sell for %d gold", offer)},
		MenuItem{ID: "shop:sellconfirm:no", Label: "Keep it"},
	)
	return nil
}

func (d *Dispatcher) shopSellConfirm(act *parser.Action) error {
	c := d.state.Char
	pending := d.state.SellPending
	d.state.SellPending = nil

	if pending == nil {
		return fmt.Errorf("no sale in progress")
	}
	if act.At(1) != "yes" {
		d.say("You tuck it back into your pack.")
		d.showShopMenu()
		return nil
	}

	switch pending.Kind {
	case "w":
		if _, ok := c.RemoveWeapon(pending.Index); !ok {
			return fmt.Errorf("item vanished mid-sale")
		}
	case "a":
		if _, ok := c.RemoveArmor(pending.Index); !ok {
			return fmt.Errorf("item vanished mid-sale")
		}
	case "i":
		if _, ok := c.RemoveMagicItem(pending.Index); !ok {
			return fmt.Errorf("item vanished mid-sale")
		}
	}
	c.Gold += pending.Offer
	if line, ok := d.loader.NPCLine("shopkeeper", "sold"); ok {
		d.say(line)
	}
	d.say(fmt.Sprintf("%d gold changes hands.", pending.Offer))
	d.stats()
	d.save()
	d.showShopMenu()
	return nil
}
