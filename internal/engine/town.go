package engine

import (
	"fmt"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/character"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/parser"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/quests"
)

const (
	restPrice   = 10
	repairPrice = 30
	ritualPrice = 75
	trainBase   = 50
	maxTraining = 7
)

func (d *Dispatcher) showTownMenu() {
	c := d.state.Char
	items := []MenuItem{
		{ID: "dng", Label: "Descend into the labyrinth"},
		{ID: "shop", Label: "Visit Maro's shop"},
		{ID: "inv", Label: "Open your pack"},
		{ID: "rest", Label: fmt.Sprintf("Rest at the inn (%d gold)", restPrice)},
		{ID: "train", Label: "Train with Sergeant Ilka"},
		{ID: "smith", Label: "See Old Hesh the weaponsmith"},
		{ID: "gamble", Label: "Gamble at Finch's table"},
		{ID: "temple", Label: "Enter the temple"},
		{ID: "board", Label: "Read the notice board"},
		{ID: "busk", Label: "Perform in the square"},
	}
	if c.Companion != nil {
		items = append(items, MenuItem{ID: "comp", Label: fmt.Sprintf("Tend to your %s", c.Companion.Name)})
	}
	items = append(items,
		MenuItem{ID: "sheet", Label: "Check your character sheet"},
		MenuItem{ID: "menu", Label: "Save and return to the main menu"},
	)
	d.menu("The town square", items...)
}

func (d *Dispatcher) handleTown(act *parser.Action) error {
	switch act.Head {
	case "dng":
		d.enterDungeon()
		return nil
	case "shop":
		d.enterShop()
		return nil
	case "inv":
		d.enterInventory()
		return nil
	case "rest":
		d.townRest()
	case "train":
		return d.townTrain(act)
	case "smith":
		return d.townSmith(act)
	case "gamble", "die", "bet", "guess", "band":
		return d.townGamble(act)
	case "temple":
		return d.townTemple(act)
	case "board":
		return d.townBoard(act)
	case "busk":
		d.townBusk()
	case "comp":
		return d.townCompanion(act)
	case "sheet":
		d.townSheet()
	case "menu":
		d.save()
		d.showMainMenu()
		return nil
	default:
		return invalidAction(act)
	}
	d.showTownMenu()
	return nil
}

func (d *Dispatcher) townRest() {
	c := d.state.Char
	if c.TownFlag("rested") {
		d.say("The innkeeper shakes her head. \"One bed a day, same as everyone.\"")
		return
	}
	if !c.SpendGold(restPrice) {
		d.say("You can't afford a bed tonight.")
		return
	}
	c.SetTownFlag("rested")
	c.HP = c.MaxHP
	c.Debuffs.Clear()
	if line, ok := d.loader.Dialogue("town", "rest"); ok {
		d.say(line)
	}
	d.say(fmt.Sprintf("You wake fully restored. (%d/%d HP)", c.HP, c.MaxHP))
	d.stats()
	d.save()
}

func (d *Dispatcher) townTrain(act *parser.Action) error {
	c := d.state.Char
	if c.TrainedTimes >= maxTraining {
		d.say("Ilka looks you over. \"I've taught you everything drills can teach.\"")
		return nil
	}
	cost := trainBase * (c.TrainedTimes + 1)

	if act.Len() == 0 {
		if line, ok := d.loader.NPCLine("trainer", "greet"); ok {
			d.say(line)
		}
		var items []MenuItem
		for _, attr := range character.AttributeNames {
			items = append(items, MenuItem{
				ID:    "train:" + attr,
				Label: fmt.Sprintf("%s (%d) - %d gold", attr, c.Attr(attr), cost),
			})
		}
		items = append(items, MenuItem{ID: "train:back", Label: "Not today"})
		d.menu(fmt.Sprintf("Training session %d of %d", c.TrainedTimes+1, maxTraining), items...)
		return nil
	}

	attr := act.At(0)
	if attr == "back" {
		return nil
	}
	valid := false
	for _, a := range character.AttributeNames {
		if a == attr {
			valid = true
			break
		}
	}
	if !valid {
		return invalidAction(act)
	}
	if !c.SpendGold(cost) {
		if line, ok := d.loader.NPCLine("trainer", "no_gold"); ok {
			d.say(line)
		}
		return nil
	}

	c.TrainedTimes++
	c.AdjustAttr(attr, 1, 1)
	d.say(fmt.Sprintf("A brutal day of drills. %s +1.", attr))
	if attr == "Constitution" {
		c.MaxHP += 5
		c.HP += 5
		d.say("Your endurance grows. Max HP +5.")
	}
	if c.TrainedTimes >= maxTraining {
		if line, ok := d.loader.NPCLine("trainer", "done"); ok {
			d.say(line)
		}
	}
	d.stats()
	d.save()
	return nil
}

func (d *Dispatcher) townSmith(act *parser.Action) error {
	c := d.state.Char

	type job struct {
		id    string
		label string
	}
	var jobs []job
	for i, w := range c.Weapons {
		if w.Damaged {
			jobs = append(jobs, job{id: fmt.Sprintf("smith:w:%d", i), label: w.Weapon.Name})
		}
	}
	for i, a := range c.Armors {
		if a.Damaged {
			jobs = append(jobs, job{id: fmt.Sprintf("smith:a:%d", i), label: a.Armor.Name})
		}
	}

	if act.Len() == 0 {
		if len(jobs) == 0 {
			if line, ok := d.loader.NPCLine("smith", "nothing"); ok {
				d.say(line)
			}
			return nil
		}
		if line, ok := d.loader.NPCLine("smith", "greet"); ok {
			d.say(line)
		}
		var items []MenuItem
		for _, j := range jobs {
			items = append(items, MenuItem{ID: j.id, Label: fmt.Sprintf("Repair %s - %d gold", j.label, repairPrice)})
		}
		items = append(items, MenuItem{ID: "smith:back", Label: "Leave the forge"})
		d.menu("The forge", items...)
		return nil
	}

	if act.At(0) == "back" {
		return nil
	}
	idx, ok := act.IntAt(1)
	if !ok {
		return fmt.Errorf("malformed smith action %q", act.String())
	}
	if !c.SpendGold(repairPrice) {
		d.say("Hesh shrugs. \"No coin, no hammer.\"")
		return nil
	}
	switch act.At(0) {
	case "w":
		if idx < 0 || idx >= len(c.Weapons) || !c.Weapons[idx].Damaged {
			return fmt.Errorf("nothing to repair there")
		}
		c.Weapons[idx].Damaged = false
		d.say(fmt.Sprintf("Sparks fly. Your %s is whole again.", c.Weapons[idx].Weapon.Name))
	case "a":
		if idx < 0 || idx >= len(c.Armors) || !c.Armors[idx].Damaged {
			return fmt.Errorf("nothing to repair there")
		}
		c.Armors[idx].Damaged = false
		d.say(fmt.Sprintf("Hammered true. Your %s is whole again.", c.Armors[idx].Armor.Name))
	default:
		return fmt.Errorf("malformed smith action %q", act.String())
	}
	if line, ok := d.loader.NPCLine("smith", "repaired"); ok {
		d.say(line)
	}
	d.stats()
	d.save()
	return nil
}

func (d *Dispatcher) townTemple(act *parser.Action) error {
	c := d.state.Char

	if act.Len() == 0 {
		if line, ok := d.loader.NPCLine("priest", "greet"); ok {
			d.say(line)
		}
		items := []MenuItem{{ID: "temple:pray", Label: "Kneel and pray"}}
		for _, i := range c.CursedItems() {
			items = append(items, MenuItem{
				ID:    fmt.Sprintf("temple:uncurse:%d", i),
				Label: fmt.Sprintf("Lift the curse on the %s - %d gold", c.MagicItems[i].Name, ritualPrice),
			})
		}
		items = append(items, MenuItem{ID: "temple:back", Label: "Step back outside"})
		d.menu("The temple", items...)
		return nil
	}

	switch act.At(0) {
	case "back":
		return nil
	case "pray":
		if c.TownFlag("prayed") {
			d.say("Sister Veyra smiles. \"The powers heard you the first time.\"")
			return nil
		}
		c.SetTownFlag("prayed")
		roll := d.roller.Total("5d4")
		heard, err := d.rules.EvalBool("town_service", map[string]any{"roll": roll, "stat": c.Attr("Wisdom")})
		if err != nil {
			return err
		}
		if !heard {
			d.say("You kneel in the candle smoke. The silence is just silence.")
			return nil
		}
		healed := c.Heal(d.roller.Total("2d8"))
		c.Debuffs.CurePoison()
		d.say(fmt.Sprintf("Warm light settles on your shoulders. You recover %d HP.", healed))
		d.stats()
		return nil
	case "uncurse":
		idx, ok := act.IntAt(1)
		if !ok {
			return fmt.Errorf("malformed temple action %q", act.String())
		}
		if idx < 0 || idx >= len(c.MagicItems) || !c.MagicItems[idx].Cursed {
			if line, ok := d.loader.NPCLine("priest", "clean"); ok {
				d.say(line)
			}
			return nil
		}
		if !c.SpendGold(ritualPrice) {
			d.say("\"The ritual has costs I cannot waive,\" the priestess says.")
			return nil
		}
		lines, _ := c.RemoveMagicItem(idx)
		d.say(lines...)
		if line, ok := d.loader.NPCLine("priest", "uncursed"); ok {
			d.say(line)
		}
		d.stats()
		d.save()
		return nil
	}
	return invalidAction(act)
}

func (d *Dispatcher) townBoard(act *parser.Action) error {
	c := d.state.Char

	if act.Len() == 0 {
		var lines []string
		if len(c.SideQuests) > 0 {
			lines = append(lines, "Your open bounties:")
			for _, q := range c.SideQuests {
				lines = append(lines, fmt.Sprintf("  %s - %d gold on its head", q.Monster, q.Reward))
			}
		}
		offer, ok := d.quests.Offer(c)
		if !ok {
			lines = append(lines, "Nothing new is posted.")
			d.say(lines...)
			return nil
		}
		d.state.Subphase = "board:" + offer.Monster
		lines = append(lines, fmt.Sprintf("A fresh notice: %s, %d gold reward.", offer.Monster, offer.Reward))
		d.say(lines...)
		d.menu("Take the contract?",
			MenuItem{ID: "board:accept", Label: "Tear it off the board"},
			MenuItem{ID: "board:pass", Label: "Leave it for someone braver"},
		)
		return nil
	}

	switch act.At(0) {
	case "accept":
		if len(d.state.Subphase) <= len("board:") {
			return fmt.Errorf("no contract on offer")
		}
		name := d.state.Subphase[len("board:"):]
		d.state.Subphase = ""
		m, ok := d.loader.MonsterByName(name)
		if !ok {
			return invalidAction(act)
		}
		q := character.SideQuest{Monster: m.Name, Difficulty: m.Difficulty, Reward: d.questReward(m.Name)}
		if !d.quests.Accept(c, q) {
			d.say("Your hands are full enough already.")
			return nil
		}
		d.say(fmt.Sprintf("Contract taken: bring down a %s.", q.Monster))
		d.save()
		return nil
	case "pass":
		d.state.Subphase = ""
		d.say("Someone else's problem, then.")
		return nil
	}
	return invalidAction(act)
}

func (d *Dispatcher) questReward(monsterName string) int {
	if m, ok := d.loader.MonsterByName(monsterName); ok {
		return quests.Reward(m)
	}
	return 0
}

func (d *Dispatcher) townBusk() {
	c := d.state.Char
	if c.TownFlag("busked") {
		d.say("The square has heard your act today. The hat stays empty.")
		return
	}
	c.SetTownFlag("busked")
	roll := d.roller.Total("5d4")
	won, err := d.rules.EvalBool("town_service", map[string]any{"roll": roll, "stat": c.Attr("Charisma")})
	if err != nil || !won {
		d.say("You sing. A dog howls along. Nobody pays for a duet.")
		return
	}
	earned := d.roller.Total("2d6") * 5
	c.Gold += earned
	d.say(fmt.Sprintf("The crowd loves you! %d gold rains into the hat.", earned))
	d.stats()
}

func (d *Dispatcher) townCompanion(act *parser.Action) error {
	c := d.state.Char
	if c.Companion == nil {
		d.say("You travel alone.")
		return nil
	}
	comp := c.Companion

	if act.Len() == 0 {
		d.say(fmt.Sprintf("%s - HP %d/%d, AC %d, STR %d.", comp.Name, comp.HP, comp.MaxHP, comp.ArmorClass, comp.Strength))
		d.menu("",
			MenuItem{ID: "comp:heal", Label: "Share a healing potion"},
			MenuItem{ID: "comp:dismiss", Label: "Release it back to the wild"},
			MenuItem{ID: "comp:back", Label: "Back"},
		)
		return nil
	}

	switch act.At(0) {
	case "heal":
		if comp.HP >= comp.MaxHP {
			d.say(fmt.Sprintf("Your %s is in fine shape.", comp.Name))
			return nil
		}
		if !c.ConsumePotion("Healing") {
			d.say("You have no healing potion to share.")
			return nil
		}
		healed := comp.Heal(d.roller.Total("2d4"))
		d.say(fmt.Sprintf("Your %s laps it up and recovers %d HP.", comp.Name, healed))
		d.save()
		return nil
	case "dismiss":
		d.say(fmt.Sprintf("Your %s looks back once, then is gone.", comp.Name))
		c.Companion = nil
		d.save()
		return nil
	case "back":
		return nil
	}
	return invalidAction(act)
}

func (d *Dispatcher) townSheet() {
	c := d.state.Char
	lines := []string{fmt.Sprintf("%s, level %d (%d XP, next at %d)", c.Name, c.Level, c.XP, character.TotalXPForLevel(c.Level+1))}
	for _, attr := range character.AttributeNames {
		lines = append(lines, fmt.Sprintf("  %-13s %d", attr, c.Attr(attr)))
	}
	lines = append(lines,
		fmt.Sprintf("  HP %d/%d, AC %d, %d gold", c.HP, c.MaxHP, c.ArmorClass(), c.Gold),
		fmt.Sprintf("  Deaths survived: %d", c.DeathCount),
	)
	if w, ok := c.EquippedWeaponItem(); ok {
		status := ""
		if w.Damaged {
			status = " (damaged)"
		}
		lines = append(lines, fmt.Sprintf("  Wielding: %s%s", w.Weapon.Name, status))
	}
	if a, ok := c.EquippedArmorPiece(); ok {
		status := ""
		if a.Damaged {
			status = " (damaged)"
		}
		lines = append(lines, fmt.Sprintf("  Wearing: %s%s", a.Armor.Name, status))
	}
	d.say(lines...)
}
