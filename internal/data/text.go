package data

import (
	"fmt"
	"math/rand"
)

// Dialogues returns the flavor text set, namespace -> key -> node.
func (l *Loader) Dialogues() DialogueSet {
	if !l.loaded["dialogues"] {
		var out DialogueSet
		if ok, err := l.load("dialogues.yaml", &out); ok && err == nil {
			l.dialogues = out
		} else {
			l.dialogues = defaultDialogues
		}
		l.loaded["dialogues"] = true
	}
	return l.dialogues
}

// Dialogue picks one random line for the namespace/key pair. The second
// return is false when the pair has no lines at all.
func (l *Loader) Dialogue(namespace, key string) (string, bool) {
	ns, ok := l.Dialogues()[namespace]
	if !ok {
		return "", false
	}
	node, ok := ns[key]
	if !ok || len(node.Dialogues) == 0 {
		return "", false
	}
	return node.Dialogues[rand.Intn(len(node.Dialogues))], true
}

// DialogueWhen picks a condition-specific line, falling back to the
// unconditional pool when the condition has no lines.
func (l *Loader) DialogueWhen(namespace, key, condition string) (string, bool) {
	ns, ok := l.Dialogues()[namespace]
	if ok {
		if node, ok := ns[key]; ok {
			if lines, ok := node.Conditions[condition]; ok && len(lines) > 0 {
				return lines[rand.Intn(len(lines))], true
			}
		}
	}
	return l.Dialogue(namespace, key)
}

// NPCLine returns a speaker-attributed line for a town NPC, formatted
// as `Name: "line"`. The NPC's display name comes from the node itself.
func (l *Loader) NPCLine(npc, key string) (string, bool) {
	ns, ok := l.Dialogues()["npc"]
	if !ok {
		return "", false
	}
	node, ok := ns[npc]
	if !ok {
		return "", false
	}
	var pool []string
	if lines, ok := node.Conditions[key]; ok {
		pool = lines
	} else if key == "" {
		pool = node.Dialogues
	}
	if len(pool) == 0 {
		return "", false
	}
	name := node.Name
	if name == "" {
		name = npc
	}
	return fmt.Sprintf("%s: %q", name, pool[rand.Intn(len(pool))]), true
}

var defaultDialogues = DialogueSet{
	"town": {
		"arrive": {Dialogues: []string{
			"The town gates creak open. Lanterns, noise, the smell of bread.",
			"You surface into daylight. The town carries on as if the labyrinth were a rumor.",
		}},
		"rest": {Dialogues: []string{
			"You sleep without dreams and wake whole.",
			"A bath, a meal, a bed. You almost forget the dark below.",
		}},
	},
	"dungeon": {
		"descend": {Dialogues: []string{
			"The stairs spiral down into cold, still air.",
			"Your torchlight shrinks to a coin of orange against the black.",
		}},
		"chest": {Dialogues: []string{
			"A chest squats in the corner, lid ajar just enough to tempt.",
			"Something glitters beneath a film of dust.",
		}},
	},
	"npc": {
		"shopkeeper": {
			Name:      "Maro the Shopkeeper",
			Dialogues: []string{"Coin first, stories later."},
			Conditions: map[string][]string{
				"greet":    {"Back again? The labyrinth hasn't eaten you yet, I see.", "Browse all you like. Steal and I feed you to the rats myself."},
				"sold":     {"Pleasure doing business.", "It'll find a better home. Probably."},
				"no_gold":  {"Your purse says no, friend.", "Come back when the coins outnumber the lint."},
				"farewell": {"Mind the third step down. Everyone forgets the third step."},
			},
		},
		"trainer": {
			Name:      "Sergeant Ilka",
			Dialogues: []string{"Again. Slower is smoother, smoother is faster."},
			Conditions: map[string][]string{
				"greet":   {"Shoulders back. The labyrinth punishes sloppy footwork.", "You want to live past depth three? Then train."},
				"done":    {"That's all your body will take today.", "Enough. Rest, or you'll tear something."},
				"no_gold": {"I don't train on credit."},
			},
		},
		"smith": {
			Name:      "Old Hesh",
			Dialogues: []string{"Steel remembers every fight. I make it forget."},
			Conditions: map[string][]string{
				"greet":    {"Let's see the damage, then.", "Dragon scorch? Ogre dents? I've hammered out worse."},
				"repaired": {"Good as the day it was forged. Better, maybe."},
				"nothing":  {"Nothing here needs my hammer. Lucky you."},
			},
		},
		"priest": {
			Name:      "Sister Veyra",
			Dialogues: []string{"The dark below is older than our prayers. Pray anyway."},
			Conditions: map[string][]string{
				"greet":    {"You carry something that does not belong to you. I can feel it.", "Welcome, wanderer. What burden shall we lift?"},
				"uncursed": {"It is done. The whispering will stop now."},
				"clean":    {"You carry no curse I can sense. Go in peace."},
			},
		},
		"gambler": {
			Name:      "Finch",
			Dialogues: []string{"The dice don't cheat. That's my job— kidding, kidding."},
			Conditions: map[string][]string{
				"greet": {"Feeling lucky, or just feeling rich?", "Pick a die, pick a number, pick your poison."},
				"win":   {"Ha! The bones love you tonight.", "Take it before I change my mind."},
				"lose":  {"Ooh. So close. Again?", "The house thanks you for your donation."},
			},
		},
	},
}
