package data

// Built-in catalog defaults. Used whenever a table file is absent from
// every configured data directory, so a bare checkout still plays.

var defaultMonsters = []Monster{
	{Name: "Giant Rat", HP: 6, ArmorClass: 11, Dexterity: 12, Strength: 7, DamageDie: "1d4", WanderWeight: 0.22, Difficulty: 1, XP: 15, GoldMin: 3, GoldMax: 10, Description: "A mangy rodent the size of a dog, all teeth and hunger."},
	{Name: "Goblin", HP: 8, ArmorClass: 12, Dexterity: 12, Strength: 9, DamageDie: "1d6", WanderWeight: 0.20, Difficulty: 1, XP: 25, GoldMin: 5, GoldMax: 15, Description: "A wiry green creature clutching a rusted blade."},
	{Name: "Skeleton", HP: 10, ArmorClass: 12, Dexterity: 10, Strength: 10, DamageDie: "1d6", WanderWeight: 0.16, Difficulty: 2, XP: 35, GoldMin: 5, GoldMax: 20, Description: "Animated bones held together by old malice."},
	{Name: "Zombie", HP: 14, ArmorClass: 10, Dexterity: 7, Strength: 12, DamageDie: "1d6", WanderWeight: 0.14, Difficulty: 2, XP: 40, GoldMin: 5, GoldMax: 20, Description: "A shambling corpse that does not tire."},
	{Name: "Bandit", HP: 12, ArmorClass: 13, Dexterity: 12, Strength: 11, DamageDie: "1d8", WanderWeight: 0.12, Difficulty: 2, XP: 45, GoldMin: 10, GoldMax: 30, Description: "A desperate cutthroat who took the wrong turn underground."},
	{Name: "Orc", HP: 16, ArmorClass: 13, Dexterity: 11, Strength: 14, DamageDie: "1d8", WanderWeight: 0.08, Difficulty: 3, XP: 60, GoldMin: 10, GoldMax: 35, Description: "Broad-shouldered and scarred, it grins at the sight of you."},
	{Name: "Ogre", HP: 24, ArmorClass: 12, Dexterity: 8, Strength: 17, DamageDie: "2d6", WanderWeight: 0.05, Difficulty: 4, XP: 90, GoldMin: 15, GoldMax: 50, Description: "It fills the corridor. The club fills most of the rest."},
	{Name: "Wraith", HP: 20, ArmorClass: 14, Dexterity: 14, Strength: 12, DamageDie: "2d4", WanderWeight: 0.04, Difficulty: 4, XP: 100, GoldMin: 20, GoldMax: 60, Description: "Cold pours off a shape that is mostly absence."},
	{Name: "Evil Necromancer", HP: 28, ArmorClass: 14, Dexterity: 12, Strength: 11, DamageDie: "2d6", WanderWeight: 0, Difficulty: 5, XP: 150, GoldMin: 40, GoldMax: 90, Description: "Robes of grave-dust, eyes like dead lamps."},
	{Name: "Dragon", HP: 60, ArmorClass: 17, Dexterity: 12, Strength: 18, DamageDie: "3d6", WanderWeight: 0, Difficulty: 6, SpellResistance: 2, Boss: true, XP: 500, GoldMin: 100, GoldMax: 300, Description: "The labyrinth's heart. Scales like shields, breath like a furnace."},
}

var defaultWeapons = []Weapon{
	{Name: "Dagger", DamageDie: "1d4", Price: 10},
	{Name: "Short Sword", DamageDie: "1d6", Price: 25},
	{Name: "Mace", DamageDie: "1d6", Price: 30},
	{Name: "Long Sword", DamageDie: "1d8", Price: 50},
	{Name: "Battle Axe", DamageDie: "1d10", Price: 80},
	{Name: "War Hammer", DamageDie: "1d12", Price: 120},
	{Name: "Flaming Sword", DamageDie: "2d6", Availability: "labyrinth", Chance: 2},
	{Name: "Frost Blade", DamageDie: "2d6", Availability: "labyrinth", Chance: 2},
}

var defaultArmors = []Armor{
	{Name: "Padded Armor", ArmorClass: 1, Price: 15},
	{Name: "Leather Armor", ArmorClass: 2, Price: 40},
	{Name: "Chain Shirt", ArmorClass: 3, Price: 90},
	{Name: "Scale Mail", ArmorClass: 4, Price: 150},
	{Name: "Plate Armor", ArmorClass: 6, Price: 400},
	{Name: "Dragonhide Cuirass", ArmorClass: 5, Availability: "labyrinth", Chance: 1},
}

var defaultPotions = []Potion{
	{Name: "Healing", Effect: "healing", Price: 25, Uses: 3, Chance: 5},
	{Name: "Charisma", Effect: "charisma", Price: 30, Uses: 2, Chance: 2},
	{Name: "Intelligence", Effect: "intelligence", Price: 30, Uses: 2, Chance: 2},
	{Name: "Speed", Effect: "speed", Price: 40, Uses: 2, Chance: 2},
	{Name: "Strength", Effect: "strength", Price: 40, Uses: 2, Chance: 2},
	{Name: "Protection", Effect: "protection", Price: 35, Uses: 2, Chance: 2},
	{Name: "Invisibility", Effect: "invisibility", Price: 60, Uses: 1, Chance: 1},
	{Name: "Antidote", Effect: "antidote", Price: 20, Uses: 2, Chance: 3},
}

var defaultSpells = []Spell{
	{Name: "Magic Missile", Effect: "magic_missile", Price: 40, Chance: 3},
	{Name: "Heal", Effect: "heal", Price: 50, Chance: 3},
	{Name: "Weakness", Effect: "weakness", Price: 45, Chance: 2},
	{Name: "Slowness", Effect: "slowness", Price: 45, Chance: 2},
	{Name: "Vulnerability", Effect: "vulnerability", Price: 45, Chance: 2},
	{Name: "Freeze", Effect: "freeze", Price: 70, Chance: 2},
	{Name: "Lightning", Effect: "lightning", Price: 90, Chance: 1},
	{Name: "Fireball", Effect: "fireball", Price: 90, Chance: 1},
	{Name: "Summon Companion", Effect: "summon", Price: 120, Chance: 1},
	{Name: "Teleport", Effect: "teleport", Price: 60, Availability: "labyrinth", Chance: 1},
}

var defaultMagicItems = []MagicItem{
	{Name: "Ring of Strength", Type: "ring", Effect: "Strength_bonus", Bonus: 2, Chance: 3, Description: "A heavy iron band that makes your grip surer."},
	{Name: "Ring of Wisdom", Type: "ring", Effect: "Wisdom_bonus", Bonus: 2, Chance: 3, Description: "A pale ring that quiets the mind."},
	{Name: "Amulet of Vigor", Type: "amulet", Effect: "Constitution_bonus", Bonus: 2, Chance: 2, Description: "Warm to the touch, steady as a heartbeat."},
	{Name: "Lucky Charm", Type: "charm", Effect: "Charisma_bonus", Bonus: 1, Chance: 4, Description: "A rabbit's foot on a frayed cord."},
	{Name: "Cursed Band", Type: "ring", Effect: "Dexterity_penalty", Penalty: 2, Cursed: true, Chance: 2, Description: "It will not come off."},
	{Name: "Whispering Idol", Type: "idol", Effect: "Wisdom_penalty", Penalty: 1, Cursed: true, Chance: 2, Description: "It murmurs when you try to sleep."},
	{Name: "Moonlit Blade", Type: "weapon", Effect: "weapon", DamageDie: "1d8+1", Chance: 2, Description: "The edge glows faintly even in darkness."},
}

var defaultTraps = []Trap{
	{Name: "Dart Trap", DC: 12, Damage: "1d4"},
	{Name: "Spike Pit", DC: 13, Damage: "2d4"},
	{Name: "Poison Needle", DC: 13, Damage: "1d4", Effects: []TrapEffect{{Type: "poison", Duration: 3, Chance: 0.8}}},
	{Name: "Cursed Coffer", DC: 11, Damage: "0d0", Effects: []TrapEffect{{Type: "gold_dust", Amount: 50}}},
	{Name: "Numbing Mist", DC: 12, Damage: "0d0", Effects: []TrapEffect{{Type: "dex_down", Amount: 1, Chance: 0.5}}},
}

var defaultChecks = []Check{
	{Name: "town_service", Formula: "roll + ceil(double(stat) / 2.0) > 25"},
	{Name: "dungeon_sense", Formula: "roll + ceil(double(stat) / 2.0) > 25"},
	{Name: "revival_dc", Formula: "15 + 5 * deaths"},
	{Name: "charm_dc", Formula: "28 + ceil(1.5 * double(difficulty))"},
	{Name: "reward_mult", Formula: "1.0 + 0.5 * double(depth - 1)"},
	{Name: "run_dc", Formula: "15 + ceil(double(monster_dex) / 2.0)"},
}
