package character

// BuffSet holds the positive combat modifiers active on the character.
// Flat bonuses last until the fight ends; ExtraAttacks and
// InvisibleCharges are charge counters spent one at a time.
type BuffSet struct {
	Damage           int `json:"damage,omitempty"`
	Armor            int `json:"armor,omitempty"`
	Charm            int `json:"charm,omitempty"`
	ExtraAttacks     int `json:"extra_attacks,omitempty"`
	InvisibleCharges int `json:"invisible_charges,omitempty"`
}

// Any reports whether at least one buff is active.
func (b BuffSet) Any() bool {
	return b.Damage != 0 || b.Armor != 0 || b.Charm != 0 || b.ExtraAttacks != 0 || b.InvisibleCharges != 0
}

// SpendExtraAttack consumes one stored extra-attack charge and reports
// whether there was one to spend.
func (b *BuffSet) SpendExtraAttack() bool {
	if b.ExtraAttacks <= 0 {
		return false
	}
	b.ExtraAttacks--
	return true
}

// ConsumeInvisibility spends one invisibility charge and reports
// whether the bearer slipped the blow.
func (b *BuffSet) ConsumeInvisibility() bool {
	if b.InvisibleCharges <= 0 {
		return false
	}
	b.InvisibleCharges--
	return true
}

// Clear removes all buffs.
func (b *BuffSet) Clear() { *b = BuffSet{} }

// DebuffSet holds the negative modifiers on a combatant. PoisonTurns
// and FrozenTurns count down once per round.
type DebuffSet struct {
	Damage      int `json:"damage,omitempty"`
	Armor       int `json:"armor,omitempty"`
	PoisonTurns int `json:"poison_turns,omitempty"`
	FrozenTurns int `json:"frozen_turns,omitempty"`
}

// Any reports whether at least one debuff is active.
func (d DebuffSet) Any() bool {
	return d.Damage != 0 || d.Armor != 0 || d.PoisonTurns > 0 || d.FrozenTurns > 0
}

// Poisoned reports an active poison effect.
func (d DebuffSet) Poisoned() bool { return d.PoisonTurns > 0 }

// Frozen reports an active freeze effect.
func (d DebuffSet) Frozen() bool { return d.FrozenTurns > 0 }

// TickPoison counts one poison round down and reports whether the
// victim still takes damage this round.
func (d *DebuffSet) TickPoison() bool {
	if d.PoisonTurns <= 0 {
		return false
	}
	d.PoisonTurns--
	return true
}

// TickFrozen counts one frozen round down and reports whether the
// victim loses this round.
func (d *DebuffSet) TickFrozen() bool {
	if d.FrozenTurns <= 0 {
		return false
	}
	d.FrozenTurns--
	return true
}

// Clear removes all debuffs.
func (d *DebuffSet) Clear() { *d = DebuffSet{} }

// CurePoison removes a poison effect and reports whether one existed.
func (d *DebuffSet) CurePoison() bool {
	if d.PoisonTurns <= 0 {
		return false
	}
	d.PoisonTurns = 0
	return true
}
