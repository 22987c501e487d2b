package capability

import (
	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
)

// Summary is the precomputed capability record for one spell id: which
// target shapes its effect slots can reach and which effect categories
// they carry. The zero Summary means "no such spell".
type Summary struct {
	Targets TargetClasses
	Effects EffectClasses
}

// Index holds one Summary per spell id for the full id space of the
// static spell table. It is built once before the first simulation tick
// and is read-only afterwards, so it can be shared across concurrent AI
// updates without locking.
type Index struct {
	summaries []Summary
}

// BuildIndex classifies every definition in the spell table. Holes in
// the id space keep the zero Summary; a sparse table is expected, not an
// error.
func BuildIndex(table *spell.Table) *Index {
	index := &Index{
		summaries: make([]Summary, table.MaxID()),
	}

	for id := uint32(0); id < table.MaxID(); id++ {
		def := table.Lookup(id)
		if def == nil {
			continue
		}

		// Slot contributions are additive: a spell with different
		// target specifiers in different slots accumulates all of them.
		var summary Summary
		for _, slot := range def.Effects {
			summary.Targets |= classifyTarget(slot.Target)
			summary.Effects |= classifyEffect(slot)
		}

		index.summaries[id] = summary
	}

	return index
}

// Summary returns the capability record for a spell id. Unknown ids
// yield the zero Summary.
func (i *Index) Summary(id uint32) Summary {
	if id >= uint32(len(i.summaries)) {
		return Summary{}
	}
	return i.summaries[id]
}

// MaxID returns the exclusive upper bound of the indexed id space.
func (i *Index) MaxID() uint32 {
	return uint32(len(i.summaries))
}

func classifyTarget(t spell.TargetSpecifier) TargetClasses {
	switch t {
	case spell.TargetSelf:
		return NewTargetClasses(TargetSelf, TargetSingleFriend, TargetAnyFriend)

	case spell.TargetChainDamage, spell.TargetCurrentEnemyCoordinates:
		return NewTargetClasses(TargetSingleEnemy, TargetAnyEnemy)

	case spell.TargetAllEnemyInArea,
		spell.TargetAllEnemyInAreaInstant,
		spell.TargetAllEnemyInAreaChanneled:
		return NewTargetClasses(TargetAoeEnemy, TargetAnyEnemy)

	case spell.TargetCasterCoordinates:
		// Caster-centered effects count as enemy AoE and friendly AoE at
		// the same time. This overlap is deliberate and matches the
		// upstream classification; do not "fix" it.
		return NewTargetClasses(TargetAoeEnemy, TargetAnyEnemy, TargetAoeFriend, TargetAnyFriend)

	case spell.TargetSingleFriend, spell.TargetSingleParty:
		return NewTargetClasses(TargetSingleFriend, TargetAnyFriend)

	case spell.TargetAllPartyAroundCaster, spell.TargetAreaEffectParty:
		return NewTargetClasses(TargetAoeFriend, TargetAnyFriend)
	}

	return 0
}

func classifyEffect(slot spell.EffectSlot) EffectClasses {
	switch slot.Kind {
	case spell.EffectSchoolDamage,
		spell.EffectInstakill,
		spell.EffectEnvironmentalDamage,
		spell.EffectHealthLeech:
		return NewEffectClasses(EffectDamage)

	case spell.EffectHeal,
		spell.EffectHealMaxHealth,
		spell.EffectHealMechanical:
		return NewEffectClasses(EffectHealing)

	case spell.EffectApplyAura:
		// Any aura counts as an aura effect; a periodic heal aura also
		// counts as healing.
		if slot.Aura == spell.AuraPeriodicHeal {
			return NewEffectClasses(EffectAura, EffectHealing)
		}
		return NewEffectClasses(EffectAura)
	}

	return 0
}
