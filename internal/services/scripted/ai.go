package scripted

import (
	"github.com/KirkDiggler/scripted-ai/internal/domain/combat"
	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
	"github.com/KirkDiggler/scripted-ai/internal/services/selector"
	"github.com/KirkDiggler/scripted-ai/internal/uuid"
)

// AI bundles the reusable scripted-behavior primitives for one creature:
// spell selection, equipment setup, threat reset, sound playback, and
// the friendly-unit searches. Everything here is glue over host calls;
// the selector carries the actual decision logic.
type AI struct {
	id       string
	creature combat.Creature
	selector selector.Service
	searcher combat.GridSearcher
	sounds   combat.SoundStore
	sink     DiagnosticSink
}

// AIConfig holds the dependencies for a scripted AI instance.
type AIConfig struct {
	Creature combat.Creature     // Required
	Selector selector.Service    // Required
	Searcher combat.GridSearcher // Optional; searches return nil without it
	Sounds   combat.SoundStore   // Optional; sound playback is refused without it
	Sink     DiagnosticSink      // Optional, defaults to the standard logger
	UUIDs    uuid.Generator      // Optional, defaults to google uuids
}

// NewAI creates a scripted AI instance for one creature.
func NewAI(cfg *AIConfig) *AI {
	if cfg.Creature == nil {
		panic("creature is required")
	}
	if cfg.Selector == nil {
		panic("selector service is required")
	}

	ai := &AI{
		creature: cfg.Creature,
		selector: cfg.Selector,
		searcher: cfg.Searcher,
		sounds:   cfg.Sounds,
		sink:     cfg.Sink,
	}

	if ai.sink == nil {
		ai.sink = NewLogSink()
	}

	uuids := cfg.UUIDs
	if uuids == nil {
		uuids = uuid.NewGoogleUUIDGenerator()
	}

	// Correlation id for sink reports from this instance
	ai.id = uuids.New()

	return ai
}

// ID returns the instance's correlation id.
func (a *AI) ID() string {
	return a.id
}

// SelectSpell picks a random castable spell from the creature's spell
// book, or nil when nothing qualifies.
func (a *AI) SelectSpell(target combat.Unit, constraints selector.Constraints) *spell.Definition {
	return a.selector.SelectSpell(a.creature, target, constraints)
}

// CanCast validates a specific spell choice against the target.
func (a *AI) CanCast(target combat.Unit, def *spell.Definition, triggered bool) bool {
	return a.selector.CanCast(a.creature, target, def, triggered)
}

// PlaySoundToSet plays a sound from the given source after validating
// the id against the sound store. Invalid ids are reported and skipped.
func (a *AI) PlaySoundToSet(source combat.SoundEmitter, soundID uint32) {
	if source == nil {
		return
	}

	if a.sounds == nil || !a.sounds.Exists(soundID) {
		a.sink.Warnf("ai %s: invalid sound id %d used in PlaySoundToSet (source: %s)", a.id, soundID, source.GUID())
		return
	}

	source.PlayDirectSound(soundID)
}

// SetEquipmentSlots updates the creature's visible weapon slots. With
// loadDefault the template equipment is restored instead; a negative id
// leaves its slot untouched.
func (a *AI) SetEquipmentSlots(loadDefault bool, mainHand, offHand, ranged int32) {
	if loadDefault {
		a.creature.LoadDefaultEquipment()
		return
	}

	if mainHand >= 0 {
		a.creature.SetVirtualItem(combat.EquipmentSlotMainHand, uint32(mainHand))
	}

	if offHand >= 0 {
		a.creature.SetVirtualItem(combat.EquipmentSlotOffHand, uint32(offHand))
	}

	if ranged >= 0 {
		a.creature.SetVirtualItem(combat.EquipmentSlotRanged, uint32(ranged))
	}
}

// TeleportPlayer moves a player to the given position. Non-player units
// are refused and reported.
func (a *AI) TeleportPlayer(unit combat.Unit, x, y, z, orientation float64) {
	if unit == nil {
		return
	}

	player, ok := unit.(combat.Player)
	if !ok {
		a.sink.Warnf("ai %s: %s tried to teleport non-player %s to x: %f y: %f z: %f o: %f, aborted",
			a.id, a.creature.GUID(), unit.GUID(), x, y, z, orientation)
		return
	}

	player.TeleportTo(x, y, z, orientation)
}

// ResetThreat zeroes the threat of every unit on the creature's threat
// list. Creatures without a usable threat list are reported.
func (a *AI) ResetThreat() {
	threat := a.creature.ThreatManager()
	if threat == nil || threat.IsEmpty() {
		a.sink.Warnf("ai %s: ResetThreat called for creature %d with no usable threat list", a.id, a.creature.Entry())
		return
	}

	for _, unit := range threat.Entries() {
		if threat.Threat(unit) != 0 {
			threat.ModifyThreatPercent(unit, -100)
		}
	}
}

// FindFriendlyCrowdControlled returns nearby friendly creatures under a
// crowd-control effect.
func (a *AI) FindFriendlyCrowdControlled(radius float64) []combat.Creature {
	if a.searcher == nil {
		return nil
	}
	return a.searcher.FindFriendlyCrowdControlled(a.creature, radius)
}

// FindFriendlyMissingBuff returns nearby friendly creatures missing the
// given buff.
func (a *AI) FindFriendlyMissingBuff(radius float64, spellID uint32) []combat.Creature {
	if a.searcher == nil {
		return nil
	}
	return a.searcher.FindFriendlyMissingBuff(a.creature, radius, spellID)
}

// PlayerAtMinimumRange returns a player at least minRange away, or nil.
func (a *AI) PlayerAtMinimumRange(minRange float64) combat.Player {
	if a.searcher == nil {
		return nil
	}
	return a.searcher.PlayerAtMinimumRange(a.creature, minRange)
}
