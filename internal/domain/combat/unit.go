package combat

import (
	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
)

// Unit is the minimal view of a live map entity the AI layer needs.
// Implementations live in the host simulation; this module never owns
// or persists live state.
type Unit interface {
	// GUID returns the unit's unique identifier for diagnostics.
	GUID() string

	// Name returns the unit's display name.
	Name() string
}

// Caster is the live view of a spell-casting creature.
type Caster interface {
	Unit

	// SpellSlots returns the creature's known spell ids in fixed slot
	// order. Slots may be empty (id 0) or reference ids with no
	// definition; both are skipped during selection.
	SpellSlots() []uint32

	// Power returns the creature's current pool for the given power type.
	Power(t spell.PowerType) int32

	// IsSilenced reports whether the creature is currently forbidden
	// from casting.
	IsSilenced() bool

	// DistanceTo returns the live map distance between the creature and
	// the target.
	DistanceTo(target Unit) float64
}

// Player is a player-controlled unit. Units that are not players do not
// implement it; the teleport helper uses that to refuse non-players.
type Player interface {
	Unit

	// TeleportTo moves the player to the given map position without
	// leaving combat.
	TeleportTo(x, y, z, orientation float64)
}

// SoundEmitter is a map object that can play a sound to nearby clients.
type SoundEmitter interface {
	Unit

	PlayDirectSound(soundID uint32)
}
