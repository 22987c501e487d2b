package combat

// EquipmentSlot identifies one of a creature's visible weapon slots.
type EquipmentSlot int

const (
	EquipmentSlotMainHand EquipmentSlot = iota
	EquipmentSlotOffHand
	EquipmentSlotRanged
)

// Creature is the live view of a scripted creature beyond its casting
// surface: equipment, threat, and template identity.
type Creature interface {
	Caster

	// Entry returns the creature's template entry id.
	Entry() uint32

	// LoadDefaultEquipment restores the equipment from the creature's
	// template.
	LoadDefaultEquipment()

	// SetVirtualItem sets the displayed item in a weapon slot.
	SetVirtualItem(slot EquipmentSlot, itemID uint32)

	// ThreatManager returns the creature's threat list, or nil when the
	// creature cannot have one.
	ThreatManager() ThreatManager
}

// ThreatManager is the host's per-creature threat list.
type ThreatManager interface {
	// IsEmpty reports whether the threat list has no entries.
	IsEmpty() bool

	// Entries returns the units currently on the threat list.
	Entries() []Unit

	// Threat returns the current threat value for a unit.
	Threat(u Unit) float64

	// ModifyThreatPercent adjusts a unit's threat by a percentage;
	// -100 zeroes it.
	ModifyThreatPercent(u Unit, percent int32)
}

// GridSearcher runs the host's spatial queries around a creature. Grid
// iteration itself belongs to the host; the AI layer only consumes the
// results.
type GridSearcher interface {
	// FindFriendlyCrowdControlled returns friendly creatures within
	// radius that are under a crowd-control effect.
	FindFriendlyCrowdControlled(origin Unit, radius float64) []Creature

	// FindFriendlyMissingBuff returns friendly creatures within radius
	// that are missing the given buff.
	FindFriendlyMissingBuff(origin Unit, radius float64, spellID uint32) []Creature

	// PlayerAtMinimumRange returns a player at least minRange away, or
	// nil when none is found.
	PlayerAtMinimumRange(origin Unit, minRange float64) Player
}

// SoundStore is the host's static sound entry table, used only to
// validate sound ids before playing them.
type SoundStore interface {
	Exists(soundID uint32) bool
}
