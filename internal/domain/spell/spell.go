package spell

// MaxEffectSlots is the fixed number of effect slots on a spell definition.
// The content database always ships exactly three, ordered.
const MaxEffectSlots = 3

// TargetSpecifier identifies the implicit target of a single effect slot.
// Values match the ids used by the content database.
type TargetSpecifier uint32

const (
	TargetNone                    TargetSpecifier = 0
	TargetSelf                    TargetSpecifier = 1
	TargetChainDamage             TargetSpecifier = 6
	TargetAllEnemyInArea          TargetSpecifier = 15
	TargetAllEnemyInAreaInstant   TargetSpecifier = 16
	TargetSingleFriend            TargetSpecifier = 21
	TargetCasterCoordinates       TargetSpecifier = 22
	TargetAllEnemyInAreaChanneled TargetSpecifier = 28
	TargetAllPartyAroundCaster    TargetSpecifier = 33
	TargetSingleParty             TargetSpecifier = 35
	TargetAreaEffectParty         TargetSpecifier = 37
	TargetCurrentEnemyCoordinates TargetSpecifier = 53
)

// EffectKind identifies what a single effect slot does when it lands.
// Values match the ids used by the content database.
type EffectKind uint32

const (
	EffectNone                EffectKind = 0
	EffectInstakill           EffectKind = 1
	EffectSchoolDamage        EffectKind = 2
	EffectApplyAura           EffectKind = 6
	EffectEnvironmentalDamage EffectKind = 7
	EffectHealthLeech         EffectKind = 9
	EffectHeal                EffectKind = 10
	EffectHealMaxHealth       EffectKind = 67
	EffectHealMechanical      EffectKind = 74
)

// AuraType identifies the aura subtype carried by an EffectApplyAura slot.
type AuraType uint32

// AuraPeriodicHeal is the only aura subtype the classifier cares about:
// a periodic heal aura counts as a healing effect.
const AuraPeriodicHeal AuraType = 8

// SchoolMask is a bitmask of magic schools a spell belongs to.
type SchoolMask uint32

const (
	SchoolMaskPhysical SchoolMask = 1 << iota
	SchoolMaskHoly
	SchoolMaskFire
	SchoolMaskNature
	SchoolMaskFrost
	SchoolMaskShadow
	SchoolMaskArcane
)

// Intersects reports whether any school in m is also in other.
func (m SchoolMask) Intersects(other SchoolMask) bool {
	return m&other != 0
}

// Mechanic identifies a spell's crowd-control mechanic (stun, root, ...).
// The selector only ever compares mechanics for equality.
type Mechanic uint32

// MechanicNone marks a spell with no mechanic attached.
const MechanicNone Mechanic = 0

// PowerType identifies which of a unit's power pools a spell draws from.
type PowerType uint32

const (
	PowerMana PowerType = iota
	PowerRage
	PowerFocus
	PowerEnergy
)

// EffectSlot is one of the three ordered effect slots on a definition.
type EffectSlot struct {
	Kind   EffectKind      `json:"kind" yaml:"kind"`
	Target TargetSpecifier `json:"target" yaml:"target"`
	Aura   AuraType        `json:"aura,omitempty" yaml:"aura,omitempty"`
}

// Definition is a single static spell record. It is owned by the content
// database and read-only here; nothing in this module mutates one.
type Definition struct {
	ID         uint32                     `json:"id" yaml:"id"`
	Name       string                     `json:"name,omitempty" yaml:"name,omitempty"`
	SchoolMask SchoolMask                 `json:"school_mask" yaml:"school_mask"`
	Mechanic   Mechanic                   `json:"mechanic" yaml:"mechanic"`
	PowerCost  int32                      `json:"power_cost" yaml:"power_cost"`
	PowerType  PowerType                  `json:"power_type" yaml:"power_type"`
	RangeIndex uint32                     `json:"range_index" yaml:"range_index"`
	Effects    [MaxEffectSlots]EffectSlot `json:"effects" yaml:"effects"`
}
