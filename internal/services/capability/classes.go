package capability

// TargetClass is one of the coarse target-shape categories a spell can
// satisfy. A spell may satisfy several at once.
type TargetClass uint8

const (
	TargetSelf TargetClass = iota + 1
	TargetSingleEnemy
	TargetAoeEnemy
	TargetAnyEnemy
	TargetSingleFriend
	TargetAoeFriend
	TargetAnyFriend
)

// String returns the class name for diagnostics.
func (c TargetClass) String() string {
	switch c {
	case TargetSelf:
		return "self"
	case TargetSingleEnemy:
		return "single-enemy"
	case TargetAoeEnemy:
		return "aoe-enemy"
	case TargetAnyEnemy:
		return "any-enemy"
	case TargetSingleFriend:
		return "single-friend"
	case TargetAoeFriend:
		return "aoe-friend"
	case TargetAnyFriend:
		return "any-friend"
	default:
		return "unknown"
	}
}

// TargetClasses is a set of TargetClass values.
type TargetClasses uint8

// NewTargetClasses builds a set from the given classes.
func NewTargetClasses(classes ...TargetClass) TargetClasses {
	var set TargetClasses
	for _, c := range classes {
		set = set.With(c)
	}
	return set
}

// With returns the set with c added.
func (s TargetClasses) With(c TargetClass) TargetClasses {
	return s | 1<<(c-1)
}

// Has reports whether c is in the set.
func (s TargetClasses) Has(c TargetClass) bool {
	return s&(1<<(c-1)) != 0
}

// IsEmpty reports whether no class is set.
func (s TargetClasses) IsEmpty() bool {
	return s == 0
}

// EffectClass is one of the coarse effect categories a spell can carry.
type EffectClass uint8

const (
	EffectDamage EffectClass = iota + 1
	EffectHealing
	EffectAura
)

// String returns the class name for diagnostics.
func (c EffectClass) String() string {
	switch c {
	case EffectDamage:
		return "damage"
	case EffectHealing:
		return "healing"
	case EffectAura:
		return "aura"
	default:
		return "unknown"
	}
}

// EffectClasses is a set of EffectClass values.
type EffectClasses uint8

// NewEffectClasses builds a set from the given classes.
func NewEffectClasses(classes ...EffectClass) EffectClasses {
	var set EffectClasses
	for _, c := range classes {
		set = set.With(c)
	}
	return set
}

// With returns the set with c added.
func (s EffectClasses) With(c EffectClass) EffectClasses {
	return s | 1<<(c-1)
}

// Has reports whether c is in the set.
func (s EffectClasses) Has(c EffectClass) bool {
	return s&(1<<(c-1)) != 0
}

// IsEmpty reports whether no class is set.
func (s EffectClasses) IsEmpty() bool {
	return s == 0
}
